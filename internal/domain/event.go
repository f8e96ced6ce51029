package domain

import "time"

// Valores de fallback quando a atribuição não vem por parâmetros UTM
const (
	DefaultSource   = "direct"
	DefaultMedium   = "website"
	DefaultCampaign = "none"
	DefaultReferrer = "direct"
)

// Ações reconhecidas pelo rastreamento de interações
const (
	ActionClick        = "click"
	ActionConversion   = "conversion"
	ActionEmailCapture = "email_capture"
)

// VisitorEvent é uma visualização de página registrada para um visitante.
// Imutável depois de gravado; a ordem dentro de um visitante é dada pelo Timestamp.
type VisitorEvent struct {
	VisitorID  string    `json:"visitorId"`
	BusinessID string    `json:"businessId"`
	Page       string    `json:"page"`
	Timestamp  time.Time `json:"timestamp"`
	Source     string    `json:"source"`
	Medium     string    `json:"medium"`
	Campaign   string    `json:"campaign"`
	Referrer   string    `json:"referrer"`
	UserAgent  string    `json:"userAgent"`
}

// ActionEvent é uma interação (clique, conversão, captura de email) de um visitante
type ActionEvent struct {
	VisitorID   string    `json:"visitorId"`
	BusinessID  string    `json:"businessId"`
	Page        string    `json:"page"`
	Element     string    `json:"element"`
	ElementText string    `json:"elementText"`
	Timestamp   time.Time `json:"timestamp"`
	Action      string    `json:"action"`
}
