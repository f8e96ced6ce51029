package domain

import "time"

// Status possíveis de uma campanha de anúncios
const (
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// AdCampaign é uma campanha paga criada no momento da publicação de um conteúdo.
// Budget é o valor diário por canal; TotalBudget = Budget * Duration.
type AdCampaign struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"businessId,omitempty"`
	Platform    string    `json:"platform"`
	Budget      float64   `json:"budget"`
	TotalBudget float64   `json:"totalBudget"`
	Duration    int       `json:"duration"`
	Status      string    `json:"status"`
	Reach       int       `json:"reach"`
	Clicks      int       `json:"clicks"`
	Conversions int       `json:"conversions"`
	Objective   string    `json:"objective"`
	Targeting   string    `json:"targeting"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EndsAt retorna o fim da janela de veiculação da campanha
func (c *AdCampaign) EndsAt() time.Time {
	return c.CreatedAt.AddDate(0, 0, c.Duration)
}
