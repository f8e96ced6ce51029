package domain

import "time"

// Lead é o agregado derivado dos eventos de um visitante para um negócio.
// Nunca é armazenado: é sempre materializado a partir do log de eventos,
// para que score e contadores não divirjam da fonte autoritativa.
type Lead struct {
	ID         string    `json:"id"`
	VisitorID  string    `json:"visitorId"`
	BusinessID string    `json:"businessId"`
	FirstPage  string    `json:"firstPage"`
	PageViews  int       `json:"pageViews"`
	Source     string    `json:"source"`
	Medium     string    `json:"medium"`
	Campaign   string    `json:"campaign"`
	CreatedAt  time.Time `json:"createdAt"`
	LastActive time.Time `json:"lastActive"`
	Actions    int       `json:"actions"`
	Converted  bool      `json:"converted"`
	Email      *string   `json:"email"`
	Score      int       `json:"score"`
}

// Valores aceitos no filtro de status de leads
const (
	LeadStatusConverted    = "converted"
	LeadStatusNotConverted = "not_converted"
)

// Campos de ordenação aceitos na listagem de leads
const (
	LeadSortByScore      = "score"
	LeadSortByPageViews  = "pageViews"
	LeadSortByLastActive = "lastActive"
	LeadSortByCreatedAt  = "createdAt"
)

// LeadFilters são filtros conjuntivos: todos os informados precisam casar
type LeadFilters struct {
	Source string
	Status string
	Search string
}

// LeadSort define campo e direção da ordenação, aplicada antes da paginação
type LeadSort struct {
	Field     string
	Ascending bool
}

// Pagination descreve a página retornada na listagem
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// LeadListResponse é a resposta da listagem paginada de leads
type LeadListResponse struct {
	Leads      []*Lead    `json:"leads"`
	Pagination Pagination `json:"pagination"`
}
