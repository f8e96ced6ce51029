package domain

import "time"

// BusinessProfile identifica o negócio (tenant) dono dos leads e campanhas.
// Criado uma vez no intake, alterado pelo dono, nunca removido automaticamente.
type BusinessProfile struct {
	ID           string    `json:"id"`
	BusinessName string    `json:"businessName"`
	Industry     string    `json:"industry"`
	Location     string    `json:"location"`
	Website      string    `json:"website"`
	Services     string    `json:"services"`
	Audience     string    `json:"audience"`
	BrandStyle   string    `json:"brandStyle"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileScoreFactors expõe os insumos usados no score do perfil
type ProfileScoreFactors struct {
	Industry        string `json:"industry"`
	HasWebsite      bool   `json:"hasWebsite"`
	ServicesDetail  int    `json:"servicesDetail"`
	AudienceClarity int    `json:"audienceClarity"`
}

// ProfileScoreResult é o resultado da avaliação de qualidade do perfil
type ProfileScoreResult struct {
	Score           int                 `json:"score"`
	Analysis        string              `json:"analysis"`
	Recommendations []string            `json:"recommendations"`
	Factors         ProfileScoreFactors `json:"factors"`
}
