// Package scoring concentra as funções puras de pontuação de leads e perfis.
// Os pesos e textos são regras de negócio fixas; ficam em constantes nomeadas
// para serem ajustados sem mexer no formato do algoritmo.
package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/vfg2006/marketmate-api/internal/domain"
)

// Pesos do score de perfil de negócio
const (
	ProfileBaseScore         = 50
	IndustryBonus            = 20
	WebsiteBonus             = 15
	ServicesDetailBonus      = 10
	AudienceClarityBonus     = 5
	ServicesDetailThreshold  = 50
	AudienceClarityThreshold = 30
)

// Limiares dos níveis de qualidade do perfil
const (
	HighQualityThreshold = 80
	ModerateThreshold    = 60
)

// Pesos do score comportamental de lead
const (
	LeadBaseScore           = 50
	PageViewWeight          = 3
	ActionWeight            = 5
	InactivityPenaltyPerDay = 2
	EmailBonus              = 15
	ConvertedScore          = 100
)

// Indústrias de alto valor para o score de perfil
var highValueIndustries = map[string]bool{
	"technology": true,
	"finance":    true,
	"healthcare": true,
}

// Análises e recomendações fixas por nível de qualidade
var (
	highQualityAnalysis = "High-quality lead with strong business foundation and clear value proposition."
	moderateAnalysis    = "Moderate-quality lead with good potential. Some areas need clarification."
	earlyStageAnalysis  = "Early-stage lead requiring nurturing and qualification."

	highQualityRecommendations = []string{
		"Schedule immediate follow-up call",
		"Send premium service package information",
		"Assign to senior sales representative",
	}
	moderateRecommendations = []string{
		"Request additional business information",
		"Send case studies relevant to their industry",
		"Schedule discovery call within 48 hours",
	}
	earlyStageRecommendations = []string{
		"Add to email nurture sequence",
		"Send educational content about your services",
		"Follow up in 1-2 weeks with value-focused content",
	}
)

// ScoreProfile avalia a qualidade do perfil do negócio no fechamento do intake.
// Função pura: mesmo perfil, mesmo resultado.
func ScoreProfile(profile *domain.BusinessProfile) *domain.ProfileScoreResult {
	score := ProfileBaseScore

	industry := ""
	hasWebsite := false
	servicesDetail := 0
	audienceClarity := 0

	if profile != nil {
		industry = profile.Industry
		hasWebsite = profile.Website != ""
		servicesDetail = len(profile.Services)
		audienceClarity = len(profile.Audience)

		if highValueIndustries[strings.ToLower(profile.Industry)] {
			score += IndustryBonus
		}

		if hasWebsite {
			score += WebsiteBonus
		}

		if servicesDetail > ServicesDetailThreshold {
			score += ServicesDetailBonus
		}

		if audienceClarity > AudienceClarityThreshold {
			score += AudienceClarityBonus
		}
	}

	score = clamp(score)

	analysis, recommendations := tierForScore(score)

	if industry == "" {
		industry = "Not specified"
	}

	return &domain.ProfileScoreResult{
		Score:           score,
		Analysis:        analysis,
		Recommendations: recommendations,
		Factors: domain.ProfileScoreFactors{
			Industry:        industry,
			HasWebsite:      hasWebsite,
			ServicesDetail:  servicesDetail,
			AudienceClarity: audienceClarity,
		},
	}
}

// LeadScore calcula o score comportamental de um lead a partir dos agregados
// do log de eventos. Conversão força o score máximo, ignorando os demais termos.
func LeadScore(lead *domain.Lead, now time.Time) int {
	if lead.Converted {
		return ConvertedScore
	}

	score := float64(LeadBaseScore)
	score += float64(PageViewWeight * lead.PageViews)
	score += float64(ActionWeight * lead.Actions)

	daysSinceActive := int(math.Floor(now.Sub(lead.LastActive).Hours() / 24))
	score -= float64(InactivityPenaltyPerDay * daysSinceActive)

	if lead.Email != nil && *lead.Email != "" {
		score += EmailBonus
	}

	return clamp(int(math.Round(score)))
}

func tierForScore(score int) (string, []string) {
	switch {
	case score >= HighQualityThreshold:
		return highQualityAnalysis, highQualityRecommendations
	case score >= ModerateThreshold:
		return moderateAnalysis, moderateRecommendations
	default:
		return earlyStageAnalysis, earlyStageRecommendations
	}
}

func clamp(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
