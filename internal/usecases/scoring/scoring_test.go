package scoring

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketmate-api/internal/domain"
)

func TestScoreProfile(t *testing.T) {
	longServices := strings.Repeat("consultoria e implantação de sistemas ", 3) // > 50 chars
	clearAudience := "pequenas e médias empresas de varejo no Brasil"           // > 30 chars

	tests := []struct {
		name          string
		profile       *domain.BusinessProfile
		expectedScore int
		analysis      string
	}{
		{
			name: "perfil completo em indústria de alto valor atinge o teto",
			profile: &domain.BusinessProfile{
				Industry: "Technology",
				Website:  "https://example.com",
				Services: longServices,
				Audience: clearAudience,
			},
			expectedScore: 100,
			analysis:      highQualityAnalysis,
		},
		{
			name: "indústria de alto valor é comparada sem diferenciar maiúsculas",
			profile: &domain.BusinessProfile{
				Industry: "FINANCE",
			},
			expectedScore: 70,
			analysis:      moderateAnalysis,
		},
		{
			name: "somente website fica no nível moderado",
			profile: &domain.BusinessProfile{
				Industry: "Retail",
				Website:  "https://example.com",
			},
			expectedScore: 65,
			analysis:      moderateAnalysis,
		},
		{
			name:          "perfil vazio fica no nível inicial",
			profile:       &domain.BusinessProfile{},
			expectedScore: 50,
			analysis:      earlyStageAnalysis,
		},
		{
			name:          "perfil nulo não quebra a avaliação",
			profile:       nil,
			expectedScore: 50,
			analysis:      earlyStageAnalysis,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreProfile(tt.profile)

			assert.Equal(t, tt.expectedScore, result.Score)
			assert.Equal(t, tt.analysis, result.Analysis)
			assert.NotEmpty(t, result.Recommendations)
		})
	}
}

func TestScoreProfile_FactorsExposeInputs(t *testing.T) {
	result := ScoreProfile(&domain.BusinessProfile{
		Industry: "Healthcare",
		Services: "clínica geral",
		Audience: "famílias",
	})

	assert.Equal(t, "Healthcare", result.Factors.Industry)
	assert.False(t, result.Factors.HasWebsite)
	assert.Equal(t, len("clínica geral"), result.Factors.ServicesDetail)
	assert.Equal(t, len("famílias"), result.Factors.AudienceClarity)
}

func TestScoreProfile_MissingIndustryIsReported(t *testing.T) {
	result := ScoreProfile(&domain.BusinessProfile{})

	assert.Equal(t, "Not specified", result.Factors.Industry)
}

func TestScoreProfile_IsDeterministic(t *testing.T) {
	profile := &domain.BusinessProfile{
		Industry: "Technology",
		Website:  "https://example.com",
	}

	first := ScoreProfile(profile)
	second := ScoreProfile(profile)

	assert.Equal(t, first, second)
}

func TestLeadScore(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	email := "ana@example.com"

	tests := []struct {
		name     string
		lead     *domain.Lead
		expected int
	}{
		{
			name:     "lead recém chegado parte da base",
			lead:     &domain.Lead{LastActive: now},
			expected: 50,
		},
		{
			name: "visualizações, interações e email somam",
			lead: &domain.Lead{
				PageViews:  2,
				Actions:    1,
				Email:      &email,
				LastActive: now,
			},
			expected: 76, // 50 + 6 + 5 + 15
		},
		{
			name: "inatividade penaliza por dia completo",
			lead: &domain.Lead{
				PageViews:  4,
				LastActive: now.AddDate(0, 0, -10),
			},
			expected: 42, // 50 + 12 - 20
		},
		{
			name: "conversão força o score máximo mesmo com inatividade longa",
			lead: &domain.Lead{
				Converted:  true,
				LastActive: now.AddDate(-1, 0, 0),
			},
			expected: 100,
		},
		{
			name: "score não passa de 100",
			lead: &domain.Lead{
				PageViews:  10000,
				LastActive: now,
			},
			expected: 100,
		},
		{
			name: "score não fica negativo",
			lead: &domain.Lead{
				PageViews:  1,
				LastActive: now.AddDate(0, -6, 0),
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LeadScore(tt.lead, now))
		})
	}
}

func TestLeadScore_MonotonicInPageViews(t *testing.T) {
	now := time.Now()

	fewer := LeadScore(&domain.Lead{PageViews: 2, LastActive: now}, now)
	more := LeadScore(&domain.Lead{PageViews: 5, LastActive: now}, now)

	assert.Greater(t, more, fewer)
}

func TestLeadScore_EmptyEmailDoesNotScore(t *testing.T) {
	now := time.Now()
	empty := ""

	withEmpty := LeadScore(&domain.Lead{Email: &empty, LastActive: now}, now)
	without := LeadScore(&domain.Lead{LastActive: now}, now)

	assert.Equal(t, without, withEmpty)
}
