// Package budgeting distribui a verba de anúncios entre os canais selecionados
// na publicação e projeta alcance, cliques e conversões por canal.
package budgeting

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vfg2006/marketmate-api/infrastructure/repository"
	"github.com/vfg2006/marketmate-api/internal/domain"
)

// Constantes de projeção linear por unidade de verba total. São regras de
// negócio fixas, não estimativas aprendidas.
const (
	ReachPerBudgetUnit       = 50.0
	ClicksPerBudgetUnit      = 2.0
	ConversionsPerBudgetUnit = 0.1
)

// AllocationRequest descreve uma alocação de verba feita na publicação
type AllocationRequest struct {
	TotalDailyBudget float64  `json:"totalDailyBudget"`
	DurationDays     int      `json:"durationDays"`
	Channels         []string `json:"channels"`
	Objective        string   `json:"objective"`
	Targeting        string   `json:"targeting"`
}

// Allocator aloca verba entre canais e gerencia as campanhas resultantes
type Allocator interface {
	// Allocate distribui a verba diária igualmente entre os canais
	Allocate(req *AllocationRequest) ([]*domain.AdCampaign, error)

	// Publish aloca e persiste o lote de campanhas de uma publicação
	Publish(businessID string, req *AllocationRequest) ([]*domain.AdCampaign, error)

	// ListCampaigns lista as campanhas de um negócio
	ListCampaigns(businessID string) ([]*domain.AdCampaign, error)
}

type Service struct {
	campaignRepo repository.CampaignRepository
	now          func() time.Time
}

func NewService(campaignRepo repository.CampaignRepository) Allocator {
	return &Service{
		campaignRepo: campaignRepo,
		now:          time.Now,
	}
}

// Allocate divide a verba diária igualmente pelo número de canais, sem
// redistribuir sobras de arredondamento. A soma das verbas diárias fecha com o
// total dentro da tolerância de ponto flutuante.
func (s *Service) Allocate(req *AllocationRequest) ([]*domain.AdCampaign, error) {
	if len(req.Channels) == 0 {
		return nil, ErrNoChannelsSelected
	}

	dailyBudget := req.TotalDailyBudget / float64(len(req.Channels))
	totalBudget := dailyBudget * float64(req.DurationDays)

	// Todas as campanhas do mesmo lote compartilham o instante de criação
	createdAt := s.now()

	campaigns := make([]*domain.AdCampaign, 0, len(req.Channels))
	for _, channel := range req.Channels {
		campaigns = append(campaigns, &domain.AdCampaign{
			ID:          fmt.Sprintf("camp_%s_%d", strings.ToLower(channel), createdAt.UnixMilli()),
			Platform:    channel,
			Budget:      dailyBudget,
			TotalBudget: totalBudget,
			Duration:    req.DurationDays,
			Status:      domain.CampaignStatusActive,
			Reach:       int(math.Floor(totalBudget * ReachPerBudgetUnit)),
			Clicks:      int(math.Floor(totalBudget * ClicksPerBudgetUnit)),
			Conversions: int(math.Floor(totalBudget * ConversionsPerBudgetUnit)),
			Objective:   req.Objective,
			Targeting:   req.Targeting,
			CreatedAt:   createdAt,
		})
	}

	return campaigns, nil
}

// Publish cria as campanhas da publicação e persiste o lote quando o negócio
// foi informado
func (s *Service) Publish(businessID string, req *AllocationRequest) ([]*domain.AdCampaign, error) {
	campaigns, err := s.Allocate(req)
	if err != nil {
		return nil, err
	}

	for _, campaign := range campaigns {
		campaign.BusinessID = businessID
	}

	if businessID != "" && s.campaignRepo != nil {
		if err := s.campaignRepo.SaveBatch(campaigns); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSaveCampaigns, err)
		}
	}

	return campaigns, nil
}

func (s *Service) ListCampaigns(businessID string) ([]*domain.AdCampaign, error) {
	campaigns, err := s.campaignRepo.ListByBusiness(businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchCampaigns, err)
	}

	return campaigns, nil
}
