package budgeting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketmate-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketmate-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService() *Service {
	return &Service{
		now: func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) },
	}
}

func TestAllocate_SplitsBudgetEvenly(t *testing.T) {
	service := newTestService()

	campaigns, err := service.Allocate(&AllocationRequest{
		TotalDailyBudget: 100,
		DurationDays:     7,
		Channels:         []string{"Facebook", "Google"},
		Objective:        "awareness",
		Targeting:        "São Paulo, 25-45",
	})
	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	for _, campaign := range campaigns {
		assert.Equal(t, 50.0, campaign.Budget)
		assert.Equal(t, 350.0, campaign.TotalBudget)
		assert.Equal(t, 7, campaign.Duration)
		assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
		assert.Equal(t, "awareness", campaign.Objective)
		assert.Equal(t, "São Paulo, 25-45", campaign.Targeting)

		// Projeções lineares sobre a verba total do canal
		assert.Equal(t, 17500, campaign.Reach)
		assert.Equal(t, 700, campaign.Clicks)
		assert.Equal(t, 35, campaign.Conversions)
	}

	assert.Equal(t, "Facebook", campaigns[0].Platform)
	assert.Equal(t, "Google", campaigns[1].Platform)
	assert.Equal(t, "camp_facebook_1710072000000", campaigns[0].ID)
	assert.Equal(t, "camp_google_1710072000000", campaigns[1].ID)

	// O lote inteiro compartilha o mesmo instante de criação
	assert.Equal(t, campaigns[0].CreatedAt, campaigns[1].CreatedAt)
}

func TestAllocate_ConservesDailyBudget(t *testing.T) {
	service := newTestService()

	campaigns, err := service.Allocate(&AllocationRequest{
		TotalDailyBudget: 100,
		DurationDays:     30,
		Channels:         []string{"Facebook", "Google", "Instagram"},
	})
	require.NoError(t, err)

	var sum float64
	for _, campaign := range campaigns {
		sum += campaign.Budget
	}

	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestAllocate_NoChannelsSelected(t *testing.T) {
	service := newTestService()

	campaigns, err := service.Allocate(&AllocationRequest{
		TotalDailyBudget: 100,
		DurationDays:     7,
		Channels:         []string{},
	})

	assert.Nil(t, campaigns)
	assert.ErrorIs(t, err, ErrNoChannelsSelected)
}

func TestPublish_PersistsBatchForBusiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockCampaignRepo.EXPECT().
		SaveBatch(gomock.Any()).
		DoAndReturn(func(campaigns []*domain.AdCampaign) error {
			require.Len(t, campaigns, 2)
			for _, campaign := range campaigns {
				assert.Equal(t, "biz_abc123", campaign.BusinessID)
			}
			return nil
		})

	service := &Service{
		campaignRepo: mockCampaignRepo,
		now:          time.Now,
	}

	campaigns, err := service.Publish("biz_abc123", &AllocationRequest{
		TotalDailyBudget: 60,
		DurationDays:     5,
		Channels:         []string{"Facebook", "Instagram"},
	})
	require.NoError(t, err)
	assert.Len(t, campaigns, 2)
}

func TestPublish_WithoutBusinessSkipsPersistence(t *testing.T) {
	// Sem negócio identificado a alocação é apenas uma simulação
	service := newTestService()

	campaigns, err := service.Publish("", &AllocationRequest{
		TotalDailyBudget: 60,
		DurationDays:     5,
		Channels:         []string{"Facebook"},
	})
	require.NoError(t, err)
	assert.Len(t, campaigns, 1)
}

func TestPublish_SaveFailureIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockCampaignRepo.EXPECT().
		SaveBatch(gomock.Any()).
		Return(errors.New("conexão recusada"))

	service := &Service{
		campaignRepo: mockCampaignRepo,
		now:          time.Now,
	}

	campaigns, err := service.Publish("biz_abc123", &AllocationRequest{
		TotalDailyBudget: 60,
		DurationDays:     5,
		Channels:         []string{"Facebook"},
	})

	assert.Nil(t, campaigns)
	assert.ErrorIs(t, err, ErrSaveCampaigns)
}

func TestListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := []*domain.AdCampaign{
		{ID: "camp_facebook_1", BusinessID: "biz_abc123"},
	}

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockCampaignRepo.EXPECT().
		ListByBusiness("biz_abc123").
		Return(stored, nil)

	service := &Service{campaignRepo: mockCampaignRepo, now: time.Now}

	campaigns, err := service.ListCampaigns("biz_abc123")
	require.NoError(t, err)
	assert.Equal(t, stored, campaigns)
}
