package tracking

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketmate-api/infrastructure/repository/memory"
	"github.com/vfg2006/marketmate-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketmate-api/internal/domain"
	"github.com/vfg2006/marketmate-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func newTestService(store *memory.EventStore) *Service {
	return &Service{
		store: store,
		now:   func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) },
	}
}

func TestGetOrCreateVisitorID_IdempotentForKnownVisitor(t *testing.T) {
	service := newTestService(memory.NewEventStore())

	id, isNew := service.GetOrCreateVisitorID("visitor_1700000000000_abc1234")

	assert.Equal(t, "visitor_1700000000000_abc1234", id)
	assert.False(t, isNew)
}

func TestGetOrCreateVisitorID_GeneratesNewIdentity(t *testing.T) {
	service := newTestService(memory.NewEventStore())

	id, isNew := service.GetOrCreateVisitorID("")

	assert.True(t, isNew)
	assert.True(t, strings.HasPrefix(id, "visitor_"))

	// Duas gerações nunca colidem
	other, _ := service.GetOrCreateVisitorID("")
	assert.NotEqual(t, id, other)
}

func TestGetOrCreateVisitorID_RepositoryFailureDegradesToSessionIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVisitorRepo := mocks.NewMockVisitorRepository(ctrl)
	mockVisitorRepo.EXPECT().
		Save(gomock.Any()).
		Return(errors.New("conexão recusada"))

	service := &Service{
		store:       memory.NewEventStore(),
		visitorRepo: mockVisitorRepo,
		now:         time.Now,
	}

	id, isNew := service.GetOrCreateVisitorID("")

	// A falha de persistência não impede a identidade de sessão
	assert.True(t, isNew)
	assert.True(t, strings.HasPrefix(id, "visitor_"))
}

func TestRecordPageView_MissingFields(t *testing.T) {
	tests := []struct {
		name     string
		event    *domain.VisitorEvent
		expected []string
	}{
		{
			name:     "sem visitorId",
			event:    &domain.VisitorEvent{Page: "/pricing"},
			expected: []string{"visitorId"},
		},
		{
			name:     "sem page",
			event:    &domain.VisitorEvent{VisitorID: "visitor_1_a"},
			expected: []string{"page"},
		},
		{
			name:     "sem ambos",
			event:    &domain.VisitorEvent{},
			expected: []string{"visitorId", "page"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewEventStore()
			service := newTestService(store)

			result, err := service.RecordPageView(tt.event)

			assert.Nil(t, result)
			require.Error(t, err)

			var missingErr *MissingFieldError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tt.expected, missingErr.Fields)

			// O log de eventos permanece intocado
			views, _ := store.PageViewsByVisitor(tt.event.VisitorID)
			assert.Empty(t, views)
		})
	}
}

func TestRecordPageView_AppliesAttributionDefaults(t *testing.T) {
	store := memory.NewEventStore()
	service := newTestService(store)

	event := &domain.VisitorEvent{
		VisitorID:  "visitor_1_a",
		BusinessID: "biz_1",
		Page:       "/",
	}

	result, err := service.RecordPageView(event)
	require.NoError(t, err)
	assert.True(t, result.Accepted)

	views, _ := store.PageViewsByVisitor("visitor_1_a")
	require.Len(t, views, 1)
	assert.Equal(t, domain.DefaultSource, views[0].Source)
	assert.Equal(t, domain.DefaultMedium, views[0].Medium)
	assert.Equal(t, domain.DefaultCampaign, views[0].Campaign)
	assert.Equal(t, domain.DefaultReferrer, views[0].Referrer)
}

func TestRecordPageView_PreservesExplicitAttribution(t *testing.T) {
	store := memory.NewEventStore()
	service := newTestService(store)

	event := &domain.VisitorEvent{
		VisitorID: "visitor_1_a",
		Page:      "/landing",
		Source:    "google",
		Medium:    "cpc",
		Campaign:  "spring_sale",
		Referrer:  "https://google.com",
	}

	_, err := service.RecordPageView(event)
	require.NoError(t, err)

	views, _ := store.PageViewsByVisitor("visitor_1_a")
	require.Len(t, views, 1)
	assert.Equal(t, "google", views[0].Source)
	assert.Equal(t, "cpc", views[0].Medium)
	assert.Equal(t, "spring_sale", views[0].Campaign)
	assert.Equal(t, "https://google.com", views[0].Referrer)
}

func TestRecordPageView_IsNewLeadOnlyOnFirstView(t *testing.T) {
	service := newTestService(memory.NewEventStore())

	first, err := service.RecordPageView(&domain.VisitorEvent{VisitorID: "visitor_1_a", Page: "/"})
	require.NoError(t, err)
	assert.True(t, first.IsNewLead)

	second, err := service.RecordPageView(&domain.VisitorEvent{VisitorID: "visitor_1_a", Page: "/pricing"})
	require.NoError(t, err)
	assert.False(t, second.IsNewLead)

	// Outro visitante continua sendo lead novo
	other, err := service.RecordPageView(&domain.VisitorEvent{VisitorID: "visitor_2_b", Page: "/"})
	require.NoError(t, err)
	assert.True(t, other.IsNewLead)
}

func TestRecordAction_MissingFields(t *testing.T) {
	service := newTestService(memory.NewEventStore())

	result, err := service.RecordAction(&domain.ActionEvent{VisitorID: "visitor_1_a"})

	assert.Nil(t, result)

	var missingErr *MissingFieldError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"action"}, missingErr.Fields)
}

func TestRecordAction_EngagementScoreSaturates(t *testing.T) {
	service := newTestService(memory.NewEventStore())

	var last *ActionResult
	for i := 0; i < 3; i++ {
		var err error
		last, err = service.RecordAction(&domain.ActionEvent{
			VisitorID: "visitor_1_a",
			Action:    domain.ActionClick,
		})
		require.NoError(t, err)
	}

	// 3 interações x 5 pontos
	assert.Equal(t, 15, last.EngagementScore)

	// Satura em 100 a partir da vigésima interação
	for i := 0; i < 30; i++ {
		var err error
		last, err = service.RecordAction(&domain.ActionEvent{
			VisitorID: "visitor_1_a",
			Action:    domain.ActionClick,
		})
		require.NoError(t, err)
	}
	assert.Equal(t, MaxEngagementScore, last.EngagementScore)
}

func TestRecordAction_EngagementIsPerVisitor(t *testing.T) {
	service := newTestService(memory.NewEventStore())

	for i := 0; i < 4; i++ {
		_, err := service.RecordAction(&domain.ActionEvent{VisitorID: "visitor_1_a", Action: domain.ActionClick})
		require.NoError(t, err)
	}

	result, err := service.RecordAction(&domain.ActionEvent{VisitorID: "visitor_2_b", Action: domain.ActionClick})
	require.NoError(t, err)

	// O contador do segundo visitante não é contaminado pelo primeiro
	assert.Equal(t, 5, result.EngagementScore)
}
