package leads

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketmate-api/infrastructure/repository/memory"
	"github.com/vfg2006/marketmate-api/internal/domain"
)

const testBusinessID = "biz_abc123"

func newTestService(store *memory.EventStore) *Service {
	return &Service{
		store: store,
		now:   func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) },
	}
}

func seedVisitors(t *testing.T, store *memory.EventStore, count int) {
	t.Helper()

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		err := store.AppendPageView(&domain.VisitorEvent{
			VisitorID:  fmt.Sprintf("visitor_%d_x", i),
			BusinessID: testBusinessID,
			Page:       "/",
			Timestamp:  base.Add(time.Duration(i) * time.Minute),
			Source:     domain.DefaultSource,
		})
		require.NoError(t, err)
	}
}

func TestListLeads_Pagination(t *testing.T) {
	store := memory.NewEventStore()
	seedVisitors(t, store, 50)
	service := newTestService(store)

	response, err := service.ListLeads(testBusinessID, nil, nil, 1, 10)
	require.NoError(t, err)

	assert.Len(t, response.Leads, 10)
	assert.Equal(t, 50, response.Pagination.Total)
	assert.Equal(t, 1, response.Pagination.Page)
	assert.Equal(t, 10, response.Pagination.Limit)
	assert.Equal(t, 5, response.Pagination.Pages)
}

func TestListLeads_PageBeyondEndReturnsEmptyList(t *testing.T) {
	store := memory.NewEventStore()
	seedVisitors(t, store, 50)
	service := newTestService(store)

	response, err := service.ListLeads(testBusinessID, nil, nil, 6, 10)
	require.NoError(t, err)

	assert.NotNil(t, response.Leads)
	assert.Empty(t, response.Leads)
	assert.Equal(t, 50, response.Pagination.Total)
	assert.Equal(t, 6, response.Pagination.Page)
	assert.Equal(t, 5, response.Pagination.Pages)
}

func TestListLeads_PartialLastPage(t *testing.T) {
	store := memory.NewEventStore()
	seedVisitors(t, store, 25)
	service := newTestService(store)

	response, err := service.ListLeads(testBusinessID, nil, nil, 3, 10)
	require.NoError(t, err)

	assert.Len(t, response.Leads, 5)
	assert.Equal(t, 3, response.Pagination.Pages)
}

func TestListLeads_InvalidPagingFallsBackToDefaults(t *testing.T) {
	store := memory.NewEventStore()
	seedVisitors(t, store, 15)
	service := newTestService(store)

	response, err := service.ListLeads(testBusinessID, nil, nil, 0, -5)
	require.NoError(t, err)

	assert.Equal(t, 1, response.Pagination.Page)
	assert.Equal(t, DefaultPageSize, response.Pagination.Limit)
	assert.Len(t, response.Leads, DefaultPageSize)
}

func TestListLeads_AggregatesVisitorEvents(t *testing.T) {
	store := memory.NewEventStore()
	service := newTestService(store)

	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	// Eventos fora de ordem de timestamp: o mais antigo define a atribuição
	require.NoError(t, store.AppendPageView(&domain.VisitorEvent{
		VisitorID: "visitor_1_a", BusinessID: testBusinessID,
		Page: "/pricing", Timestamp: first.Add(time.Hour),
		Source: "direct", Medium: "website", Campaign: "none",
	}))
	require.NoError(t, store.AppendPageView(&domain.VisitorEvent{
		VisitorID: "visitor_1_a", BusinessID: testBusinessID,
		Page: "/landing", Timestamp: first,
		Source: "google", Medium: "cpc", Campaign: "spring_sale",
	}))

	require.NoError(t, store.AppendAction(&domain.ActionEvent{
		VisitorID: "visitor_1_a", BusinessID: testBusinessID,
		Action: domain.ActionEmailCapture, ElementText: "ana@example.com",
		Timestamp: first.Add(2 * time.Hour),
	}))

	response, err := service.ListLeads(testBusinessID, nil, nil, 1, 10)
	require.NoError(t, err)
	require.Len(t, response.Leads, 1)

	lead := response.Leads[0]
	assert.Equal(t, "lead_visitor_1_a", lead.ID)
	assert.Equal(t, 2, lead.PageViews)
	assert.Equal(t, 1, lead.Actions)
	assert.Equal(t, "/landing", lead.FirstPage)
	assert.Equal(t, "google", lead.Source)
	assert.Equal(t, "cpc", lead.Medium)
	assert.Equal(t, "spring_sale", lead.Campaign)
	assert.Equal(t, first, lead.CreatedAt)
	assert.Equal(t, first.Add(2*time.Hour), lead.LastActive)
	require.NotNil(t, lead.Email)
	assert.Equal(t, "ana@example.com", *lead.Email)
	assert.False(t, lead.Converted)
	assert.Greater(t, lead.Score, 0)
}

func TestListLeads_ActionWithoutPageViewDoesNotMaterializeLead(t *testing.T) {
	store := memory.NewEventStore()
	service := newTestService(store)

	require.NoError(t, store.AppendAction(&domain.ActionEvent{
		VisitorID: "visitor_ghost", BusinessID: testBusinessID,
		Action: domain.ActionClick, Timestamp: time.Now(),
	}))

	response, err := service.ListLeads(testBusinessID, nil, nil, 1, 10)
	require.NoError(t, err)

	assert.Empty(t, response.Leads)
	assert.Equal(t, 0, response.Pagination.Total)
}

func TestListLeads_Filters(t *testing.T) {
	store := memory.NewEventStore()
	service := newTestService(store)

	base := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.AppendPageView(&domain.VisitorEvent{
		VisitorID: "visitor_1_a", BusinessID: testBusinessID,
		Page: "/", Timestamp: base, Source: "google",
	}))
	require.NoError(t, store.AppendPageView(&domain.VisitorEvent{
		VisitorID: "visitor_2_b", BusinessID: testBusinessID,
		Page: "/", Timestamp: base.Add(time.Minute), Source: "direct",
	}))

	require.NoError(t, store.AppendAction(&domain.ActionEvent{
		VisitorID: "visitor_2_b", BusinessID: testBusinessID,
		Action: domain.ActionConversion, Timestamp: base.Add(2 * time.Minute),
	}))
	require.NoError(t, store.AppendAction(&domain.ActionEvent{
		VisitorID: "visitor_1_a", BusinessID: testBusinessID,
		Action: domain.ActionEmailCapture, ElementText: "ana@example.com",
		Timestamp: base.Add(3 * time.Minute),
	}))

	t.Run("por origem", func(t *testing.T) {
		response, err := service.ListLeads(testBusinessID, &domain.LeadFilters{Source: "google"}, nil, 1, 10)
		require.NoError(t, err)
		require.Len(t, response.Leads, 1)
		assert.Equal(t, "visitor_1_a", response.Leads[0].VisitorID)
	})

	t.Run("por status convertido", func(t *testing.T) {
		response, err := service.ListLeads(testBusinessID, &domain.LeadFilters{Status: domain.LeadStatusConverted}, nil, 1, 10)
		require.NoError(t, err)
		require.Len(t, response.Leads, 1)
		assert.Equal(t, "visitor_2_b", response.Leads[0].VisitorID)
		assert.True(t, response.Leads[0].Converted)
	})

	t.Run("por status não convertido", func(t *testing.T) {
		response, err := service.ListLeads(testBusinessID, &domain.LeadFilters{Status: domain.LeadStatusNotConverted}, nil, 1, 10)
		require.NoError(t, err)
		require.Len(t, response.Leads, 1)
		assert.Equal(t, "visitor_1_a", response.Leads[0].VisitorID)
	})

	t.Run("por busca em email", func(t *testing.T) {
		response, err := service.ListLeads(testBusinessID, &domain.LeadFilters{Search: "ana@"}, nil, 1, 10)
		require.NoError(t, err)
		require.Len(t, response.Leads, 1)
		assert.Equal(t, "visitor_1_a", response.Leads[0].VisitorID)
	})

	t.Run("filtros conjuntivos sem resultado", func(t *testing.T) {
		response, err := service.ListLeads(testBusinessID, &domain.LeadFilters{
			Source: "google",
			Status: domain.LeadStatusConverted,
		}, nil, 1, 10)
		require.NoError(t, err)
		assert.Empty(t, response.Leads)
	})
}

func TestListLeads_DefaultSortIsScoreDescending(t *testing.T) {
	store := memory.NewEventStore()
	service := newTestService(store)

	base := time.Date(2024, 3, 9, 9, 0, 0, 0, time.UTC)

	// visitor_low tem uma visualização; visitor_high tem três e uma conversão
	require.NoError(t, store.AppendPageView(&domain.VisitorEvent{
		VisitorID: "visitor_low", BusinessID: testBusinessID, Page: "/", Timestamp: base,
	}))
	for i := 0; i < 3; i++ {
		require.NoError(t, store.AppendPageView(&domain.VisitorEvent{
			VisitorID: "visitor_high", BusinessID: testBusinessID, Page: "/", Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, store.AppendAction(&domain.ActionEvent{
		VisitorID: "visitor_high", BusinessID: testBusinessID,
		Action: domain.ActionConversion, Timestamp: base.Add(time.Hour),
	}))

	response, err := service.ListLeads(testBusinessID, nil, nil, 1, 10)
	require.NoError(t, err)
	require.Len(t, response.Leads, 2)

	assert.Equal(t, "visitor_high", response.Leads[0].VisitorID)
	assert.Equal(t, 100, response.Leads[0].Score)
	assert.Equal(t, "visitor_low", response.Leads[1].VisitorID)
}

func TestListLeads_SortByPageViewsAscending(t *testing.T) {
	store := memory.NewEventStore()
	service := newTestService(store)

	base := time.Date(2024, 3, 9, 9, 0, 0, 0, time.UTC)
	for i, views := range []int{3, 1, 2} {
		visitorID := fmt.Sprintf("visitor_%d_x", i)
		for v := 0; v < views; v++ {
			require.NoError(t, store.AppendPageView(&domain.VisitorEvent{
				VisitorID: visitorID, BusinessID: testBusinessID, Page: "/", Timestamp: base,
			}))
		}
	}

	response, err := service.ListLeads(testBusinessID, nil, &domain.LeadSort{
		Field:     domain.LeadSortByPageViews,
		Ascending: true,
	}, 1, 10)
	require.NoError(t, err)
	require.Len(t, response.Leads, 3)

	assert.Equal(t, 1, response.Leads[0].PageViews)
	assert.Equal(t, 2, response.Leads[1].PageViews)
	assert.Equal(t, 3, response.Leads[2].PageViews)
}

func TestListLeads_SortIsStableOnTies(t *testing.T) {
	store := memory.NewEventStore()
	seedVisitors(t, store, 5)
	service := newTestService(store)

	// Todos os leads têm o mesmo score; a ordem de inserção é preservada
	response, err := service.ListLeads(testBusinessID, nil, &domain.LeadSort{Field: domain.LeadSortByScore}, 1, 10)
	require.NoError(t, err)
	require.Len(t, response.Leads, 5)

	for i, lead := range response.Leads {
		assert.Equal(t, fmt.Sprintf("visitor_%d_x", i), lead.VisitorID)
	}
}

func TestListLeads_IsolatesBusinesses(t *testing.T) {
	store := memory.NewEventStore()
	service := newTestService(store)

	require.NoError(t, store.AppendPageView(&domain.VisitorEvent{
		VisitorID: "visitor_1_a", BusinessID: testBusinessID, Page: "/", Timestamp: time.Now(),
	}))
	require.NoError(t, store.AppendPageView(&domain.VisitorEvent{
		VisitorID: "visitor_2_b", BusinessID: "biz_other", Page: "/", Timestamp: time.Now(),
	}))

	response, err := service.ListLeads(testBusinessID, nil, nil, 1, 10)
	require.NoError(t, err)

	require.Len(t, response.Leads, 1)
	assert.Equal(t, "visitor_1_a", response.Leads[0].VisitorID)
}
