package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketmate-api/internal/domain"
)

func TestEventStore_FiltersByVisitorAndBusiness(t *testing.T) {
	store := NewEventStore()

	require.NoError(t, store.AppendPageView(&domain.VisitorEvent{
		VisitorID: "visitor_1_a", BusinessID: "biz_1", Page: "/",
	}))
	require.NoError(t, store.AppendPageView(&domain.VisitorEvent{
		VisitorID: "visitor_2_b", BusinessID: "biz_2", Page: "/pricing",
	}))
	require.NoError(t, store.AppendAction(&domain.ActionEvent{
		VisitorID: "visitor_1_a", BusinessID: "biz_1", Action: domain.ActionClick,
	}))

	byVisitor, err := store.PageViewsByVisitor("visitor_1_a")
	require.NoError(t, err)
	require.Len(t, byVisitor, 1)
	assert.Equal(t, "/", byVisitor[0].Page)

	byBusiness, err := store.PageViewsByBusiness("biz_2")
	require.NoError(t, err)
	require.Len(t, byBusiness, 1)
	assert.Equal(t, "visitor_2_b", byBusiness[0].VisitorID)

	actions, err := store.ActionsByBusiness("biz_1")
	require.NoError(t, err)
	assert.Len(t, actions, 1)

	none, err := store.ActionsByVisitor("visitor_3_c")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEventStore_AppendCopiesEvent(t *testing.T) {
	store := NewEventStore()

	event := &domain.VisitorEvent{VisitorID: "visitor_1_a", Page: "/"}
	require.NoError(t, store.AppendPageView(event))

	// Mutação posterior do evento original não altera o log
	event.Page = "/mutated"

	views, err := store.PageViewsByVisitor("visitor_1_a")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "/", views[0].Page)
}

func TestEventStore_PreservesInsertionOrder(t *testing.T) {
	store := NewEventStore()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.AppendPageView(&domain.VisitorEvent{
			VisitorID: "visitor_1_a",
			Page:      fmt.Sprintf("/page-%d", i),
			Timestamp: time.Now(),
		}))
	}

	views, err := store.PageViewsByVisitor("visitor_1_a")
	require.NoError(t, err)
	require.Len(t, views, 5)

	for i, view := range views {
		assert.Equal(t, fmt.Sprintf("/page-%d", i), view.Page)
	}
}

func TestEventStore_ConcurrentAppends(t *testing.T) {
	store := NewEventStore()

	const visitors = 10
	const eventsPerVisitor = 50

	var wg sync.WaitGroup
	for v := 0; v < visitors; v++ {
		wg.Add(1)
		go func(visitor int) {
			defer wg.Done()

			visitorID := fmt.Sprintf("visitor_%d_x", visitor)
			for i := 0; i < eventsPerVisitor; i++ {
				_ = store.AppendPageView(&domain.VisitorEvent{
					VisitorID:  visitorID,
					BusinessID: "biz_1",
					Page:       "/",
				})
				_ = store.AppendAction(&domain.ActionEvent{
					VisitorID:  visitorID,
					BusinessID: "biz_1",
					Action:     domain.ActionClick,
				})
			}
		}(v)
	}
	wg.Wait()

	// Nenhum evento se perde nem se corrompe sob concorrência
	for v := 0; v < visitors; v++ {
		visitorID := fmt.Sprintf("visitor_%d_x", v)

		views, err := store.PageViewsByVisitor(visitorID)
		require.NoError(t, err)
		assert.Len(t, views, eventsPerVisitor)

		actions, err := store.ActionsByVisitor(visitorID)
		require.NoError(t, err)
		assert.Len(t, actions, eventsPerVisitor)
	}

	all, err := store.PageViewsByBusiness("biz_1")
	require.NoError(t, err)
	assert.Len(t, all, visitors*eventsPerVisitor)
}
