// Package memory fornece um EventStore em memória, usado nos testes e quando a
// aplicação sobe sem banco de dados configurado.
package memory

import (
	"sync"

	"github.com/vfg2006/marketmate-api/internal/domain"
)

// EventStore guarda os eventos em slices append-only protegidos por mutex.
// Appends concorrentes de visitantes distintos não se corrompem; cada evento
// entra inteiro ou não entra.
type EventStore struct {
	mu        sync.RWMutex
	pageViews []*domain.VisitorEvent
	actions   []*domain.ActionEvent
}

func NewEventStore() *EventStore {
	return &EventStore{
		pageViews: make([]*domain.VisitorEvent, 0),
		actions:   make([]*domain.ActionEvent, 0),
	}
}

func (s *EventStore) AppendPageView(event *domain.VisitorEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *event
	s.pageViews = append(s.pageViews, &copied)
	return nil
}

func (s *EventStore) AppendAction(event *domain.ActionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *event
	s.actions = append(s.actions, &copied)
	return nil
}

func (s *EventStore) PageViewsByVisitor(visitorID string) ([]*domain.VisitorEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]*domain.VisitorEvent, 0)
	for _, event := range s.pageViews {
		if event.VisitorID == visitorID {
			events = append(events, event)
		}
	}
	return events, nil
}

func (s *EventStore) PageViewsByBusiness(businessID string) ([]*domain.VisitorEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]*domain.VisitorEvent, 0)
	for _, event := range s.pageViews {
		if event.BusinessID == businessID {
			events = append(events, event)
		}
	}
	return events, nil
}

func (s *EventStore) ActionsByVisitor(visitorID string) ([]*domain.ActionEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]*domain.ActionEvent, 0)
	for _, event := range s.actions {
		if event.VisitorID == visitorID {
			events = append(events, event)
		}
	}
	return events, nil
}

func (s *EventStore) ActionsByBusiness(businessID string) ([]*domain.ActionEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]*domain.ActionEvent, 0)
	for _, event := range s.actions {
		if event.BusinessID == businessID {
			events = append(events, event)
		}
	}
	return events, nil
}
