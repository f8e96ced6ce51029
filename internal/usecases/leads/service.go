// Package leads materializa a visão de leads a partir do log de eventos e
// serve a listagem filtrada, ordenada e paginada do dashboard.
package leads

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/marketmate-api/infrastructure/repository"
	"github.com/vfg2006/marketmate-api/internal/domain"
	"github.com/vfg2006/marketmate-api/internal/usecases/scoring"
)

const DefaultPageSize = 10

// LeadLister serve a visão de leads de um negócio
type LeadLister interface {
	ListLeads(businessID string, filters *domain.LeadFilters, sortBy *domain.LeadSort, page, limit int) (*domain.LeadListResponse, error)
}

type Service struct {
	store repository.EventStore
	now   func() time.Time
}

func NewService(store repository.EventStore) LeadLister {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// ListLeads reconstrói os leads do negócio a partir do log autoritativo a cada
// chamada; score e agregados nunca ficam em cache para não divergirem.
// Filtros são conjuntivos, a ordenação é estável e aplicada antes da paginação.
func (s *Service) ListLeads(businessID string, filters *domain.LeadFilters, sortBy *domain.LeadSort, page, limit int) (*domain.LeadListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	leads, err := s.materializeLeads(businessID)
	if err != nil {
		return nil, err
	}

	leads = applyFilters(leads, filters)
	applySort(leads, sortBy)

	total := len(leads)
	pages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit

	// Página além do fim devolve lista vazia, não é um erro
	items := []*domain.Lead{}
	if start < total {
		if end > total {
			end = total
		}
		items = leads[start:end]
	}

	return &domain.LeadListResponse{
		Leads: items,
		Pagination: domain.Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: pages,
		},
	}, nil
}

// materializeLeads agrupa os eventos por visitante na ordem de inserção e
// deriva os agregados de cada lead
func (s *Service) materializeLeads(businessID string) ([]*domain.Lead, error) {
	pageViews, err := s.store.PageViewsByBusiness(businessID)
	if err != nil {
		return nil, err
	}

	actions, err := s.store.ActionsByBusiness(businessID)
	if err != nil {
		return nil, err
	}

	byVisitor := make(map[string]*domain.Lead)
	ordered := make([]*domain.Lead, 0)

	for _, event := range pageViews {
		lead, ok := byVisitor[event.VisitorID]
		if !ok {
			lead = &domain.Lead{
				ID:         fmt.Sprintf("lead_%s", event.VisitorID),
				VisitorID:  event.VisitorID,
				BusinessID: businessID,
				FirstPage:  event.Page,
				Source:     event.Source,
				Medium:     event.Medium,
				Campaign:   event.Campaign,
				CreatedAt:  event.Timestamp,
				LastActive: event.Timestamp,
			}
			byVisitor[event.VisitorID] = lead
			ordered = append(ordered, lead)
		}

		lead.PageViews++

		// A ordem dentro do visitante é dada pelo timestamp do evento,
		// não pela ordem de chegada
		if event.Timestamp.Before(lead.CreatedAt) {
			lead.CreatedAt = event.Timestamp
			lead.FirstPage = event.Page
			lead.Source = event.Source
			lead.Medium = event.Medium
			lead.Campaign = event.Campaign
		}
		if event.Timestamp.After(lead.LastActive) {
			lead.LastActive = event.Timestamp
		}
	}

	for _, action := range actions {
		lead, ok := byVisitor[action.VisitorID]
		if !ok {
			// Interação sem page view registrada não materializa lead
			continue
		}

		lead.Actions++

		if action.Timestamp.After(lead.LastActive) {
			lead.LastActive = action.Timestamp
		}

		switch action.Action {
		case domain.ActionConversion:
			lead.Converted = true
		case domain.ActionEmailCapture:
			if action.ElementText != "" {
				email := action.ElementText
				lead.Email = &email
			}
		}
	}

	now := s.now()
	for _, lead := range ordered {
		lead.Score = scoring.LeadScore(lead, now)
	}

	return ordered, nil
}

func applyFilters(leads []*domain.Lead, filters *domain.LeadFilters) []*domain.Lead {
	if filters == nil {
		return leads
	}

	filtered := make([]*domain.Lead, 0, len(leads))
	for _, lead := range leads {
		if filters.Source != "" && lead.Source != filters.Source {
			continue
		}

		if filters.Status != "" {
			wantConverted := filters.Status == domain.LeadStatusConverted
			if lead.Converted != wantConverted {
				continue
			}
		}

		if filters.Search != "" && !matchesSearch(lead, filters.Search) {
			continue
		}

		filtered = append(filtered, lead)
	}

	return filtered
}

// matchesSearch compara por substring, sensível a maiúsculas
func matchesSearch(lead *domain.Lead, search string) bool {
	if strings.Contains(lead.ID, search) {
		return true
	}
	return lead.Email != nil && strings.Contains(*lead.Email, search)
}

// applySort ordena de forma estável; empates preservam a ordem de inserção
func applySort(leads []*domain.Lead, sortBy *domain.LeadSort) {
	field := domain.LeadSortByScore
	ascending := false

	if sortBy != nil && sortBy.Field != "" {
		field = sortBy.Field
		ascending = sortBy.Ascending
	}

	sort.SliceStable(leads, func(i, j int) bool {
		a, b := leads[i], leads[j]
		if !ascending {
			a, b = b, a
		}

		switch field {
		case domain.LeadSortByPageViews:
			return a.PageViews < b.PageViews
		case domain.LeadSortByLastActive:
			return a.LastActive.Before(b.LastActive)
		case domain.LeadSortByCreatedAt:
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.Score < b.Score
		}
	})
}
