package tracking

import (
	"fmt"
	"time"

	"github.com/vfg2006/marketmate-api/infrastructure/repository"
	"github.com/vfg2006/marketmate-api/internal/domain"
	"github.com/vfg2006/marketmate-api/pkg/log"
)

// Pesos do score de engajamento: contador saturado, não um modelo ponderado
const (
	EngagementPointsPerAction = 5
	MaxEngagementScore        = 100
)

// PageViewResult é o resultado do registro de uma visualização de página
type PageViewResult struct {
	Accepted  bool   `json:"accepted"`
	IsNewLead bool   `json:"isNewLead"`
	EventID   string `json:"eventId"`
	VisitorID string `json:"visitorId"`
}

// ActionResult é o resultado do registro de uma interação
type ActionResult struct {
	Accepted        bool   `json:"accepted"`
	EngagementScore int    `json:"engagementScore"`
	ActionID        string `json:"actionId"`
	VisitorID       string `json:"visitorId"`
}

// Tracker registra eventos de visitantes e resolve a identidade anônima
type Tracker interface {
	// GetOrCreateVisitorID devolve o id existente inalterado ou gera um novo
	GetOrCreateVisitorID(existing string) (string, bool)

	// RecordPageView adiciona uma visualização de página ao log de eventos
	RecordPageView(event *domain.VisitorEvent) (*PageViewResult, error)

	// RecordAction adiciona uma interação ao log de eventos
	RecordAction(event *domain.ActionEvent) (*ActionResult, error)
}

type Service struct {
	store       repository.EventStore
	visitorRepo repository.VisitorRepository
	now         func() time.Time
}

func NewService(store repository.EventStore, visitorRepo repository.VisitorRepository) Tracker {
	return &Service{
		store:       store,
		visitorRepo: visitorRepo,
		now:         time.Now,
	}
}

// GetOrCreateVisitorID mantém a identidade idempotente: um id já conhecido é
// devolvido sem alteração. A persistência do primeiro avistamento é melhor
// esforço; se o repositório falhar seguimos com identidade de sessão.
func (s *Service) GetOrCreateVisitorID(existing string) (string, bool) {
	if existing != "" {
		return existing, false
	}

	visitorID := domain.NewVisitorID()

	if s.visitorRepo != nil {
		err := s.visitorRepo.Save(&domain.Visitor{
			ID:          visitorID,
			FirstSeenAt: s.now(),
		})
		if err != nil {
			log.L.WithError(err).WithField("visitor_id", visitorID).
				Warn("Armazenamento de visitante indisponível, usando identidade de sessão")
		}
	}

	return visitorID, true
}

// RecordPageView valida e adiciona o evento ao log. IsNewLead é verdadeiro
// somente na primeira visualização já registrada para o visitante.
func (s *Service) RecordPageView(event *domain.VisitorEvent) (*PageViewResult, error) {
	missing := make([]string, 0, 2)
	if event.VisitorID == "" {
		missing = append(missing, "visitorId")
	}
	if event.Page == "" {
		missing = append(missing, "page")
	}
	if len(missing) > 0 {
		return nil, NewMissingFieldError(missing...)
	}

	applyAttributionDefaults(event)

	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}

	if err := s.store.AppendPageView(event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAppendEvent, err)
	}

	views, err := s.store.PageViewsByVisitor(event.VisitorID)
	if err != nil {
		return nil, err
	}

	return &PageViewResult{
		Accepted:  true,
		IsNewLead: len(views) == 1,
		EventID:   fmt.Sprintf("lead_%d", s.now().UnixMilli()),
		VisitorID: event.VisitorID,
	}, nil
}

// RecordAction valida e adiciona a interação ao log, recalculando o score de
// engajamento a cada chamada a partir do total de interações do visitante.
func (s *Service) RecordAction(event *domain.ActionEvent) (*ActionResult, error) {
	missing := make([]string, 0, 2)
	if event.VisitorID == "" {
		missing = append(missing, "visitorId")
	}
	if event.Action == "" {
		missing = append(missing, "action")
	}
	if len(missing) > 0 {
		return nil, NewMissingFieldError(missing...)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}

	if err := s.store.AppendAction(event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAppendEvent, err)
	}

	actions, err := s.store.ActionsByVisitor(event.VisitorID)
	if err != nil {
		return nil, err
	}

	engagement := len(actions) * EngagementPointsPerAction
	if engagement > MaxEngagementScore {
		engagement = MaxEngagementScore
	}

	return &ActionResult{
		Accepted:        true,
		EngagementScore: engagement,
		ActionID:        fmt.Sprintf("action_%d", s.now().UnixMilli()),
		VisitorID:       event.VisitorID,
	}, nil
}

// applyAttributionDefaults preenche a atribuição quando os parâmetros UTM não
// vieram na requisição
func applyAttributionDefaults(event *domain.VisitorEvent) {
	if event.Source == "" {
		event.Source = domain.DefaultSource
	}
	if event.Medium == "" {
		event.Medium = domain.DefaultMedium
	}
	if event.Campaign == "" {
		event.Campaign = domain.DefaultCampaign
	}
	if event.Referrer == "" {
		event.Referrer = domain.DefaultReferrer
	}
}
