// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketmate-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketmate-api/internal/domain"
)

const (
	pageViewsTable = "page_view_events pv"
	actionsTable   = "action_events ae"
)

// EventStore é o log de eventos append-only dos visitantes. Eventos nunca são
// alterados ou removidos; a ordenação por visitante é dada pelo campo timestamp.
type EventStore interface {
	AppendPageView(event *domain.VisitorEvent) error
	AppendAction(event *domain.ActionEvent) error
	PageViewsByVisitor(visitorID string) ([]*domain.VisitorEvent, error)
	ActionsByVisitor(visitorID string) ([]*domain.ActionEvent, error)
	PageViewsByBusiness(businessID string) ([]*domain.VisitorEvent, error)
	ActionsByBusiness(businessID string) ([]*domain.ActionEvent, error)
}

type eventStore struct {
	conn *postgres.Connection
}

func NewEventStore(conn *postgres.Connection) EventStore {
	return &eventStore{
		conn: conn,
	}
}

func (r *eventStore) AppendPageView(event *domain.VisitorEvent) error {
	query, args, err := squirrel.
		Insert("page_view_events").
		Columns("visitor_id", "business_id", "page", "timestamp", "source", "medium", "campaign", "referrer", "user_agent").
		Values(
			event.VisitorID,
			event.BusinessID,
			event.Page,
			event.Timestamp,
			event.Source,
			event.Medium,
			event.Campaign,
			event.Referrer,
			event.UserAgent,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir page view: %w", err)
	}

	return nil
}

func (r *eventStore) AppendAction(event *domain.ActionEvent) error {
	query, args, err := squirrel.
		Insert("action_events").
		Columns("visitor_id", "business_id", "page", "element", "element_text", "timestamp", "action").
		Values(
			event.VisitorID,
			event.BusinessID,
			event.Page,
			event.Element,
			event.ElementText,
			event.Timestamp,
			event.Action,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir interação: %w", err)
	}

	return nil
}

func (r *eventStore) PageViewsByVisitor(visitorID string) ([]*domain.VisitorEvent, error) {
	return r.queryPageViews(squirrel.Eq{"pv.visitor_id": visitorID})
}

func (r *eventStore) PageViewsByBusiness(businessID string) ([]*domain.VisitorEvent, error) {
	return r.queryPageViews(squirrel.Eq{"pv.business_id": businessID})
}

func (r *eventStore) ActionsByVisitor(visitorID string) ([]*domain.ActionEvent, error) {
	return r.queryActions(squirrel.Eq{"ae.visitor_id": visitorID})
}

func (r *eventStore) ActionsByBusiness(businessID string) ([]*domain.ActionEvent, error) {
	return r.queryActions(squirrel.Eq{"ae.business_id": businessID})
}

func (r *eventStore) queryPageViews(where squirrel.Eq) ([]*domain.VisitorEvent, error) {
	query, args, err := squirrel.
		Select("pv.visitor_id, pv.business_id, pv.page, pv.timestamp, pv.source, pv.medium, pv.campaign, pv.referrer, pv.user_agent").
		From(pageViewsTable).
		Where(where).
		OrderBy("pv.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.VisitorEvent{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.VisitorEvent, 0)
	for rows.Next() {
		event := &domain.VisitorEvent{}
		err := rows.Scan(
			&event.VisitorID,
			&event.BusinessID,
			&event.Page,
			&event.Timestamp,
			&event.Source,
			&event.Medium,
			&event.Campaign,
			&event.Referrer,
			&event.UserAgent,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear page view: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}

func (r *eventStore) queryActions(where squirrel.Eq) ([]*domain.ActionEvent, error) {
	query, args, err := squirrel.
		Select("ae.visitor_id, ae.business_id, ae.page, ae.element, ae.element_text, ae.timestamp, ae.action").
		From(actionsTable).
		Where(where).
		OrderBy("ae.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.ActionEvent{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.ActionEvent, 0)
	for rows.Next() {
		event := &domain.ActionEvent{}
		err := rows.Scan(
			&event.VisitorID,
			&event.BusinessID,
			&event.Page,
			&event.Element,
			&event.ElementText,
			&event.Timestamp,
			&event.Action,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear interação: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}
