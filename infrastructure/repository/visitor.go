package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketmate-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketmate-api/internal/domain"
)

// VisitorRepository guarda o primeiro avistamento de cada visitante.
// Uma falha aqui degrada para identidade de sessão, nunca derruba a requisição.
type VisitorRepository interface {
	Save(visitor *domain.Visitor) error
}

type visitorRepository struct {
	conn *postgres.Connection
}

func NewVisitorRepository(conn *postgres.Connection) VisitorRepository {
	return &visitorRepository{
		conn: conn,
	}
}

func (r *visitorRepository) Save(visitor *domain.Visitor) error {
	// O mesmo visitante pode chegar em requisições concorrentes; o conflito é ignorado
	query, args, err := squirrel.
		Insert("visitors").
		Columns("id", "first_seen_at").
		Values(visitor.ID, visitor.FirstSeenAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar visitante: %w", err)
	}

	return nil
}
