package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketmate-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketmate-api/internal/domain"
)

const (
	businessProfilesTable = "business_profiles bp"
)

type BusinessProfileRepository interface {
	SaveOrUpdate(profile *domain.BusinessProfile) error
	GetByID(businessID string) (*domain.BusinessProfile, error)
}

type businessProfileRepository struct {
	conn *postgres.Connection
}

func NewBusinessProfileRepository(conn *postgres.Connection) BusinessProfileRepository {
	return &businessProfileRepository{
		conn: conn,
	}
}

func (r *businessProfileRepository) SaveOrUpdate(profile *domain.BusinessProfile) error {
	query := squirrel.StatementBuilder.
		Insert("business_profiles").
		Columns("id", "business_name", "industry", "location", "website", "services", "audience", "brand_style").
		Values(
			profile.ID,
			profile.BusinessName,
			profile.Industry,
			profile.Location,
			profile.Website,
			profile.Services,
			profile.Audience,
			profile.BrandStyle,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				business_name = EXCLUDED.business_name,
				industry = EXCLUDED.industry,
				location = EXCLUDED.location,
				website = EXCLUDED.website,
				services = EXCLUDED.services,
				audience = EXCLUDED.audience,
				brand_style = EXCLUDED.brand_style,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar perfil do negócio: %w", err)
	}

	return nil
}

func (r *businessProfileRepository) GetByID(businessID string) (*domain.BusinessProfile, error) {
	query, args, err := squirrel.
		Select("bp.id, bp.business_name, bp.industry, bp.location, bp.website, bp.services, bp.audience, bp.brand_style, bp.created_at, bp.updated_at").
		From(businessProfilesTable).
		Where(squirrel.Eq{"bp.id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	profile := &domain.BusinessProfile{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&profile.ID,
		&profile.BusinessName,
		&profile.Industry,
		&profile.Location,
		&profile.Website,
		&profile.Services,
		&profile.Audience,
		&profile.BrandStyle,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		// Ausência de perfil é um estado válido, não um erro
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear perfil do negócio: %w", err)
	}

	return profile, nil
}
