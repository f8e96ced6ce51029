package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketmate-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketmate-api/internal/domain"
)

const (
	adCampaignsTable = "ad_campaigns ac"
)

type CampaignRepository interface {
	SaveBatch(campaigns []*domain.AdCampaign) error
	ListByBusiness(businessID string) ([]*domain.AdCampaign, error)
	ListByStatus(status string) ([]*domain.AdCampaign, error)
	UpdateStatus(campaignID string, status string) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) SaveBatch(campaigns []*domain.AdCampaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("ad_campaigns").
		Columns(
			"id",
			"business_id",
			"platform",
			"budget",
			"total_budget",
			"duration",
			"status",
			"reach",
			"clicks",
			"conversions",
			"objective",
			"targeting",
			"created_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, campaign := range campaigns {
		query = query.Values(
			campaign.ID,
			campaign.BusinessID,
			campaign.Platform,
			campaign.Budget,
			campaign.TotalBudget,
			campaign.Duration,
			campaign.Status,
			campaign.Reach,
			campaign.Clicks,
			campaign.Conversions,
			campaign.Objective,
			campaign.Targeting,
			campaign.CreatedAt,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar campanhas: %w", err)
	}

	return nil
}

func (r *campaignRepository) ListByBusiness(businessID string) ([]*domain.AdCampaign, error) {
	return r.queryCampaigns(squirrel.Eq{"ac.business_id": businessID})
}

func (r *campaignRepository) ListByStatus(status string) ([]*domain.AdCampaign, error) {
	return r.queryCampaigns(squirrel.Eq{"ac.status": status})
}

func (r *campaignRepository) UpdateStatus(campaignID string, status string) error {
	query, args, err := squirrel.
		Update("ad_campaigns").
		Set("status", status).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status da campanha: %w", err)
	}

	return nil
}

func (r *campaignRepository) queryCampaigns(where squirrel.Eq) ([]*domain.AdCampaign, error) {
	query, args, err := squirrel.
		Select("ac.id, ac.business_id, ac.platform, ac.budget, ac.total_budget, ac.duration, ac.status, ac.reach, ac.clicks, ac.conversions, ac.objective, ac.targeting, ac.created_at").
		From(adCampaignsTable).
		Where(where).
		OrderBy("ac.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.AdCampaign{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.AdCampaign, 0)
	for rows.Next() {
		campaign := &domain.AdCampaign{}
		err := rows.Scan(
			&campaign.ID,
			&campaign.BusinessID,
			&campaign.Platform,
			&campaign.Budget,
			&campaign.TotalBudget,
			&campaign.Duration,
			&campaign.Status,
			&campaign.Reach,
			&campaign.Clicks,
			&campaign.Conversions,
			&campaign.Objective,
			&campaign.Targeting,
			&campaign.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}
