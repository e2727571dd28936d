package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ppc-console/internal/core/domain"
	"ppc-console/internal/core/port"
)

const campaignColumns = `id, owner_id, name, budget, status,
	impressions, clicks, conversions, spend, sales, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Insert stores a new campaign row as given.
func (r *CampaignRepository) Insert(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns
		(id, owner_id, name, budget, status, impressions, clicks, conversions, spend, sales, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		c.ID, c.OwnerID, c.Name, c.Budget, c.Status,
		c.Metrics.Impressions, c.Metrics.Clicks, c.Metrics.Conversions,
		c.Metrics.Spend, c.Metrics.Sales, c.CreatedAt, c.UpdatedAt)
	return err
}

// FindByID returns a campaign scoped by owner, or nil when no such row
// exists in that scope.
func (r *CampaignRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 AND owner_id = $2`, id, ownerID)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns the owner's campaigns ordered by creation time, newest
// first. A status filter narrows the result; without one every lifecycle
// state is included.
func (r *CampaignRepository) List(ctx context.Context, ownerID uuid.UUID, f port.ListFilter) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE owner_id = $1`
	args := []any{ownerID}
	if f.Status != nil {
		query += ` AND status = $2`
		args = append(args, *f.Status)
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// UpdateFields applies the non-nil patch members and refreshes updated_at.
// It returns the row as stored after the write, or nil when the id is gone.
func (r *CampaignRepository) UpdateFields(ctx context.Context, id uuid.UUID, patch port.CampaignPatch) (*domain.Campaign, error) {
	var sets setList
	if patch.Name != nil {
		sets.add("name", *patch.Name)
	}
	if patch.Budget != nil {
		sets.add("budget", *patch.Budget)
	}
	if patch.Status != nil {
		sets.add("status", *patch.Status)
	}
	query := fmt.Sprintf(`UPDATE campaigns SET %s WHERE id = $%d RETURNING `+campaignColumns,
		sets.clause(), sets.next())
	row := r.pool.QueryRow(ctx, query, append(sets.args, id)...)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&c.Budget,
		&c.Status,
		&c.Metrics.Impressions,
		&c.Metrics.Clicks,
		&c.Metrics.Conversions,
		&c.Metrics.Spend,
		&c.Metrics.Sales,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
