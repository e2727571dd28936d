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

const adGroupColumns = `id, campaign_id, name, default_bid, status, created_at, updated_at`

// AdGroupRepository implements port.AdGroupRepository using pgxpool.
type AdGroupRepository struct {
	pool *pgxpool.Pool
}

// NewAdGroupRepository returns a new repository instance.
func NewAdGroupRepository(pool *pgxpool.Pool) *AdGroupRepository {
	return &AdGroupRepository{pool: pool}
}

// Insert stores a new ad group row as given.
func (r *AdGroupRepository) Insert(ctx context.Context, g *domain.AdGroup) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO ad_groups
		(id, campaign_id, name, default_bid, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		g.ID, g.CampaignID, g.Name, g.DefaultBid, g.Status, g.CreatedAt, g.UpdatedAt)
	return err
}

// FindByID returns an ad group by id regardless of campaign, or nil when
// absent. The keyword creation flow uses this to validate ownership itself.
func (r *AdGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.AdGroup, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+adGroupColumns+` FROM ad_groups WHERE id = $1`, id)
	return collectAdGroup(row)
}

// FindByIDInCampaign returns an ad group scoped by campaign, or nil when no
// such row exists under that campaign.
func (r *AdGroupRepository) FindByIDInCampaign(ctx context.Context, id, campaignID uuid.UUID) (*domain.AdGroup, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+adGroupColumns+` FROM ad_groups WHERE id = $1 AND campaign_id = $2`, id, campaignID)
	return collectAdGroup(row)
}

// List returns the campaign's ad groups ordered by creation time, newest
// first.
func (r *AdGroupRepository) List(ctx context.Context, campaignID uuid.UUID, f port.ListFilter) ([]domain.AdGroup, error) {
	query := `SELECT ` + adGroupColumns + ` FROM ad_groups WHERE campaign_id = $1`
	args := []any{campaignID}
	if f.Status != nil {
		query += ` AND status = $2`
		args = append(args, *f.Status)
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdGroup, error) {
		var g domain.AdGroup
		err := scanAdGroup(row, &g)
		return g, err
	})
}

// UpdateFields applies the non-nil patch members and refreshes updated_at.
func (r *AdGroupRepository) UpdateFields(ctx context.Context, id uuid.UUID, patch port.AdGroupPatch) (*domain.AdGroup, error) {
	var sets setList
	if patch.Name != nil {
		sets.add("name", *patch.Name)
	}
	if patch.DefaultBid != nil {
		sets.add("default_bid", *patch.DefaultBid)
	}
	if patch.Status != nil {
		sets.add("status", *patch.Status)
	}
	query := fmt.Sprintf(`UPDATE ad_groups SET %s WHERE id = $%d RETURNING `+adGroupColumns,
		sets.clause(), sets.next())
	row := r.pool.QueryRow(ctx, query, append(sets.args, id)...)
	return collectAdGroup(row)
}

func collectAdGroup(row pgx.Row) (*domain.AdGroup, error) {
	var g domain.AdGroup
	err := scanAdGroup(row, &g)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func scanAdGroup(row pgx.Row, g *domain.AdGroup) error {
	return row.Scan(
		&g.ID,
		&g.CampaignID,
		&g.Name,
		&g.DefaultBid,
		&g.Status,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
}
