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

const keywordColumns = `id, campaign_id, ad_group_id, keyword_text, match_type, bid, is_negative,
	status, impressions, clicks, conversions, spend, sales, created_at, updated_at`

// KeywordRepository implements port.KeywordRepository using pgxpool.
type KeywordRepository struct {
	pool *pgxpool.Pool
}

// NewKeywordRepository returns a new repository instance.
func NewKeywordRepository(pool *pgxpool.Pool) *KeywordRepository {
	return &KeywordRepository{pool: pool}
}

// Insert stores a new keyword row as given.
func (r *KeywordRepository) Insert(ctx context.Context, k *domain.Keyword) error {
	adGroupID := uuid.NullUUID{}
	if k.AdGroupID != nil {
		adGroupID = uuid.NullUUID{UUID: *k.AdGroupID, Valid: true}
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO keywords
		(id, campaign_id, ad_group_id, keyword_text, match_type, bid, is_negative,
		 status, impressions, clicks, conversions, spend, sales, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		k.ID, k.CampaignID, adGroupID, k.Text, k.MatchType, k.Bid, k.IsNegative,
		k.Status, k.Metrics.Impressions, k.Metrics.Clicks, k.Metrics.Conversions,
		k.Metrics.Spend, k.Metrics.Sales, k.CreatedAt, k.UpdatedAt)
	return err
}

// FindByID returns a keyword scoped by campaign, or nil when no such row
// exists under that campaign.
func (r *KeywordRepository) FindByID(ctx context.Context, id, campaignID uuid.UUID) (*domain.Keyword, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+keywordColumns+` FROM keywords WHERE id = $1 AND campaign_id = $2`, id, campaignID)
	k, err := scanKeyword(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return k, nil
}

// List returns the campaign's keywords ordered by creation time, newest
// first, narrowed by the optional filters.
func (r *KeywordRepository) List(ctx context.Context, campaignID uuid.UUID, f port.KeywordFilter) ([]domain.Keyword, error) {
	query := `SELECT ` + keywordColumns + ` FROM keywords WHERE campaign_id = $1`
	args := []any{campaignID}
	if f.Status != nil {
		args = append(args, *f.Status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if f.AdGroupID != nil {
		args = append(args, *f.AdGroupID)
		query += fmt.Sprintf(` AND ad_group_id = $%d`, len(args))
	}
	if f.IsNegative != nil {
		args = append(args, *f.IsNegative)
		query += fmt.Sprintf(` AND is_negative = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Keyword, error) {
		k, err := scanKeyword(row)
		if err != nil {
			return domain.Keyword{}, err
		}
		return *k, nil
	})
}

// UpdateFields applies the non-nil patch members and refreshes updated_at.
// AdGroupID is deliberately not patchable: parent references are write-once.
func (r *KeywordRepository) UpdateFields(ctx context.Context, id uuid.UUID, patch port.KeywordPatch) (*domain.Keyword, error) {
	var sets setList
	if patch.Text != nil {
		sets.add("keyword_text", *patch.Text)
	}
	if patch.MatchType != nil {
		sets.add("match_type", *patch.MatchType)
	}
	if patch.Bid != nil {
		sets.add("bid", *patch.Bid)
	}
	if patch.IsNegative != nil {
		sets.add("is_negative", *patch.IsNegative)
	}
	if patch.Status != nil {
		sets.add("status", *patch.Status)
	}
	query := fmt.Sprintf(`UPDATE keywords SET %s WHERE id = $%d RETURNING `+keywordColumns,
		sets.clause(), sets.next())
	row := r.pool.QueryRow(ctx, query, append(sets.args, id)...)
	k, err := scanKeyword(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return k, nil
}

func scanKeyword(row pgx.Row) (*domain.Keyword, error) {
	var (
		k         domain.Keyword
		adGroupID uuid.NullUUID
	)
	err := row.Scan(
		&k.ID,
		&k.CampaignID,
		&adGroupID,
		&k.Text,
		&k.MatchType,
		&k.Bid,
		&k.IsNegative,
		&k.Status,
		&k.Metrics.Impressions,
		&k.Metrics.Clicks,
		&k.Metrics.Conversions,
		&k.Metrics.Spend,
		&k.Metrics.Sales,
		&k.CreatedAt,
		&k.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if adGroupID.Valid {
		k.AdGroupID = &adGroupID.UUID
	}
	return &k, nil
}
