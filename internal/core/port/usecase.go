package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ppc-console/internal/core/domain"
)

// CreateCampaignReq carries the input for a campaign creation. Status is
// optional and defaults to ACTIVE.
type CreateCampaignReq struct {
	Name   string
	Budget decimal.Decimal
	Status *domain.Status
}

// CreateAdGroupReq carries the input for an ad group creation under a
// campaign.
type CreateAdGroupReq struct {
	Name       string
	DefaultBid decimal.Decimal
	Status     *domain.Status
}

// CreateKeywordReq carries the input for a keyword creation under a
// campaign, optionally attached to one of its ad groups.
type CreateKeywordReq struct {
	AdGroupID  *uuid.UUID
	Text       string
	MatchType  domain.MatchType
	Bid        decimal.Decimal
	IsNegative bool
}

// BulkFailure records why one entry of a bulk keyword create was rejected.
type BulkFailure struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// BulkCreateResult is the partial-success outcome of a bulk keyword create.
// Entries are created independently: a failure never rolls back earlier
// creations, so callers must inspect both slices.
type BulkCreateResult struct {
	Created []domain.Keyword
	Failed  []BulkFailure
}

// StatsResp pairs raw counters with their projected ratios.
type StatsResp struct {
	Metrics domain.Counters
	Ratios  domain.Ratios
}

// CampaignUseCase is the inbound port for campaign operations. Every call
// takes the caller explicitly; campaigns are scoped to their owner.
type CampaignUseCase interface {
	Create(ctx context.Context, caller domain.Caller, req CreateCampaignReq) (*domain.Campaign, error)
	Get(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Campaign, error)
	List(ctx context.Context, caller domain.Caller, f ListFilter) ([]domain.Campaign, error)
	Update(ctx context.Context, caller domain.Caller, id uuid.UUID, patch CampaignPatch) (*domain.Campaign, error)
	Archive(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Campaign, error)
	Stats(ctx context.Context, caller domain.Caller, id uuid.UUID) (*StatsResp, error)
}

// AdGroupUseCase is the inbound port for ad group operations, all scoped by
// the parent campaign.
type AdGroupUseCase interface {
	Create(ctx context.Context, caller domain.Caller, campaignID uuid.UUID, req CreateAdGroupReq) (*domain.AdGroup, error)
	Get(ctx context.Context, caller domain.Caller, id, campaignID uuid.UUID) (*domain.AdGroup, error)
	List(ctx context.Context, caller domain.Caller, campaignID uuid.UUID, f ListFilter) ([]domain.AdGroup, error)
	Update(ctx context.Context, caller domain.Caller, id, campaignID uuid.UUID, patch AdGroupPatch) (*domain.AdGroup, error)
	Archive(ctx context.Context, caller domain.Caller, id, campaignID uuid.UUID) (*domain.AdGroup, error)
}

// KeywordUseCase is the inbound port for keyword operations, all scoped by
// the parent campaign.
type KeywordUseCase interface {
	Create(ctx context.Context, caller domain.Caller, campaignID uuid.UUID, req CreateKeywordReq) (*domain.Keyword, error)
	BulkCreate(ctx context.Context, caller domain.Caller, campaignID uuid.UUID, reqs []CreateKeywordReq) (*BulkCreateResult, error)
	Get(ctx context.Context, caller domain.Caller, id, campaignID uuid.UUID) (*domain.Keyword, error)
	List(ctx context.Context, caller domain.Caller, campaignID uuid.UUID, f KeywordFilter) ([]domain.Keyword, error)
	Update(ctx context.Context, caller domain.Caller, id, campaignID uuid.UUID, patch KeywordPatch) (*domain.Keyword, error)
	Archive(ctx context.Context, caller domain.Caller, id, campaignID uuid.UUID) (*domain.Keyword, error)
	Stats(ctx context.Context, caller domain.Caller, id, campaignID uuid.UUID) (*StatsResp, error)
}
