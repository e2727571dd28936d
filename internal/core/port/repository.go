package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ppc-console/internal/core/domain"
)

// ListFilter narrows list queries. A nil Status returns every record
// regardless of lifecycle state, archived rows included.
type ListFilter struct {
	Status *domain.Status
}

// KeywordFilter narrows keyword list queries within a campaign.
type KeywordFilter struct {
	Status     *domain.Status
	AdGroupID  *uuid.UUID
	IsNegative *bool
}

// CampaignPatch carries the fields of a partial campaign update. Nil
// members are left untouched by the write.
type CampaignPatch struct {
	Name   *string
	Budget *decimal.Decimal
	Status *domain.Status
}

// AdGroupPatch carries the fields of a partial ad group update.
type AdGroupPatch struct {
	Name       *string
	DefaultBid *decimal.Decimal
	Status     *domain.Status
}

// KeywordPatch carries the fields of a partial keyword update.
type KeywordPatch struct {
	Text       *string
	MatchType  *domain.MatchType
	Bid        *decimal.Decimal
	IsNegative *bool
	Status     *domain.Status
}

// CampaignRepository is the outbound port for campaign persistence. Lookups
// are scoped by owner; a record outside the owner's scope reads as absent
// (nil, nil). Lists come back ordered by creation time, newest first.
type CampaignRepository interface {
	Insert(ctx context.Context, c *domain.Campaign) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*domain.Campaign, error)
	List(ctx context.Context, ownerID uuid.UUID, f ListFilter) ([]domain.Campaign, error)
	UpdateFields(ctx context.Context, id uuid.UUID, patch CampaignPatch) (*domain.Campaign, error)
}

// AdGroupRepository is the outbound port for ad group persistence.
// FindByID is unscoped so the keyword flow can fetch a group and validate
// ownership itself; FindByIDInCampaign is the scoped lookup the ad group's
// own update and archive paths use.
type AdGroupRepository interface {
	Insert(ctx context.Context, g *domain.AdGroup) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.AdGroup, error)
	FindByIDInCampaign(ctx context.Context, id, campaignID uuid.UUID) (*domain.AdGroup, error)
	List(ctx context.Context, campaignID uuid.UUID, f ListFilter) ([]domain.AdGroup, error)
	UpdateFields(ctx context.Context, id uuid.UUID, patch AdGroupPatch) (*domain.AdGroup, error)
}

// KeywordRepository is the outbound port for keyword persistence. All
// lookups are scoped by campaign: an id that exists under a different
// campaign reads as absent.
type KeywordRepository interface {
	Insert(ctx context.Context, k *domain.Keyword) error
	FindByID(ctx context.Context, id, campaignID uuid.UUID) (*domain.Keyword, error)
	List(ctx context.Context, campaignID uuid.UUID, f KeywordFilter) ([]domain.Keyword, error)
	UpdateFields(ctx context.Context, id uuid.UUID, patch KeywordPatch) (*domain.Keyword, error)
}
