package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ppc-console/internal/core/domain"
	"ppc-console/internal/core/port"
	"ppc-console/internal/metrics"
)

// KeywordService implements port.KeywordUseCase. It is the densest part of
// the hierarchy consistency layer: a keyword always belongs to a campaign
// and may additionally attach to one of that campaign's ad groups, never to
// a group under a different campaign.
type KeywordService struct {
	keywords  port.KeywordRepository
	adGroups  port.AdGroupRepository
	campaigns port.CampaignRepository
}

// NewKeywordService creates a keyword service over the given repositories.
func NewKeywordService(keywords port.KeywordRepository, adGroups port.AdGroupRepository, campaigns port.CampaignRepository) *KeywordService {
	return &KeywordService{keywords: keywords, adGroups: adGroups, campaigns: campaigns}
}

// Create validates and persists a new keyword. The order of checks follows
// the consistency flow: field validation first, then campaign existence,
// then ad group existence and ownership when an ad group is referenced.
// Nothing is written unless every check passes.
func (s *KeywordService) Create(ctx context.Context, caller domain.Caller, campaignID uuid.UUID, req port.CreateKeywordReq) (*domain.Keyword, error) {
	if err := domain.ValidateBid(req.Bid, req.IsNegative); err != nil {
		return nil, err
	}
	if err := domain.ValidateKeywordText(req.Text); err != nil {
		return nil, err
	}
	if !req.MatchType.Valid() {
		return nil, domain.Validationf("match type must be BROAD, PHRASE or EXACT")
	}
	if err := s.checkCampaign(ctx, caller, campaignID); err != nil {
		return nil, err
	}
	if req.AdGroupID != nil {
		g, err := s.adGroups.FindByID(ctx, *req.AdGroupID)
		if err != nil {
			return nil, err
		}
		if g == nil {
			return nil, &domain.NotFoundError{Entity: "ad group", ID: req.AdGroupID.String()}
		}
		if err = domain.ValidateAdGroupOwnership(g, campaignID); err != nil {
			return nil, err
		}
	}
	now := time.Now().UTC()
	k := &domain.Keyword{
		ID:         uuid.New(),
		CampaignID: campaignID,
		AdGroupID:  req.AdGroupID,
		Text:       strings.TrimSpace(req.Text),
		MatchType:  req.MatchType,
		Bid:        req.Bid,
		IsNegative: req.IsNegative,
		Status:     domain.StatusActive,
		Metrics: domain.Counters{
			Spend: decimal.Zero,
			Sales: decimal.Zero,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.keywords.Insert(ctx, k); err != nil {
		return nil, err
	}
	metrics.Mutation("keyword", "create")
	return k, nil
}

// BulkCreate applies Create to each entry independently. A failed entry
// does not roll back earlier creations; the result reports both the
// created records and the per-index failures, and callers must inspect it.
func (s *KeywordService) BulkCreate(ctx context.Context, caller domain.Caller, campaignID uuid.UUID, reqs []port.CreateKeywordReq) (*port.BulkCreateResult, error) {
	res := &port.BulkCreateResult{}
	for i, req := range reqs {
		k, err := s.Create(ctx, caller, campaignID, req)
		if err != nil {
			res.Failed = append(res.Failed, port.BulkFailure{Index: i, Reason: err.Error()})
			continue
		}
		res.Created = append(res.Created, *k)
	}
	return res, nil
}

// Get returns a keyword by id within the campaign.
func (s *KeywordService) Get(ctx context.Context, caller domain.Caller, id, campaignID uuid.UUID) (*domain.Keyword, error) {
	return s.fetch(ctx, caller, id, campaignID)
}

// List returns the campaign's keywords, newest first, narrowed by the
// optional status, ad group and negative filters.
func (s *KeywordService) List(ctx context.Context, caller domain.Caller, campaignID uuid.UUID, f port.KeywordFilter) ([]domain.Keyword, error) {
	if err := s.checkCampaign(ctx, caller, campaignID); err != nil {
		return nil, err
	}
	return s.keywords.List(ctx, campaignID, f)
}

// Update applies a partial update. The bid is validated against the
// resulting negative flag: the patch value when present, the stored value
// otherwise. Absent fields are left untouched, not reset.
func (s *KeywordService) Update(ctx context.Context, caller domain.Caller, id, campaignID uuid.UUID, patch port.KeywordPatch) (*domain.Keyword, error) {
	existing, err := s.fetch(ctx, caller, id, campaignID)
	if err != nil {
		return nil, err
	}
	isNegative := existing.IsNegative
	if patch.IsNegative != nil {
		isNegative = *patch.IsNegative
	}
	if patch.Bid != nil {
		if err = domain.ValidateBid(*patch.Bid, isNegative); err != nil {
			return nil, err
		}
	}
	if patch.Text != nil {
		if err = domain.ValidateKeywordText(*patch.Text); err != nil {
			return nil, err
		}
		trimmed := strings.TrimSpace(*patch.Text)
		patch.Text = &trimmed
	}
	if patch.MatchType != nil && !patch.MatchType.Valid() {
		return nil, domain.Validationf("match type must be BROAD, PHRASE or EXACT")
	}
	if patch.Status != nil {
		if err = validateStatusPatch(existing.Status, *patch.Status); err != nil {
			return nil, err
		}
	}
	updated, err := s.keywords.UpdateFields(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &domain.NotFoundError{Entity: "keyword", ID: id.String()}
	}
	metrics.Mutation("keyword", "update")
	return updated, nil
}

// Archive soft-deletes a keyword. The lookup still fails when the
// id/campaign pair never existed; archiving an already archived keyword
// succeeds silently.
func (s *KeywordService) Archive(ctx context.Context, caller domain.Caller, id, campaignID uuid.UUID) (*domain.Keyword, error) {
	if _, err := s.fetch(ctx, caller, id, campaignID); err != nil {
		return nil, err
	}
	archived := domain.StatusArchived
	updated, err := s.keywords.UpdateFields(ctx, id, port.KeywordPatch{Status: &archived})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &domain.NotFoundError{Entity: "keyword", ID: id.String()}
	}
	metrics.Mutation("keyword", "archive")
	return updated, nil
}

// Stats returns the keyword's stored counters together with the projected
// ratios.
func (s *KeywordService) Stats(ctx context.Context, caller domain.Caller, id, campaignID uuid.UUID) (*port.StatsResp, error) {
	k, err := s.fetch(ctx, caller, id, campaignID)
	if err != nil {
		return nil, err
	}
	return &port.StatsResp{Metrics: k.Metrics, Ratios: domain.ProjectRatios(k.Metrics)}, nil
}

func (s *KeywordService) fetch(ctx context.Context, caller domain.Caller, id, campaignID uuid.UUID) (*domain.Keyword, error) {
	if err := s.checkCampaign(ctx, caller, campaignID); err != nil {
		return nil, err
	}
	k, err := s.keywords.FindByID(ctx, id, campaignID)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, &domain.NotFoundError{Entity: "keyword", ID: id.String()}
	}
	return k, nil
}

func (s *KeywordService) checkCampaign(ctx context.Context, caller domain.Caller, campaignID uuid.UUID) error {
	c, err := s.campaigns.FindByID(ctx, campaignID, caller.UserID)
	if err != nil {
		return err
	}
	if c == nil {
		return &domain.NotFoundError{Entity: "campaign", ID: campaignID.String()}
	}
	return nil
}
