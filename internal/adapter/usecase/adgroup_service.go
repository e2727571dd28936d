package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"ppc-console/internal/core/domain"
	"ppc-console/internal/core/port"
	"ppc-console/internal/metrics"
)

// AdGroupService implements port.AdGroupUseCase. An ad group's only parent
// is its campaign; the campaign id is set once at creation and every later
// operation is scoped by it.
type AdGroupService struct {
	adGroups  port.AdGroupRepository
	campaigns port.CampaignRepository
}

// NewAdGroupService creates an ad group service over the given repositories.
func NewAdGroupService(adGroups port.AdGroupRepository, campaigns port.CampaignRepository) *AdGroupService {
	return &AdGroupService{adGroups: adGroups, campaigns: campaigns}
}

// Create validates and persists a new ad group under the campaign. The
// parent campaign must exist in the caller's scope and must not already be
// archived.
func (s *AdGroupService) Create(ctx context.Context, caller domain.Caller, campaignID uuid.UUID, req port.CreateAdGroupReq) (*domain.AdGroup, error) {
	if err := domain.ValidateName(req.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateDefaultBid(req.DefaultBid); err != nil {
		return nil, err
	}
	status, err := statusOrActive(req.Status)
	if err != nil {
		return nil, err
	}
	campaign, err := s.campaigns.FindByID(ctx, campaignID, caller.UserID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, &domain.NotFoundError{Entity: "campaign", ID: campaignID.String()}
	}
	if campaign.Status == domain.StatusArchived {
		return nil, domain.Validationf("cannot create ad group under archived campaign %s", campaignID)
	}
	now := time.Now().UTC()
	g := &domain.AdGroup{
		ID:         uuid.New(),
		CampaignID: campaignID,
		Name:       strings.TrimSpace(req.Name),
		DefaultBid: req.DefaultBid,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err = s.adGroups.Insert(ctx, g); err != nil {
		return nil, err
	}
	metrics.Mutation("adgroup", "create")
	return g, nil
}

// Get returns an ad group by id within the campaign.
func (s *AdGroupService) Get(ctx context.Context, caller domain.Caller, id, campaignID uuid.UUID) (*domain.AdGroup, error) {
	return s.fetch(ctx, caller, id, campaignID)
}

// List returns the campaign's ad groups, newest first.
func (s *AdGroupService) List(ctx context.Context, caller domain.Caller, campaignID uuid.UUID, f port.ListFilter) ([]domain.AdGroup, error) {
	if err := s.checkCampaign(ctx, caller, campaignID); err != nil {
		return nil, err
	}
	return s.adGroups.List(ctx, campaignID, f)
}

// Update applies a partial update to an ad group. Absent patch fields are
// left untouched.
func (s *AdGroupService) Update(ctx context.Context, caller domain.Caller, id, campaignID uuid.UUID, patch port.AdGroupPatch) (*domain.AdGroup, error) {
	existing, err := s.fetch(ctx, caller, id, campaignID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if err = domain.ValidateName(*patch.Name); err != nil {
			return nil, err
		}
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
	}
	if patch.DefaultBid != nil {
		if err = domain.ValidateDefaultBid(*patch.DefaultBid); err != nil {
			return nil, err
		}
	}
	if patch.Status != nil {
		if err = validateStatusPatch(existing.Status, *patch.Status); err != nil {
			return nil, err
		}
	}
	updated, err := s.adGroups.UpdateFields(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &domain.NotFoundError{Entity: "ad group", ID: id.String()}
	}
	metrics.Mutation("adgroup", "update")
	return updated, nil
}

// Archive soft-deletes an ad group. All other fields are preserved and a
// repeat archive is a no-op success.
func (s *AdGroupService) Archive(ctx context.Context, caller domain.Caller, id, campaignID uuid.UUID) (*domain.AdGroup, error) {
	if _, err := s.fetch(ctx, caller, id, campaignID); err != nil {
		return nil, err
	}
	archived := domain.StatusArchived
	updated, err := s.adGroups.UpdateFields(ctx, id, port.AdGroupPatch{Status: &archived})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &domain.NotFoundError{Entity: "ad group", ID: id.String()}
	}
	metrics.Mutation("adgroup", "archive")
	return updated, nil
}

// fetch looks up an ad group scoped by campaign, after confirming the
// campaign itself is in the caller's scope. The campaign id acts as a
// tenant key: an ad group that exists under another campaign is not found.
func (s *AdGroupService) fetch(ctx context.Context, caller domain.Caller, id, campaignID uuid.UUID) (*domain.AdGroup, error) {
	if err := s.checkCampaign(ctx, caller, campaignID); err != nil {
		return nil, err
	}
	g, err := s.adGroups.FindByIDInCampaign(ctx, id, campaignID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, &domain.NotFoundError{Entity: "ad group", ID: id.String()}
	}
	return g, nil
}

func (s *AdGroupService) checkCampaign(ctx context.Context, caller domain.Caller, campaignID uuid.UUID) error {
	c, err := s.campaigns.FindByID(ctx, campaignID, caller.UserID)
	if err != nil {
		return err
	}
	if c == nil {
		return &domain.NotFoundError{Entity: "campaign", ID: campaignID.String()}
	}
	return nil
}
