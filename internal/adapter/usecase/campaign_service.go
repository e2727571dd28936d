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

// CampaignService implements port.CampaignUseCase. Campaigns are scoped to
// their owner: a lookup under the wrong caller reads as not found, never as
// forbidden.
type CampaignService struct {
	campaigns port.CampaignRepository
}

// NewCampaignService creates a campaign service over the given repository.
func NewCampaignService(campaigns port.CampaignRepository) *CampaignService {
	return &CampaignService{campaigns: campaigns}
}

// Create validates and persists a new campaign owned by the caller. The
// campaign starts with zeroed metric counters.
func (s *CampaignService) Create(ctx context.Context, caller domain.Caller, req port.CreateCampaignReq) (*domain.Campaign, error) {
	if err := domain.ValidateName(req.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateBudget(req.Budget); err != nil {
		return nil, err
	}
	status, err := statusOrActive(req.Status)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	c := &domain.Campaign{
		ID:      uuid.New(),
		OwnerID: caller.UserID,
		Name:    strings.TrimSpace(req.Name),
		Budget:  req.Budget,
		Status:  status,
		Metrics: domain.Counters{
			Spend: decimal.Zero,
			Sales: decimal.Zero,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.campaigns.Insert(ctx, c); err != nil {
		return nil, err
	}
	metrics.Mutation("campaign", "create")
	return c, nil
}

// Get returns a campaign by id within the caller's scope.
func (s *CampaignService) Get(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Campaign, error) {
	return s.fetch(ctx, caller, id)
}

// List returns the caller's campaigns, newest first. Without a status
// filter all lifecycle states are returned, archived included.
func (s *CampaignService) List(ctx context.Context, caller domain.Caller, f port.ListFilter) ([]domain.Campaign, error) {
	return s.campaigns.List(ctx, caller.UserID, f)
}

// Update applies a partial update. Absent patch fields are left untouched.
// A status patch may only move between ACTIVE and PAUSED.
func (s *CampaignService) Update(ctx context.Context, caller domain.Caller, id uuid.UUID, patch port.CampaignPatch) (*domain.Campaign, error) {
	existing, err := s.fetch(ctx, caller, id)
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
	if patch.Budget != nil {
		if err = domain.ValidateBudget(*patch.Budget); err != nil {
			return nil, err
		}
	}
	if patch.Status != nil {
		if err = validateStatusPatch(existing.Status, *patch.Status); err != nil {
			return nil, err
		}
	}
	updated, err := s.campaigns.UpdateFields(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &domain.NotFoundError{Entity: "campaign", ID: id.String()}
	}
	metrics.Mutation("campaign", "update")
	return updated, nil
}

// Archive soft-deletes a campaign by setting its status to ARCHIVED. The
// row stays in storage. Archiving an already archived campaign succeeds
// silently.
func (s *CampaignService) Archive(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Campaign, error) {
	if _, err := s.fetch(ctx, caller, id); err != nil {
		return nil, err
	}
	archived := domain.StatusArchived
	updated, err := s.campaigns.UpdateFields(ctx, id, port.CampaignPatch{Status: &archived})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &domain.NotFoundError{Entity: "campaign", ID: id.String()}
	}
	metrics.Mutation("campaign", "archive")
	return updated, nil
}

// Stats returns the campaign's stored counters together with the projected
// CTR/CVR/CPC/ACOS ratios.
func (s *CampaignService) Stats(ctx context.Context, caller domain.Caller, id uuid.UUID) (*port.StatsResp, error) {
	c, err := s.fetch(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return &port.StatsResp{Metrics: c.Metrics, Ratios: domain.ProjectRatios(c.Metrics)}, nil
}

func (s *CampaignService) fetch(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Campaign, error) {
	c, err := s.campaigns.FindByID(ctx, id, caller.UserID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, &domain.NotFoundError{Entity: "campaign", ID: id.String()}
	}
	return c, nil
}
