package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"ppc-console/internal/core/domain"
	"ppc-console/internal/core/port"
)

// In-memory repository fakes backing the service tests. They mirror the
// scoping behavior of the postgres adapters: a lookup outside the scope
// returns nil, and partial updates apply only non-nil patch fields.

type memCampaignRepo struct {
	items map[uuid.UUID]*domain.Campaign
}

func newMemCampaignRepo() *memCampaignRepo {
	return &memCampaignRepo{items: make(map[uuid.UUID]*domain.Campaign)}
}

func (r *memCampaignRepo) Insert(_ context.Context, c *domain.Campaign) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *memCampaignRepo) FindByID(_ context.Context, id, ownerID uuid.UUID) (*domain.Campaign, error) {
	c, ok := r.items[id]
	if !ok || c.OwnerID != ownerID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCampaignRepo) List(_ context.Context, ownerID uuid.UUID, f port.ListFilter) ([]domain.Campaign, error) {
	var out []domain.Campaign
	for _, c := range r.items {
		if c.OwnerID != ownerID {
			continue
		}
		if f.Status != nil && c.Status != *f.Status {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memCampaignRepo) UpdateFields(_ context.Context, id uuid.UUID, patch port.CampaignPatch) (*domain.Campaign, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Budget != nil {
		c.Budget = *patch.Budget
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	c.UpdatedAt = time.Now().UTC()
	cp := *c
	return &cp, nil
}

type memAdGroupRepo struct {
	items map[uuid.UUID]*domain.AdGroup
}

func newMemAdGroupRepo() *memAdGroupRepo {
	return &memAdGroupRepo{items: make(map[uuid.UUID]*domain.AdGroup)}
}

func (r *memAdGroupRepo) Insert(_ context.Context, g *domain.AdGroup) error {
	cp := *g
	r.items[g.ID] = &cp
	return nil
}

func (r *memAdGroupRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.AdGroup, error) {
	g, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *memAdGroupRepo) FindByIDInCampaign(_ context.Context, id, campaignID uuid.UUID) (*domain.AdGroup, error) {
	g, ok := r.items[id]
	if !ok || g.CampaignID != campaignID {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *memAdGroupRepo) List(_ context.Context, campaignID uuid.UUID, f port.ListFilter) ([]domain.AdGroup, error) {
	var out []domain.AdGroup
	for _, g := range r.items {
		if g.CampaignID != campaignID {
			continue
		}
		if f.Status != nil && g.Status != *f.Status {
			continue
		}
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memAdGroupRepo) UpdateFields(_ context.Context, id uuid.UUID, patch port.AdGroupPatch) (*domain.AdGroup, error) {
	g, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		g.Name = *patch.Name
	}
	if patch.DefaultBid != nil {
		g.DefaultBid = *patch.DefaultBid
	}
	if patch.Status != nil {
		g.Status = *patch.Status
	}
	g.UpdatedAt = time.Now().UTC()
	cp := *g
	return &cp, nil
}

type memKeywordRepo struct {
	items map[uuid.UUID]*domain.Keyword
}

func newMemKeywordRepo() *memKeywordRepo {
	return &memKeywordRepo{items: make(map[uuid.UUID]*domain.Keyword)}
}

func (r *memKeywordRepo) Insert(_ context.Context, k *domain.Keyword) error {
	cp := *k
	r.items[k.ID] = &cp
	return nil
}

func (r *memKeywordRepo) FindByID(_ context.Context, id, campaignID uuid.UUID) (*domain.Keyword, error) {
	k, ok := r.items[id]
	if !ok || k.CampaignID != campaignID {
		return nil, nil
	}
	cp := *k
	return &cp, nil
}

func (r *memKeywordRepo) List(_ context.Context, campaignID uuid.UUID, f port.KeywordFilter) ([]domain.Keyword, error) {
	var out []domain.Keyword
	for _, k := range r.items {
		if k.CampaignID != campaignID {
			continue
		}
		if f.Status != nil && k.Status != *f.Status {
			continue
		}
		if f.AdGroupID != nil && (k.AdGroupID == nil || *k.AdGroupID != *f.AdGroupID) {
			continue
		}
		if f.IsNegative != nil && k.IsNegative != *f.IsNegative {
			continue
		}
		out = append(out, *k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memKeywordRepo) UpdateFields(_ context.Context, id uuid.UUID, patch port.KeywordPatch) (*domain.Keyword, error) {
	k, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	if patch.Text != nil {
		k.Text = *patch.Text
	}
	if patch.MatchType != nil {
		k.MatchType = *patch.MatchType
	}
	if patch.Bid != nil {
		k.Bid = *patch.Bid
	}
	if patch.IsNegative != nil {
		k.IsNegative = *patch.IsNegative
	}
	if patch.Status != nil {
		k.Status = *patch.Status
	}
	k.UpdatedAt = time.Now().UTC()
	cp := *k
	return &cp, nil
}
