package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ppc-console/internal/core/domain"
	"ppc-console/internal/core/port"
)

func TestCreateAdGroupValidation(t *testing.T) {
	f := newFixture()
	c := f.mustCampaign(t, "C1")

	var validationErr *domain.ValidationError
	_, err := f.adGroupSvc.Create(context.Background(), f.caller, c.ID, port.CreateAdGroupReq{
		Name:       "A1",
		DefaultBid: decimal.Zero,
	})
	require.ErrorAs(t, err, &validationErr)

	g, err := f.adGroupSvc.Create(context.Background(), f.caller, c.ID, port.CreateAdGroupReq{
		Name:       "A1",
		DefaultBid: decimal.NewFromFloat(0.50),
	})
	require.NoError(t, err)
	require.Equal(t, c.ID, g.CampaignID)
	require.Equal(t, domain.StatusActive, g.Status)
}

func TestCreateAdGroupUnderArchivedCampaignRejected(t *testing.T) {
	f := newFixture()
	c := f.mustCampaign(t, "C1")
	_, err := f.campaignSvc.Archive(context.Background(), f.caller, c.ID)
	require.NoError(t, err)

	_, err = f.adGroupSvc.Create(context.Background(), f.caller, c.ID, port.CreateAdGroupReq{
		Name:       "A1",
		DefaultBid: decimal.NewFromInt(1),
	})
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestAdGroupScopedFetch(t *testing.T) {
	f := newFixture()
	c1 := f.mustCampaign(t, "C1")
	c2 := f.mustCampaign(t, "C2")
	g := f.mustAdGroup(t, c1.ID, "A1")

	_, err := f.adGroupSvc.Get(context.Background(), f.caller, g.ID, c2.ID)
	var notFoundErr *domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	got, err := f.adGroupSvc.Get(context.Background(), f.caller, g.ID, c1.ID)
	require.NoError(t, err)
	require.Equal(t, g.ID, got.ID)
}

func TestUpdateAdGroupPartialPatch(t *testing.T) {
	f := newFixture()
	c := f.mustCampaign(t, "C1")
	g := f.mustAdGroup(t, c.ID, "A1")

	bid := decimal.NewFromInt(2)
	updated, err := f.adGroupSvc.Update(context.Background(), f.caller, g.ID, c.ID, port.AdGroupPatch{DefaultBid: &bid})
	require.NoError(t, err)
	require.True(t, updated.DefaultBid.Equal(bid))
	require.Equal(t, "A1", updated.Name)
	require.Equal(t, domain.StatusActive, updated.Status)
}

func TestArchiveAdGroupPreservesFields(t *testing.T) {
	f := newFixture()
	c := f.mustCampaign(t, "C1")
	g := f.mustAdGroup(t, c.ID, "A1")

	archived, err := f.adGroupSvc.Archive(context.Background(), f.caller, g.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusArchived, archived.Status)
	require.Equal(t, g.Name, archived.Name)
	require.True(t, archived.DefaultBid.Equal(g.DefaultBid))

	again, err := f.adGroupSvc.Archive(context.Background(), f.caller, g.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusArchived, again.Status)
}
