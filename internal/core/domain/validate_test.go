package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBid(t *testing.T) {
	var validationErr *ValidationError

	assert.NoError(t, ValidateBid(decimal.NewFromFloat(0.01), false))
	assert.NoError(t, ValidateBid(decimal.NewFromInt(10), false))

	require.ErrorAs(t, ValidateBid(decimal.Zero, false), &validationErr)
	require.ErrorAs(t, ValidateBid(decimal.NewFromInt(-1), false), &validationErr)

	// negative keywords are exclusions, zero bid is the convention
	assert.NoError(t, ValidateBid(decimal.Zero, true))
	assert.NoError(t, ValidateBid(decimal.NewFromInt(5), true))
	require.ErrorAs(t, ValidateBid(decimal.NewFromInt(-1), true), &validationErr)
}

func TestValidateKeywordText(t *testing.T) {
	var validationErr *ValidationError

	assert.NoError(t, ValidateKeywordText("running shoes"))
	assert.NoError(t, ValidateKeywordText("  padded  "))

	require.ErrorAs(t, ValidateKeywordText(""), &validationErr)
	require.ErrorAs(t, ValidateKeywordText("   "), &validationErr)
	require.ErrorAs(t, ValidateKeywordText("\t\n"), &validationErr)
}

func TestValidateAdGroupOwnership(t *testing.T) {
	campaignID := uuid.New()
	g := &AdGroup{ID: uuid.New(), CampaignID: campaignID}

	assert.NoError(t, ValidateAdGroupOwnership(g, campaignID))

	var validationErr *ValidationError
	require.ErrorAs(t, ValidateAdGroupOwnership(g, uuid.New()), &validationErr)
}

func TestValidateDefaultBid(t *testing.T) {
	var validationErr *ValidationError

	assert.NoError(t, ValidateDefaultBid(decimal.NewFromFloat(0.50)))
	require.ErrorAs(t, ValidateDefaultBid(decimal.Zero), &validationErr)
	require.ErrorAs(t, ValidateDefaultBid(decimal.NewFromInt(-2)), &validationErr)
}

func TestStatusAndMatchTypeEnums(t *testing.T) {
	assert.True(t, StatusActive.Valid())
	assert.True(t, StatusPaused.Valid())
	assert.True(t, StatusArchived.Valid())
	assert.False(t, Status("DELETED").Valid())

	assert.True(t, MatchBroad.Valid())
	assert.True(t, MatchPhrase.Valid())
	assert.True(t, MatchExact.Valid())
	assert.False(t, MatchType("NEGATIVE").Valid())
	assert.False(t, MatchType("").Valid())
}
