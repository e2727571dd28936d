package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Validation guards are pure functions over already-fetched values. The
// services compose them before any write; none of them touch storage.

// ValidateBid checks a keyword bid against its negative flag. A biddable
// keyword needs a positive bid; a negative keyword is an exclusion and any
// non-negative bid (conventionally zero) is accepted.
func ValidateBid(bid decimal.Decimal, isNegative bool) error {
	if isNegative {
		if bid.IsNegative() {
			return Validationf("negative keyword bid must not be below zero")
		}
		return nil
	}
	if !bid.IsPositive() {
		return Validationf("bid must be greater than zero")
	}
	return nil
}

// ValidateKeywordText rejects keyword text that is empty after trimming.
func ValidateKeywordText(text string) error {
	if strings.TrimSpace(text) == "" {
		return Validationf("keyword text must not be empty")
	}
	return nil
}

// ValidateAdGroupOwnership ensures an ad group belongs to the campaign a
// keyword is being attached under. Cross-campaign attachment is never valid.
func ValidateAdGroupOwnership(adGroup *AdGroup, campaignID uuid.UUID) error {
	if adGroup.CampaignID != campaignID {
		return Validationf("ad group %s does not belong to campaign %s", adGroup.ID, campaignID)
	}
	return nil
}

// ValidateDefaultBid checks an ad group default bid is positive.
func ValidateDefaultBid(bid decimal.Decimal) error {
	if !bid.IsPositive() {
		return Validationf("default bid must be greater than zero")
	}
	return nil
}

// ValidateName rejects names that are empty after trimming.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return Validationf("name must not be empty")
	}
	return nil
}

// ValidateBudget checks a campaign budget is positive.
func ValidateBudget(budget decimal.Decimal) error {
	if !budget.IsPositive() {
		return Validationf("budget must be greater than zero")
	}
	return nil
}
