package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdGroup groups keywords within a campaign and carries the default bid
// keywords fall back to. CampaignID is set once at creation and never
// changes, which is what makes the hierarchy a strict tree.
type AdGroup struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	Name       string
	DefaultBid decimal.Decimal
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
