package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Keyword is the leaf targeting entity. It always belongs to a campaign and
// may additionally sit under one of that campaign's ad groups. Both parent
// references are write-once. A negative keyword blocks ad triggering
// instead of bidding, so its bid is kept at zero.
type Keyword struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	AdGroupID  *uuid.UUID
	Text       string
	MatchType  MatchType
	Bid        decimal.Decimal
	IsNegative bool
	Status     Status
	Metrics    Counters
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
