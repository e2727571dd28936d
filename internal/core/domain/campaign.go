package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Campaign is the top-level budget and grouping entity. It owns ad groups
// and, directly or through an ad group, keywords. Monetary fields use
// arbitrary-precision decimals; performance counters are denormalized onto
// the row and currently come from seed data rather than a simulation.
type Campaign struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Budget    decimal.Decimal
	Status    Status
	Metrics   Counters
	CreatedAt time.Time
	UpdatedAt time.Time
}
