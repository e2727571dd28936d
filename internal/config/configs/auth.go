package configs

import "github.com/google/uuid"

// Auth stands in for real authentication. DefaultUserID is the identity
// attached to every request; when an auth layer arrives it replaces this
// value with the authenticated user without touching the service layer.
type Auth struct {
	// DefaultUserID is the uuid of the single demo user owning all data.
	DefaultUserID uuid.UUID `env:"DEFAULT_USER_ID" envDefault:"6f1d0aa5-6a5c-4f0e-9d27-2f61b3b12c01"`
}
