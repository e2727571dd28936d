package domain

import "github.com/google/uuid"

// Caller identifies who is performing an operation. The HTTP layer builds
// it (today from a configured default user, later from real authentication)
// and passes it explicitly into every usecase call; nothing in the service
// layer reads identity from ambient state.
type Caller struct {
	UserID uuid.UUID
}
