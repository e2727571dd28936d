package usecase

import (
	"ppc-console/internal/core/domain"
)

// statusOrActive resolves the optional status of a create request. Records
// are born ACTIVE or PAUSED; ARCHIVED exists only as the result of a delete.
func statusOrActive(s *domain.Status) (domain.Status, error) {
	if s == nil {
		return domain.StatusActive, nil
	}
	if *s != domain.StatusActive && *s != domain.StatusPaused {
		return "", domain.Validationf("status must be ACTIVE or PAUSED")
	}
	return *s, nil
}

// validateStatusPatch guards an explicit status update. ACTIVE and PAUSED
// are freely interchangeable; archiving goes through the delete path and an
// archived record never comes back.
func validateStatusPatch(current, next domain.Status) error {
	if next != domain.StatusActive && next != domain.StatusPaused {
		return domain.Validationf("status must be ACTIVE or PAUSED")
	}
	if current == domain.StatusArchived {
		return domain.Validationf("archived records cannot change status")
	}
	return nil
}
