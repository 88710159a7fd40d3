package fixture

import (
	"context"

	"arenaku/pkg/model"
)

// Admin is the fixture-backed platform overview.
type Admin struct {
	s *Store
}

func (a *Admin) Summary(_ context.Context) (*model.AdminSummary, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	return &model.AdminSummary{
		UserCount:    len(a.s.users),
		VenueCount:   len(a.s.venues),
		BookingCount: len(a.s.bookings),
	}, nil
}

func (a *Admin) Users(_ context.Context) ([]model.User, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	out := make([]model.User, len(a.s.users))
	copy(out, a.s.users)
	return out, nil
}
