package fixture

import (
	"context"
	"time"

	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/model"
	"arenaku/pkg/slug"
)

// Manager is the fixture-backed pengelola view, scoped to venues the
// acting manager owns.
type Manager struct {
	s *Store
}

func (m *Manager) Summary(_ context.Context, managerID string) (*model.ManagerSummary, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	now := time.Now().UTC()
	today := now.Format("2006-01-02")
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	summary := &model.ManagerSummary{}
	owned := make(map[string]struct{})
	for _, v := range m.s.venues {
		if v.ManagerID == managerID {
			summary.VenueCount++
			owned[v.ID] = struct{}{}
		}
	}
	for i := range m.s.bookings {
		b := &m.s.bookings[i]
		if _, ok := owned[b.VenueID]; !ok {
			continue
		}
		if b.Date == today && b.Status != model.BookingCancelled {
			summary.TodayBookings++
		}
		if b.Status == model.BookingPending {
			summary.PendingBookings++
		}
		if !b.CreatedAt.Before(monthStart) && (b.Status == model.BookingConfirmed || b.Status == model.BookingCompleted) {
			summary.MonthRevenue += b.TotalPrice
		}
	}
	return summary, nil
}

func (m *Manager) Venues(_ context.Context, managerID string) ([]model.Venue, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	out := make([]model.Venue, 0)
	for _, v := range m.s.venues {
		if v.ManagerID == managerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *Manager) CreateVenue(_ context.Context, managerID string, venue model.Venue) (*model.Venue, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	venue.ID = m.s.genID("ven")
	venue.ManagerID = managerID
	venue.Slug = slug.Make(venue.Name, venue.City)
	venue.IsActive = true
	venue.CreatedAt = time.Now().UTC()

	m.s.venues = append(m.s.venues, venue)
	created := venue
	return &created, nil
}

func (m *Manager) UpdateVenue(_ context.Context, managerID, id string, updates model.VenueUpdate) (*model.Venue, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	v := m.s.findVenue(id)
	if v == nil {
		return nil, apperrors.NotFoundWithID("Venue", id)
	}
	if v.ManagerID != managerID {
		return nil, apperrors.Forbidden("venue belongs to another pengelola")
	}

	if updates.Name != "" {
		v.Name = updates.Name
		v.Slug = slug.Make(v.Name, v.City)
	}
	if updates.Address != "" {
		v.Address = updates.Address
	}
	if updates.City != "" {
		v.City = updates.City
		v.Slug = slug.Make(v.Name, v.City)
	}
	if updates.PricePerHour != nil {
		v.PricePerHour = *updates.PricePerHour
	}
	if updates.Capacity != nil {
		v.Capacity = *updates.Capacity
	}
	if updates.Images != nil {
		v.Images = updates.Images
	}
	if updates.Facilities != nil {
		v.Facilities = updates.Facilities
	}
	if updates.VenueType != "" {
		v.VenueType = updates.VenueType
	}
	if updates.IsActive != nil {
		v.IsActive = *updates.IsActive
	}
	if updates.Schedules != nil {
		v.Schedules = updates.Schedules
	}

	venue := *v
	return &venue, nil
}

func (m *Manager) DeleteVenue(_ context.Context, managerID, id string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	v := m.s.findVenue(id)
	if v == nil {
		return apperrors.NotFoundWithID("Venue", id)
	}
	if v.ManagerID != managerID {
		return apperrors.Forbidden("venue belongs to another pengelola")
	}

	// Soft delete keeps historical bookings resolvable.
	v.IsActive = false
	return nil
}

func (m *Manager) Bookings(_ context.Context, managerID string) ([]model.Booking, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	out := make([]model.Booking, 0)
	for i := range m.s.bookings {
		b := &m.s.bookings[i]
		v := m.s.findVenue(b.VenueID)
		if v != nil && v.ManagerID == managerID {
			out = append(out, *m.s.bookingView(b))
		}
	}
	return out, nil
}

func (m *Manager) UpdateBookingStatus(_ context.Context, managerID, id string, status model.BookingStatus) (*model.Booking, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	b := m.s.findBooking(id)
	if b == nil {
		return nil, apperrors.NotFoundWithID("Booking", id)
	}
	v := m.s.findVenue(b.VenueID)
	if v == nil || v.ManagerID != managerID {
		return nil, apperrors.Forbidden("booking belongs to another pengelola's venue")
	}
	if !model.CanTransition(b.Status, status) {
		return nil, apperrors.Conflict("cannot move booking from " + string(b.Status) + " to " + string(status))
	}

	b.Status = status
	if status == model.BookingConfirmed {
		m.s.notifications = append(m.s.notifications, model.Notification{
			ID:        m.s.genID("ntf"),
			UserID:    b.OwnerID,
			Type:      model.NotificationBookingConfirmed,
			Title:     "Booking dikonfirmasi",
			Message:   "Booking " + v.Name + " telah dikonfirmasi.",
			CreatedAt: time.Now().UTC(),
		})
	}
	return m.s.bookingView(b), nil
}
