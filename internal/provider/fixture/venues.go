package fixture

import (
	"context"
	"fmt"
	"sort"
	"time"

	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/model"
)

// Venues is the fixture-backed venue catalog view.
type Venues struct {
	s *Store
}

func (v *Venues) List(_ context.Context) ([]model.Venue, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()

	out := make([]model.Venue, 0, len(v.s.venues))
	for _, venue := range v.s.venues {
		if venue.IsActive {
			out = append(out, venue)
		}
	}
	return out, nil
}

func (v *Venues) GetByID(_ context.Context, id string) (*model.Venue, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()

	found := v.s.findVenue(id)
	if found == nil || !found.IsActive {
		return nil, apperrors.NotFoundWithID("Venue", id)
	}
	venue := *found
	return &venue, nil
}

// Availability derives hourly slots for a date from the venue's weekly
// schedule and marks the hours already taken by non-cancelled bookings.
func (v *Venues) Availability(_ context.Context, id, date string) ([]model.TimeSlot, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, apperrors.InvalidInput("date must be in YYYY-MM-DD format")
	}

	v.s.mu.RLock()
	defer v.s.mu.RUnlock()

	venue := v.s.findVenue(id)
	if venue == nil || !venue.IsActive {
		return nil, apperrors.NotFoundWithID("Venue", id)
	}

	var window *model.VenueSchedule
	for i := range venue.Schedules {
		if venue.Schedules[i].DayOfWeek == int(day.Weekday()) {
			window = &venue.Schedules[i]
			break
		}
	}
	if window == nil || !window.IsAvailable {
		return []model.TimeSlot{}, nil
	}

	openHour, err := parseHour(window.OpenTime)
	if err != nil {
		return nil, apperrors.Internal("venue schedule is malformed", err)
	}
	closeHour, err := parseHour(window.CloseTime)
	if err != nil {
		return nil, apperrors.Internal("venue schedule is malformed", err)
	}

	slots := make([]model.TimeSlot, 0, closeHour-openHour)
	for h := openHour; h < closeHour; h++ {
		start := fmt.Sprintf("%02d:00", h)
		end := fmt.Sprintf("%02d:00", h+1)
		slots = append(slots, model.TimeSlot{
			Start:     start,
			End:       end,
			Available: !v.s.hourTaken(id, date, start),
		})
	}
	return slots, nil
}

// hourTaken reports whether any non-cancelled booking covers the hour
// starting at the given wall-clock time. Caller holds the lock.
func (s *Store) hourTaken(venueID, date, start string) bool {
	for i := range s.bookings {
		b := &s.bookings[i]
		if b.VenueID != venueID || b.Date != date || b.Status == model.BookingCancelled {
			continue
		}
		if b.StartTime <= start && start < b.EndTime {
			return true
		}
	}
	return false
}

func parseHour(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour(), nil
}

func (v *Venues) Facets(_ context.Context) (*model.VenueFacets, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()

	citySet := make(map[string]struct{})
	typeSet := make(map[string]struct{})
	for _, venue := range v.s.venues {
		if !venue.IsActive {
			continue
		}
		if venue.City != "" {
			citySet[venue.City] = struct{}{}
		}
		if venue.VenueType != "" {
			typeSet[venue.VenueType] = struct{}{}
		}
	}

	facets := &model.VenueFacets{
		Cities: make([]string, 0, len(citySet)),
		Types:  make([]string, 0, len(typeSet)),
	}
	for c := range citySet {
		facets.Cities = append(facets.Cities, c)
	}
	for t := range typeSet {
		facets.Types = append(facets.Types, t)
	}
	sort.Strings(facets.Cities)
	sort.Strings(facets.Types)
	return facets, nil
}
