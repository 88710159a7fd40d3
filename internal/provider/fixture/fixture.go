// Package fixture is the in-memory data provider: a seeded, mutex-guarded
// stand-in for the business API used in demos and tests. It emulates the
// upstream contract closely enough for every view to work offline,
// including the atomic slot check on join.
package fixture

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"arenaku/internal/provider"
	"arenaku/pkg/model"
	"arenaku/pkg/slug"
)

type Store struct {
	mu sync.RWMutex

	users         []model.User
	passwords     map[string]string // email -> password
	tokens        map[string]string // bearer token -> user ID
	venues        []model.Venue
	bookings      []model.Booking
	notifications []model.Notification

	nextID int
}

func New() *Store {
	s := &Store{
		passwords: make(map[string]string),
		tokens:    make(map[string]string),
	}
	s.seed()
	return s
}

// Provider exposes the store through the per-resource views.
func (s *Store) Provider() provider.Provider {
	return provider.Provider{
		Auth:          &Auth{s: s},
		Venues:        &Venues{s: s},
		Bookings:      &Bookings{s: s},
		Invites:       &Invites{s: s},
		Notifications: &Notifications{s: s},
		Manager:       &Manager{s: s},
		Admin:         &Admin{s: s},
	}
}

func (s *Store) genID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%04d", prefix, s.nextID)
}

const inviteAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

// genInviteCode produces a case-sensitive, URL-safe opaque token.
func genInviteCode() string {
	b := make([]byte, 8)
	max := big.NewInt(int64(len(inviteAlphabet)))
	for i := range b {
		n, _ := rand.Int(rand.Reader, max)
		b[i] = inviteAlphabet[n.Int64()]
	}
	return string(b)
}

func (s *Store) seed() {
	now := time.Now().UTC()

	s.users = []model.User{
		{ID: "usr-budi", Name: "Budi Santoso", Email: "budi@example.com", Phone: "+628121111111", Role: model.RoleUser, CreatedAt: now},
		{ID: "usr-citra", Name: "Citra Lestari", Email: "citra@example.com", Phone: "+628122222222", Role: model.RoleUser, CreatedAt: now},
		{ID: "usr-sari", Name: "Sari Wijaya", Email: "sari@example.com", Phone: "+628123333333", Role: model.RolePengelola, CreatedAt: now},
		{ID: "usr-admin", Name: "Admin Arenaku", Email: "admin@example.com", Role: model.RoleAdmin, CreatedAt: now},
	}
	for _, u := range s.users {
		s.passwords[u.Email] = "rahasia123"
	}

	weekdays := []model.VenueSchedule{
		{DayOfWeek: 1, OpenTime: "08:00", CloseTime: "22:00", IsAvailable: true},
		{DayOfWeek: 2, OpenTime: "08:00", CloseTime: "22:00", IsAvailable: true},
		{DayOfWeek: 3, OpenTime: "08:00", CloseTime: "22:00", IsAvailable: true},
		{DayOfWeek: 4, OpenTime: "08:00", CloseTime: "22:00", IsAvailable: true},
		{DayOfWeek: 5, OpenTime: "08:00", CloseTime: "23:00", IsAvailable: true},
		{DayOfWeek: 6, OpenTime: "06:00", CloseTime: "23:00", IsAvailable: true},
		{DayOfWeek: 0, OpenTime: "06:00", CloseTime: "21:00", IsAvailable: true},
	}

	s.venues = []model.Venue{
		{
			ID: "ven-0001", ManagerID: "usr-sari",
			Name: "Futsal Arena Jakarta", Address: "Jl. Sudirman No. 12", City: "Jakarta",
			PricePerHour: 150_000, Capacity: 12,
			Facilities: []string{"parkir", "kantin", "shower"},
			VenueType:  "futsal", IsActive: true, Schedules: weekdays, CreatedAt: now,
		},
		{
			ID: "ven-0002", ManagerID: "usr-sari",
			Name: "GOR Badminton Senayan", Address: "Jl. Asia Afrika No. 8", City: "Jakarta",
			PricePerHour: 90_000, Capacity: 8,
			Facilities: []string{"parkir", "tribun"},
			VenueType:  "badminton", IsActive: true, Schedules: weekdays, CreatedAt: now,
		},
		{
			ID: "ven-0003", ManagerID: "usr-sari",
			Name: "Lapangan Basket Dago", Address: "Jl. Ir. H. Juanda No. 77", City: "Bandung",
			PricePerHour: 120_000, Capacity: 20,
			Facilities: []string{"parkir"},
			VenueType:  "basket", IsActive: true, Schedules: weekdays, CreatedAt: now,
		},
		{
			ID: "ven-0004", ManagerID: "usr-sari",
			Name: "Arena Voli Pantai Kuta", Address: "Jl. Pantai Kuta", City: "Denpasar",
			PricePerHour: 80_000, Capacity: 12,
			VenueType: "voli", IsActive: false, Schedules: weekdays, CreatedAt: now,
		},
	}
	for i := range s.venues {
		s.venues[i].Slug = slug.Make(s.venues[i].Name, s.venues[i].City)
	}

	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	s.bookings = []model.Booking{
		{
			ID: "bkg-0001", VenueID: "ven-0001", OwnerID: "usr-budi",
			Date: tomorrow, StartTime: "19:00", EndTime: "21:00",
			TotalPrice: 300_000, PricePerSlot: 30_000, MaxSlots: 10,
			IsJoinable: true, Visibility: model.InvitePublic,
			InviteCode: "Fut7Kj2Q", Title: "Futsal santai bareng",
			Status:    model.BookingOpen,
			CreatedAt: now,
			Participants: []model.BookingParticipant{
				{BookingID: "bkg-0001", UserID: "usr-budi", ShareAmount: 30_000, PaymentStatus: model.PaymentPaid, IsOwner: true, JoinedAt: now},
				{BookingID: "bkg-0001", UserID: "usr-citra", ShareAmount: 30_000, PaymentStatus: model.PaymentUnpaid, JoinedAt: now},
			},
		},
		{
			ID: "bkg-0002", VenueID: "ven-0002", OwnerID: "usr-citra",
			Date: tomorrow, StartTime: "09:00", EndTime: "10:00",
			TotalPrice: 90_000, MaxSlots: 0, IsJoinable: false,
			Status:    model.BookingConfirmed,
			CreatedAt: now,
			Participants: []model.BookingParticipant{
				{BookingID: "bkg-0002", UserID: "usr-citra", ShareAmount: 90_000, PaymentStatus: model.PaymentPaid, IsOwner: true, JoinedAt: now},
			},
		},
		{
			ID: "bkg-0003", VenueID: "ven-0003", OwnerID: "usr-budi",
			Date: tomorrow, StartTime: "16:00", EndTime: "18:00",
			TotalPrice: 240_000, PricePerSlot: 120_000, MaxSlots: 2,
			IsJoinable: true, Visibility: model.InvitePrivate,
			InviteCode: "Bsk9Xw4R", Title: "Cari 1 orang lagi",
			Status:    model.BookingOpen,
			CreatedAt: now,
			Participants: []model.BookingParticipant{
				{BookingID: "bkg-0003", UserID: "usr-budi", ShareAmount: 120_000, PaymentStatus: model.PaymentPaid, IsOwner: true, JoinedAt: now},
			},
		},
	}

	s.notifications = []model.Notification{
		{ID: "ntf-0001", UserID: "usr-budi", Type: model.NotificationBookingConfirmed, Title: "Booking dikonfirmasi", Message: "Booking Futsal Arena Jakarta telah dikonfirmasi.", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "ntf-0002", UserID: "usr-budi", Type: model.NotificationParticipantJoined, Title: "Peserta baru", Message: "Citra Lestari bergabung ke booking kamu.", CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "ntf-0003", UserID: "usr-citra", Type: model.NotificationSystem, Title: "Selamat datang", Message: "Selamat datang di Arenaku!", IsRead: true, CreatedAt: now.Add(-24 * time.Hour)},
	}

	s.nextID = 100
}

func (s *Store) findUser(id string) *model.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

func (s *Store) findVenue(id string) *model.Venue {
	for i := range s.venues {
		if s.venues[i].ID == id {
			return &s.venues[i]
		}
	}
	return nil
}

func (s *Store) findBooking(id string) *model.Booking {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return &s.bookings[i]
		}
	}
	return nil
}

// bookingView returns a deep-enough copy with venue, owner, and
// participant users attached, so callers never alias store memory.
func (s *Store) bookingView(b *model.Booking) *model.Booking {
	out := *b

	if v := s.findVenue(b.VenueID); v != nil {
		venue := *v
		out.Venue = &venue
	}
	if u := s.findUser(b.OwnerID); u != nil {
		owner := *u
		out.Owner = &owner
	}

	out.Participants = make([]model.BookingParticipant, len(b.Participants))
	copy(out.Participants, b.Participants)
	for i := range out.Participants {
		if u := s.findUser(out.Participants[i].UserID); u != nil {
			user := *u
			out.Participants[i].User = &user
		}
	}
	return &out
}
