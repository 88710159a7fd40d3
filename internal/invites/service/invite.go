package service

import (
	"context"
	"strings"

	"arenaku/internal/provider"
	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/filter"
	"arenaku/pkg/format"
	"arenaku/pkg/logger"
	"arenaku/pkg/model"
	"arenaku/pkg/sanitizer"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// InviteView is an open joinable booking as the invite pages show it:
// slot counters, the per-person share, and the shareable URL.
type InviteView struct {
	model.Booking
	FilledSlots    int    `json:"filled_slots"`
	AvailableSlots int    `json:"available_slots"`
	CanJoin        bool   `json:"can_join"`
	ShareDisplay   string `json:"share_display"`
	ShareURL       string `json:"share_url,omitempty"`
}

// ListQuery narrows the public joinan board.
type ListQuery struct {
	Query string
	City  string
}

type InviteService interface {
	ListPublic(ctx context.Context, q ListQuery) ([]InviteView, error)
	GetByCode(ctx context.Context, code string) (*InviteView, error)
	Join(ctx context.Context, userID, code string) (*InviteView, error)
	ShareQR(ctx context.Context, code string) ([]byte, error)
}

type inviteService struct {
	invites provider.Invites
	baseURL string
	log     *logger.Logger
}

func NewInviteService(invites provider.Invites, baseURL string, log *logger.Logger) InviteService {
	return &inviteService{
		invites: invites,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

func (s *inviteService) ListPublic(ctx context.Context, q ListQuery) ([]InviteView, error) {
	bookings, err := s.invites.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	matched := filter.Apply(bookings,
		filter.Text(sanitizer.NormalizeQuery(q.Query), func(b model.Booking) []string {
			fields := []string{b.Title}
			if b.Venue != nil {
				fields = append(fields, b.Venue.Name, b.Venue.City)
			}
			return fields
		}),
		filter.Status(q.City, func(b model.Booking) string {
			if b.Venue == nil {
				return ""
			}
			return b.Venue.City
		}),
	)

	views := make([]InviteView, 0, len(matched))
	for _, b := range matched {
		views = append(views, s.newInviteView(b))
	}
	return views, nil
}

func (s *inviteService) GetByCode(ctx context.Context, code string) (*InviteView, error) {
	if code == "" {
		return nil, apperrors.InvalidInvite(code)
	}
	booking, err := s.invites.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	view := s.newInviteView(*booking)
	return &view, nil
}

func (s *inviteService) Join(ctx context.Context, userID, code string) (*InviteView, error) {
	if code == "" {
		return nil, apperrors.InvalidInvite(code)
	}

	booking, err := s.invites.Join(ctx, userID, code)
	if err != nil {
		s.log.Info("join rejected", "code", code, "error", err)
		return nil, err
	}

	s.log.Info("participant joined",
		"booking_id", booking.ID,
		"filled", booking.FilledSlots(),
		"max_slots", booking.MaxSlots,
	)
	view := s.newInviteView(*booking)
	return &view, nil
}

// ShareQR renders the invite's share URL as a PNG for offline handouts.
func (s *inviteService) ShareQR(ctx context.Context, code string) ([]byte, error) {
	// Resolve first so unknown codes keep their distinct error.
	booking, err := s.invites.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(s.shareURL(booking.InviteCode), qrcode.Medium, qrSize)
	if err != nil {
		return nil, apperrors.Internal("failed to render QR code", err)
	}
	return png, nil
}

func (s *inviteService) shareURL(code string) string {
	return s.baseURL + "/invites/" + code
}

func (s *inviteService) newInviteView(b model.Booking) InviteView {
	return InviteView{
		Booking:        b,
		FilledSlots:    b.FilledSlots(),
		AvailableSlots: b.AvailableSlots(),
		CanJoin:        b.CanJoin(),
		ShareDisplay:   format.Rupiah(b.PricePerSlot),
		ShareURL:       s.shareURL(b.InviteCode),
	}
}
