package fixture

import (
	"context"
	"sort"

	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/model"
)

// Notifications is the fixture-backed notification inbox view.
type Notifications struct {
	s *Store
}

func (n *Notifications) List(_ context.Context, userID string) ([]model.Notification, error) {
	n.s.mu.RLock()
	defer n.s.mu.RUnlock()

	out := make([]model.Notification, 0)
	for _, ntf := range n.s.notifications {
		if ntf.UserID == userID {
			out = append(out, ntf)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (n *Notifications) UnreadCount(_ context.Context, userID string) (int, error) {
	n.s.mu.RLock()
	defer n.s.mu.RUnlock()

	count := 0
	for _, ntf := range n.s.notifications {
		if ntf.UserID == userID && !ntf.IsRead {
			count++
		}
	}
	return count, nil
}

func (n *Notifications) MarkRead(_ context.Context, userID, id string) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()

	for i := range n.s.notifications {
		ntf := &n.s.notifications[i]
		if ntf.ID == id && ntf.UserID == userID {
			ntf.IsRead = true
			return nil
		}
	}
	return apperrors.NotFoundWithID("Notification", id)
}

func (n *Notifications) MarkAllRead(_ context.Context, userID string) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()

	for i := range n.s.notifications {
		if n.s.notifications[i].UserID == userID {
			n.s.notifications[i].IsRead = true
		}
	}
	return nil
}
