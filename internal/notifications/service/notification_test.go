package service

import (
	"context"
	"io"
	"testing"

	"arenaku/internal/provider/fixture"
	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/logger"
)

func newTestService(t *testing.T) NotificationService {
	t.Helper()
	store := fixture.New()
	log := logger.New(logger.Config{Level: logger.LevelError, Output: io.Discard})
	return NewNotificationService(store.Provider().Notifications, log)
}

func TestListIsScopedAndNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	list, err := svc.List(ctx, "usr-budi")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d notifications, want 2", len(list))
	}
	for _, ntf := range list {
		if ntf.UserID != "usr-budi" {
			t.Errorf("notification %s belongs to %s", ntf.ID, ntf.UserID)
		}
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.After(list[i-1].CreatedAt) {
			t.Errorf("notifications out of order: %s before %s", list[i-1].ID, list[i].ID)
		}
	}
}

func TestMarkReadIsScopedToOwner(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Another user's notification reads as missing, not forbidden.
	err := svc.MarkRead(ctx, "usr-budi", "ntf-0003")
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("got %v, want code %s", err, apperrors.CodeNotFound)
	}

	if err := svc.MarkRead(ctx, "usr-budi", "ntf-0001"); err != nil {
		t.Fatalf("MarkRead returned error: %v", err)
	}
	count, err := svc.UnreadCount(ctx, "usr-budi")
	if err != nil {
		t.Fatalf("UnreadCount returned error: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d unread, want 1", count)
	}
}

func TestMarkReadRejectsEmptyID(t *testing.T) {
	svc := newTestService(t)

	err := svc.MarkRead(context.Background(), "usr-budi", "")
	if !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Fatalf("got %v, want code %s", err, apperrors.CodeInvalidInput)
	}
}

func TestMarkAllReadKeepsHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.MarkAllRead(ctx, "usr-budi"); err != nil {
		t.Fatalf("MarkAllRead returned error: %v", err)
	}

	count, err := svc.UnreadCount(ctx, "usr-budi")
	if err != nil {
		t.Fatalf("UnreadCount returned error: %v", err)
	}
	if count != 0 {
		t.Errorf("got %d unread, want 0", count)
	}

	// Reading never deletes: the inbox keeps its full history.
	list, err := svc.List(ctx, "usr-budi")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("got %d notifications after read-all, want 2", len(list))
	}
	for _, ntf := range list {
		if !ntf.IsRead {
			t.Errorf("notification %s still unread", ntf.ID)
		}
	}
}
