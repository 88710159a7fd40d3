package service

import (
	"context"

	"arenaku/internal/provider"
	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/logger"
	"arenaku/pkg/model"
)

type NotificationService interface {
	List(ctx context.Context, userID string) ([]model.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type notificationService struct {
	notifications provider.Notifications
	log           *logger.Logger
}

func NewNotificationService(notifications provider.Notifications, log *logger.Logger) NotificationService {
	return &notificationService{notifications: notifications, log: log}
}

func (s *notificationService) List(ctx context.Context, userID string) ([]model.Notification, error) {
	return s.notifications.List(ctx, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.notifications.UnreadCount(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, userID, id string) error {
	if id == "" {
		return apperrors.InvalidInput("notification ID cannot be empty")
	}
	return s.notifications.MarkRead(ctx, userID, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notifications.MarkAllRead(ctx, userID)
}
