// Package notifications bridges the upstream notification topic to the
// WebSocket hub. Delivery is best-effort: a push that finds no open
// connection is simply not sent, and the REST inbox stays authoritative.
package notifications

import (
	"encoding/json"
	"fmt"

	"arenaku/pkg/kafka"
	"arenaku/pkg/logger"
	"arenaku/pkg/model"
	"arenaku/pkg/ws"
)

// NewIngestHandler decodes notification events and forwards them to the
// user's open connections.
func NewIngestHandler(hub *ws.Hub, log *logger.Logger) kafka.MessageHandler {
	return func(msg kafka.Message) error {
		var notification model.Notification
		if err := json.Unmarshal(msg.Value, &notification); err != nil {
			return fmt.Errorf("decode notification event: %w", err)
		}
		if notification.UserID == "" {
			return fmt.Errorf("notification event without user_id")
		}

		hub.SendToUser(notification.UserID, notification)
		log.Debug("notification forwarded",
			"user_id", notification.UserID,
			"type", notification.Type,
		)
		return nil
	}
}
