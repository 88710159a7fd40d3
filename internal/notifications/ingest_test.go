package notifications

import (
	"io"
	"testing"

	"arenaku/pkg/kafka"
	"arenaku/pkg/logger"
	"arenaku/pkg/ws"
)

func TestIngestRejectsMalformedEvents(t *testing.T) {
	log := logger.New(logger.Config{Level: logger.LevelError, Output: io.Discard})
	hub := ws.NewHub(log)
	defer hub.Stop()

	handler := NewIngestHandler(hub, log)

	if err := handler(kafka.Message{Value: []byte("not json")}); err == nil {
		t.Error("malformed payload was accepted")
	}
	if err := handler(kafka.Message{Value: []byte(`{"type":"SYSTEM"}`)}); err == nil {
		t.Error("event without user_id was accepted")
	}
}

func TestIngestAcceptsWellFormedEvents(t *testing.T) {
	log := logger.New(logger.Config{Level: logger.LevelError, Output: io.Discard})
	hub := ws.NewHub(log)
	defer hub.Stop()

	handler := NewIngestHandler(hub, log)

	event := []byte(`{"user_id":"usr-budi","type":"BOOKING_CONFIRMED","title":"Booking dikonfirmasi"}`)
	if err := handler(kafka.Message{Value: event}); err != nil {
		t.Errorf("well-formed event rejected: %v", err)
	}
}
