// Package kafka wraps kafka-go consumption for the platform event bus.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"arenaku/pkg/logger"

	"github.com/segmentio/kafka-go"
)

const defaultMaxRetries = 3

type Consumer struct {
	reader     *kafka.Reader
	topic      string
	handler    MessageHandler
	maxRetries int
	log        *logger.Logger

	closeOnce sync.Once
}

func NewConsumer(brokers []string, topic, groupID string, handler MessageHandler, log *logger.Logger) (*Consumer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}
	if groupID == "" {
		return nil, fmt.Errorf("group ID cannot be empty")
	}
	if handler == nil {
		return nil, fmt.Errorf("message handler cannot be nil")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10 * 1024 * 1024,
		MaxWait:        500 * time.Millisecond,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
		Logger:         kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("kafka reader error", "detail", fmt.Sprintf(msg, args...))
		}),
	})

	return &Consumer{
		reader:     reader,
		topic:      topic,
		handler:    handler,
		maxRetries: defaultMaxRetries,
		log:        log,
	}, nil
}

// Run consumes until the context is cancelled. Messages that keep failing
// after the retry budget are dropped with a log line; the REST listing stays
// the source of truth, so a dropped push is not lost data.
func (c *Consumer) Run(ctx context.Context) {
	c.log.Info("kafka consumer started", "topic", c.topic)

	for {
		raw, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				c.log.Info("kafka consumer stopping", "topic", c.topic)
				return
			}
			c.log.Error("kafka read failed", "topic", c.topic, "error", err)
			continue
		}

		msg := Message{
			Key:   raw.Key,
			Value: raw.Value,
			Topic: raw.Topic,
			Time:  raw.Time,
		}
		if len(raw.Headers) > 0 {
			msg.Headers = make(map[string]string, len(raw.Headers))
			for _, h := range raw.Headers {
				msg.Headers[h.Key] = string(h.Value)
			}
		}

		c.deliver(msg)
	}
}

func (c *Consumer) deliver(msg Message) {
	var err error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err = c.handler(msg); err == nil {
			return
		}
		c.log.Warn("message handling failed",
			"topic", msg.Topic,
			"attempt", attempt+1,
			"error", err,
		)
	}
	c.log.Error("message dropped after retries",
		"topic", msg.Topic,
		"retries", c.maxRetries,
		"error", err,
	)
}

func (c *Consumer) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.reader.Close()
	})
	return err
}
