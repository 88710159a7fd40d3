package kafka

import "time"

type Message struct {
	Key     []byte
	Value   []byte
	Topic   string
	Time    time.Time
	Headers map[string]string
}

// MessageHandler processes one consumed message. A non-nil error triggers a
// retry up to the consumer's retry budget.
type MessageHandler func(msg Message) error
