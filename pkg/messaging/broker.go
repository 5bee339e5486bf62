package messaging

import (
	"context"
	"time"
)

// Event types published by the tracker.
const (
	EventNotificationCreated = "notification.created"
)

// Broker defines the interface for message brokers
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Close() error
}

// Message is the envelope written to the broker.
type Message struct {
	Type       string      `json:"type"`
	Payload    interface{} `json:"payload"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// NewMessage wraps payload in an envelope stamped with the current time.
func NewMessage(eventType string, payload interface{}) Message {
	return Message{
		Type:       eventType,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

type nopBroker struct{}

// NewNopBroker returns a broker that drops every message. Used when Redis is not configured.
func NewNopBroker() Broker {
	return nopBroker{}
}

func (nopBroker) Publish(context.Context, string, interface{}) error { return nil }

func (nopBroker) Close() error { return nil }
