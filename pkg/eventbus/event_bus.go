// Package eventbus carries node execution events from the execution service
// to the consumers subscribed in the same process or on Kafka.
package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/flareops/flarenode/pkg/events"
)

var ErrUnknownEventType = errors.New("unknown event type")

// Event is a payload published on the bus. Its type travels in the message
// metadata so consumers can decode it without inspecting the payload.
type Event interface {
	GetType() events.EventType
}

type EventPublisher interface {
	// Publish sends event partitioned by key, usually the execution id.
	Publish(ctx context.Context, key string, event Event) error
}

// EventHandler receives a decoded *events.NodeExecutionFinished or
// *events.NodeExecutionFailed. Returning an error nacks the message.
type EventHandler func(ctx context.Context, event Event) error

type EventSubscriber interface {
	// Handle registers the handler of eventType. Events without a handler
	// are acknowledged and dropped.
	Handle(eventType events.EventType, handler EventHandler) error
	// Subscribe starts delivering events until ctx is done.
	Subscribe(ctx context.Context) error
}

type EventBus interface {
	EventPublisher
	EventSubscriber
	Close() error
	GenerateID() string
}

// Decode unmarshals payload into the event type named by eventType.
func Decode(eventType events.EventType, payload []byte) (Event, error) {
	var event Event

	switch eventType {
	case events.NodeExecutionFinishedEvent:
		event = &events.NodeExecutionFinished{}
	case events.NodeExecutionFailedEvent:
		event = &events.NodeExecutionFailed{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, eventType)
	}

	if err := json.Unmarshal(payload, event); err != nil {
		return nil, fmt.Errorf("failed to decode %s event: %w", eventType, err)
	}

	return event, nil
}
