// Package events defines the notifications published when a node batch finishes.
package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

// Topic is the topic node execution events are published on.
const Topic = "flarenode.events"

const EventMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	NodeExecutionFinishedEvent EventType = "node.execution.finished"
	NodeExecutionFailedEvent   EventType = "node.execution.failed"
)

type BaseEvent struct {
	ID         string         `json:"id"`
	Type       EventType      `json:"type"`
	Timestamp  time.Time      `json:"timestamp"`
	WorkflowID string         `json:"workflow_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

func NewBaseEvent(eventType EventType, workflowID string) BaseEvent {
	return BaseEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		Timestamp:  time.Now().UTC(),
		WorkflowID: workflowID,
		Metadata:   make(map[string]any),
	}
}

// NodeExecutionFinished is published when every item of a batch produced a
// record, including error records captured by continue on failure.
type NodeExecutionFinished struct {
	BaseEvent

	ExecutionID string        `json:"execution_id"`
	NodeID      string        `json:"node_id"`
	Resource    string        `json:"resource"`
	Operation   string        `json:"operation"`
	ItemCount   int           `json:"item_count"`
	FailedItems int           `json:"failed_items"`
	Duration    time.Duration `json:"duration"`
}

func (n NodeExecutionFinished) GetType() EventType {
	return NodeExecutionFinishedEvent
}

// NodeExecutionFailed is published when a batch was aborted.
type NodeExecutionFailed struct {
	BaseEvent

	ExecutionID string        `json:"execution_id"`
	NodeID      string        `json:"node_id"`
	Resource    string        `json:"resource"`
	Operation   string        `json:"operation"`
	ItemIndex   int           `json:"item_index"`
	ErrorKind   string        `json:"error_kind"`
	Error       string        `json:"error"`
	Duration    time.Duration `json:"duration"`
}

func (n NodeExecutionFailed) GetType() EventType {
	return NodeExecutionFailedEvent
}
