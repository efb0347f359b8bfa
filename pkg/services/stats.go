package services

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/flareops/flarenode/pkg/eventbus"
	"github.com/flareops/flarenode/pkg/events"
)

// OperationStats aggregates the execution events of one resource and
// operation.
type OperationStats struct {
	Resource         string        `json:"resource"`
	Operation        string        `json:"operation"`
	Executions       int           `json:"executions"`
	FailedExecutions int           `json:"failed_executions"`
	Items            int           `json:"items"`
	FailedItems      int           `json:"failed_items"`
	TotalDuration    time.Duration `json:"total_duration"`
	LastError        string        `json:"last_error,omitempty"`
	LastErrorKind    string        `json:"last_error_kind,omitempty"`
	LastExecutionAt  time.Time     `json:"last_execution_at"`
}

// Stats consumes node execution events and keeps per operation counters.
type Stats struct {
	logger *slog.Logger

	mu         sync.RWMutex
	operations map[string]*OperationStats
}

func NewStats(logger *slog.Logger) *Stats {
	return &Stats{
		logger:     logger,
		operations: make(map[string]*OperationStats),
	}
}

// Register installs the event handlers on subscriber.
func (s *Stats) Register(subscriber eventbus.EventSubscriber) error {
	if err := subscriber.Handle(events.NodeExecutionFinishedEvent, s.handleFinished); err != nil {
		return err
	}

	return subscriber.Handle(events.NodeExecutionFailedEvent, s.handleFailed)
}

func (s *Stats) handleFinished(ctx context.Context, event eventbus.Event) error {
	finished, ok := event.(*events.NodeExecutionFinished)
	if !ok {
		s.logger.ErrorContext(ctx, "Invalid event type for NodeExecutionFinished")

		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	op := s.operation(finished.Resource, finished.Operation)
	op.Executions++
	op.Items += finished.ItemCount
	op.FailedItems += finished.FailedItems
	op.TotalDuration += finished.Duration
	op.LastExecutionAt = finished.Timestamp

	return nil
}

func (s *Stats) handleFailed(ctx context.Context, event eventbus.Event) error {
	failed, ok := event.(*events.NodeExecutionFailed)
	if !ok {
		s.logger.ErrorContext(ctx, "Invalid event type for NodeExecutionFailed")

		return nil
	}

	s.logger.WarnContext(ctx, "Node execution aborted",
		"execution_id", failed.ExecutionID,
		"resource", failed.Resource,
		"operation", failed.Operation,
		"item", failed.ItemIndex,
		"kind", failed.ErrorKind,
		"error", failed.Error,
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	op := s.operation(failed.Resource, failed.Operation)
	op.Executions++
	op.FailedExecutions++
	op.TotalDuration += failed.Duration
	op.LastError = failed.Error
	op.LastErrorKind = failed.ErrorKind
	op.LastExecutionAt = failed.Timestamp

	return nil
}

// operation must be called with mu held.
func (s *Stats) operation(resource, operation string) *OperationStats {
	key := resource + "/" + operation

	op, ok := s.operations[key]
	if !ok {
		op = &OperationStats{Resource: resource, Operation: operation}
		s.operations[key] = op
	}

	return op
}

// Snapshot returns a copy of the counters sorted by resource and operation.
func (s *Stats) Snapshot() []OperationStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]OperationStats, 0, len(s.operations))
	for _, op := range s.operations {
		out = append(out, *op)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Resource != out[j].Resource {
			return out[i].Resource < out[j].Resource
		}

		return out[i].Operation < out[j].Operation
	})

	return out
}
