package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/flareops/flarenode/pkg/eventbus"
	"github.com/flareops/flarenode/pkg/events"
	"github.com/flareops/flarenode/pkg/models"
	"github.com/flareops/flarenode/pkg/nodes/flarenetwork"
	"github.com/flareops/flarenode/pkg/otelhelper"
	"github.com/flareops/flarenode/pkg/registry"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ExecuteRequest describes one batch execution of a node.
type ExecuteRequest struct {
	NodeType   string         `validate:"required"`
	NodeID     string         `validate:"omitempty,max=128"`
	WorkflowID string         `validate:"omitempty,max=128"`
	Config     map[string]any `validate:"required"`
	Items      []models.Item
	Variables  map[string]any
}

// Execution runs node batches and publishes their outcome.
type Execution struct {
	registry  *registry.Registry
	publisher eventbus.EventPublisher
	logger    *slog.Logger
	validate  *validator.Validate
	tracer    trace.Tracer
}

// NewExecution creates an execution service. publisher may be nil.
func NewExecution(reg *registry.Registry, publisher eventbus.EventPublisher, logger *slog.Logger) *Execution {
	return &Execution{
		registry:  reg,
		publisher: publisher,
		logger:    logger,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		tracer:    otel.Tracer("github.com/flareops/flarenode/pkg/services"),
	}
}

// Run executes the batch. A request without items runs once with a single
// empty item.
//
// When the batch is aborted, Run returns the result holding the records
// produced before the failure together with an error wrapping
// ErrExecutionFailed.
func (s *Execution) Run(ctx context.Context, req *ExecuteRequest) (*models.NodeResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, NewValidationError("run", "invalid_request", err.Error(), errors.Join(ErrInvalidRequest, err))
	}

	if _, ok := s.registry.GetNodeFactory(req.NodeType); !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeTypeNotFound, req.NodeType)
	}

	executionID := "exec-" + uuid.New().String()

	nodeID := req.NodeID
	if nodeID == "" {
		nodeID = req.NodeType + "-" + uuid.New().String()[:8]
	}

	node, err := s.registry.CreateNode(ctx, req.NodeType, nodeID, req.Config)
	if err != nil {
		return nil, NewValidationError("run", "invalid_config", err.Error(), err)
	}

	items := req.Items
	if items == nil {
		items = []models.Item{{JSON: map[string]any{}}}
	}

	config := models.ParseNodeConfig(req.Config)

	ctx, span := otelhelper.StartSpan(ctx, s.tracer, "execution.run",
		attribute.String(otelhelper.ExecutionIDKey, executionID),
		attribute.String(otelhelper.NodeTypeKey, req.NodeType),
		attribute.String(otelhelper.NodeIDKey, nodeID),
	)
	defer span.End()

	logger := s.logger.With(
		"execution_id", executionID,
		"node_id", nodeID,
		"resource", config.Resource,
		"operation", config.Operation,
	)
	logger.InfoContext(ctx, "Executing node", "items", len(items))

	start := time.Now()

	records, execErr := node.Execute(ctx, models.ExecutionContext{
		ID:         executionID,
		WorkflowID: req.WorkflowID,
		NodeID:     nodeID,
		Variables:  req.Variables,
	}, items)

	duration := time.Since(start)

	if records == nil {
		records = []models.OutputRecord{}
	}

	result := &models.NodeResult{
		NodeID:      nodeID,
		ExecutionID: executionID,
		Records:     records,
		Status:      models.NodeStatusSuccess,
		FailedItems: models.CountFailed(records),
		Duration:    duration,
		Timestamp:   start.UTC(),
	}

	if execErr != nil {
		result.Status = models.NodeStatusError
		result.Error = execErr.Error()

		otelhelper.SetError(span, execErr)
		logger.ErrorContext(ctx, "Node execution failed", "error", execErr, "duration", duration)
		s.publish(ctx, executionID, failedEvent(req, result, config, execErr))

		if flarenetwork.IsConfigurationError(execErr) {
			return result, NewValidationError("run", "invalid_config", execErr.Error(), execErr)
		}

		return result, fmt.Errorf("%w: %w", ErrExecutionFailed, execErr)
	}

	logger.InfoContext(ctx, "Node execution finished",
		"records", len(records),
		"failed_items", result.FailedItems,
		"duration", duration,
	)
	s.publish(ctx, executionID, events.NodeExecutionFinished{
		BaseEvent:   events.NewBaseEvent(events.NodeExecutionFinishedEvent, req.WorkflowID),
		ExecutionID: executionID,
		NodeID:      nodeID,
		Resource:    config.Resource,
		Operation:   config.Operation,
		ItemCount:   len(items),
		FailedItems: result.FailedItems,
		Duration:    duration,
	})

	return result, nil
}

func failedEvent(req *ExecuteRequest, result *models.NodeResult, config models.NodeConfig, err error) events.NodeExecutionFailed {
	event := events.NodeExecutionFailed{
		BaseEvent:   events.NewBaseEvent(events.NodeExecutionFailedEvent, req.WorkflowID),
		ExecutionID: result.ExecutionID,
		NodeID:      result.NodeID,
		Resource:    config.Resource,
		Operation:   config.Operation,
		ItemIndex:   -1,
		Error:       err.Error(),
		Duration:    result.Duration,
	}

	var itemErr *flarenetwork.ItemError
	if errors.As(err, &itemErr) {
		event.ItemIndex = itemErr.Index
		event.ErrorKind = string(flarenetwork.Classify(itemErr))
	}

	return event
}

// publish delivers event best effort. Event bus failures never fail the
// execution.
func (s *Execution) publish(ctx context.Context, key string, event eventbus.Event) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.Publish(ctx, key, event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish execution event", "type", event.GetType(), "error", err)
	}
}
