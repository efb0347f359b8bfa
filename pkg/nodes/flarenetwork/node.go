// Package flarenetwork provides the Flare Network node: it maps a resource,
// an operation and per-item parameters to Flare data API requests.
package flarenetwork

import (
	"context"

	"github.com/flareops/flarenode/pkg/models"
	"github.com/flareops/flarenode/pkg/otelhelper"
	"github.com/flareops/flarenode/pkg/protocol"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const NodeType = "flarenetwork"

// Node executes one configured operation over batches of items.
type Node struct {
	id          string
	config      models.NodeConfig
	dispatcher  *Dispatcher
	credentials protocol.CredentialProvider
	tracer      trace.Tracer
}

// NewNode validates config and creates a node.
func NewNode(id string, config map[string]any, dispatcher *Dispatcher, credentials protocol.CredentialProvider) (*Node, error) {
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	return &Node{
		id:          id,
		config:      models.ParseNodeConfig(config),
		dispatcher:  dispatcher,
		credentials: credentials,
		tracer:      otel.Tracer("github.com/flareops/flarenode/pkg/nodes/flarenetwork"),
	}, nil
}

// ID returns the node ID.
func (n *Node) ID() string {
	return n.id
}

// Type returns the node type.
func (n *Node) Type() string {
	return NodeType
}

// Config returns the parsed configuration.
func (n *Node) Config() models.NodeConfig {
	return n.config
}

// Execute runs the configured operation once per item.
func (n *Node) Execute(ctx context.Context, executionCtx models.ExecutionContext, items []models.Item) ([]models.OutputRecord, error) {
	if executionCtx.NodeID == "" {
		executionCtx.NodeID = n.id
	}

	ctx, span := otelhelper.StartSpan(ctx, n.tracer, "flarenetwork.execute",
		attribute.String(otelhelper.ExecutionIDKey, executionCtx.ID),
		attribute.String(otelhelper.NodeIDKey, n.id),
		attribute.String(otelhelper.ResourceKey, n.config.Resource),
		attribute.String(otelhelper.OperationKey, n.config.Operation),
		attribute.Int(otelhelper.ItemCountKey, len(items)),
	)
	defer span.End()

	batch := newConfigBatch(n.config, items, executionCtx, n.credentials)

	records, err := n.dispatcher.Dispatch(ctx, batch)
	if err != nil {
		otelhelper.SetError(span, err)

		return records, err
	}

	return records, nil
}

// Validate validates a node configuration.
func (n *Node) Validate(config map[string]any) error {
	return ValidateConfig(config)
}
