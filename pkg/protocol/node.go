// Package protocol defines the interfaces and contracts for pluggable nodes.
package protocol

import (
	"context"

	"github.com/flareops/flarenode/pkg/flare"
	"github.com/flareops/flarenode/pkg/models"
)

// Node is a configured node instance that processes a batch of items.
type Node interface {
	// ID returns the node instance id
	ID() string

	// Type returns the node type id
	Type() string

	// Execute runs the node over items and returns exactly one record per item
	Execute(ctx context.Context, executionCtx models.ExecutionContext, items []models.Item) ([]models.OutputRecord, error)
}

// NodeFactory creates node instances and provides metadata about the node type.
type NodeFactory interface {
	// Create creates a new node instance with the given configuration
	Create(ctx context.Context, id string, config map[string]any) (Node, error)

	// ID returns the unique identifier for this node type
	ID() string

	// Name returns the human-readable name for this node type
	Name() string

	// Description returns a description of what this node does
	Description() string

	// Schema returns the JSON schema for configuring this node
	Schema() map[string]any
}

// CredentialProvider supplies API credentials. It is called once per batch.
type CredentialProvider interface {
	Credentials(ctx context.Context) (flare.Credentials, error)
}
