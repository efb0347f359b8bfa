package flarenetwork

import (
	"context"

	"github.com/flareops/flarenode/pkg/flare"
	"github.com/flareops/flarenode/pkg/models"
	"github.com/flareops/flarenode/pkg/protocol"
	"github.com/flareops/flarenode/pkg/template"
)

// Batch is what the dispatcher needs from the host for one execution.
// Resource and operation are batch-level selectors; parameters are resolved
// per item index.
type Batch interface {
	Resource() string
	Operation() string
	Len() int
	Parameter(name string, index int) (any, error)
	Credentials(ctx context.Context) (flare.Credentials, error)
	ContinueOnFail() bool
}

// configBatch resolves parameters from a node config, rendering templated
// values against each item.
type configBatch struct {
	config       models.NodeConfig
	items        []models.Item
	executionCtx models.ExecutionContext
	credentials  protocol.CredentialProvider
}

func newConfigBatch(
	config models.NodeConfig,
	items []models.Item,
	executionCtx models.ExecutionContext,
	credentials protocol.CredentialProvider,
) *configBatch {
	return &configBatch{
		config:       config,
		items:        items,
		executionCtx: executionCtx,
		credentials:  credentials,
	}
}

func (b *configBatch) Resource() string {
	return b.config.Resource
}

func (b *configBatch) Operation() string {
	return b.config.Operation
}

func (b *configBatch) Len() int {
	return len(b.items)
}

// Parameter returns the configured value for name at index. String values
// containing template actions are rendered with the item in scope and stay
// strings; a nil result means the parameter is not set.
func (b *configBatch) Parameter(name string, index int) (any, error) {
	raw, ok := b.config.Parameters[name]
	if !ok {
		return nil, nil
	}

	s, ok := raw.(string)
	if !ok || !template.NeedsTemplating(s) {
		return raw, nil
	}

	rendered, err := template.RenderForItem(s, b.items[index], index, &b.executionCtx)
	if err != nil {
		return nil, err
	}

	return rendered, nil
}

func (b *configBatch) Credentials(ctx context.Context) (flare.Credentials, error) {
	return b.credentials.Credentials(ctx)
}

func (b *configBatch) ContinueOnFail() bool {
	return b.config.ContinueOnFail
}
