package flarenetwork

import (
	"context"
	"log/slog"

	"github.com/flareops/flarenode/pkg/protocol"
)

// Factory creates Flare Network nodes sharing one dispatcher and credential
// provider.
type Factory struct {
	dispatcher  *Dispatcher
	credentials protocol.CredentialProvider
}

// NewFactory creates a new Flare Network node factory.
func NewFactory(client Doer, credentials protocol.CredentialProvider, logger *slog.Logger, opts ...DispatcherOption) *Factory {
	return &Factory{
		dispatcher:  NewDispatcher(client, logger, opts...),
		credentials: credentials,
	}
}

// Create creates a new Node instance.
func (f *Factory) Create(_ context.Context, id string, config map[string]any) (protocol.Node, error) {
	node, err := NewNode(id, config, f.dispatcher, f.credentials)
	if err != nil {
		return nil, err
	}

	return node, nil
}

// ID returns the factory ID.
func (f *Factory) ID() string {
	return NodeType
}

// Name returns the factory name.
func (f *Factory) Name() string {
	return "Flare Network"
}

// Description returns the factory description.
func (f *Factory) Description() string {
	return "Query FTSO price feeds, delegation, attestations, FAssets and block explorer data from the Flare Network API"
}

// Schema returns the JSON schema for node configuration.
func (f *Factory) Schema() map[string]any {
	return ConfigSchema()
}
