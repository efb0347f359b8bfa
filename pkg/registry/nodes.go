// Package registry provides node factory registration and lookup.
package registry

import (
	"github.com/flareops/flarenode/pkg/nodes/flarenetwork"
	"github.com/flareops/flarenode/pkg/protocol"
)

// RegisterDefaultNodes registers all built-in node factories with the registry.
func (r *Registry) RegisterDefaultNodes(client flarenetwork.Doer, credentials protocol.CredentialProvider, opts ...flarenetwork.DispatcherOption) {
	r.RegisterNode(flarenetwork.NewFactory(client, credentials, r.logger.With("module", flarenetwork.NodeType), opts...))
}
