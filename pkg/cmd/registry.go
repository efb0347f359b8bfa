// Package cmd provides common initialization functions for command-line applications.
package cmd

import (
	"log/slog"

	"github.com/flareops/flarenode/pkg/nodes/flarenetwork"
	"github.com/flareops/flarenode/pkg/protocol"
	"github.com/flareops/flarenode/pkg/registry"
)

// NewRegistry creates a registry with the built-in nodes and any node plugins
// found in pluginsPath.
func NewRegistry(
	logger *slog.Logger,
	client flarenetwork.Doer,
	credentials protocol.CredentialProvider,
	pluginsPath string,
	opts ...flarenetwork.DispatcherOption,
) (*registry.Registry, error) {
	reg := registry.NewRegistry(logger)

	if pluginsPath != "" {
		if err := reg.LoadNodePlugins(pluginsPath); err != nil {
			return nil, err
		}
	}

	reg.RegisterDefaultNodes(client, credentials, opts...)

	return reg, nil
}
