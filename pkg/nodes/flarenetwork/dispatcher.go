package flarenetwork

import (
	"context"
	"log/slog"

	"github.com/flareops/flarenode/pkg/models"
)

// Dispatcher selects the resource handler for a batch.
type Dispatcher struct {
	client             Doer
	logger             *slog.Logger
	allowCustomBaseURL bool
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// AllowCustomBaseURL accepts credentials whose base URL is not one of the
// known networks.
func AllowCustomBaseURL() DispatcherOption {
	return func(d *Dispatcher) {
		d.allowCustomBaseURL = true
	}
}

// NewDispatcher creates a dispatcher sending requests through client.
func NewDispatcher(client Doer, logger *slog.Logger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		client: client,
		logger: logger,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dispatch runs the batch through the handler of its resource. The output has
// one record per item in input order, unless an error aborts the batch.
func (d *Dispatcher) Dispatch(ctx context.Context, batch Batch) ([]models.OutputRecord, error) {
	name := batch.Resource()

	resource, ok := LookupResource(name)
	if !ok {
		return nil, &ConfigurationError{Resource: name, Err: ErrUnsupportedResource}
	}

	h := &handler{
		resource:           resource,
		client:             d.client,
		logger:             d.logger,
		allowCustomBaseURL: d.allowCustomBaseURL,
	}

	return h.Handle(ctx, batch)
}
