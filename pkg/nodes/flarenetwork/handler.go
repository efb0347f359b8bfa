package flarenetwork

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flareops/flarenode/pkg/flare"
	"github.com/flareops/flarenode/pkg/models"
	"github.com/flareops/flarenode/pkg/otelhelper"
	"go.opentelemetry.io/otel/trace"
)

// Doer sends a single API request.
type Doer interface {
	Do(ctx context.Context, creds flare.Credentials, req flare.Request) (any, error)
}

// handler runs one resource's operations over a batch.
type handler struct {
	resource           Resource
	client             Doer
	logger             *slog.Logger
	allowCustomBaseURL bool
}

// Handle processes the batch strictly in index order, one request in flight at
// a time. The operation is read once for the whole batch.
//
// On an item failure with continue on failure disabled, Handle returns the
// records of the items processed so far together with an *ItemError.
func (h *handler) Handle(ctx context.Context, batch Batch) ([]models.OutputRecord, error) {
	operationName := batch.Operation()

	op, ok := h.resource.Operation(operationName)
	if !ok {
		return nil, &ConfigurationError{Resource: h.resource.Name, Operation: operationName, Err: ErrUnknownOperation}
	}

	n := batch.Len()
	records := make([]models.OutputRecord, 0, n)

	if n == 0 {
		return records, nil
	}

	creds, err := batch.Credentials(ctx)
	if err != nil {
		return records, fmt.Errorf("failed to get credentials: %w", err)
	}

	if err := creds.Validate(h.allowCustomBaseURL); err != nil {
		return records, err
	}

	continueOnFail := batch.ContinueOnFail()
	span := trace.SpanFromContext(ctx)
	logger := h.logger.With("resource", h.resource.Name, "operation", op.Name)

	for i := range n {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		result, err := h.execute(ctx, op, batch, creds, i)
		if err != nil {
			if !continueOnFail {
				return records, &ItemError{Index: i, Err: err}
			}

			kind := Classify(err)
			logger.WarnContext(ctx, "Item failed, continuing", "item", i, "kind", kind, "error", err)
			otelhelper.RecordItemError(span, i, string(kind), err)

			records = append(records, models.ErrorRecord(i, errorMessage(err)))

			continue
		}

		logger.DebugContext(ctx, "Item processed", "item", i)

		records = append(records, models.OutputRecord{
			JSON:       result,
			PairedItem: models.PairedItem{Item: i},
		})
	}

	return records, nil
}

func (h *handler) execute(ctx context.Context, op Operation, batch Batch, creds flare.Credentials, index int) (any, error) {
	values := newValues(op.Params)

	for _, p := range op.Params {
		value, err := batch.Parameter(p.Name, index)
		if err != nil {
			return nil, &ParameterError{Name: p.Name, Err: err}
		}

		if value == nil {
			value = p.Default
		}

		values.set(p.Name, value)
	}

	req := op.Build(values)
	if err := values.Err(); err != nil {
		return nil, err
	}

	req.Auth = h.resource.Auth

	return h.client.Do(ctx, creds, req)
}
