package flarenetwork

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/flareops/flarenode/pkg/flare"
	"github.com/flareops/flarenode/pkg/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCreds = flare.Credentials{APIKey: "test-key", BaseURL: flare.BaseURLFlare}

// stubBatch serves the same parameters to every item, or per-item
// parameters when perItem is set.
type stubBatch struct {
	resource       string
	operation      string
	params         map[string]any
	perItem        []map[string]any
	n              int
	creds          flare.Credentials
	credsErr       error
	continueOnFail bool
}

func (b *stubBatch) Resource() string  { return b.resource }
func (b *stubBatch) Operation() string { return b.operation }

func (b *stubBatch) Len() int {
	if b.perItem != nil {
		return len(b.perItem)
	}

	return b.n
}

func (b *stubBatch) Parameter(name string, index int) (any, error) {
	if b.perItem != nil {
		return b.perItem[index][name], nil
	}

	return b.params[name], nil
}

func (b *stubBatch) Credentials(context.Context) (flare.Credentials, error) {
	if b.credsErr != nil {
		return flare.Credentials{}, b.credsErr
	}

	if b.creds == (flare.Credentials{}) {
		return testCreds, nil
	}

	return b.creds, nil
}

func (b *stubBatch) ContinueOnFail() bool { return b.continueOnFail }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordRequests makes the mock answer every call with response and
// collects the requests it receives.
func recordRequests(doer *mocks.MockDoer, response any) *[]flare.Request {
	var requests []flare.Request

	doer.On("Do", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			requests = append(requests, args.Get(2).(flare.Request))
		}).
		Return(response, nil)

	return &requests
}

func bodyJSON(t *testing.T, body any) string {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	return string(raw)
}
