// Package testutil provides test data builders and a fake Flare API for
// testing.
package testutil

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/flareops/flarenode/pkg/credentials"
	"github.com/flareops/flarenode/pkg/models"
)

const TestAPIKey = "test-key"

// Upstream is a fake Flare API that records every request path it serves.
type Upstream struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

// NewUpstream starts a fake Flare API answering with handler. The server is
// closed when the test ends.
func NewUpstream(t *testing.T, handler http.HandlerFunc) *Upstream {
	t.Helper()

	u := &Upstream{}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.requests = append(u.requests, r.URL.RequestURI())
		u.mu.Unlock()

		handler(w, r)
	}))
	t.Cleanup(u.Close)

	return u
}

// Requests returns the request URIs served so far.
func (u *Upstream) Requests() []string {
	u.mu.Lock()
	defer u.mu.Unlock()

	return append([]string(nil), u.requests...)
}

// Credentials returns a static provider pointing at the fake API.
func (u *Upstream) Credentials() *credentials.StaticProvider {
	return credentials.NewStaticProvider(TestAPIKey, u.URL)
}

// RespondJSON returns a handler writing status and body.
func RespondJSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// CreateTestConfig creates a node config for networkInfo/getNetworkInfo that
// can be overridden.
func CreateTestConfig(overrides ...func(*models.NodeConfig)) models.NodeConfig {
	config := models.NodeConfig{
		Resource:   "networkInfo",
		Operation:  "getNetworkInfo",
		Parameters: map[string]any{},
	}

	for _, override := range overrides {
		override(&config)
	}

	return config
}

// WithOperation selects the resource and operation.
func WithOperation(resource, operation string) func(*models.NodeConfig) {
	return func(c *models.NodeConfig) {
		c.Resource = resource
		c.Operation = operation
	}
}

// WithParameter sets one operation parameter.
func WithParameter(name string, value any) func(*models.NodeConfig) {
	return func(c *models.NodeConfig) {
		c.Parameters[name] = value
	}
}

// WithContinueOnFail enables continue-on-fail.
func WithContinueOnFail() func(*models.NodeConfig) {
	return func(c *models.NodeConfig) {
		c.ContinueOnFail = true
	}
}

// CreateTestItems creates one item per JSON object.
func CreateTestItems(objects ...map[string]any) []models.Item {
	items := make([]models.Item, 0, len(objects))
	for _, obj := range objects {
		items = append(items, models.Item{JSON: obj})
	}

	return items
}
