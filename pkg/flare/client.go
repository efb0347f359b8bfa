package flare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/flareops/flarenode/pkg/otelhelper"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const DefaultTimeout = 30 * time.Second

// Client performs requests against the Flare data API. It holds no
// per-batch state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	tracer     trace.Tracer
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(client *Client) {
		client.logger = l
	}
}

// NewClient creates a client with an instrumented transport and the default
// timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tracer: otel.Tracer("github.com/flareops/flarenode/pkg/flare"),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Do sends req and returns the decoded JSON response body unchanged. A
// non-2xx status yields a *RemoteAPIError; any other failure yields a
// *TransportError.
func (c *Client) Do(ctx context.Context, creds Credentials, req Request) (any, error) {
	ctx, span := otelhelper.StartSpan(ctx, c.tracer, "flare.request",
		attribute.String(otelhelper.HTTPMethodKey, req.Method),
		attribute.String(otelhelper.HTTPPathKey, req.Path),
	)
	defer span.End()

	result, err := c.do(ctx, creds, req)
	if err != nil {
		otelhelper.SetError(span, err)

		return nil, err
	}

	return result, nil
}

func (c *Client) do(ctx context.Context, creds Credentials, req Request) (any, error) {
	var body io.Reader

	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &TransportError{Op: "encode request body", Err: err}
		}

		body = bytes.NewReader(payload)
	}

	target := req.URL(creds.Base())

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, &TransportError{Op: "create request", Err: err}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	req.Auth.Apply(httpReq.Header, creds.APIKey)

	c.logger.DebugContext(ctx, "Sending Flare API request", "method", req.Method, "path", req.Path)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: "request failed", Err: err}
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.WarnContext(ctx, "Failed to close response body", "error", err)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newRemoteAPIError(resp.StatusCode, raw)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var result any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &TransportError{Op: "decode response", Err: fmt.Errorf("invalid JSON from %s: %w", req.Path, err)}
	}

	return result, nil
}
