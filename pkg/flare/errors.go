package flare

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// RemoteAPIError is returned when the API answers with a non-2xx status.
type RemoteAPIError struct {
	StatusCode int
	Message    string
	Body       any
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// TransportError is returned when no usable response was received: the
// request could not be built or sent, timed out, or the body was unreadable.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsRemoteAPIError reports whether err carries a remote error response.
func IsRemoteAPIError(err error) bool {
	var remoteErr *RemoteAPIError

	return errors.As(err, &remoteErr)
}

// IsTransportError reports whether err is a network level failure.
func IsTransportError(err error) bool {
	var transportErr *TransportError

	return errors.As(err, &transportErr)
}

func newRemoteAPIError(statusCode int, raw []byte) *RemoteAPIError {
	remoteErr := &RemoteAPIError{
		StatusCode: statusCode,
		Message:    http.StatusText(statusCode),
	}

	if len(raw) == 0 {
		return remoteErr
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		remoteErr.Body = string(raw)

		return remoteErr
	}

	remoteErr.Body = body
	if msg := extractMessage(body); msg != "" {
		remoteErr.Message = msg
	}

	return remoteErr
}

// extractMessage looks for the usual error message fields: message, error
// (string) and error.message.
func extractMessage(body any) string {
	obj, ok := body.(map[string]any)
	if !ok {
		return ""
	}

	if msg, ok := obj["message"].(string); ok && msg != "" {
		return msg
	}

	switch e := obj["error"].(type) {
	case string:
		return e
	case map[string]any:
		if msg, ok := e["message"].(string); ok {
			return msg
		}
	}

	return ""
}
