package flarenetwork

import (
	"errors"
	"fmt"

	"github.com/flareops/flarenode/pkg/flare"
)

// Configuration errors. They are never captured by continue on failure.
var (
	ErrUnsupportedResource = errors.New("unsupported resource")
	ErrUnknownOperation    = errors.New("unknown operation")
)

// ConfigurationError reports an invalid resource or operation selection.
type ConfigurationError struct {
	Resource  string
	Operation string
	Err       error
}

func (e *ConfigurationError) Error() string {
	if errors.Is(e.Err, ErrUnknownOperation) {
		return fmt.Sprintf("unknown operation %q for resource %q", e.Operation, e.Resource)
	}

	return fmt.Sprintf("the resource %q is not supported", e.Resource)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError

	return errors.As(err, &cfgErr)
}

// ItemError is returned when an item fails and continue on failure is off.
// It aborts the batch.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies an item failure.
type ErrorKind string

const (
	KindRemoteAPI ErrorKind = "remote_api"
	KindTransport ErrorKind = "transport"
)

// Classify returns the kind of a non-configuration failure. Every failure
// without a remote HTTP status, including local parameter errors, is a
// transport failure.
func Classify(err error) ErrorKind {
	if flare.IsRemoteAPIError(err) {
		return KindRemoteAPI
	}

	return KindTransport
}

// errorMessage is the text stored in {"error": ...} for a captured failure.
func errorMessage(err error) string {
	var remoteErr *flare.RemoteAPIError
	if errors.As(err, &remoteErr) {
		return remoteErr.Message
	}

	return err.Error()
}
