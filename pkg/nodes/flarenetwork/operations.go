package flarenetwork

import (
	"net/http"

	"github.com/flareops/flarenode/pkg/flare"
)

// Resource names.
const (
	ResourcePriceFeeds      = "priceFeeds"
	ResourceDelegation      = "delegation"
	ResourceStateConnector  = "stateConnector"
	ResourceSyntheticAssets = "syntheticAssets"
	ResourceNetworkInfo     = "networkInfo"
)

// Operation is the request template of one resource operation.
type Operation struct {
	Name        string
	DisplayName string
	Description string
	Method      string
	Params      []Param
	// Build creates the request from the item's parameters. Accessor
	// failures are reported through Values.Err.
	Build func(v *Values) flare.Request
}

// Resource groups the operations of one API category. The auth style is
// fixed per resource.
type Resource struct {
	Name        string
	DisplayName string
	Auth        flare.AuthStyle
	Operations  []Operation
}

// Operation returns the named operation.
func (r Resource) Operation(name string) (Operation, bool) {
	for _, op := range r.Operations {
		if op.Name == name {
			return op, true
		}
	}

	return Operation{}, false
}

// Resources returns every resource in display order.
func Resources() []Resource {
	return []Resource{
		priceFeeds,
		delegation,
		stateConnector,
		syntheticAssets,
		networkInfo,
	}
}

// LookupResource returns the named resource.
func LookupResource(name string) (Resource, bool) {
	for _, r := range Resources() {
		if r.Name == name {
			return r, true
		}
	}

	return Resource{}, false
}

// Lookup returns the operation for a resource/operation pair or a
// ConfigurationError.
func Lookup(resource, operation string) (Resource, Operation, error) {
	r, ok := LookupResource(resource)
	if !ok {
		return Resource{}, Operation{}, &ConfigurationError{Resource: resource, Err: ErrUnsupportedResource}
	}

	op, ok := r.Operation(operation)
	if !ok {
		return Resource{}, Operation{}, &ConfigurationError{Resource: resource, Operation: operation, Err: ErrUnknownOperation}
	}

	return r, op, nil
}

func get(path string) flare.Request {
	return flare.Request{Method: http.MethodGet, Path: path}
}

func getWithQuery(path string, q flare.Query) flare.Request {
	return flare.Request{Method: http.MethodGet, Path: path, Query: q}
}

func post(path string, body any) flare.Request {
	return flare.Request{Method: http.MethodPost, Path: path, Body: body}
}

// Common parameter declarations.

func stringParam(name, display, description string, required bool) Param {
	return Param{Name: name, DisplayName: display, Kind: KindString, Required: required, Default: "", Description: description}
}

func numberParam(name, display, description string, required bool, def float64) Param {
	return Param{Name: name, DisplayName: display, Kind: KindNumber, Required: required, Default: def, Description: description}
}
