package flarenetwork

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/flareops/flarenode/pkg/flare"
)

// ParamKind is the value type of an operation parameter.
type ParamKind string

const (
	KindString  ParamKind = "string"
	KindNumber  ParamKind = "number"
	KindJSON    ParamKind = "json"
	KindList    ParamKind = "list"
	KindOptions ParamKind = "options"
)

// Param declares one named parameter of an operation.
type Param struct {
	Name        string
	DisplayName string
	Kind        ParamKind
	Required    bool
	Default     any
	Options     []string
	Description string
}

// ErrMissingParameter is returned when a required parameter has no value.
var ErrMissingParameter = errors.New("missing required parameter")

// ParameterError reports a parameter that could not be read for an item.
type ParameterError struct {
	Name string
	Err  error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameter %q: %v", e.Name, e.Err)
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}

// Values holds the parameters resolved for one item. Accessors record the
// first conversion failure, which Err returns; builders read everything they
// need and the handler checks Err afterwards.
type Values struct {
	params map[string]Param
	values map[string]any
	err    error
}

func newValues(params []Param) *Values {
	v := &Values{
		params: make(map[string]Param, len(params)),
		values: make(map[string]any, len(params)),
	}

	for _, p := range params {
		v.params[p.Name] = p
	}

	return v
}

func (v *Values) set(name string, value any) {
	v.values[name] = value
}

// Err returns the first error recorded by an accessor.
func (v *Values) Err() error {
	return v.err
}

func (v *Values) fail(name string, err error) {
	if v.err == nil {
		v.err = &ParameterError{Name: name, Err: err}
	}
}

// String returns the parameter as a string. Numbers are formatted without a
// trailing fraction. Required string parameters must not be empty.
func (v *Values) String(name string) string {
	var s string

	switch val := v.values[name].(type) {
	case nil:
	case string:
		s = val
	case float64:
		s = formatNumber(val)
	case int:
		s = strconv.Itoa(val)
	case int64:
		s = strconv.FormatInt(val, 10)
	case json.Number:
		s = val.String()
	case bool:
		s = strconv.FormatBool(val)
	default:
		v.fail(name, fmt.Errorf("expected string, got %T", val))

		return ""
	}

	p := v.params[name]
	if p.Required && s == "" {
		v.fail(name, ErrMissingParameter)
	}

	if p.Kind == KindOptions && s != "" && len(p.Options) > 0 && !slices.Contains(p.Options, s) {
		v.fail(name, fmt.Errorf("value %q is not one of %s", s, strings.Join(p.Options, ", ")))
	}

	return s
}

// Number returns the parameter as a number. Strings are parsed; an empty or
// absent value is zero.
func (v *Values) Number(name string) float64 {
	switch val := v.values[name].(type) {
	case nil:
		if v.params[name].Required {
			v.fail(name, ErrMissingParameter)
		}

		return 0
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			v.fail(name, err)
		}

		return f
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			if v.params[name].Required {
				v.fail(name, ErrMissingParameter)
			}

			return 0
		}

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			v.fail(name, fmt.Errorf("expected number, got %q", val))
		}

		return f
	default:
		v.fail(name, fmt.Errorf("expected number, got %T", val))

		return 0
	}
}

// List splits a comma separated string parameter and trims each entry.
// Blank entries are dropped; a required list must keep at least one.
func (v *Values) List(name string) []string {
	if arr, ok := v.values[name].([]any); ok {
		out := make([]string, 0, len(arr))
		for _, e := range arr {
			if s := strings.TrimSpace(fmt.Sprint(e)); s != "" {
				out = append(out, s)
			}
		}

		if len(out) == 0 && v.params[name].Required {
			v.fail(name, ErrMissingParameter)
		}

		return out
	}

	s := v.String(name)
	if s == "" {
		return []string{}
	}

	parts := make([]string, 0, strings.Count(s, ",")+1)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 && v.params[name].Required {
		v.fail(name, ErrMissingParameter)
	}

	return parts
}

// JSON returns the parameter as a decoded JSON value. String values are
// parsed; already decoded values are returned as is.
func (v *Values) JSON(name string) any {
	switch val := v.values[name].(type) {
	case nil:
		if v.params[name].Required {
			v.fail(name, ErrMissingParameter)
		}

		return nil
	case string:
		if strings.TrimSpace(val) == "" {
			if v.params[name].Required {
				v.fail(name, ErrMissingParameter)
			}

			return nil
		}

		var out any
		if err := json.Unmarshal([]byte(val), &out); err != nil {
			v.fail(name, fmt.Errorf("invalid JSON: %w", err))

			return nil
		}

		return out
	default:
		return val
	}
}

// addString adds the parameter to q unless it is empty.
func (v *Values) addString(q *flare.Query, name string) {
	if s := v.String(name); s != "" {
		q.Add(name, s)
	}
}

// addNumber adds the parameter to q unless it is zero.
func (v *Values) addNumber(q *flare.Query, name string) {
	if n := v.Number(name); n != 0 {
		q.Add(name, formatNumber(n))
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
