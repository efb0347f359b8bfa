package flare

import (
	"net/http"
	"net/url"
	"strings"
)

// AuthStyle selects how the API key is sent.
type AuthStyle int

const (
	// AuthAPIKeyHeader sends the key as X-API-Key.
	AuthAPIKeyHeader AuthStyle = iota
	// AuthBearer sends the key as an Authorization bearer token.
	AuthBearer
)

const HeaderAPIKey = "X-API-Key"

func (a AuthStyle) String() string {
	switch a {
	case AuthBearer:
		return "bearer"
	default:
		return "api_key"
	}
}

// Apply sets the authentication header for apiKey on h.
func (a AuthStyle) Apply(h http.Header, apiKey string) {
	switch a {
	case AuthBearer:
		h.Set("Authorization", "Bearer "+apiKey)
	default:
		h.Set(HeaderAPIKey, apiKey)
	}
}

// Request is a single outbound call against the API. It is built fresh for
// every item and never reused.
type Request struct {
	Method string
	// Path is appended to the base URL. Dynamic segments must already be
	// escaped, see PathJoin.
	Path  string
	Query Query
	Body  any
	Auth  AuthStyle
}

// URL returns base + path and the encoded query string, if any.
func (r Request) URL(base string) string {
	u := strings.TrimRight(base, "/") + r.Path
	if r.Query.Len() == 0 {
		return u
	}

	return u + "?" + r.Query.Encode()
}

// Query is an ordered set of query parameters. Unlike url.Values it encodes
// keys in insertion order.
type Query struct {
	keys   []string
	values url.Values
}

// Add appends value to key.
func (q *Query) Add(key, value string) {
	if q.values == nil {
		q.values = url.Values{}
	}

	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}

	q.values.Add(key, value)
}

// Get returns the first value for key.
func (q Query) Get(key string) string {
	return q.values.Get(key)
}

// Len returns the number of distinct keys.
func (q Query) Len() int {
	return len(q.keys)
}

// Encode encodes the query in insertion order using standard URL query
// escaping.
func (q Query) Encode() string {
	var b strings.Builder

	for _, k := range q.keys {
		for _, v := range q.values[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}

			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}

	return b.String()
}

// PathJoin builds a path from static parts and dynamic segments. Arguments at
// odd positions are escaped as single path segments.
//
//	PathJoin("/network/blocks/", hash)
//	PathJoin("/network/addresses/", addr, "/balance")
func PathJoin(parts ...string) string {
	var b strings.Builder

	for i, p := range parts {
		if i%2 == 1 {
			b.WriteString(url.PathEscape(p))

			continue
		}

		b.WriteString(p)
	}

	return b.String()
}
