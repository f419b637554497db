package parser

import (
	"strings"

	"pearlcfg/internal/model"
)

// CreateQueryString serializes p as "?k1=v1&k2=v2" in ascending key order.
// Keys and values are written as-is without escaping; callers supply tokens
// that are already safe for a URL. An empty mapping yields "?".
func CreateQueryString(p model.Params) string {
	var b strings.Builder
	b.WriteByte('?')
	for i, k := range p.Keys() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(p[k])
	}
	return b.String()
}

// ParseQuery turns "?a=1&b=2" or "a=1&b=2" into a mapping without
// percent-decoding. A pair without "=" gets an empty value.
func ParseQuery(q string) model.Params {
	q = strings.TrimPrefix(q, "?")
	m := make(model.Params)
	for _, kv := range strings.Split(q, "&") {
		if kv == "" {
			continue
		}
		k, v, _ := strings.Cut(kv, "=")
		m[k] = v
	}
	return m
}

// QueryParser implements Parser using the query string format.
type QueryParser struct{}

// NewQueryParser creates a new query string parser.
func NewQueryParser() *QueryParser { return &QueryParser{} }

// Encode converts p into a query string.
func (q *QueryParser) Encode(p model.Params) (string, error) {
	return CreateQueryString(p), nil
}

// Decode parses a query string into a mapping.
func (q *QueryParser) Decode(s string) (model.Params, error) {
	return ParseQuery(strings.TrimSpace(s)), nil
}
