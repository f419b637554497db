package parser

import (
	"strings"

	"pearlcfg/internal/keys"
	"pearlcfg/internal/model"
)

// separator is the free-standing token placed between a key and its value.
const separator = "="

// ParseResponse reconstructs the key/value pairs of a device response.
//
// Tokens are split on single spaces and every "=" token is discarded. A
// recognized key waits for the next token: a non-key becomes its value, while
// another key gives it an empty value. Values with no waiting key and a key
// left waiting at the end of input are dropped. Repeated keys keep the last
// value. The function never fails; malformed input yields fewer entries.
func ParseResponse(response string) model.Params {
	result := make(model.Params)
	var pending string
	hasPending := false

	for _, tok := range strings.Split(response, " ") {
		if tok == separator {
			continue
		}
		tok = strings.TrimSpace(tok)

		if !keys.IsKey(tok) {
			if hasPending {
				result[pending] = tok
				hasPending = false
			}
			continue
		}
		if hasPending {
			result[pending] = ""
		}
		pending, hasPending = tok, true
	}

	return result
}

// ResponseParser implements Parser using the device response format.
type ResponseParser struct{}

// NewResponseParser creates a new response parser.
func NewResponseParser() *ResponseParser { return &ResponseParser{} }

// Encode renders p as "KEY = VALUE" pairs in ascending key order.
// An empty value renders as "KEY =", which ParseResponse reads back as empty
// unless it is the last pair.
func (r *ResponseParser) Encode(p model.Params) (string, error) {
	var b strings.Builder
	for i, k := range p.Keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(" = ")
		b.WriteString(p[k])
	}
	return b.String(), nil
}

// Decode parses a device response. It never returns an error.
func (r *ResponseParser) Decode(s string) (model.Params, error) {
	return ParseResponse(s), nil
}
