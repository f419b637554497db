// Package parser converts device configuration mappings to and from their
// text representations.
//
// Device response wire format (device -> caller):
//
//	KEY = VALUE KEY = VALUE KEY = ...
//
// Query wire format (caller -> device):
//
//	?KEY=VALUE&KEY=VALUE
package parser

import (
	"errors"
	"fmt"
	"slices"

	"pearlcfg/internal/model"
)

// ErrUnknownFormat is returned by New for an unregistered format name.
var ErrUnknownFormat = errors.New("unknown format")

// Parser encodes and decodes a configuration mapping in one text format.
type Parser interface {
	Encode(p model.Params) (string, error)
	Decode(s string) (model.Params, error)
}

var formats = map[string]func() Parser{
	"response": func() Parser { return NewResponseParser() },
	"query":    func() Parser { return NewQueryParser() },
	"json":     func() Parser { return NewJSONParser() },
	"yaml":     func() Parser { return NewYAMLParser() },
}

// New returns the parser registered under name.
func New(name string) (Parser, error) {
	ctor, ok := formats[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
	return ctor(), nil
}

// Formats lists the registered format names in ascending order.
func Formats() []string {
	out := make([]string, 0, len(formats))
	for name := range formats {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
