// Package parser implements the JSONParser which encodes and decodes
// configuration mappings in JSON format.
package parser

import (
	"encoding/json"

	"pearlcfg/internal/model"
)

// JSONParser implements Parser interface using JSON serialization.
type JSONParser struct{}

// NewJSONParser creates a new JSON parser.
func NewJSONParser() *JSONParser { return &JSONParser{} }

// Encode encodes p into an indented JSON object with sorted keys.
func (p *JSONParser) Encode(params model.Params) (string, error) {
	b, err := json.MarshalIndent(params.Clone(), "", "  ")
	return string(b), err
}

// Decode decodes a JSON object of string values into a mapping.
func (p *JSONParser) Decode(s string) (model.Params, error) {
	var params model.Params
	if err := json.Unmarshal([]byte(s), &params); err != nil {
		return nil, err
	}
	return params.Clone(), nil
}
