package parser

import (
	"gopkg.in/yaml.v3"

	"pearlcfg/internal/model"
)

// YAMLParser implements Parser interface using YAML serialization.
type YAMLParser struct{}

// NewYAMLParser creates a new YAML parser.
func NewYAMLParser() *YAMLParser { return &YAMLParser{} }

// Encode encodes p into a YAML mapping. yaml.v3 emits map keys sorted.
func (p *YAMLParser) Encode(params model.Params) (string, error) {
	b, err := yaml.Marshal(params.Clone())
	return string(b), err
}

// Decode decodes a YAML mapping of scalar values into a mapping.
func (p *YAMLParser) Decode(s string) (model.Params, error) {
	var params model.Params
	if err := yaml.Unmarshal([]byte(s), &params); err != nil {
		return nil, err
	}
	return params.Clone(), nil
}
