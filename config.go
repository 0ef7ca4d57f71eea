package fracjson

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// LoadOptions reads a YAML (or JSON) options file. Keys use the kebab-case
// names of the Options fields; keys absent from the file keep the value from
// base, or from DefaultOptions when base is nil.
func LoadOptions(path string, base *Options) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	opts, err := DecodeOptions(data, base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// DecodeOptions decodes options from YAML data layered over base.
func DecodeOptions(data []byte, base *Options) (*Options, error) {
	if base == nil {
		base = DefaultOptions
	}
	opts := *base
	if err := yaml.UnmarshalWithOptions(data, &opts, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	return &opts, nil
}

// EncodeOptions renders opts as YAML accepted by DecodeOptions.
func EncodeOptions(opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	out, err := yaml.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("encode options: %w", err)
	}
	return out, nil
}
