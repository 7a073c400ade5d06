package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"
)

// ErrNotMapping is returned when a configuration file's root value is not a
// mapping.
var ErrNotMapping = errors.New("configuration root must be a mapping")

// YAML decodes .yaml and .yml files.
type YAML struct{}

// Extensions implements Decoder.
func (YAML) Extensions() []string { return []string{"yaml", "yml"} }

// Decode implements Decoder. An empty document decodes to an empty mapping.
func (YAML) Decode(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	return asMapping(raw)
}

// JSON decodes .json files.
type JSON struct{}

// Extensions implements Decoder.
func (JSON) Extensions() []string { return []string{"json"} }

// Decode implements Decoder.
func (JSON) Decode(data []byte) (map[string]any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal json: %w", err)
	}

	return asMapping(raw)
}

// JSONC decodes .jsonc files, JSON with comments and trailing commas.
type JSONC struct{}

// Extensions implements Decoder.
func (JSONC) Extensions() []string { return []string{"jsonc"} }

// Decode implements Decoder.
func (JSONC) Decode(data []byte) (map[string]any, error) {
	var raw any
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, fmt.Errorf("unmarshal jsonc: %w", err)
	}

	return asMapping(raw)
}

// TOML decodes .toml files.
type TOML struct{}

// Extensions implements Decoder.
func (TOML) Extensions() []string { return []string{"toml"} }

// Decode implements Decoder.
func (TOML) Decode(data []byte) (map[string]any, error) {
	raw := make(map[string]any)
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal toml: %w", err)
	}

	return asMapping(raw)
}

// asMapping normalizes a decoded document to a string-keyed mapping. A nil
// document (an empty file) becomes an empty mapping.
func asMapping(raw any) (map[string]any, error) {
	if raw == nil {
		return map[string]any{}, nil
	}

	mapping, ok := normalizeKeys(raw).(map[string]any)
	if !ok {
		return nil, ErrNotMapping
	}

	return mapping, nil
}

// normalizeKeys rewrites map[any]any nodes, which some decoders produce for
// non-string keys, into map[string]any recursively.
func normalizeKeys(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, child := range typed {
			out[key] = normalizeKeys(child)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, child := range typed {
			out[fmt.Sprintf("%v", key)] = normalizeKeys(child)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i, child := range typed {
			out[i] = normalizeKeys(child)
		}

		return out
	default:
		return value
	}
}
