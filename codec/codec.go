// Package codec moves untyped mappings across the import/export boundary:
// decoding JSON and YAML documents into the key-value form entity import
// consumes, and encoding export output back into documents.
package codec

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"entitycast/entity"
)

// DecodeJSON parses a JSON object document into an untyped mapping.
func DecodeJSON(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse JSON document: %w", err)
	}

	return m, nil
}

// DecodeYAML parses a YAML mapping document into an untyped mapping. Nested
// mappings with non-string keys are normalized to string-keyed maps.
func DecodeYAML(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse YAML document: %w", err)
	}

	normalizeMapping(m)

	return m, nil
}

// EncodeJSON serializes a plain structure, typically export output.
func EncodeJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON document: %w", err)
	}

	return data, nil
}

// EncodeYAML serializes a plain structure to YAML.
func EncodeYAML(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML document: %w", err)
	}

	return data, nil
}

// ImportJSON decodes a JSON object and imports it as an entity of type t.
func ImportJSON(t *entity.Type, data []byte) (*entity.Entity, error) {
	m, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}

	return entity.Import(t, m)
}

// ImportYAML decodes a YAML mapping and imports it as an entity of type t.
func ImportYAML(t *entity.Type, data []byte) (*entity.Entity, error) {
	m, err := DecodeYAML(data)
	if err != nil {
		return nil, err
	}

	return entity.Import(t, m)
}

// ExportJSON exports the entity and encodes the result as JSON.
func ExportJSON(e *entity.Entity, opts entity.ExportOptions) ([]byte, error) {
	return EncodeJSON(e.Export(opts))
}

// ExportYAML exports the entity and encodes the result as YAML.
func ExportYAML(e *entity.Entity, opts entity.ExportOptions) ([]byte, error) {
	return EncodeYAML(e.Export(opts))
}

// normalizeMapping rewrites any nested map[any]any values (as older YAML
// content can produce) into map[string]any, in place where possible.
func normalizeMapping(m map[string]any) {
	for k, v := range m {
		m[k] = normalizeValue(v)
	}
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		normalizeMapping(val)
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeValue(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = normalizeValue(item)
		}
		return val
	default:
		return v
	}
}
