package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsantos/sievelang/record"
)

// LoadRecord reads a YAML document at path into a record.Record.
func LoadRecord(path string) (record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseRecord(data)
}

// ParseRecord decodes a YAML document already read into memory.
// yaml.v3 decodes a mapping into map[string]interface{} when the
// target is interface{}; normalizeRecord recursively retags every
// such mapping as record.Record so record.Get's type assertions see
// the type it expects at every depth, not just the root.
func ParseRecord(data []byte) (record.Record, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	return normalizeRecord(raw), nil
}

func normalizeRecord(m map[string]any) record.Record {
	out := make(record.Record, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return normalizeRecord(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeValue(e)
		}
		return out
	default:
		return v
	}
}
