package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/dotselect/internal/document"
)

// Formatter re-encodes matched values, one document per match: indented
// JSON (single-line when compact is set), or YAML documents separated
// by '---'.
type Formatter struct {
	writer  io.Writer
	format  document.Format
	raw     bool
	compact bool
	wrote   bool
}

func New(w io.Writer, format document.Format, raw, compact bool) *Formatter {
	return &Formatter{
		writer:  w,
		format:  format,
		raw:     raw,
		compact: compact,
	}
}

// Write encodes a single matched value.
func (f *Formatter) Write(value any) error {
	if f.raw {
		if s, ok := value.(string); ok {
			return f.writeLine(s)
		}
	}

	switch f.format {
	case document.FormatYAML:
		return f.writeYAML(value)
	default:
		return f.writeJSON(value)
	}
}

func (f *Formatter) writeJSON(value any) error {
	var (
		payload []byte
		err     error
	)
	if f.compact {
		payload, err = json.Marshal(value)
	} else {
		payload, err = json.MarshalIndent(value, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return f.writeLine(string(payload))
}

func (f *Formatter) writeYAML(value any) error {
	if f.wrote {
		if _, err := fmt.Fprintln(f.writer, "---"); err != nil {
			return err
		}
	}

	payload, err := yaml.Marshal(toYAML(value))
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}

	f.wrote = true
	_, err = f.writer.Write(payload)
	return err
}

func (f *Formatter) writeLine(line string) error {
	f.wrote = true
	_, err := fmt.Fprintln(f.writer, line)
	return err
}

// toYAML rewrites the node model for the YAML encoder: ordered mappings
// become MapSlice and json.Number becomes a native numeric so it is not
// emitted as a quoted string.
func toYAML(value any) any {
	switch current := value.(type) {
	case document.Mapping:
		out := make(yaml.MapSlice, len(current))
		for i, entry := range current {
			out[i] = yaml.MapItem{Key: entry.Key, Value: toYAML(entry.Value)}
		}
		return out
	case map[string]any:
		keys := slices.Sorted(maps.Keys(current))
		out := make(yaml.MapSlice, len(keys))
		for i, key := range keys {
			out[i] = yaml.MapItem{Key: key, Value: toYAML(current[key])}
		}
		return out
	case []any:
		out := make([]any, len(current))
		for i, element := range current {
			out[i] = toYAML(element)
		}
		return out
	case json.Number:
		if parsed, err := current.Int64(); err == nil {
			return parsed
		}
		if parsed, err := current.Float64(); err == nil {
			return parsed
		}
		return current.String()
	default:
		return value
	}
}
