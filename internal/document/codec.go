package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

const (
	FormatAuto Format = iota
	FormatJSON
	FormatYAML
)

// Format identifies the serialization format of a document.
type Format int

var (
	// ErrMalformed indicates input that could not be decoded.
	ErrMalformed = errors.New("document: malformed input")

	// ErrUnknownFormat indicates an unrecognized format name.
	ErrUnknownFormat = errors.New("document: unknown format")
)

// ParseFormat maps a format name from the command line to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "auto", "":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %q (expected json, yaml or auto)", ErrUnknownFormat, name)
	}
}

// DetectFormat resolves FormatAuto using the filename extension, falling
// back to sniffing the first non-whitespace byte. JSON and YAML decode into
// the same node shape, so a wrong guess on sniffed input still fails loudly
// rather than silently misreading.
func DetectFormat(filename string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 {
		switch trimmed[0] {
		case '{', '[', '"':
			return FormatJSON
		}
	}
	return FormatYAML
}

// Decode parses data into the ordered node model. FormatAuto is resolved
// with DetectFormat against an empty filename.
func Decode(data []byte, format Format) (any, error) {
	if format == FormatAuto {
		format = DetectFormat("", data)
	}

	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: format %d", ErrUnknownFormat, format)
	}
}

// decodeJSON walks the token stream so mapping key order survives decoding,
// with json.Number for all numeric values.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	value, err := decodeJSONValue(dec, tok)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformed)
	}

	return value, nil
}

func decodeJSONValue(dec *json.Decoder, tok json.Token) (any, error) {
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		return decodeJSONMapping(dec)
	case '[':
		return decodeJSONSequence(dec)
	default:
		return nil, fmt.Errorf("%w: unexpected %q", ErrMalformed, delim.String())
	}
}

func decodeJSONMapping(dec *json.Decoder) (any, error) {
	mapping := Mapping{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return mapping, nil
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key is not a string", ErrMalformed)
		}

		valueTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		value, err := decodeJSONValue(dec, valueTok)
		if err != nil {
			return nil, err
		}
		mapping.Set(key, value)
	}
}

func decodeJSONSequence(dec *json.Decoder) (any, error) {
	sequence := make([]any, 0)
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return sequence, nil
		}

		value, err := decodeJSONValue(dec, tok)
		if err != nil {
			return nil, err
		}
		sequence = append(sequence, value)
	}
}

// decodeYAML decodes with ordered maps so mapping key order survives, then
// rewrites goccy's MapSlice into the Mapping model.
func decodeYAML(data []byte) (any, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return fromYAML(raw), nil
}

func fromYAML(value any) any {
	switch current := value.(type) {
	case yaml.MapSlice:
		mapping := make(Mapping, 0, len(current))
		for _, item := range current {
			mapping.Set(fmt.Sprintf("%v", item.Key), fromYAML(item.Value))
		}
		return mapping
	case []any:
		sequence := make([]any, len(current))
		for i, element := range current {
			sequence[i] = fromYAML(element)
		}
		return sequence
	default:
		return value
	}
}

// MarshalJSON emits entries in insertion order.
func (m Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML emits entries in insertion order via goccy's MapSlice.
func (m Mapping) MarshalYAML() (any, error) {
	out := make(yaml.MapSlice, len(m))
	for i, entry := range m {
		out[i] = yaml.MapItem{Key: entry.Key, Value: entry.Value}
	}
	return out, nil
}
