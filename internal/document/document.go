package document

// Package document holds the node model shared by the query engine and the
// CLI: mappings are ordered key/value pair lists so that results come back
// in document order, sequences are []any, and scalars are strings, bools,
// nil, json.Number (JSON) or native Go numerics (YAML).

// Entry is a single key/value pair of a Mapping.
type Entry struct {
	Key   string
	Value any
}

// Mapping is an ordered collection of key/value pairs with unique keys.
// It preserves the key order of the decoded document.
type Mapping []Entry

// Get returns the value stored under key.
func (m Mapping) Get(key string) (any, bool) {
	for _, entry := range m {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}

// Set replaces the value under key or appends a new entry.
// It is intended for decode-time construction; queries never mutate.
func (m *Mapping) Set(key string, value any) {
	for i, entry := range *m {
		if entry.Key == key {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, Entry{Key: key, Value: value})
}

// Keys returns the mapping keys in order.
func (m Mapping) Keys() []string {
	keys := make([]string, len(m))
	for i, entry := range m {
		keys[i] = entry.Key
	}
	return keys
}

// Plain converts a node tree to plain map[string]any / []any form, for
// consumers that do not understand the ordered model (key order is lost).
func Plain(value any) any {
	switch current := value.(type) {
	case Mapping:
		out := make(map[string]any, len(current))
		for _, entry := range current {
			out[entry.Key] = Plain(entry.Value)
		}
		return out
	case []any:
		out := make([]any, len(current))
		for i, element := range current {
			out[i] = Plain(element)
		}
		return out
	default:
		return value
	}
}
