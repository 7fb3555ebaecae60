package extractor

import (
	"errors"
	"fmt"

	"github.com/theory/jsonpath"
)

var (
	// ErrInvalidInput indicates an unusable expression.
	ErrInvalidInput = errors.New("extractor: invalid input")

	// ErrNotFound indicates the query selected nothing.
	ErrNotFound = errors.New("extractor: no match")
)

// Query is a compiled JSONPath expression. It is immutable and safe to
// reuse across documents.
type Query struct {
	path *jsonpath.Path
}

// Compile parses a standard JSONPath expression (e.g. "$.user.name",
// "$..items[0]") once, so syntax errors surface before any document is
// read and repeated evaluations skip the parse.
func Compile(pathExpr string) (*Query, error) {
	if pathExpr == "" {
		return nil, fmt.Errorf("%w: JSONPath expression is empty", ErrInvalidInput)
	}

	path, err := jsonpath.Parse(pathExpr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSONPath %s: %v", ErrInvalidInput, pathExpr, err)
	}

	return &Query{path: path}, nil
}

// Select evaluates the query against a plain decoded document
// (map[string]any / []any / scalars) and returns every selected value.
func (q *Query) Select(doc any) []any {
	return []any(q.path.Select(doc))
}

// First returns the first selected value, or ErrNotFound.
func (q *Query) First(doc any) (any, error) {
	results := q.Select(doc)
	if len(results) == 0 {
		return nil, ErrNotFound
	}
	return results[0], nil
}
