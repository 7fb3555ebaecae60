package dotpath

import (
	"iter"
	"maps"
	"slices"
	"strconv"

	"github.com/jacoelho/dotselect/internal/document"
	"github.com/jacoelho/dotselect/internal/stack"
)

// Path is a compiled path expression. It is immutable and safe to reuse
// across documents and goroutines.
type Path struct {
	raw      string
	segments []segment
}

// String returns the original expression.
func (p *Path) String() string {
	return p.raw
}

// Matches returns a lazy sequence of the values the path selects in doc,
// in document order and without deduplication. The sequence is restartable:
// every iteration traverses the document from the root again.
func (p *Path) Matches(doc any) iter.Seq[any] {
	return func(yield func(any) bool) {
		traverse(doc, p.segments, yield)
	}
}

// FindAll collects every match. It never fails; no matches is an empty
// slice.
func (p *Path) FindAll(doc any) []any {
	results := make([]any, 0)
	for value := range p.Matches(doc) {
		results = append(results, value)
	}
	return results
}

// FindFirst stops the traversal at the first match and returns ErrNotFound
// when there is none.
func (p *Path) FindFirst(doc any) (any, error) {
	for value := range p.Matches(doc) {
		return value, nil
	}
	return nil, ErrNotFound
}

// FindAll parses expr and collects every value it selects in doc.
func FindAll(doc any, expr string) ([]any, error) {
	path, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return path.FindAll(doc), nil
}

// FindFirst parses expr and returns the first value it selects in doc,
// or ErrNotFound.
func FindFirst(doc any, expr string) (any, error) {
	path, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return path.FindFirst(doc)
}

// traverse applies the remaining segments to node, yielding final matches.
// It returns false as soon as the consumer stops the iteration.
func traverse(node any, segments []segment, yield func(any) bool) bool {
	if len(segments) == 0 {
		return yield(node)
	}

	head, tail := segments[0], segments[1:]

	switch seg := head.(type) {
	case literalSegment:
		if child, ok := resolveLiteral(node, string(seg)); ok {
			return traverse(child, tail, yield)
		}

	case wildcardSegment:
		for _, child := range children(node) {
			if !traverse(child, tail, yield) {
				return false
			}
		}

	case descendantSegment:
		for descendant := range descendants(node) {
			if !traverse(descendant, tail, yield) {
				return false
			}
		}

	case *predicateSegment:
		sequence, ok := resolveLiteral(node, seg.field)
		if !ok {
			return true
		}
		elements, ok := sequence.([]any)
		if !ok {
			return true
		}
		for _, element := range elements {
			field, ok := childByKey(element, seg.key)
			if !ok || !seg.value.equal(field) {
				continue
			}
			if !traverse(element, tail, yield) {
				return false
			}
		}
	}

	return true
}

// resolveLiteral types a literal against the node it meets: a key for
// mappings, an index for sequences when the literal is all digits.
// Anything else contributes nothing.
func resolveLiteral(node any, name string) (any, bool) {
	switch current := node.(type) {
	case document.Mapping:
		return current.Get(name)
	case map[string]any:
		value, ok := current[name]
		return value, ok
	case []any:
		index, ok := parseIndex(name)
		if ok && index < len(current) {
			return current[index], true
		}
	}
	return nil, false
}

func parseIndex(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return 0, false
		}
	}
	index, err := strconv.Atoi(name)
	if err != nil {
		return 0, false
	}
	return index, true
}

func childByKey(node any, key string) (any, bool) {
	switch current := node.(type) {
	case document.Mapping:
		return current.Get(key)
	case map[string]any:
		value, ok := current[key]
		return value, ok
	}
	return nil, false
}

// children returns the direct children of a container in document order.
// Plain Go maps carry no insertion order, so their values come back in
// sorted-key order to keep results deterministic. Scalars have none.
func children(node any) []any {
	switch current := node.(type) {
	case document.Mapping:
		values := make([]any, len(current))
		for i, entry := range current {
			values[i] = entry.Value
		}
		return values
	case map[string]any:
		keys := slices.Sorted(maps.Keys(current))
		values := make([]any, len(keys))
		for i, key := range keys {
			values[i] = current[key]
		}
		return values
	case []any:
		return current
	}
	return nil
}

// descendants yields node itself and every node beneath it, pre-order:
// each child subtree completes before the next sibling starts. The walk is
// driven by an explicit stack so deep documents do not grow the Go call
// stack, and laziness lets FindFirst abandon it early.
func descendants(node any) iter.Seq[any] {
	return func(yield func(any) bool) {
		work := stack.NewWithCapacity[any](16)
		work.Push(node)

		for {
			current, ok := work.Pop()
			if !ok {
				return
			}
			if !yield(current) {
				return
			}
			work.PushReversed(children(current)...)
		}
	}
}
