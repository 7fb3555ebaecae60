package dotpath

import (
	"fmt"
	"strings"
)

// Parse compiles a path expression into an immutable Path.
// Errors wrap ErrSyntax and are produced before any document is touched.
func Parse(expr string) (*Path, error) {
	if expr == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrSyntax)
	}

	tokens, err := splitSegments(expr)
	if err != nil {
		return nil, err
	}

	segments := make([]segment, 0, len(tokens))
	for _, token := range tokens {
		seg, err := compileSegment(token)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}

	return &Path{raw: expr, segments: segments}, nil
}

// splitSegments splits on '.' at bracket depth zero, so predicate values may
// contain dots ('components[version=14.2]' is one token).
func splitSegments(expr string) ([]string, error) {
	var tokens []string
	start := 0
	inBracket := false

	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '[':
			if inBracket {
				return nil, fmt.Errorf("%w: nested '[' in segment %q", ErrSyntax, expr[start:])
			}
			inBracket = true
		case ']':
			if !inBracket {
				return nil, fmt.Errorf("%w: unexpected ']' in segment %q", ErrSyntax, segmentAt(expr, start))
			}
			inBracket = false
		case '.':
			if !inBracket {
				tokens = append(tokens, expr[start:i])
				start = i + 1
			}
		}
	}

	if inBracket {
		return nil, fmt.Errorf("%w: unmatched '[' in segment %q", ErrSyntax, expr[start:])
	}
	tokens = append(tokens, expr[start:])

	return tokens, nil
}

// segmentAt returns the segment that begins at start, for error messages.
func segmentAt(expr string, start int) string {
	rest := expr[start:]
	if end := strings.IndexByte(rest, '.'); end != -1 {
		return rest[:end]
	}
	return rest
}

func compileSegment(token string) (segment, error) {
	switch token {
	case "":
		return nil, fmt.Errorf("%w: empty path segment", ErrSyntax)
	case "*":
		return wildcardSegment{}, nil
	case "**":
		return descendantSegment{}, nil
	}

	if strings.ContainsAny(token, "[]") {
		return compilePredicate(token)
	}

	return literalSegment(token), nil
}

// compilePredicate parses the combined form 'field[key=value]'.
func compilePredicate(token string) (segment, error) {
	open := strings.IndexByte(token, '[')
	if open == -1 {
		return nil, fmt.Errorf("%w: unexpected ']' in segment %q", ErrSyntax, token)
	}
	if open == 0 {
		return nil, fmt.Errorf("%w: predicate %q is missing a field name before '['", ErrSyntax, token)
	}
	if token[len(token)-1] != ']' {
		return nil, fmt.Errorf("%w: trailing characters after ']' in segment %q", ErrSyntax, token)
	}

	field := token[:open]
	body := token[open+1 : len(token)-1]

	eq := strings.IndexByte(body, '=')
	if eq == -1 {
		return nil, fmt.Errorf("%w: predicate %q must contain 'key=value'", ErrSyntax, token)
	}

	key := body[:eq]
	value := body[eq+1:]
	if key == "" {
		return nil, fmt.Errorf("%w: predicate %q has an empty key", ErrSyntax, token)
	}
	if value == "" {
		return nil, fmt.Errorf("%w: predicate %q has an empty value", ErrSyntax, token)
	}
	if strings.ContainsRune(value, '=') {
		return nil, fmt.Errorf("%w: predicate %q has more than one '='", ErrSyntax, token)
	}

	return &predicateSegment{
		field: field,
		key:   key,
		value: compileLiteral(value),
	}, nil
}
