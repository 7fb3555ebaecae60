package dotpath

import (
	"strconv"

	"github.com/jacoelho/dotselect/internal/number"
)

const (
	litText litKind = iota
	litQuoted
	litNumber
	litBool
	litNull
)

type litKind uint8

// literalValue is a predicate right-hand side, classified once at parse
// time. raw holds the text with any surrounding quotes stripped.
type literalValue struct {
	raw  string
	num  float64
	b    bool
	kind litKind
}

func compileLiteral(raw string) literalValue {
	if quoted, ok := unquote(raw); ok {
		return literalValue{raw: quoted, kind: litQuoted}
	}

	switch raw {
	case "true":
		return literalValue{raw: raw, b: true, kind: litBool}
	case "false":
		return literalValue{raw: raw, b: false, kind: litBool}
	case "null":
		return literalValue{raw: raw, kind: litNull}
	}

	if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
		return literalValue{raw: raw, num: parsed, kind: litNumber}
	}

	return literalValue{raw: raw, kind: litText}
}

func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
		return s[1 : len(s)-1], true
	}
	return "", false
}

// equal reports whether a field value satisfies the literal.
//
// The coercion rule, applied in order: null matches only nil, true/false
// match only booleans, a numeric literal matches any numeric field with the
// same value, a quoted literal matches only an identical string, and
// anything left compares against the canonical text of the scalar (so
// '[version=14.2]' matches the float 14.2 and the string "14.2" alike).
func (l literalValue) equal(field any) bool {
	switch l.kind {
	case litNull:
		return field == nil
	case litBool:
		b, ok := field.(bool)
		return ok && b == l.b
	case litQuoted:
		s, ok := field.(string)
		return ok && s == l.raw
	case litNumber:
		if f, ok := number.ToFloat64(field); ok {
			return f == l.num
		}
	}

	text, ok := number.Text(field)
	return ok && text == l.raw
}
