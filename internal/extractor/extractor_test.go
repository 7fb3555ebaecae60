package extractor

import (
	"errors"
	"reflect"
	"testing"
)

var sampleDoc = map[string]any{
	"store": map[string]any{
		"book": []any{
			map[string]any{"title": "Sayings of the Century", "price": 8.95},
			map[string]any{"title": "Sword of Honour", "price": 12.99},
		},
	},
}

func mustCompile(t *testing.T, expr string) *Query {
	t.Helper()
	query, err := Compile(expr)
	if err != nil {
		t.Fatalf("Compile(%q) error = %v", expr, err)
	}
	return query
}

func TestSelect(t *testing.T) {
	results := mustCompile(t, "$.store.book[*].title").Select(sampleDoc)

	expect := []any{"Sayings of the Century", "Sword of Honour"}
	if !reflect.DeepEqual(results, expect) {
		t.Errorf("Select = %#v, want %#v", results, expect)
	}
}

func TestSelectNoResults(t *testing.T) {
	results := mustCompile(t, "$.store.bicycle").Select(sampleDoc)
	if len(results) != 0 {
		t.Errorf("Select = %#v, want empty", results)
	}
}

func TestFirst(t *testing.T) {
	value, err := mustCompile(t, "$..title").First(sampleDoc)
	if err != nil {
		t.Fatalf("First error = %v", err)
	}
	if value != "Sayings of the Century" {
		t.Errorf("First = %v, want first title", value)
	}
}

func TestFirstNotFound(t *testing.T) {
	if _, err := mustCompile(t, "$.missing").First(sampleDoc); !errors.Is(err, ErrNotFound) {
		t.Errorf("First error = %v, want ErrNotFound", err)
	}
}

func TestQueryReusableAcrossDocuments(t *testing.T) {
	query := mustCompile(t, "$.name")

	docs := []struct {
		doc    any
		expect []any
	}{
		{doc: map[string]any{"name": "web"}, expect: []any{"web"}},
		{doc: map[string]any{"name": "db"}, expect: []any{"db"}},
	}

	for _, tt := range docs {
		if results := query.Select(tt.doc); !reflect.DeepEqual(results, tt.expect) {
			t.Errorf("Select = %#v, want %#v", results, tt.expect)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{name: "empty", expr: ""},
		{name: "missing_root", expr: "store.book"},
		{name: "unterminated_bracket", expr: "$.store.book["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compile(tt.expr); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Compile(%q) error = %v, want ErrInvalidInput", tt.expr, err)
			}
		})
	}
}
