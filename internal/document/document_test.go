package document

import (
	"reflect"
	"testing"
)

func TestMappingGet(t *testing.T) {
	mapping := Mapping{
		{Key: "a", Value: 1},
		{Key: "b", Value: "two"},
	}

	value, ok := mapping.Get("b")
	if !ok || value != "two" {
		t.Errorf("Get(b) = (%v, %v), want (two, true)", value, ok)
	}

	if _, ok := mapping.Get("missing"); ok {
		t.Error("Get(missing) reported ok")
	}
}

func TestMappingSet(t *testing.T) {
	var mapping Mapping
	mapping.Set("a", 1)
	mapping.Set("b", 2)
	mapping.Set("a", 3)

	expect := Mapping{
		{Key: "a", Value: 3},
		{Key: "b", Value: 2},
	}
	if !reflect.DeepEqual(mapping, expect) {
		t.Errorf("after Set = %#v, want %#v", mapping, expect)
	}
}

func TestMappingKeys(t *testing.T) {
	mapping := Mapping{
		{Key: "z", Value: 1},
		{Key: "a", Value: 2},
	}

	if got := mapping.Keys(); !reflect.DeepEqual(got, []string{"z", "a"}) {
		t.Errorf("Keys = %v, want [z a]", got)
	}
}
