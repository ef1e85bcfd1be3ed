package yaml_test

import (
	"fmt"
	"testing"

	"github.com/lyraproj/boxiter/eval"
	"github.com/lyraproj/boxiter/types"
	"github.com/lyraproj/boxiter/yaml"
)

func ExampleUnmarshal() {
	v, err := yaml.Unmarshal([]byte("b: [1, two, true, ~]\na: x\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)
	// Output: {"b": [1, "two", true, undef], "a": "x"}
}

func TestUnmarshalScalarsAndSequences(t *testing.T) {
	tests := []struct {
		doc      string
		expected eval.Value
	}{
		{`42`, types.WrapInteger(42)},
		{`hello`, types.WrapString(`hello`)},
		{`false`, types.BooleanFalse},
		{`[1, 2]`, types.NewList(types.WrapInteger(1), types.WrapInteger(2))},
	}
	for _, tc := range tests {
		v, err := yaml.Unmarshal([]byte(tc.doc))
		if err != nil {
			t.Fatal(err)
		}
		if !v.Equals(tc.expected) {
			t.Errorf(`%s: expected %s, got %s`, tc.doc, tc.expected, v)
		}
	}
}

func TestUnmarshalMappingsInSequence(t *testing.T) {
	v, err := yaml.Unmarshal([]byte("- {b: 1, a: 2}\n"))
	if err != nil {
		t.Fatal(err)
	}
	l, ok := v.(*types.List)
	if !ok || l.Len() != 1 {
		t.Fatalf(`expected a list with one element, got %s`, v)
	}
	d, ok := l.At(0).(*types.Dict)
	if !ok {
		t.Fatalf(`expected a dict, got %s`, l.At(0))
	}
	if keys := d.Keys(); len(keys) != 2 || keys[0] != `a` {
		t.Errorf(`unexpected keys %v`, keys)
	}
}

func TestUnmarshalError(t *testing.T) {
	_, err := yaml.Unmarshal([]byte("a: [1, 2"))
	if !eval.IsReported(err, eval.ParseError) {
		t.Errorf(`expected %s, got %v`, eval.ParseError, err)
	}
}

func TestUnmarshalEmptyDocument(t *testing.T) {
	v, err := yaml.Unmarshal([]byte(``))
	if err != nil {
		t.Fatal(err)
	}
	if v != types.Undef {
		t.Errorf(`expected undef, got %s`, v)
	}
}

func TestUnmarshalNestedMappingKeepsOrder(t *testing.T) {
	v, err := yaml.Unmarshal([]byte("outer:\n  z: 1\n  a: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	outer, _ := v.(*types.Dict).Get(`outer`)
	if keys := outer.(*types.Dict).Keys(); len(keys) != 2 || keys[0] != `z` {
		t.Errorf(`unexpected keys %v`, keys)
	}
}
