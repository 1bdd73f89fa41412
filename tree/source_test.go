package tree_test

import (
	"testing"

	"github.com/reoring/godec/tree"
)

func TestParseYAML_EquivalentToJSON(t *testing.T) {
	yml := []byte("name: ada\nage: 36\ntags:\n  - a\n  - b\nok: true\nnothing: null\n")
	jsn := []byte(`{"name":"ada","age":36,"tags":["a","b"],"ok":true,"nothing":null}`)

	yv, err := tree.ParseYAML(yml)
	if err != nil {
		t.Fatalf("yaml parse err: %v", err)
	}
	jv, err := tree.ParseJSON(jsn)
	if err != nil {
		t.Fatalf("json parse err: %v", err)
	}
	if string(tree.RenderJSON(yv)) != string(tree.RenderJSON(jv)) {
		t.Fatalf("yaml tree %s != json tree %s", tree.RenderJSON(yv), tree.RenderJSON(jv))
	}
}

func TestParseYAML_MappingOrderPreserved(t *testing.T) {
	v, err := tree.ParseYAML([]byte("z: 1\na: 2\nm: 3\n"))
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	names, ok := v.Fields()
	if !ok {
		t.Fatalf("expected object")
	}
	want := []string{"z", "a", "m"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("field order = %v, want %v", names, want)
		}
	}
}

func TestParseYAML_Scalars(t *testing.T) {
	v, err := tree.ParseYAML([]byte("f: 1.25\nb: true\nempty:\n"))
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	f, _ := v.Field("f")
	if n, _ := f.NumberText(); n != "1.25" {
		t.Fatalf("float numeral = %q", n)
	}
	b, _ := v.Field("b")
	if bv, ok := b.Bool(); !ok || !bv {
		t.Fatalf("expected boolean true, got %v", b)
	}
	e, _ := v.Field("empty")
	if !e.IsNull() {
		t.Fatalf("expected null, got %v", e)
	}
}

func TestParseJSONC_StripsComments(t *testing.T) {
	src := []byte("{\n  // comment\n  \"a\": 1, /* block */\n  \"b\": 2,\n}\n")
	v, err := tree.ParseJSONC(src)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if got := string(tree.RenderJSON(v)); got != `{"a":1,"b":2}` {
		t.Fatalf("render = %s", got)
	}
}
