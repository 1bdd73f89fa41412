package tree_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/reoring/godec/tree"
)

func TestParseJSON_Basic(t *testing.T) {
	v, err := tree.ParseJSON([]byte(`{"name":"ada","age":36,"tags":["a","b"],"ok":true,"nil":null}`))
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if v.Kind() != tree.KindObject {
		t.Fatalf("expected object, got %v", v.Kind())
	}
	name, ok := v.Field("name")
	if !ok {
		t.Fatalf("missing field name")
	}
	if s, _ := name.Text(); s != "ada" {
		t.Fatalf("name = %q", s)
	}
	age, _ := v.Field("age")
	if n, _ := age.NumberText(); n != "36" {
		t.Fatalf("age numeral = %q", n)
	}
	tags, _ := v.Field("tags")
	elems, ok := tags.Elems()
	if !ok || len(elems) != 2 {
		t.Fatalf("tags = %v", tags)
	}
	null, _ := v.Field("nil")
	if !null.IsNull() {
		t.Fatalf("expected null")
	}
}

func TestParseJSON_FieldOrderPreserved(t *testing.T) {
	v, err := tree.ParseJSON([]byte(`{"z":1,"a":2,"m":3}`))
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

func TestParseJSON_NumberTextPreserved(t *testing.T) {
	v, err := tree.ParseJSON([]byte(`[10.0, 1e3, -0.5]`))
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	elems, _ := v.Elems()
	for i, want := range []string{"10.0", "1e3", "-0.5"} {
		if n, _ := elems[i].NumberText(); n != want {
			t.Fatalf("numeral %d = %q, want %q", i, n, want)
		}
	}
}

func TestParseJSON_TrailingData(t *testing.T) {
	if _, err := tree.ParseJSON([]byte(`{} garbage`)); err == nil {
		t.Fatalf("expected error for trailing data")
	}
	if _, err := tree.ParseJSON([]byte(`{`)); err == nil {
		t.Fatalf("expected error for truncated input")
	}
}

func TestParseJSON_MaxDepth(t *testing.T) {
	deep := strings.Repeat("[", 64) + strings.Repeat("]", 64)
	if _, err := tree.ParseJSON([]byte(deep), tree.ParseOpt{MaxDepth: 16}); !errors.Is(err, tree.ErrMaxDepth) {
		t.Fatalf("expected ErrMaxDepth, got %v", err)
	}
	if _, err := tree.ParseJSON([]byte(deep), tree.ParseOpt{MaxDepth: 128}); err != nil {
		t.Fatalf("within limit err: %v", err)
	}
}

func TestParseJSON_MaxBytes(t *testing.T) {
	data := []byte(`{"a":"0123456789"}`)
	if _, err := tree.ParseJSON(data, tree.ParseOpt{MaxBytes: 4}); !errors.Is(err, tree.ErrMaxBytes) {
		t.Fatalf("expected ErrMaxBytes, got %v", err)
	}
	if _, err := tree.ParseJSON(data, tree.ParseOpt{MaxBytes: 1024}); err != nil {
		t.Fatalf("within cap err: %v", err)
	}
	if _, err := tree.ParseJSONReader(strings.NewReader(string(data)), tree.ParseOpt{MaxBytes: 4}); !errors.Is(err, tree.ErrMaxBytes) {
		t.Fatalf("reader: expected ErrMaxBytes, got %v", err)
	}
}

func TestRenderJSON_RoundTrip(t *testing.T) {
	cases := []string{
		`null`,
		`true`,
		`[1,2,3]`,
		`{"a":1,"b":[true,null,"x"],"c":{"d":10.0}}`,
		`"he said \"hi\"\n"`,
	}
	for _, src := range cases {
		v, err := tree.ParseJSON([]byte(src))
		if err != nil {
			t.Fatalf("parse %q err: %v", src, err)
		}
		out := tree.RenderJSON(v)
		v2, err := tree.ParseJSON(out)
		if err != nil {
			t.Fatalf("reparse %q err: %v", out, err)
		}
		if string(tree.RenderJSON(v2)) != string(out) {
			t.Fatalf("render not stable: %q vs %q", out, tree.RenderJSON(v2))
		}
	}
}

func TestConstructors(t *testing.T) {
	v := tree.ObjectValue(
		tree.Field{Name: "n", Value: tree.IntValue(42)},
		tree.Field{Name: "f", Value: tree.FloatValue(1.5)},
		tree.Field{Name: "s", Value: tree.StringValue("x")},
		tree.Field{Name: "b", Value: tree.BoolValue(true)},
		tree.Field{Name: "arr", Value: tree.ArrayValue(tree.Null())},
	)
	if got := string(tree.RenderJSON(v)); got != `{"n":42,"f":1.5,"s":"x","b":true,"arr":[null]}` {
		t.Fatalf("render = %s", got)
	}
	// NaN has no JSON numeral and collapses to null.
	if got := tree.FloatValue(math.NaN()); !got.IsNull() {
		t.Fatalf("NaN should collapse to null, got %v", got)
	}
	if got := tree.FloatValue(math.Inf(1)); !got.IsNull() {
		t.Fatalf("+Inf should collapse to null, got %v", got)
	}
}
