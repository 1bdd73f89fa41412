package godec_test

import (
	"reflect"
	"testing"

	godec "github.com/reoring/godec"
	"github.com/reoring/godec/cursor"
	"github.com/reoring/godec/tree"
)

func root(t *testing.T, src string) cursor.Cursor {
	t.Helper()
	v, err := tree.ParseJSON([]byte(src))
	if err != nil {
		t.Fatalf("parse %q err: %v", src, err)
	}
	return cursor.New(v)
}

func TestConstFailedConstruction(t *testing.T) {
	c := root(t, `"ignored"`)

	if r := godec.Const(42).Decode(c); !r.Ok() || r.Value() != 42 {
		t.Fatalf("const = %v", r)
	}
	// Const ignores the cursor entirely, even a failed one.
	failed := root(t, `{}`).DownField("x")
	if r := godec.Const("v").Decode(failed); !r.Ok() {
		t.Fatalf("const on failed cursor = %v", r)
	}

	f := godec.NewFailure("always", nil)
	if r := godec.Failed[int](f).Decode(c); r.Ok() {
		t.Fatalf("failed decoder succeeded")
	}

	r := godec.FailedWithMessage[int]("nope").Decode(c.DownField("ignored"))
	// Cursor navigation failed here, so the guard diagnostic wins.
	if fail, _ := r.Failure(); fail.Message() != "attempt to decode on a failed cursor" {
		t.Fatalf("failure = %v", fail)
	}

	r2 := godec.FailedWithMessage[int]("nope").Decode(c)
	if fail, _ := r2.Failure(); fail.Message() != "nope" {
		t.Fatalf("failure = %v", fail)
	}
}

func TestFailedCursorDiagnostic(t *testing.T) {
	// Prepare may hand a decoder a failed cursor; guarded decoders must
	// refuse it with the fixed diagnostic instead of decoding garbage.
	d := godec.Int().Prepare(func(c cursor.Cursor) cursor.Cursor {
		return c.DownField("missing")
	})
	r := d.Decode(root(t, `{}`))
	fail, ok := r.Failure()
	if !ok || fail.Message() != "attempt to decode on a failed cursor" {
		t.Fatalf("failure = %v", fail)
	}
	if len(fail.History()) != 1 {
		t.Fatalf("history = %v", fail.History())
	}
}

func TestAt(t *testing.T) {
	v, err := godec.DecodeJSON(godec.Int().At("n"), []byte(`{"n":7}`))
	if err != nil || v != 7 {
		t.Fatalf("v=%v err=%v", v, err)
	}
}

// checkAgreement asserts the two protocols agree: same success value, and the
// first accumulated failure matches the fail-fast failure.
func checkAgreement[A any](t *testing.T, name string, d godec.Decoder[A], c cursor.Cursor) {
	t.Helper()
	r := d.Decode(c)
	ra := d.DecodeAcc(c)
	if r.Ok() != ra.Ok() {
		t.Fatalf("%s: protocols disagree on success: %v vs %v", name, r.Ok(), ra.Ok())
	}
	if r.Ok() {
		if !reflect.DeepEqual(r.Value(), ra.Value()) {
			t.Fatalf("%s: values diverge: %v vs %v", name, r.Value(), ra.Value())
		}
		return
	}
	f, _ := r.Failure()
	first := ra.Failures()[0]
	if f.Message() != first.Message() || !reflect.DeepEqual(f.History(), first.History()) {
		t.Fatalf("%s: first accumulated failure %v != fail-fast failure %v", name, first, f)
	}
}

func TestProtocolAgreement(t *testing.T) {
	docs := []string{
		`true`, `"s"`, `1`, `10.01`, `null`, `[]`, `{}`,
		`[1,2,3]`, `[1,"x",3]`, `{"a":1,"b":"x"}`,
		`{"left":1}`, `{"left":1,"right":2}`,
	}
	for _, src := range docs {
		c := root(t, src)
		checkAgreement(t, src+"/bool", godec.Bool(), c)
		checkAgreement(t, src+"/int", godec.Int(), c)
		checkAgreement(t, src+"/string", godec.String(), c)
		checkAgreement(t, src+"/[]int", godec.SliceOf(godec.Int()), c)
		checkAgreement(t, src+"/map", godec.MapOf(godec.KeyString(), godec.Int()), c)
		checkAgreement(t, src+"/ptr", godec.Ptr(godec.Int()), c)
		checkAgreement(t, src+"/nonempty", godec.NonEmptySliceOf(godec.Int()), c)
		checkAgreement(t, src+"/either", godec.EitherOf("left", "right", godec.Int(), godec.Int()), c)
		checkAgreement(t, src+"/both", godec.Both(godec.SliceOf(godec.Int()), godec.NonEmptySliceOf(godec.Int())), c)
		checkAgreement(t, src+"/or", godec.Int().Or(godec.Map(godec.Bool(), func(bool) int { return 0 })), c)
	}
}

func TestDecoderReuseIsPure(t *testing.T) {
	// A decoder holds no per-call state; decoding different documents with
	// the same decoder value must not interfere.
	d := godec.SliceOf(godec.Int())
	a, err := godec.DecodeJSON(d, []byte(`[1,2]`))
	if err != nil {
		t.Fatalf("first decode err: %v", err)
	}
	if _, err := godec.DecodeJSON(d, []byte(`["x"]`)); err == nil {
		t.Fatalf("expected failure on second decode")
	}
	b, err := godec.DecodeJSON(d, []byte(`[3]`))
	if err != nil {
		t.Fatalf("third decode err: %v", err)
	}
	if !reflect.DeepEqual(a, []int{1, 2}) || !reflect.DeepEqual(b, []int{3}) {
		t.Fatalf("results corrupted: %v %v", a, b)
	}
}
