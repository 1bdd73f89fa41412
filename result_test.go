package godec_test

import (
	"strings"
	"testing"

	godec "github.com/reoring/godec"
)

func TestResult_MapFlatMap(t *testing.T) {
	r := godec.Ok(2)
	doubled := godec.MapResult(r, func(n int) int { return n * 2 })
	if !doubled.Ok() || doubled.Value() != 4 {
		t.Fatalf("map = %v", doubled)
	}

	failed := godec.Err[int](godec.NewFailure("boom", nil))
	mapped := godec.MapResult(failed, func(n int) int { return n * 2 })
	if mapped.Ok() {
		t.Fatalf("expected failure to propagate")
	}
	if f, _ := mapped.Failure(); f.Message() != "boom" {
		t.Fatalf("failure = %v", f)
	}

	chained := godec.FlatMapResult(r, func(n int) godec.Result[string] {
		if n == 2 {
			return godec.Ok("two")
		}
		return godec.Err[string](godec.NewFailure("nope", nil))
	})
	if chained.Value() != "two" {
		t.Fatalf("flatMap = %v", chained)
	}
	// Short-circuit: the function must not run after a failure.
	ran := false
	godec.FlatMapResult(failed, func(n int) godec.Result[string] {
		ran = true
		return godec.Ok("x")
	})
	if ran {
		t.Fatalf("flatMap ran after failure")
	}
}

func TestResult_ProductAndRecovery(t *testing.T) {
	fa := godec.NewFailure("first", nil)
	fb := godec.NewFailure("second", nil)

	p := godec.ProductResult(godec.Ok(1), godec.Ok("a"))
	if pair := p.Value(); pair.First != 1 || pair.Second != "a" {
		t.Fatalf("product = %v", pair)
	}
	// The left operand's failure wins when both failed.
	p2 := godec.ProductResult(godec.Err[int](fa), godec.Err[string](fb))
	if f, _ := p2.Failure(); f.Message() != "first" {
		t.Fatalf("product failure = %v", f)
	}

	rec := godec.Err[int](fa).HandleErrorWith(func(f godec.Failure) godec.Result[int] {
		if f.Message() != "first" {
			t.Fatalf("recovery saw %v", f)
		}
		return godec.Ok(9)
	})
	if rec.Value() != 9 {
		t.Fatalf("recovered = %v", rec)
	}
}

func TestAccResult_Map2Ordering(t *testing.T) {
	fa := godec.NewFailure("left", nil)
	fb := godec.NewFailure("right", nil)

	both := godec.Map2Acc(godec.ErrAcc[int](fa), godec.ErrAcc[string](fb), func(int, string) int { return 0 })
	fs := both.Failures()
	if len(fs) != 2 || fs[0].Message() != "left" || fs[1].Message() != "right" {
		t.Fatalf("failures = %v", fs)
	}

	ok := godec.Map2Acc(godec.OkAcc(2), godec.OkAcc(3), func(a, b int) int { return a + b })
	if !ok.Ok() || ok.Value() != 5 {
		t.Fatalf("map2 = %v", ok)
	}

	oneSide := godec.Map2Acc(godec.OkAcc(1), godec.ErrAcc[int](fb), func(a, b int) int { return 0 })
	if fs := oneSide.Failures(); len(fs) != 1 || fs[0].Message() != "right" {
		t.Fatalf("failures = %v", fs)
	}
}

func TestAccResult_AndThenShortCircuits(t *testing.T) {
	fa := godec.NewFailure("first", nil)
	ran := false
	r := godec.AndThenAcc(godec.ErrAcc[int](fa), func(int) godec.AccResult[string] {
		ran = true
		return godec.OkAcc("x")
	})
	if ran || r.Ok() {
		t.Fatalf("andThen must short-circuit after failure")
	}
	ok := godec.AndThenAcc(godec.OkAcc(1), func(n int) godec.AccResult[int] { return godec.OkAcc(n + 1) })
	if ok.Value() != 2 {
		t.Fatalf("andThen = %v", ok)
	}
}

func TestConversions(t *testing.T) {
	f := godec.NewFailure("boom", nil)

	acc := godec.Err[int](f).Acc()
	if fs := acc.Failures(); len(fs) != 1 || fs[0].Message() != "boom" {
		t.Fatalf("acc conversion = %v", fs)
	}
	if v := godec.Ok(7).Acc(); !v.Ok() || v.Value() != 7 {
		t.Fatalf("acc conversion of success = %v", v)
	}

	ff := godec.ErrAcc[int](f, godec.NewFailure("later", nil)).FailFast()
	if got, _ := ff.Failure(); got.Message() != "boom" {
		t.Fatalf("failFast keeps first failure, got %v", got)
	}
	if v := godec.OkAcc(7).FailFast(); v.Value() != 7 {
		t.Fatalf("failFast of success = %v", v)
	}
}

func TestFailuresError(t *testing.T) {
	fs := godec.Failures{
		godec.NewFailure("a", nil),
		godec.NewFailure("b", nil),
		godec.NewFailure("c", nil),
		godec.NewFailure("d", nil),
	}
	msg := fs.Error()
	if msg == "" || !strings.Contains(msg, "total 4") {
		t.Fatalf("summary = %q", msg)
	}
}
