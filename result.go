package godec

// Result is the fail-fast outcome of a decode: a success value or a single
// failure. Composition over Result short-circuits on the first failure.
type Result[A any] struct {
	value   A
	failure Failure
	failed  bool
}

// Ok wraps a success value.
func Ok[A any](v A) Result[A] { return Result[A]{value: v} }

// Err wraps a failure.
func Err[A any](f Failure) Result[A] { return Result[A]{failure: f, failed: true} }

// Ok reports whether the result is a success.
func (r Result[A]) Ok() bool { return !r.failed }

// Value returns the success value; the zero value of A when failed.
func (r Result[A]) Value() A { return r.value }

// Failure returns the failure when the result failed.
func (r Result[A]) Failure() (Failure, bool) { return r.failure, r.failed }

// Err returns the failure as an error, or nil on success.
func (r Result[A]) Err() error {
	if r.failed {
		return r.failure
	}
	return nil
}

// HandleErrorWith recovers a failed result via f; successes pass through.
func (r Result[A]) HandleErrorWith(f func(Failure) Result[A]) Result[A] {
	if r.failed {
		return f(r.failure)
	}
	return r
}

// Acc converts to the accumulating protocol, wrapping a single failure into a
// one-element list. This is the lawful derivation that keeps the first
// accumulated failure identical to the fail-fast failure.
func (r Result[A]) Acc() AccResult[A] {
	if r.failed {
		return AccResult[A]{failures: Failures{r.failure}}
	}
	return AccResult[A]{value: r.value}
}

// MapResult transforms the success value; failures propagate unchanged.
func MapResult[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.failed {
		return Err[B](r.failure)
	}
	return Ok(f(r.value))
}

// FlatMapResult sequences a dependent computation; failures short-circuit.
func FlatMapResult[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if r.failed {
		return Err[B](r.failure)
	}
	return f(r.value)
}

// ProductResult pairs two results. The left failure wins when both failed.
func ProductResult[A, B any](ra Result[A], rb Result[B]) Result[Pair[A, B]] {
	if ra.failed {
		return Err[Pair[A, B]](ra.failure)
	}
	if rb.failed {
		return Err[Pair[A, B]](rb.failure)
	}
	return Ok(Pair[A, B]{First: ra.value, Second: rb.value})
}

// AccResult is the accumulating outcome of a decode: a success value or a
// non-empty ordered failure list.
type AccResult[A any] struct {
	value    A
	failures Failures
}

// OkAcc wraps a success value.
func OkAcc[A any](v A) AccResult[A] { return AccResult[A]{value: v} }

// ErrAcc wraps one or more failures. The list must be non-empty.
func ErrAcc[A any](first Failure, rest ...Failure) AccResult[A] {
	fs := make(Failures, 0, 1+len(rest))
	fs = append(fs, first)
	fs = append(fs, rest...)
	return AccResult[A]{failures: fs}
}

// errAccList wraps an existing non-empty failure list without copying.
func errAccList[A any](fs Failures) AccResult[A] { return AccResult[A]{failures: fs} }

// Ok reports whether the result is a success.
func (r AccResult[A]) Ok() bool { return len(r.failures) == 0 }

// Value returns the success value; the zero value of A when failed.
func (r AccResult[A]) Value() A { return r.value }

// Failures returns the collected failures; empty on success.
func (r AccResult[A]) Failures() Failures { return r.failures }

// Err returns the failure list as an error, or nil on success.
func (r AccResult[A]) Err() error {
	if len(r.failures) > 0 {
		return r.failures
	}
	return nil
}

// FailFast converts to the fail-fast protocol, keeping the first failure.
func (r AccResult[A]) FailFast() Result[A] {
	if len(r.failures) > 0 {
		return Err[A](r.failures[0])
	}
	return Ok(r.value)
}

// MapAcc transforms the success value; failures propagate unchanged.
func MapAcc[A, B any](r AccResult[A], f func(A) B) AccResult[B] {
	if len(r.failures) > 0 {
		return errAccList[B](r.failures)
	}
	return OkAcc(f(r.value))
}

// Map2Acc combines two accumulating results. Both operands are always
// evaluated before the call; when both failed, the left operand's failures
// come first in the merged list.
func Map2Acc[A, B, C any](ra AccResult[A], rb AccResult[B], f func(A, B) C) AccResult[C] {
	if len(ra.failures) > 0 || len(rb.failures) > 0 {
		merged := make(Failures, 0, len(ra.failures)+len(rb.failures))
		merged = append(merged, ra.failures...)
		merged = append(merged, rb.failures...)
		return errAccList[C](merged)
	}
	return OkAcc(f(ra.value, rb.value))
}

// AndThenAcc sequences a dependent accumulation. Once a failure exists the
// later step cannot run (its input does not exist), so this degrades to
// short-circuit semantics.
func AndThenAcc[A, B any](r AccResult[A], f func(A) AccResult[B]) AccResult[B] {
	if len(r.failures) > 0 {
		return errAccList[B](r.failures)
	}
	return f(r.value)
}

// Pair groups two decoded values.
type Pair[A, B any] struct {
	First  A
	Second B
}
