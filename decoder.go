package godec

import (
	"github.com/reoring/godec/cursor"
)

// Decoder maps a cursor to a typed value under two protocols: fail-fast
// (Decode) and accumulating (DecodeAcc). Decoders are immutable, stateless
// values; they are built once and safely shared across goroutines.
//
// Both entry points receive the raw cursor, which may represent failed
// navigation. Decoders built with New reject a failed cursor with a fixed
// diagnostic before their body runs; decoders built with WithReattempt see
// the failed cursor directly, which is how absence-sensitive decoding (Ptr)
// distinguishes "field absent" from "field present but wrong shape".
type Decoder[A any] struct {
	run func(cursor.Cursor) Result[A]
	// runAcc is optional; when nil the accumulating protocol is derived from
	// run by wrapping the single failure into a one-element list. Combinators
	// that can genuinely accumulate provide their own runAcc.
	runAcc func(cursor.Cursor) AccResult[A]
}

// Decode runs the fail-fast protocol.
func (d Decoder[A]) Decode(c cursor.Cursor) Result[A] { return d.run(c) }

// DecodeAcc runs the accumulating protocol. On the derived path the first
// (only) accumulated failure is identical to the fail-fast failure.
func (d Decoder[A]) DecodeAcc(c cursor.Cursor) AccResult[A] {
	if d.runAcc != nil {
		return d.runAcc(c)
	}
	return d.run(c).Acc()
}

// Acc exposes the accumulating-only view of the decoder, for composition
// with accumulating-only combinators.
func (d Decoder[A]) Acc() AccDecoder[A] {
	return AccDecoder[A]{run: d.DecodeAcc}
}

// AccDecoder is the accumulating-only view of a decoder.
type AccDecoder[A any] struct {
	run func(cursor.Cursor) AccResult[A]
}

// Decode runs the accumulating protocol.
func (d AccDecoder[A]) Decode(c cursor.Cursor) AccResult[A] { return d.run(c) }

// guardCursor rejects failed cursors with the fixed diagnostic.
func guardCursor[A any](f func(cursor.Cursor) Result[A]) func(cursor.Cursor) Result[A] {
	return func(c cursor.Cursor) Result[A] {
		if c.Failed() {
			return Err[A](failureAt(failedCursorMessage, c))
		}
		return f(c)
	}
}

func guardCursorAcc[A any](f func(cursor.Cursor) AccResult[A]) func(cursor.Cursor) AccResult[A] {
	return func(c cursor.Cursor) AccResult[A] {
		if c.Failed() {
			return ErrAcc[A](failureAt(failedCursorMessage, c))
		}
		return f(c)
	}
}

// New wraps a total function over successfully-navigated cursors into a
// decoder. Failed cursors are rejected before f runs.
func New[A any](f func(cursor.Cursor) Result[A]) Decoder[A] {
	return Decoder[A]{run: guardCursor(f)}
}

// NewAcc wraps a pair of protocol implementations. Both must agree on success
// values and on failure causes; fa may report more than one cause.
func NewAcc[A any](f func(cursor.Cursor) Result[A], fa func(cursor.Cursor) AccResult[A]) Decoder[A] {
	return Decoder[A]{run: guardCursor(f), runAcc: guardCursorAcc(fa)}
}

// WithReattempt wraps a function whose primary decode mode operates on the
// raw, possibly-failed cursor. No failed-cursor guard is applied.
func WithReattempt[A any](f func(cursor.Cursor) Result[A]) Decoder[A] {
	return Decoder[A]{run: f}
}

// WithReattemptAcc is WithReattempt with a dedicated accumulating entry point.
func WithReattemptAcc[A any](f func(cursor.Cursor) Result[A], fa func(cursor.Cursor) AccResult[A]) Decoder[A] {
	return Decoder[A]{run: f, runAcc: fa}
}

// Const always succeeds with v, ignoring the cursor entirely.
func Const[A any](v A) Decoder[A] {
	return Decoder[A]{run: func(cursor.Cursor) Result[A] { return Ok(v) }}
}

// Failed always fails with the given failure.
func Failed[A any](f Failure) Decoder[A] {
	return Decoder[A]{run: func(cursor.Cursor) Result[A] { return Err[A](f) }}
}

// FailedWithMessage always fails with msg at the current cursor's history.
func FailedWithMessage[A any](msg string) Decoder[A] {
	return New(func(c cursor.Cursor) Result[A] {
		return Err[A](failureAt(msg, c))
	})
}
