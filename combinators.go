package godec

import (
	"fmt"

	"github.com/reoring/godec/cursor"
)

// Map transforms the success value; failures propagate unchanged under both
// protocols.
func Map[A, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return Decoder[B]{
		run: func(c cursor.Cursor) Result[B] {
			return MapResult(d.Decode(c), f)
		},
		runAcc: func(c cursor.Cursor) AccResult[B] {
			return MapAcc(d.DecodeAcc(c), f)
		},
	}
}

// FlatMap decodes A, then decodes B at the same cursor position with the
// decoder produced from the A value. A first-stage failure propagates without
// invoking f. In accumulating mode only the first stage can accumulate (the
// second decoder is not known until the first succeeds), so the combinator
// behaves like andThen.
func FlatMap[A, B any](d Decoder[A], f func(A) Decoder[B]) Decoder[B] {
	return Decoder[B]{
		run: func(c cursor.Cursor) Result[B] {
			r := d.Decode(c)
			if fail, ok := r.Failure(); ok {
				return Err[B](fail)
			}
			return f(r.Value()).Decode(c)
		},
		runAcc: func(c cursor.Cursor) AccResult[B] {
			r := d.DecodeAcc(c)
			if !r.Ok() {
				return errAccList[B](r.Failures())
			}
			return f(r.Value()).DecodeAcc(c)
		},
	}
}

// HandleErrorWith replaces a failing decode with the result of decoding via
// f(failure) on the same cursor. In accumulating mode only the first
// accumulated failure reaches f; recovery collapses multi-error state back to
// single-error semantics.
func (d Decoder[A]) HandleErrorWith(f func(Failure) Decoder[A]) Decoder[A] {
	return Decoder[A]{
		run: func(c cursor.Cursor) Result[A] {
			r := d.Decode(c)
			if fail, ok := r.Failure(); ok {
				return f(fail).Decode(c)
			}
			return r
		},
		runAcc: func(c cursor.Cursor) AccResult[A] {
			r := d.DecodeAcc(c)
			if !r.Ok() {
				return f(r.Failures()[0]).DecodeAcc(c)
			}
			return r
		},
	}
}

// WithErrorMessage replaces every reported failure's message with msg,
// preserving each failure's history.
func (d Decoder[A]) WithErrorMessage(msg string) Decoder[A] {
	return Decoder[A]{
		run: func(c cursor.Cursor) Result[A] {
			r := d.Decode(c)
			if fail, ok := r.Failure(); ok {
				return Err[A](fail.WithMessage(msg))
			}
			return r
		},
		runAcc: func(c cursor.Cursor) AccResult[A] {
			r := d.DecodeAcc(c)
			if fs := r.Failures(); len(fs) > 0 {
				out := make(Failures, len(fs))
				for i := range fs {
					out[i] = fs[i].WithMessage(msg)
				}
				return errAccList[A](out)
			}
			return r
		},
	}
}

// Validate fails with msg at the current cursor's history when pred rejects
// the cursor, regardless of whether the wrapped decode would have succeeded.
func (d Decoder[A]) Validate(pred func(cursor.Cursor) bool, msg string) Decoder[A] {
	return Decoder[A]{
		run: func(c cursor.Cursor) Result[A] {
			if !pred(c) {
				return Err[A](failureAt(msg, c))
			}
			return d.Decode(c)
		},
		runAcc: func(c cursor.Cursor) AccResult[A] {
			if !pred(c) {
				return ErrAcc[A](failureAt(msg, c))
			}
			return d.DecodeAcc(c)
		},
	}
}

// Or tries d; on failure, and only then, tries other on the same cursor.
// Failures are not merged: if both fail, only the second failure surfaces.
func (d Decoder[A]) Or(other Decoder[A]) Decoder[A] {
	return Decoder[A]{
		run: func(c cursor.Cursor) Result[A] {
			r := d.Decode(c)
			if r.Ok() {
				return r
			}
			return other.Decode(c)
		},
		runAcc: func(c cursor.Cursor) AccResult[A] {
			r := d.DecodeAcc(c)
			if r.Ok() {
				return r
			}
			return other.DecodeAcc(c)
		},
	}
}

// Prepare applies a cursor transformation before decoding. When the
// transformed cursor represents failed navigation, a guarded decoder reports
// the fixed failed-cursor diagnostic; reattempt decoders keep their
// absence-sensitive behavior.
func (d Decoder[A]) Prepare(f func(cursor.Cursor) cursor.Cursor) Decoder[A] {
	return Decoder[A]{
		run: func(c cursor.Cursor) Result[A] {
			return d.Decode(f(c))
		},
		runAcc: func(c cursor.Cursor) AccResult[A] {
			return d.DecodeAcc(f(c))
		},
	}
}

// At redirects decoding into the named object field before running d.
func (d Decoder[A]) At(field string) Decoder[A] {
	return d.Prepare(func(c cursor.Cursor) cursor.Cursor { return c.DownField(field) })
}

// Both runs two decoders against the same cursor position, pairing their
// successes. Fail-fast reports the first failure encountered; accumulating
// runs both decoders and concatenates their failures, left first.
func Both[A, B any](da Decoder[A], db Decoder[B]) Decoder[Pair[A, B]] {
	return Decoder[Pair[A, B]]{
		run: func(c cursor.Cursor) Result[Pair[A, B]] {
			return ProductResult(da.Decode(c), db.Decode(c))
		},
		runAcc: func(c cursor.Cursor) AccResult[Pair[A, B]] {
			return Map2Acc(da.DecodeAcc(c), db.DecodeAcc(c), func(a A, b B) Pair[A, B] {
				return Pair[A, B]{First: a, Second: b}
			})
		},
	}
}

// EMap decodes A and then applies f. A non-nil error converts to a failure
// whose message is the error text, recorded at the cursor position the rule
// runs at (not the inner decode's history).
func EMap[A, B any](d Decoder[A], f func(A) (B, error)) Decoder[B] {
	return Decoder[B]{
		run: func(c cursor.Cursor) Result[B] {
			r := d.Decode(c)
			if fail, ok := r.Failure(); ok {
				return Err[B](fail)
			}
			b, err := f(r.Value())
			if err != nil {
				return Err[B](failureAt(err.Error(), c))
			}
			return Ok(b)
		},
		runAcc: func(c cursor.Cursor) AccResult[B] {
			r := d.DecodeAcc(c)
			if !r.Ok() {
				return errAccList[B](r.Failures())
			}
			b, err := f(r.Value())
			if err != nil {
				return ErrAcc[B](failureAt(err.Error(), c))
			}
			return OkAcc(b)
		},
	}
}

// EMapTry decodes A and then applies f, converting a panic into a failure
// carrying the panic's description.
func EMapTry[A, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return EMap(d, func(a A) (b B, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("%v", rec)
			}
		}()
		return f(a), nil
	})
}

// ProductDecoder decodes each operand against its own cursor, pairing
// independent substructures.
type ProductDecoder[A, B any] struct {
	first  Decoder[A]
	second Decoder[B]
}

// Product pairs two decoders over independently supplied cursors.
func Product[A, B any](da Decoder[A], db Decoder[B]) ProductDecoder[A, B] {
	return ProductDecoder[A, B]{first: da, second: db}
}

// Decode runs fail-fast: the first operand's failure wins.
func (p ProductDecoder[A, B]) Decode(ca, cb cursor.Cursor) Result[Pair[A, B]] {
	return ProductResult(p.first.Decode(ca), p.second.Decode(cb))
}

// DecodeAcc runs both operands and merges failures, left first.
func (p ProductDecoder[A, B]) DecodeAcc(ca, cb cursor.Cursor) AccResult[Pair[A, B]] {
	return Map2Acc(p.first.DecodeAcc(ca), p.second.DecodeAcc(cb), func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

// SplitDecoder decodes a tagged choice of cursor positions: the left cursor
// with the left decoder, or the right cursor with the right decoder.
type SplitDecoder[A, B any] struct {
	left  Decoder[A]
	right Decoder[B]
}

// Split builds a decoder over a tagged choice of two cursor positions.
func Split[A, B any](da Decoder[A], db Decoder[B]) SplitDecoder[A, B] {
	return SplitDecoder[A, B]{left: da, right: db}
}

// Decode decodes the selected side, tagging the outcome accordingly.
func (s SplitDecoder[A, B]) Decode(sel Either[cursor.Cursor, cursor.Cursor]) Result[Either[A, B]] {
	if lc, ok := sel.Left(); ok {
		return MapResult(s.left.Decode(lc), Left[A, B])
	}
	rc, _ := sel.Right()
	return MapResult(s.right.Decode(rc), Right[A, B])
}

// DecodeAcc is Decode under the accumulating protocol.
func (s SplitDecoder[A, B]) DecodeAcc(sel Either[cursor.Cursor, cursor.Cursor]) AccResult[Either[A, B]] {
	if lc, ok := sel.Left(); ok {
		return MapAcc(s.left.DecodeAcc(lc), Left[A, B])
	}
	rc, _ := sel.Right()
	return MapAcc(s.right.DecodeAcc(rc), Right[A, B])
}
