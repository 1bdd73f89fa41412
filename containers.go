package godec

import (
	"fmt"

	"github.com/reoring/godec/cursor"
)

// sliceWith is the shared sequence algorithm, parameterized by the failure
// tag so set decoding can rebrand the shape mismatch. Traversal is a flat
// loop over sibling positions; element decoders may of course recurse into
// their own substructure, bounded by the parse-time depth limit.
func sliceWith[A any](d Decoder[A], tag string) Decoder[[]A] {
	run := func(c cursor.Cursor) Result[[]A] {
		el := c.DownArray()
		if el.Failed() {
			if elems, ok := c.Focus().Elems(); ok && len(elems) == 0 {
				return Ok([]A{})
			}
			return typeFail[[]A](tag, c)
		}
		var out []A
		for ; !el.Failed(); el = el.Right() {
			r := d.Decode(el)
			if fail, ok := r.Failure(); ok {
				return Err[[]A](fail)
			}
			out = append(out, r.Value())
		}
		return Ok(out)
	}
	runAcc := func(c cursor.Cursor) AccResult[[]A] {
		el := c.DownArray()
		if el.Failed() {
			if elems, ok := c.Focus().Elems(); ok && len(elems) == 0 {
				return OkAcc([]A{})
			}
			return ErrAcc[[]A](failureAt(tag, c))
		}
		var out []A
		var fails Failures
		for ; !el.Failed(); el = el.Right() {
			r := d.DecodeAcc(el)
			if !r.Ok() {
				fails = append(fails, r.Failures()...)
				continue
			}
			if len(fails) == 0 {
				out = append(out, r.Value())
			}
		}
		if len(fails) > 0 {
			return errAccList[[]A](fails)
		}
		return OkAcc(out)
	}
	return NewAcc(run, runAcc)
}

// SliceOf decodes a homogeneous array with the element decoder. An empty
// array decodes to an empty slice; any other shape is a mismatch. The
// accumulating protocol decodes every position and reports all element
// failures in positional order.
func SliceOf[A any](d Decoder[A]) Decoder[[]A] {
	return sliceWith(d, "[]"+typeName[A]())
}

// SetOf decodes an array into a set, losing duplicate elements. The shape
// mismatch message carries the set's tag instead of the slice's.
func SetOf[A comparable](d Decoder[A]) Decoder[map[A]struct{}] {
	return Map(sliceWith(d, "set["+typeName[A]()+"]"), func(elems []A) map[A]struct{} {
		set := make(map[A]struct{}, len(elems))
		for _, e := range elems {
			set[e] = struct{}{}
		}
		return set
	})
}

// MapOf decodes an object into a map, decoding each value with vd and each
// field name with kd, in the object's declared field order. The fail-fast
// protocol stops at the first value- or key-decode failure. The accumulating
// protocol keeps decoding every field so all problems surface at once, but
// once any failure is recorded no further successfully-decoded entries are
// added: a failed decode never returns a partial map.
func MapOf[K comparable, V any](kd KeyDecoder[K], vd Decoder[V]) Decoder[map[K]V] {
	tag := "map[" + typeName[K]() + "]" + typeName[V]()
	run := func(c cursor.Cursor) Result[map[K]V] {
		names, ok := c.Fields()
		if !ok {
			return typeFail[map[K]V](tag, c)
		}
		out := make(map[K]V, len(names))
		for _, name := range names {
			fc := c.DownField(name)
			r := vd.Decode(fc)
			if fail, ok := r.Failure(); ok {
				return Err[map[K]V](fail)
			}
			k, err := kd(name)
			if err != nil {
				return Err[map[K]V](failureAt(err.Error(), fc))
			}
			out[k] = r.Value()
		}
		return Ok(out)
	}
	runAcc := func(c cursor.Cursor) AccResult[map[K]V] {
		names, ok := c.Fields()
		if !ok {
			return ErrAcc[map[K]V](failureAt(tag, c))
		}
		out := make(map[K]V, len(names))
		var fails Failures
		for _, name := range names {
			fc := c.DownField(name)
			r := vd.DecodeAcc(fc)
			if !r.Ok() {
				fails = append(fails, r.Failures()...)
				continue
			}
			k, err := kd(name)
			if err != nil {
				fails = append(fails, failureAt(err.Error(), fc))
				continue
			}
			if len(fails) == 0 {
				out[k] = r.Value()
			}
		}
		if len(fails) > 0 {
			return errAccList[map[K]V](fails)
		}
		return OkAcc(out)
	}
	return NewAcc(run, runAcc)
}

// Ptr decodes an optional value: nil means absent. Absence is recognized in
// three ways: a null focus; a decode failure whose history is empty (the
// failure originated exactly here, with no deeper path — deliberate leniency
// treating "wrong type at this exact spot" as "not present"); and failed
// navigation whose history contains no wrong-shape step. Failed navigation
// that did pass through something of the wrong shape is a real error.
func Ptr[A any](d Decoder[A]) Decoder[*A] {
	tag := "*" + typeName[A]()
	run := func(c cursor.Cursor) Result[*A] {
		if c.Failed() {
			for _, op := range c.History() {
				if op.WrongShape {
					return Err[*A](failureAt(tag, c))
				}
			}
			return Ok[*A](nil)
		}
		if c.Focus().IsNull() {
			return Ok[*A](nil)
		}
		r := d.Decode(c)
		if fail, ok := r.Failure(); ok {
			if len(fail.History()) == 0 {
				return Ok[*A](nil)
			}
			return Err[*A](fail)
		}
		v := r.Value()
		return Ok(&v)
	}
	runAcc := func(c cursor.Cursor) AccResult[*A] {
		if c.Failed() {
			for _, op := range c.History() {
				if op.WrongShape {
					return ErrAcc[*A](failureAt(tag, c))
				}
			}
			return OkAcc[*A](nil)
		}
		if c.Focus().IsNull() {
			return OkAcc[*A](nil)
		}
		r := d.DecodeAcc(c)
		if fs := r.Failures(); len(fs) > 0 {
			if len(fs[0].History()) == 0 {
				return OkAcc[*A](nil)
			}
			return errAccList[*A](fs)
		}
		v := r.Value()
		return OkAcc(&v)
	}
	return WithReattemptAcc(run, runAcc)
}

// NonEmptySliceOf decodes a non-empty array: the first element is the head,
// and the array minus that element decodes as the tail. Empty or absent
// arrays fail outright. The accumulating protocol decodes head and tail
// independently and merges their failures, head first.
func NonEmptySliceOf[A any](d Decoder[A]) Decoder[[]A] {
	tag := "nonempty []" + typeName[A]()
	tail := SliceOf(d)
	combine := func(head A, rest []A) []A {
		out := make([]A, 0, len(rest)+1)
		out = append(out, head)
		return append(out, rest...)
	}
	run := func(c cursor.Cursor) Result[[]A] {
		head := c.DownArray()
		if head.Failed() {
			return typeFail[[]A](tag, c)
		}
		hr := d.Decode(head)
		if fail, ok := hr.Failure(); ok {
			return Err[[]A](fail)
		}
		tr := tail.Decode(head.DeleteFocus())
		if fail, ok := tr.Failure(); ok {
			return Err[[]A](fail)
		}
		return Ok(combine(hr.Value(), tr.Value()))
	}
	runAcc := func(c cursor.Cursor) AccResult[[]A] {
		head := c.DownArray()
		if head.Failed() {
			return ErrAcc[[]A](failureAt(tag, c))
		}
		return Map2Acc(d.DecodeAcc(head), tail.DecodeAcc(head.DeleteFocus()), combine)
	}
	return NewAcc(run, runAcc)
}

// EitherOf decodes a tagged two-way union by field presence: the left
// alternative when exactly leftField is present, the right alternative when
// exactly rightField is present. Both present, neither present, or a
// non-object focus fail.
func EitherOf[L, R any](leftField, rightField string, ld Decoder[L], rd Decoder[R]) Decoder[Either[L, R]] {
	msg := fmt.Sprintf("expected object with exactly one of %q or %q", leftField, rightField)
	return NewAcc(
		func(c cursor.Cursor) Result[Either[L, R]] {
			lc := c.DownField(leftField)
			rc := c.DownField(rightField)
			switch {
			case !lc.Failed() && rc.Failed():
				return MapResult(ld.Decode(lc), Left[L, R])
			case lc.Failed() && !rc.Failed():
				return MapResult(rd.Decode(rc), Right[L, R])
			default:
				return Err[Either[L, R]](failureAt(msg, c))
			}
		},
		func(c cursor.Cursor) AccResult[Either[L, R]] {
			lc := c.DownField(leftField)
			rc := c.DownField(rightField)
			switch {
			case !lc.Failed() && rc.Failed():
				return MapAcc(ld.DecodeAcc(lc), Left[L, R])
			case lc.Failed() && !rc.Failed():
				return MapAcc(rd.DecodeAcc(rc), Right[L, R])
			default:
				return ErrAcc[Either[L, R]](failureAt(msg, c))
			}
		},
	)
}
