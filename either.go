package godec

// Either is a minimal tagged two-way union used by Split and EitherOf.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left builds the left-tagged alternative.
func Left[L, R any](l L) Either[L, R] { return Either[L, R]{left: l} }

// Right builds the right-tagged alternative.
func Right[L, R any](r R) Either[L, R] { return Either[L, R]{right: r, isRight: true} }

// IsLeft reports whether the value carries the left alternative.
func (e Either[L, R]) IsLeft() bool { return !e.isRight }

// IsRight reports whether the value carries the right alternative.
func (e Either[L, R]) IsRight() bool { return e.isRight }

// Left returns the left alternative when present.
func (e Either[L, R]) Left() (L, bool) {
	if e.isRight {
		var zero L
		return zero, false
	}
	return e.left, true
}

// Right returns the right alternative when present.
func (e Either[L, R]) Right() (R, bool) {
	if !e.isRight {
		var zero R
		return zero, false
	}
	return e.right, true
}
