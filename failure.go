package godec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/godec/cursor"
)

// failedCursorMessage is the fixed diagnostic produced when a guarded decoder
// receives a cursor whose last navigation step did not succeed.
const failedCursorMessage = "attempt to decode on a failed cursor"

// Failure is a single decoding failure: a human-readable message plus the
// snapshot of navigation steps taken to reach the point of failure. Failures
// are immutable values and never carry partial successes.
type Failure struct {
	message string
	ops     []cursor.Op
}

// NewFailure builds a failure from a message and a history snapshot.
func NewFailure(message string, ops []cursor.Op) Failure {
	var cp []cursor.Op
	if len(ops) > 0 {
		cp = make([]cursor.Op, len(ops))
		copy(cp, ops)
	}
	return Failure{message: message, ops: cp}
}

// failureAt snapshots the cursor's current history.
func failureAt(message string, c cursor.Cursor) Failure {
	return Failure{message: message, ops: c.History()}
}

// Message returns the human-readable failure message.
func (f Failure) Message() string { return f.message }

// History returns a copy of the recorded navigation steps.
func (f Failure) History() []cursor.Op {
	if len(f.ops) == 0 {
		return nil
	}
	cp := make([]cursor.Op, len(f.ops))
	copy(cp, f.ops)
	return cp
}

// Path renders the failure history as a JSON Pointer.
func (f Failure) Path() string { return cursor.PathOf(f.ops) }

// WithMessage returns a copy with the message replaced and history preserved.
func (f Failure) WithMessage(message string) Failure {
	return Failure{message: message, ops: f.ops}
}

// Error summarizes the failure as "message at /path".
func (f Failure) Error() string {
	return fmt.Sprintf("%s at %s", f.message, f.Path())
}

// Failures is a non-empty ordered failure list that implements error.
type Failures []Failure

// Error summarizes the first few failures.
func (fs Failures) Error() string {
	if len(fs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(fs)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", fs[i].message, fs[i].Path())
	}
	if len(fs) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(fs))
	}
	return b.String()
}

// AsFailure extracts a Failure from an error using errors.As.
func AsFailure(err error) (Failure, bool) {
	var f Failure
	if errors.As(err, &f) {
		return f, true
	}
	// A failure list degrades to its first entry.
	var fs Failures
	if errors.As(err, &fs) && len(fs) > 0 {
		return fs[0], true
	}
	return Failure{}, false
}

// AsFailures extracts a failure list from an error, lifting a single Failure
// into a one-element list.
func AsFailures(err error) (Failures, bool) {
	var fs Failures
	if errors.As(err, &fs) {
		return fs, true
	}
	var f Failure
	if errors.As(err, &f) {
		return Failures{f}, true
	}
	return nil, false
}
