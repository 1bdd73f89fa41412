// Package cursor provides a positioned, immutable view into a tree.Value
// together with the ordered history of navigation steps taken to reach it.
// Failed navigation produces a failed cursor rather than an error so that
// absence-sensitive decoding can inspect how the navigation failed.
package cursor

import (
	"strconv"
	"strings"

	"github.com/reoring/godec/tree"
)

// OpKind enumerates navigation steps.
type OpKind int

const (
	// OpField is a downField step into an object member.
	OpField OpKind = iota
	// OpArray is a step into the first array element.
	OpArray
	// OpRight is a step to the next array sibling.
	OpRight
	// OpDelete removes the focused element, refocusing on the remainder array.
	OpDelete
)

// Op is one recorded navigation step. WrongShape is set when the step failed
// because the focus had the wrong shape (as opposed to a missing field or an
// exhausted array, which are plain absence).
type Op struct {
	Kind       OpKind
	Field      string
	Index      int
	WrongShape bool
}

// Cursor is an immutable position in a tree value. The zero Cursor is a
// failed cursor with no history; use New to obtain a root cursor.
type Cursor struct {
	focus  tree.Value
	ops    []Op
	failed bool

	// Array context, set while focused on an array element. Enables Right and
	// DeleteFocus without a full zipper.
	siblings []tree.Value
	index    int
	inArray  bool
}

// New returns a cursor focused on the root of v with empty history.
func New(v tree.Value) Cursor { return Cursor{focus: v} }

// Focus returns the value currently pointed to. For a failed cursor the
// focus is unspecified (null).
func (c Cursor) Focus() tree.Value { return c.focus }

// Failed reports whether the last navigation step did not succeed.
func (c Cursor) Failed() bool { return c.failed }

// History returns a copy of the ordered navigation steps from the root.
func (c Cursor) History() []Op {
	if len(c.ops) == 0 {
		return nil
	}
	cp := make([]Op, len(c.ops))
	copy(cp, c.ops)
	return cp
}

// withOp derives a successful cursor, copying history so siblings never share
// a backing array.
func (c Cursor) withOp(op Op, focus tree.Value) Cursor {
	ops := make([]Op, len(c.ops), len(c.ops)+1)
	copy(ops, c.ops)
	return Cursor{focus: focus, ops: append(ops, op)}
}

// fail derives a failed cursor carrying the failing step in its history.
func (c Cursor) fail(op Op) Cursor {
	ops := make([]Op, len(c.ops), len(c.ops)+1)
	copy(ops, c.ops)
	return Cursor{ops: append(ops, op), failed: true}
}

// DownField navigates into the named object member. The step fails with
// WrongShape when the focus is not an object, and as plain absence when the
// object lacks the field. Navigation on a failed cursor is a no-op.
func (c Cursor) DownField(name string) Cursor {
	if c.failed {
		return c
	}
	if c.focus.Kind() != tree.KindObject {
		return c.fail(Op{Kind: OpField, Field: name, WrongShape: true})
	}
	v, ok := c.focus.Field(name)
	if !ok {
		return c.fail(Op{Kind: OpField, Field: name})
	}
	return c.withOp(Op{Kind: OpField, Field: name}, v)
}

// DownArray navigates to the first array element. The step fails with
// WrongShape when the focus is not an array, and as plain absence when the
// array is empty.
func (c Cursor) DownArray() Cursor {
	if c.failed {
		return c
	}
	elems, ok := c.focus.Elems()
	if !ok {
		return c.fail(Op{Kind: OpArray, WrongShape: true})
	}
	if len(elems) == 0 {
		return c.fail(Op{Kind: OpArray})
	}
	nc := c.withOp(Op{Kind: OpArray}, elems[0])
	nc.siblings = elems
	nc.index = 0
	nc.inArray = true
	return nc
}

// Right moves to the next array sibling. Past the end the step fails as
// plain absence; without array context it fails with WrongShape.
func (c Cursor) Right() Cursor {
	if c.failed {
		return c
	}
	if !c.inArray {
		return c.fail(Op{Kind: OpRight, WrongShape: true})
	}
	next := c.index + 1
	if next >= len(c.siblings) {
		return c.fail(Op{Kind: OpRight, Index: next})
	}
	nc := c.withOp(Op{Kind: OpRight, Index: next}, c.siblings[next])
	nc.siblings = c.siblings
	nc.index = next
	nc.inArray = true
	return nc
}

// DeleteFocus removes the focused array element and refocuses on the
// remainder array. Without array context the step fails with WrongShape.
func (c Cursor) DeleteFocus() Cursor {
	if c.failed {
		return c
	}
	if !c.inArray {
		return c.fail(Op{Kind: OpDelete, WrongShape: true})
	}
	rest := make([]tree.Value, 0, len(c.siblings)-1)
	rest = append(rest, c.siblings[:c.index]...)
	rest = append(rest, c.siblings[c.index+1:]...)
	return c.withOp(Op{Kind: OpDelete}, tree.ArrayValue(rest...))
}

// Fields returns the ordered field names of the focused object, or ok=false
// when the focus is not an object or the cursor has failed.
func (c Cursor) Fields() ([]string, bool) {
	if c.failed {
		return nil, false
	}
	return c.focus.Fields()
}

// PathOf renders a history as a JSON Pointer, used for error display.
// Sideways moves replace the current array index rather than nesting, and a
// deletion drops the deleted element's segment (the focus becomes the
// remainder array at the parent position).
func PathOf(ops []Op) string {
	type seg struct {
		text  string
		index bool
	}
	var segs []seg
	for _, op := range ops {
		switch op.Kind {
		case OpField:
			segs = append(segs, seg{text: escapePointer(op.Field)})
		case OpArray:
			segs = append(segs, seg{text: strconv.Itoa(op.Index), index: true})
		case OpRight:
			if n := len(segs); n > 0 && segs[n-1].index {
				segs[n-1].text = strconv.Itoa(op.Index)
			} else {
				segs = append(segs, seg{text: strconv.Itoa(op.Index), index: true})
			}
		case OpDelete:
			if n := len(segs); n > 0 && segs[n-1].index {
				segs = segs[:n-1]
			}
		}
	}
	if len(segs) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range segs {
		b.WriteByte('/')
		b.WriteString(s.text)
	}
	return b.String()
}

func escapePointer(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
