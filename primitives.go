package godec

import (
	"reflect"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/reoring/godec/cursor"
	"github.com/reoring/godec/tree"
)

// typeName renders the Go type of A, used as the failure tag for shape
// mismatches. Reflection is confined to message formatting.
func typeName[A any]() string { return reflect.TypeOf((*A)(nil)).Elem().String() }

func typeFail[A any](tag string, c cursor.Cursor) Result[A] {
	return Err[A](failureAt(tag, c))
}

// Bool accepts only the boolean leaf.
func Bool() Decoder[bool] {
	return New(func(c cursor.Cursor) Result[bool] {
		if b, ok := c.Focus().Bool(); ok {
			return Ok(b)
		}
		return typeFail[bool]("bool", c)
	})
}

// String accepts only the string leaf.
func String() Decoder[string] {
	return New(func(c cursor.Cursor) Result[string] {
		if s, ok := c.Focus().Text(); ok {
			return Ok(s)
		}
		return typeFail[string]("string", c)
	})
}

// Char accepts a string leaf holding exactly one code point.
func Char() Decoder[rune] {
	return New(func(c cursor.Cursor) Result[rune] {
		s, ok := c.Focus().Text()
		if !ok || utf8.RuneCountInString(s) != 1 {
			return typeFail[rune]("char", c)
		}
		r, _ := utf8.DecodeRuneInString(s)
		return Ok(r)
	})
}

// Unit accepts null, an empty object, or an empty array as an empty marker.
func Unit() Decoder[struct{}] {
	return New(func(c cursor.Cursor) Result[struct{}] {
		v := c.Focus()
		if v.IsNull() {
			return Ok(struct{}{})
		}
		if fields, ok := v.Members(); ok && len(fields) == 0 {
			return Ok(struct{}{})
		}
		if elems, ok := v.Elems(); ok && len(elems) == 0 {
			return Ok(struct{}{})
		}
		return typeFail[struct{}]("unit", c)
	})
}

// UUID accepts strings of exactly the canonical 36-character form that parse
// as well-formed UUIDs. Any other length fails before parsing is attempted.
func UUID() Decoder[uuid.UUID] {
	const canonicalLen = 36
	return New(func(c cursor.Cursor) Result[uuid.UUID] {
		s, ok := c.Focus().Text()
		if !ok || len(s) != canonicalLen {
			return typeFail[uuid.UUID]("uuid.UUID", c)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return typeFail[uuid.UUID]("uuid.UUID", c)
		}
		return Ok(id)
	})
}

// Value succeeds with the raw focused tree value.
func Value() Decoder[tree.Value] {
	return New(func(c cursor.Cursor) Result[tree.Value] {
		return Ok(c.Focus())
	})
}
