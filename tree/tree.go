package tree

// Kind enumerates the shapes a Value can take.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Field is one object member. Objects keep their fields in declared order.
type Field struct {
	Name  string
	Value Value
}

// Value is an immutable JSON-like tree value. The zero Value is null.
// Numbers are stored as their source text so that downstream consumers can
// apply exactness rules (integral vs fractional numerals) and render without
// precision loss, mirroring a json.Number-style representation.
type Value struct {
	kind   Kind
	b      bool
	num    string
	str    string
	arr    []Value
	fields []Field
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// BoolValue wraps a boolean leaf.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// NumberValue wraps a numeric leaf given its textual form. The text is not
// validated here; sources are expected to hand over well-formed numerals.
func NumberValue(text string) Value { return Value{kind: KindNumber, num: text} }

// StringValue wraps a string leaf.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// ArrayValue wraps the given elements as an array value.
func ArrayValue(elems ...Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: KindArray, arr: cp}
}

// ObjectValue wraps the given fields, preserving their order.
func ObjectValue(fields ...Field) Value {
	cp := make([]Field, len(fields))
	copy(cp, fields)
	return Value{kind: KindObject, fields: cp}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is the null leaf.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload when the value is a boolean leaf.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// NumberText returns the numeral text when the value is a numeric leaf.
func (v Value) NumberText() (string, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return v.num, true
}

// Text returns the string payload when the value is a string leaf.
func (v Value) Text() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Elems returns the elements when the value is an array.
func (v Value) Elems() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// Members returns the fields in declared order when the value is an object.
func (v Value) Members() ([]Field, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.fields, true
}

// Field looks up an object member by name. First occurrence wins when the
// source contained duplicate keys.
func (v Value) Field(name string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for i := range v.fields {
		if v.fields[i].Name == name {
			return v.fields[i].Value, true
		}
	}
	return Value{}, false
}

// Fields returns the ordered field names when the value is an object.
func (v Value) Fields() ([]string, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	names := make([]string, len(v.fields))
	for i := range v.fields {
		names[i] = v.fields[i].Name
	}
	return names, true
}

// String renders the value as JSON for debugging.
func (v Value) String() string { return string(RenderJSON(v)) }
