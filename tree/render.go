package tree

import (
	"math"
	"strconv"
)

// IntValue wraps an integer as a numeric leaf.
func IntValue(n int64) Value { return NumberValue(strconv.FormatInt(n, 10)) }

// FloatValue wraps a float as a numeric leaf. NaN and infinities have no JSON
// numeral and collapse to null.
func FloatValue(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	return NumberValue(formatFloat(f))
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// RenderJSON renders the value as compact JSON. Numbers are emitted as their
// stored text, so a parse/render cycle preserves numerals exactly.
func RenderJSON(v Value) []byte {
	return appendJSON(nil, v)
}

func appendJSON(dst []byte, v Value) []byte {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...)
	case KindBool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case KindNumber:
		if v.num == "" {
			return append(dst, '0')
		}
		return append(dst, v.num...)
	case KindString:
		return appendJSONString(dst, v.str)
	case KindArray:
		dst = append(dst, '[')
		for i := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendJSON(dst, v.arr[i])
		}
		return append(dst, ']')
	case KindObject:
		dst = append(dst, '{')
		for i := range v.fields {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendJSONString(dst, v.fields[i].Name)
			dst = append(dst, ':')
			dst = appendJSON(dst, v.fields[i].Value)
		}
		return append(dst, '}')
	default:
		return append(dst, "null"...)
	}
}

const hexDigits = "0123456789abcdef"

// appendJSONString writes a JSON string literal. Control characters use \u
// escapes; other bytes pass through unchanged (valid UTF-8 stays valid).
func appendJSONString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			dst = append(dst, '\\', c)
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case c == '\t':
			dst = append(dst, '\\', 't')
		case c < 0x20:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		default:
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}
