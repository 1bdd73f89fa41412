package tree

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
)

// ParseOpt bundles parsing limits. The zero value applies DefaultMaxDepth and
// no byte cap.
type ParseOpt struct {
	// MaxDepth caps array/object nesting. 0 means DefaultMaxDepth; a negative
	// value disables the check.
	MaxDepth int
	// MaxBytes caps the input size in bytes. 0 disables the check.
	MaxBytes int64
}

// DefaultMaxDepth guards value building against adversarial deeply-nested
// input when the caller does not choose a limit.
const DefaultMaxDepth = 2048

var (
	// ErrMaxDepth reports that input nesting exceeded the configured limit.
	ErrMaxDepth = errors.New("tree: max depth exceeded")
	// ErrMaxBytes reports that the input exceeded the configured size cap.
	ErrMaxBytes = errors.New("tree: max bytes exceeded")
)

func normalizeOpt(opts []ParseOpt) ParseOpt {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxDepth == 0 {
		opt.MaxDepth = DefaultMaxDepth
	}
	return opt
}

// ParseJSON builds a Value from JSON bytes using the goccy/go-json decoder.
func ParseJSON(data []byte, opts ...ParseOpt) (Value, error) {
	opt := normalizeOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return Value{}, ErrMaxBytes
	}
	return parseJSON(j.NewDecoder(bytes.NewReader(data)), opt)
}

// ParseJSONReader builds a Value from a JSON stream. When MaxBytes is set the
// cap is enforced while reading.
func ParseJSONReader(r io.Reader, opts ...ParseOpt) (Value, error) {
	opt := normalizeOpt(opts)
	if opt.MaxBytes > 0 {
		lr := io.LimitReader(r, opt.MaxBytes+1)
		data, err := io.ReadAll(lr)
		if err != nil {
			return Value{}, fmt.Errorf("tree: read: %w", err)
		}
		if int64(len(data)) > opt.MaxBytes {
			return Value{}, ErrMaxBytes
		}
		return parseJSON(j.NewDecoder(bytes.NewReader(data)), opt)
	}
	return parseJSON(j.NewDecoder(r), opt)
}

func parseJSON(dec *j.Decoder, opt ParseOpt) (Value, error) {
	dec.UseNumber()
	v, err := buildValue(dec, opt)
	if err != nil {
		return Value{}, err
	}
	if dec.More() {
		return Value{}, errors.New("tree: trailing data after top-level value")
	}
	return v, nil
}

// buildValue consumes tokens into a Value with an explicit frame stack, so the
// builder itself stays flat regardless of input nesting.
func buildValue(dec *j.Decoder, opt ParseOpt) (Value, error) {
	var stack []frame
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Value{}, io.ErrUnexpectedEOF
			}
			return Value{}, fmt.Errorf("tree: malformed JSON: %w", err)
		}

		if d, ok := tok.(j.Delim); ok {
			switch d {
			case '{', '[':
				if opt.MaxDepth > 0 && len(stack) >= opt.MaxDepth {
					return Value{}, ErrMaxDepth
				}
				stack = append(stack, frame{isObject: d == '{'})
				continue
			case '}', ']':
				if len(stack) == 0 {
					return Value{}, fmt.Errorf("tree: unexpected %q", d)
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				var v Value
				if top.isObject {
					v = Value{kind: KindObject, fields: top.fields}
				} else {
					v = Value{kind: KindArray, arr: top.elems}
				}
				if len(stack) == 0 {
					return v, nil
				}
				stack[len(stack)-1].attach(v)
				continue
			}
		}

		// Scalar token. Inside an object, strings alternate key/value.
		if len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.isObject && !top.hasKey {
				key, ok := tok.(string)
				if !ok {
					return Value{}, fmt.Errorf("tree: object key is %T, not string", tok)
				}
				top.key = key
				top.hasKey = true
				continue
			}
			top.attach(scalarValue(tok))
			continue
		}
		return scalarValue(tok), nil
	}
}

type frame struct {
	isObject bool
	elems    []Value
	fields   []Field
	key      string
	hasKey   bool
}

func (f *frame) attach(v Value) {
	if f.isObject {
		f.fields = append(f.fields, Field{Name: f.key, Value: v})
		f.hasKey = false
		return
	}
	f.elems = append(f.elems, v)
}

func scalarValue(tok j.Token) Value {
	switch t := tok.(type) {
	case nil:
		return Null()
	case bool:
		return BoolValue(t)
	case j.Number:
		return NumberValue(t.String())
	case string:
		return StringValue(t)
	case float64:
		// UseNumber normally prevents this branch; kept as a safety net.
		return NumberValue(formatFloat(t))
	default:
		return Null()
	}
}
