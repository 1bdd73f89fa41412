package godec

import (
	"io"

	"github.com/reoring/godec/cursor"
	"github.com/reoring/godec/tree"
)

// DecodeValue runs the fail-fast protocol against an already-built tree
// value. The returned error, when non-nil, is a Failure.
func DecodeValue[A any](d Decoder[A], v tree.Value) (A, error) {
	r := d.Decode(cursor.New(v))
	if fail, ok := r.Failure(); ok {
		var zero A
		return zero, fail
	}
	return r.Value(), nil
}

// DecodeValueAcc runs the accumulating protocol against an already-built tree
// value. The returned error, when non-nil, is a non-empty Failures list.
func DecodeValueAcc[A any](d Decoder[A], v tree.Value) (A, error) {
	r := d.DecodeAcc(cursor.New(v))
	if fs := r.Failures(); len(fs) > 0 {
		var zero A
		return zero, fs
	}
	return r.Value(), nil
}

// DecodeJSON parses JSON bytes and decodes the resulting tree fail-fast.
func DecodeJSON[A any](d Decoder[A], data []byte, opts ...tree.ParseOpt) (A, error) {
	v, err := tree.ParseJSON(data, opts...)
	if err != nil {
		var zero A
		return zero, err
	}
	return DecodeValue(d, v)
}

// DecodeJSONAcc parses JSON bytes and decodes the resulting tree under the
// accumulating protocol.
func DecodeJSONAcc[A any](d Decoder[A], data []byte, opts ...tree.ParseOpt) (A, error) {
	v, err := tree.ParseJSON(data, opts...)
	if err != nil {
		var zero A
		return zero, err
	}
	return DecodeValueAcc(d, v)
}

// DecodeJSONReader is DecodeJSON over a stream.
func DecodeJSONReader[A any](d Decoder[A], r io.Reader, opts ...tree.ParseOpt) (A, error) {
	v, err := tree.ParseJSONReader(r, opts...)
	if err != nil {
		var zero A
		return zero, err
	}
	return DecodeValue(d, v)
}

// DecodeYAML parses a YAML document and decodes the resulting tree fail-fast.
func DecodeYAML[A any](d Decoder[A], data []byte, opts ...tree.ParseOpt) (A, error) {
	v, err := tree.ParseYAML(data, opts...)
	if err != nil {
		var zero A
		return zero, err
	}
	return DecodeValue(d, v)
}

// DecodeYAMLAcc is DecodeYAML under the accumulating protocol.
func DecodeYAMLAcc[A any](d Decoder[A], data []byte, opts ...tree.ParseOpt) (A, error) {
	v, err := tree.ParseYAML(data, opts...)
	if err != nil {
		var zero A
		return zero, err
	}
	return DecodeValueAcc(d, v)
}

// DecodeJSONC parses JSON-with-comments and decodes the tree fail-fast.
func DecodeJSONC[A any](d Decoder[A], data []byte, opts ...tree.ParseOpt) (A, error) {
	v, err := tree.ParseJSONC(data, opts...)
	if err != nil {
		var zero A
		return zero, err
	}
	return DecodeValue(d, v)
}

// DecodeJSONCAcc is DecodeJSONC under the accumulating protocol.
func DecodeJSONCAcc[A any](d Decoder[A], data []byte, opts ...tree.ParseOpt) (A, error) {
	v, err := tree.ParseJSONC(data, opts...)
	if err != nil {
		var zero A
		return zero, err
	}
	return DecodeValueAcc(d, v)
}
