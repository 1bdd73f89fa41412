package tree

import "github.com/tidwall/jsonc"

// ParseJSONC builds a Value from JSON-with-comments input. Comments and
// trailing commas are stripped via tidwall/jsonc before regular JSON parsing.
func ParseJSONC(data []byte, opts ...ParseOpt) (Value, error) {
	opt := normalizeOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return Value{}, ErrMaxBytes
	}
	return ParseJSON(jsonc.ToJSON(data), opts...)
}
