package godec

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// KeyDecoder is the narrow capability that turns a raw object field name into
// a key value. It is consumed only by map decoding and is independent of the
// general decoder algebra.
type KeyDecoder[K any] func(key string) (K, error)

// KeyString passes field names through unchanged.
func KeyString() KeyDecoder[string] {
	return func(key string) (string, error) { return key, nil }
}

// KeyInt parses field names as base-10 integers.
func KeyInt() KeyDecoder[int] {
	return func(key string) (int, error) {
		n, err := strconv.Atoi(key)
		if err != nil {
			return 0, fmt.Errorf("invalid int key %q", key)
		}
		return n, nil
	}
}

// KeyInt64 parses field names as base-10 64-bit integers.
func KeyInt64() KeyDecoder[int64] {
	return func(key string) (int64, error) {
		n, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid int64 key %q", key)
		}
		return n, nil
	}
}

// KeyUUID parses field names as canonical UUIDs.
func KeyUUID() KeyDecoder[uuid.UUID] {
	return func(key string) (uuid.UUID, error) {
		id, err := uuid.Parse(key)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid uuid key %q", key)
		}
		return id, nil
	}
}
