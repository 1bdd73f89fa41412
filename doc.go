// Package godec decodes dynamically-shaped tree values (JSON-like documents)
// into strongly-typed Go values, producing either a single value or a
// structured, path-annotated failure.
//
// Every Decoder supports two protocols over the same cursor: a fail-fast
// protocol (Decode), which short-circuits on the first failure, and an
// accumulating protocol (DecodeAcc), which runs independent sub-decoders to
// completion and collects every failure in invocation order. The two
// protocols always agree on success values, and the first accumulated
// failure is always the fail-fast failure.
//
// Decoders are immutable values composed with Map, FlatMap, Both, Or and the
// other combinators in this package; built-in rules cover scalars (Bool,
// String, Char, Unit, the numeric family, UUID) and containers (SliceOf,
// MapOf, SetOf, Ptr, NonEmptySliceOf, EitherOf). Input trees come from the
// tree package (JSON via goccy/go-json, YAML, JSONC) and are navigated
// through the cursor package, whose history of navigation steps becomes the
// error path on failure.
package godec
