package godec

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/reoring/godec/cursor"
)

// numericText extracts the numeral text from a numeric or string leaf.
func numericText(c cursor.Cursor) (string, bool) {
	if t, ok := c.Focus().NumberText(); ok {
		return t, true
	}
	if s, ok := c.Focus().Text(); ok {
		return s, true
	}
	return "", false
}

// parseFloatSaturating parses a numeral, accepting range overflow as the
// saturated ±Inf value rather than an error.
func parseFloatSaturating(s string, bits int) (float64, bool) {
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

func floatBody(c cursor.Cursor, tag string, bits int) Result[float64] {
	v := c.Focus()
	if t, ok := v.NumberText(); ok {
		if f, ok := parseFloatSaturating(t, bits); ok {
			return Ok(f)
		}
		return typeFail[float64](tag, c)
	}
	if s, ok := v.Text(); ok {
		if f, ok := parseFloatSaturating(s, bits); ok {
			return Ok(f)
		}
		return typeFail[float64](tag, c)
	}
	// Null deliberately decodes to NaN.
	if v.IsNull() {
		return Ok(math.NaN())
	}
	return typeFail[float64](tag, c)
}

// Float64 accepts a numeric leaf (saturating to ±Inf on overflow), a numeric
// string, or null (yielding NaN).
func Float64() Decoder[float64] {
	return New(func(c cursor.Cursor) Result[float64] {
		return floatBody(c, "float64", 64)
	})
}

// Float32 is Float64 at single precision.
func Float32() Decoder[float32] {
	return New(func(c cursor.Cursor) Result[float32] {
		return MapResult(floatBody(c, "float32", 32), func(f float64) float32 {
			return float32(f)
		})
	})
}

// wholeAt parses the focus as an exact whole number of arbitrary precision.
// Numerals with a non-zero fractional part are rejected; a trailing ".0" is
// accepted. Strings are parsed under the same exactness rule. Null and other
// shapes are rejected.
func wholeAt(c cursor.Cursor) (*big.Int, bool) {
	t, ok := numericText(c)
	if !ok {
		return nil, false
	}
	d, err := decimal.NewFromString(t)
	if err != nil || !d.IsInteger() {
		return nil, false
	}
	return d.BigInt(), true
}

type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func signedDecoder[T signedInt](tag string, min, max int64) Decoder[T] {
	return New(func(c cursor.Cursor) Result[T] {
		bi, ok := wholeAt(c)
		if !ok || !bi.IsInt64() {
			return typeFail[T](tag, c)
		}
		n := bi.Int64()
		if n < min || n > max {
			return typeFail[T](tag, c)
		}
		return Ok(T(n))
	})
}

func unsignedDecoder[T unsignedInt](tag string, max uint64) Decoder[T] {
	return New(func(c cursor.Cursor) Result[T] {
		bi, ok := wholeAt(c)
		if !ok || !bi.IsUint64() {
			return typeFail[T](tag, c)
		}
		n := bi.Uint64()
		if n > max {
			return typeFail[T](tag, c)
		}
		return Ok(T(n))
	})
}

// Int accepts exact whole numbers representable as int.
func Int() Decoder[int] { return signedDecoder[int]("int", math.MinInt, math.MaxInt) }

// Int64 accepts exact whole numbers representable as int64.
func Int64() Decoder[int64] { return signedDecoder[int64]("int64", math.MinInt64, math.MaxInt64) }

// Int32 accepts exact whole numbers representable as int32.
func Int32() Decoder[int32] { return signedDecoder[int32]("int32", math.MinInt32, math.MaxInt32) }

// Int16 accepts exact whole numbers representable as int16.
func Int16() Decoder[int16] { return signedDecoder[int16]("int16", math.MinInt16, math.MaxInt16) }

// Int8 accepts exact whole numbers representable as int8.
func Int8() Decoder[int8] { return signedDecoder[int8]("int8", math.MinInt8, math.MaxInt8) }

// Uint accepts exact whole numbers representable as uint.
func Uint() Decoder[uint] { return unsignedDecoder[uint]("uint", math.MaxUint) }

// Uint64 accepts exact whole numbers representable as uint64.
func Uint64() Decoder[uint64] { return unsignedDecoder[uint64]("uint64", math.MaxUint64) }

// BigInt accepts exact whole numbers of arbitrary precision.
func BigInt() Decoder[*big.Int] {
	return New(func(c cursor.Cursor) Result[*big.Int] {
		bi, ok := wholeAt(c)
		if !ok {
			return typeFail[*big.Int]("big.Int", c)
		}
		return Ok(bi)
	})
}

// Decimal accepts numeric leaves and numeric strings at arbitrary precision.
// Numerals whose exponent does not fit the underlying int32 scale fail even
// though the value is in principle representable; that limitation is part of
// the contract, see DESIGN.md.
func Decimal() Decoder[decimal.Decimal] {
	return New(func(c cursor.Cursor) Result[decimal.Decimal] {
		t, ok := numericText(c)
		if !ok {
			return typeFail[decimal.Decimal]("decimal.Decimal", c)
		}
		d, err := decimal.NewFromString(t)
		if err != nil {
			return typeFail[decimal.Decimal]("decimal.Decimal", c)
		}
		return Ok(d)
	})
}
