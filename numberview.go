package jetjson

import "math/big"

// Number view operations. The raw numeric bytes are parsed on each call
// unless the view has materialized the same representation before, in which
// case the single-slot cache answers.

const (
	numCacheEmpty uint8 = iota
	numCacheInt64
	numCacheFloat64
)

// Int64 materializes the number as an int64. Integer-valued floats (42.00)
// are accepted; anything else out of range or fractional is a NumberError.
func (v *Value) Int64() (int64, error) {
	if v.Kind() != KindNumber {
		return 0, &TypeMismatchError{Want: KindNumber, Got: v.Kind()}
	}

	if v.numTag == numCacheInt64 {
		return v.numI, nil
	}

	n, err := parseInt64(v.Raw())
	if err != nil {
		return 0, err
	}

	if v.numTag == numCacheEmpty {
		v.numTag = numCacheInt64
		v.numI = n
	}

	return n, nil
}

// Int32 materializes the number as an int32.
func (v *Value) Int32() (int32, error) {
	n, err := v.Int64()
	if err != nil {
		return 0, err
	}

	if n < -1<<31 || n > 1<<31-1 {
		return 0, &NumberError{Reason: "integer overflow"}
	}

	return int32(n), nil
}

// Float64 materializes the number as a float64.
func (v *Value) Float64() (float64, error) {
	if v.Kind() != KindNumber {
		return 0, &TypeMismatchError{Want: KindNumber, Got: v.Kind()}
	}

	if v.numTag == numCacheFloat64 {
		return v.numF, nil
	}

	f, err := parseFloat64(v.Raw())
	if err != nil {
		return 0, err
	}

	if v.numTag == numCacheEmpty {
		v.numTag = numCacheFloat64
		v.numF = f
	}

	return f, nil
}

// Float32 materializes the number as a float32.
func (v *Value) Float32() (float32, error) {
	f, err := v.Float64()
	if err != nil {
		return 0, err
	}

	return float32(f), nil
}

// BigInt materializes the number as an arbitrary-precision integer.
// Allocates; the result is not cached.
func (v *Value) BigInt() (*big.Int, error) {
	if v.Kind() != KindNumber {
		return nil, &TypeMismatchError{Want: KindNumber, Got: v.Kind()}
	}

	return parseBigInt(v.Raw())
}

// BigDecimal materializes the number as an arbitrary-precision decimal.
// Allocates; the result is not cached.
func (v *Value) BigDecimal() (*big.Float, error) {
	if v.Kind() != KindNumber {
		return nil, &TypeMismatchError{Want: KindNumber, Got: v.Kind()}
	}

	return parseBigDecimal(v.Raw())
}

// IsInt reports whether the numeric bytes contain no '.', 'e', or 'E'.
// Classification only; nothing is parsed.
func (v *Value) IsInt() bool {
	return v.Kind() == KindNumber && v.store.flags[v.node]&flagNumberFloat == 0
}

// IsNegative reports whether the number has a leading minus sign.
func (v *Value) IsNegative() bool {
	return v.Kind() == KindNumber && isNegativeBytes(v.Raw())
}
