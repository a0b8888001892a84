package jetjson

import (
	"math"
	"math/big"
	"strconv"
)

// pow10 holds exact powers of ten for the float fast paths. Immutable after
// initialization.
var pow10 = buildPow10()

func buildPow10() (t [19]float64) {
	p := 1.0
	for i := range t {
		t[i] = p
		p *= 10
	}

	return t
}

// digitPairs is the "00".."99" table used for two-digits-at-a-time integer
// formatting. Immutable after initialization.
var digitPairs = buildDigitPairs()

func buildDigitPairs() []byte {
	t := make([]byte, 0, 200)
	for i := range 100 {
		t = append(t, byte('0'+i/10), byte('0'+i%10))
	}

	return t
}

// isIntegerBytes reports whether b contains no '.', 'e', or 'E'.
func isIntegerBytes(b []byte) bool {
	for _, c := range b {
		if c == '.' || c == 'e' || c == 'E' {
			return false
		}
	}

	return true
}

// isNegativeBytes reports whether b starts with a minus sign.
func isNegativeBytes(b []byte) bool {
	return len(b) > 0 && b[0] == '-'
}

// parseInt64 parses b as a signed 64-bit integer without allocating. A
// trailing ".0...0" run is accepted so that integer-valued floats parse as
// integers. Overflow past the int64 boundaries is a NumberError.
func parseInt64(b []byte) (int64, error) {
	i := 0
	neg := false

	if i < len(b) && b[i] == '-' {
		neg = true
		i++
	}

	if i == len(b) {
		return 0, &NumberError{Reason: "empty integer"}
	}

	// Accumulate negated to make MinInt64 representable.
	var v int64

	digits := 0

	for ; i < len(b); i++ {
		c := b[i]
		if c < '0' || c > '9' {
			break
		}

		d := int64(c - '0')
		if v < (math.MinInt64+d)/10 {
			return 0, &NumberError{Reason: "integer overflow"}
		}

		v = v*10 - d
		digits++
	}

	if digits == 0 {
		return 0, &NumberError{Reason: "no digits"}
	}

	// Accept an all-zero fraction: 42.000 is the integer 42.
	if i < len(b) && b[i] == '.' {
		i++
		if i == len(b) {
			return 0, &NumberError{Reason: "missing fraction digits"}
		}

		for ; i < len(b); i++ {
			if b[i] != '0' {
				return 0, &NumberError{Reason: "not an integer"}
			}
		}
	}

	if i != len(b) {
		return 0, &NumberError{Reason: "not an integer"}
	}

	if !neg {
		if v == math.MinInt64 {
			return 0, &NumberError{Reason: "integer overflow"}
		}

		v = -v
	}

	return v, nil
}

// parseFloat64 parses b as a float64. The fast path covers the subset whose
// value is (signed integer mantissa) * 10^(-scale) with at most 18 mantissa
// digits and scale <= 18; everything else (exponents, long mantissas) falls
// back to the host parser.
func parseFloat64(b []byte) (float64, error) {
	i := 0
	neg := false

	if i < len(b) && b[i] == '-' {
		neg = true
		i++
	}

	var mantissa uint64

	digits := 0
	scale := -1

	for ; i < len(b); i++ {
		c := b[i]

		switch {
		case c >= '0' && c <= '9':
			mantissa = mantissa*10 + uint64(c-'0')
			digits++

			if scale >= 0 {
				scale++
			}
		case c == '.' && scale < 0:
			scale = 0
		default:
			return parseFloatSlow(b)
		}

		if digits > 18 || scale > 18 {
			return parseFloatSlow(b)
		}
	}

	if digits == 0 || scale == 0 {
		return 0, &NumberError{Reason: "malformed float"}
	}

	v := float64(mantissa)
	if scale > 0 {
		v /= pow10[scale]
	}

	if neg {
		v = -v
	}

	return v, nil
}

// parseFloatSlow is the host fallback for inputs outside the fast-path
// subset.
func parseFloatSlow(b []byte) (float64, error) {
	v, err := strconv.ParseFloat(bytesString(b), 64)
	if err != nil {
		return 0, &NumberError{Reason: "malformed float"}
	}

	return v, nil
}

// parseBigInt parses b as an arbitrary-precision integer. May allocate.
func parseBigInt(b []byte) (*big.Int, error) {
	v, ok := new(big.Int).SetString(bytesString(b), 10)
	if !ok {
		return nil, &NumberError{Reason: "not an integer"}
	}

	return v, nil
}

// parseBigDecimal parses b as an arbitrary-precision decimal. May allocate.
func parseBigDecimal(b []byte) (*big.Float, error) {
	v, _, err := big.ParseFloat(bytesString(b), 10, 256, big.ToNearestEven)
	if err != nil {
		return nil, &NumberError{Reason: "malformed decimal"}
	}

	return v, nil
}

// minInt32Literal and minInt64Literal cover the one value per width whose
// magnitude is not representable after negation.
const (
	minInt32Literal = "-2147483648"
	minInt64Literal = "-9223372036854775808"
)

// appendInt64 appends v's decimal form to dst using the two-digit pair
// table.
func appendInt64(dst []byte, v int64) []byte {
	if v == math.MinInt64 {
		return append(dst, minInt64Literal...)
	}

	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}

	var buf [20]byte

	i := len(buf)

	for v >= 100 {
		q := v / 100
		r := (v - q*100) * 2
		i -= 2
		buf[i] = digitPairs[r]
		buf[i+1] = digitPairs[r+1]
		v = q
	}

	if v >= 10 {
		i -= 2
		buf[i] = digitPairs[v*2]
		buf[i+1] = digitPairs[v*2+1]
	} else {
		i--
		buf[i] = byte('0' + v)
	}

	return append(dst, buf[i:]...)
}

// appendInt32 appends v's decimal form to dst.
func appendInt32(dst []byte, v int32) []byte {
	if v == math.MinInt32 {
		return append(dst, minInt32Literal...)
	}

	return appendInt64(dst, int64(v))
}

var nullLiteral = []byte("null")

// appendFloat64 appends v's decimal form to dst. The fast path handles |v|
// in [1e-4, 1e15) as whole part plus eight fractional digits with trailing
// zeros stripped, verifying the result round-trips within
// max(|v|*1e-10, 1e-15); everything else falls back to the host's
// round-trip formatter. NaN and infinities have no JSON form and append
// null; zero keeps its sign as 0.0 or -0.0.
func appendFloat64(dst []byte, v float64) []byte {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return append(dst, nullLiteral...)
	}

	if v == 0 {
		if math.Signbit(v) {
			dst = append(dst, '-')
		}

		return append(dst, "0.0"...)
	}

	a := v
	if a < 0 {
		a = -a
	}

	if a < 1e-4 || a >= 1e15 {
		return strconv.AppendFloat(dst, v, 'g', -1, 64)
	}

	whole := int64(a)
	frac := int64((a-float64(whole))*1e8 + 0.5)

	if frac == 100000000 {
		whole++
		frac = 0
	}

	// Round-trip check: fall back when eight fractional digits cannot
	// reproduce the value within tolerance.
	approx := float64(whole) + float64(frac)/1e8

	tol := a * 1e-10
	if tol < 1e-15 {
		tol = 1e-15
	}

	diff := approx - a
	if diff < 0 {
		diff = -diff
	}

	if diff > tol {
		return strconv.AppendFloat(dst, v, 'g', -1, 64)
	}

	if v < 0 {
		dst = append(dst, '-')
	}

	dst = appendInt64(dst, whole)
	dst = append(dst, '.')

	var fbuf [8]byte

	for i := 7; i >= 0; i-- {
		fbuf[i] = byte('0' + frac%10)
		frac /= 10
	}

	n := 8
	for n > 1 && fbuf[n-1] == '0' {
		n--
	}

	return append(dst, fbuf[:n]...)
}
