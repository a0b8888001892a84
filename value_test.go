package jetjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jetjson"
)

func TestValuePredicates(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	root, err := ctx.ParseString(`{"o":{},"a":[],"s":"x","n":1,"t":true,"f":false,"z":null}`)
	require.NoError(t, err)

	assert.True(t, root.Get("o").IsObject())
	assert.True(t, root.Get("a").IsArray())
	assert.True(t, root.Get("s").IsString())
	assert.True(t, root.Get("n").IsNumber())
	assert.True(t, root.Get("t").IsBool())
	assert.True(t, root.Get("f").IsBool())
	assert.True(t, root.Get("z").IsNull())

	var nilValue *jetjson.Value

	assert.Equal(t, jetjson.KindInvalid, nilValue.Kind())
	assert.False(t, nilValue.IsObject())
}

func TestValueTypeMismatch(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	root, err := ctx.ParseString(`{"s":"x"}`)
	require.NoError(t, err)

	_, err = root.GetNumber("s")
	require.ErrorIs(t, err, jetjson.ErrTypeMismatch)

	var terr *jetjson.TypeMismatchError

	require.ErrorAs(t, err, &terr)
	assert.Equal(t, jetjson.KindNumber, terr.Want)
	assert.Equal(t, jetjson.KindString, terr.Got)

	// Absent keys are not errors.
	v, err := root.GetNumber("missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	b, err := root.GetBool("missing")
	require.NoError(t, err)
	assert.False(t, b)
}

func TestValueFieldsOrder(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	root, err := ctx.ParseString(`{"z":1,"a":2,"m":3,"a":4}`)
	require.NoError(t, err)

	var keys []string

	for k, v := range root.Fields() {
		dec, err := k.Decoded()
		require.NoError(t, err)

		keys = append(keys, dec)
		assert.True(t, v.IsNumber())
	}

	// Iteration order is parse order; duplicates appear as often as they
	// occur in the source.
	assert.Equal(t, []string{"z", "a", "m", "a"}, keys)
}

func TestValueRepeatedGetIsStable(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	root, err := ctx.ParseString(`{"price":"27000.5","qty":"8.760"}`)
	require.NoError(t, err)

	// Repeated identical accessors must return bitwise-equal results; the
	// single-slot caches must never leak between keys.
	for range 3 {
		price, err := root.GetString("price")
		require.NoError(t, err)

		f, err := price.ParseFloat64()
		require.NoError(t, err)
		assert.InDelta(t, 27000.5, f, 1e-9)

		qty, err := root.GetString("qty")
		require.NoError(t, err)

		g, err := qty.ParseFloat64()
		require.NoError(t, err)
		assert.InDelta(t, 8.76, g, 1e-9)
	}
}

func TestValueDecodedCaching(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	v, err := ctx.ParseString(`"aAb"`)
	require.NoError(t, err)

	first, err := v.Decoded()
	require.NoError(t, err)
	assert.Equal(t, "aAb", first)

	second, err := v.Decoded()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValueInvalidEscapeSurfacesOnDecode(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	tcs := map[string]string{
		"unknown escape":           `"a\qb"`,
		"truncated unicode":        `"\u12"`,
		"bad hex":                  `"\uZZZZ"`,
		"high surrogate alone":     `"\ud83d"`,
		"high surrogate then text": `"\ud83dxx"`,
	}

	for name, input := range tcs {
		t.Run(name, func(t *testing.T) {
			// The tokenizer accepts these: escape validation is deferred
			// to materialization.
			v, err := ctx.ParseString(input)
			require.NoError(t, err)

			_, err = v.Decoded()
			require.ErrorIs(t, err, jetjson.ErrInvalidEscape)
		})
	}
}

func TestValueStringOps(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	root, err := ctx.ParseString(`{"plain":"abc","esc":"a\nb"}`)
	require.NoError(t, err)

	plain, err := root.GetString("plain")
	require.NoError(t, err)

	assert.Equal(t, []byte("abc"), plain.Slice())
	assert.True(t, plain.EqualString("abc"))
	assert.False(t, plain.EqualString("abd"))
	assert.True(t, plain.EqualBytes([]byte("abc")))

	esc, err := root.GetString("esc")
	require.NoError(t, err)

	// Raw slice keeps the escape; equality falls back to decoded compare.
	assert.Equal(t, []byte(`a\nb`), esc.Slice())
	assert.True(t, esc.EqualString("a\nb"))
	assert.False(t, esc.EqualString(`a\nb`))

	sink := jetjson.NewBufferSink(16)
	require.NoError(t, esc.AppendTo(sink))
	assert.Equal(t, "a\nb", sink.String())
}

func TestValueNumberOps(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	root, err := ctx.ParseString(`{"i":42,"neg":-7,"f":3.5,"intfloat":42.000,"big":123456789012345678901234567890}`)
	require.NoError(t, err)

	i, err := root.GetNumber("i")
	require.NoError(t, err)

	assert.True(t, i.IsInt())
	assert.False(t, i.IsNegative())

	n64, err := i.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n64)

	n32, err := i.Int32()
	require.NoError(t, err)
	assert.Equal(t, int32(42), n32)

	f64, err := i.Float64()
	require.NoError(t, err)
	assert.InEpsilon(t, 42.0, f64, 1e-12)

	f32, err := i.Float32()
	require.NoError(t, err)
	assert.InEpsilon(t, float32(42.0), f32, 1e-6)

	neg, err := root.GetNumber("neg")
	require.NoError(t, err)
	assert.True(t, neg.IsNegative())

	f, err := root.GetNumber("f")
	require.NoError(t, err)
	assert.False(t, f.IsInt())

	_, err = f.Int64()
	require.ErrorIs(t, err, jetjson.ErrNumberFormat)

	intfloat, err := root.GetNumber("intfloat")
	require.NoError(t, err)

	// A trailing all-zero fraction still parses as an integer.
	n64, err = intfloat.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n64)

	big, err := root.GetNumber("big")
	require.NoError(t, err)

	_, err = big.Int64()
	require.ErrorIs(t, err, jetjson.ErrNumberFormat)

	bi, err := big.BigInt()
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", bi.String())

	bd, err := big.BigDecimal()
	require.NoError(t, err)
	assert.NotNil(t, bd)
}

func TestValueArrayAccess(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	root, err := ctx.ParseString(`[10,20,30,40]`)
	require.NoError(t, err)

	// Monotonically increasing access rides the position cache; a
	// backwards jump restarts from the head and must still be correct.
	for _, i := range []int{0, 1, 3, 2, 0} {
		el, err := root.At(i)
		require.NoError(t, err)

		n, err := el.Int64()
		require.NoError(t, err)
		assert.Equal(t, int64((i+1)*10), n)
	}

	_, err = root.At(4)
	require.ErrorIs(t, err, jetjson.ErrIndexOutOfRange)

	var ierr *jetjson.IndexError

	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, 4, ierr.Index)
	assert.Equal(t, 4, ierr.Size)

	_, err = root.At(-1)
	require.ErrorIs(t, err, jetjson.ErrIndexOutOfRange)
}

func TestValueArrayIteration(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	root, err := ctx.ParseString(`[1,2,3]`)
	require.NoError(t, err)

	var got []int64

	for el := range root.Items() {
		n, err := el.Int64()
		require.NoError(t, err)

		got = append(got, n)
	}

	assert.Equal(t, []int64{1, 2, 3}, got)
}

func TestValueArrayStream(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	root, err := ctx.ParseString(`["a","b","c"]`)
	require.NoError(t, err)

	cur, err := root.Stream()
	require.NoError(t, err)

	var got []string

	for cur.HasNext() {
		el, ok := cur.Next()
		require.True(t, ok)

		dec, err := el.Decoded()
		require.NoError(t, err)

		got = append(got, dec)
	}

	assert.Equal(t, []string{"a", "b", "c"}, got)

	_, ok := cur.Next()
	assert.False(t, ok)

	_, err = root.At(0)
	require.NoError(t, err)

	scalar, err := ctx.ParseString(`1`)
	require.NoError(t, err)

	_, err = scalar.Stream()
	require.ErrorIs(t, err, jetjson.ErrTypeMismatch)
}

func TestValueInterface(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	root, err := ctx.ParseString(`{"s":"x","i":3,"f":1.5,"b":true,"z":null,"a":[1,"two"],"o":{"k":"v"}}`)
	require.NoError(t, err)

	got, err := root.Interface()
	require.NoError(t, err)

	want := map[string]any{
		"s": "x",
		"i": int64(3),
		"f": 1.5,
		"b": true,
		"z": nil,
		"a": []any{int64(1), "two"},
		"o": map[string]any{"k": "v"},
	}

	assert.Equal(t, want, got)
}

func TestValueSpanInvariants(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	input := `{"key":"value","n":123}`

	root, err := ctx.ParseString(input)
	require.NoError(t, err)

	start, end := root.Span()
	assert.Equal(t, 0, start)
	assert.Equal(t, len(input), end)

	v, err := root.GetString("key")
	require.NoError(t, err)

	// String spans exclude the surrounding quotes.
	start, end = v.Span()
	assert.Equal(t, `"value"`, input[start-1:end+1])
	assert.Equal(t, "value", input[start:end])

	n, err := root.GetNumber("n")
	require.NoError(t, err)

	start, end = n.Span()
	assert.Equal(t, "123", input[start:end])
	assert.LessOrEqual(t, start, end)
	assert.LessOrEqual(t, end, len(input))
}

func TestValueEmptyString(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	v, err := ctx.ParseString(`""`)
	require.NoError(t, err)

	start, end := v.Span()
	assert.Equal(t, start, end)

	dec, err := v.Decoded()
	require.NoError(t, err)
	assert.Empty(t, dec)
}
