package jetjson_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jetjson"
)

func TestParseScalars(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		kind  jetjson.Kind
	}{
		"string": {
			input: `"hello"`,
			kind:  jetjson.KindString,
		},
		"integer": {
			input: `42`,
			kind:  jetjson.KindNumber,
		},
		"negative float": {
			input: `-3.25`,
			kind:  jetjson.KindNumber,
		},
		"exponent": {
			input: `1e9`,
			kind:  jetjson.KindNumber,
		},
		"true": {
			input: `true`,
			kind:  jetjson.KindTrue,
		},
		"false": {
			input: `false`,
			kind:  jetjson.KindFalse,
		},
		"null": {
			input: `null`,
			kind:  jetjson.KindNull,
		},
		"surrounded by whitespace": {
			input: " \t\r\n 7 \t\r\n ",
			kind:  jetjson.KindNumber,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := jetjson.NewContext()
			defer ctx.Close()

			v, err := ctx.ParseString(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, v.Kind())
		})
	}
}

func TestParseObject(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	root, err := ctx.Parse([]byte(`{"name":"test","value":42}`))
	require.NoError(t, err)

	require.True(t, root.IsObject())
	assert.Equal(t, 2, root.Size())

	name, err := root.GetString("name")
	require.NoError(t, err)

	dec, err := name.Decoded()
	require.NoError(t, err)
	assert.Equal(t, "test", dec)

	num, err := root.GetNumber("value")
	require.NoError(t, err)

	n, err := num.Int32()
	require.NoError(t, err)
	assert.Equal(t, int32(42), n)
}

func TestParseArray(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	root, err := ctx.Parse([]byte(`[1,2,3]`))
	require.NoError(t, err)

	require.True(t, root.IsArray())
	assert.Equal(t, 3, root.Size())

	for i, want := range []int32{1, 2, 3} {
		el, err := root.At(i)
		require.NoError(t, err)

		got, err := el.Int32()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseNestedQuotedNumbers(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	root, err := ctx.Parse([]byte(`{"asks":[["27000.5","8.760"]]}`))
	require.NoError(t, err)

	asks, err := root.GetArray("asks")
	require.NoError(t, err)

	level, err := asks.At(0)
	require.NoError(t, err)

	price, err := level.At(0)
	require.NoError(t, err)

	f, err := price.ParseFloat64()
	require.NoError(t, err)
	assert.InDelta(t, 27000.5, f, 1e-9)
}

func TestParseUnicodeEscapes(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"bmp escapes": {
			input: `"hello \u4E16\u754C"`,
			want:  "hello 世界",
		},
		"surrogate pair escape": {
			input: `"\ud83d\ude00"`,
			want:  "\U0001F600",
		},
		"raw astral passthrough": {
			input: `"😀"`,
			want:  "\U0001F600",
		},
		"short escapes": {
			input: `"a\nb\tc\"d\\e\/f\bg\fh\ri"`,
			want:  "a\nb\tc\"d\\e/f\bg\fh\ri",
		},
		"raw multibyte passthrough": {
			input: `"héllo 世界"`,
			want:  "héllo 世界",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			v, err := ctx.ParseString(tc.input)
			require.NoError(t, err)

			dec, err := v.Decoded()
			require.NoError(t, err)
			assert.Equal(t, tc.want, dec)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input      string
		wantOffset int
	}{
		"bare open brace": {
			input:      `{`,
			wantOffset: 1,
		},
		"empty input": {
			input:      ``,
			wantOffset: 0,
		},
		"whitespace only": {
			input:      "  \n ",
			wantOffset: 4,
		},
		"comma after open brace": {
			input:      `{,}`,
			wantOffset: 1,
		},
		"trailing comma in object": {
			input:      `{"a":1,}`,
			wantOffset: 7,
		},
		"trailing comma in array": {
			input:      `[1,]`,
			wantOffset: 3,
		},
		"missing colon": {
			input:      `{"a" 1}`,
			wantOffset: 5,
		},
		"unterminated string": {
			input:      `"abc`,
			wantOffset: 4,
		},
		"unterminated array": {
			input:      `[1,2`,
			wantOffset: 4,
		},
		"trailing bytes after root": {
			input:      `{} x`,
			wantOffset: 3,
		},
		"two values": {
			input:      `1 2`,
			wantOffset: 2,
		},
		"leading plus": {
			input:      `+5`,
			wantOffset: 0,
		},
		"bare dot five": {
			input:      `.5`,
			wantOffset: 0,
		},
		"five dot": {
			input:      `5.`,
			wantOffset: 2,
		},
		"minus without digits": {
			input:      `-`,
			wantOffset: 1,
		},
		"exponent without digits": {
			input:      `1e`,
			wantOffset: 2,
		},
		"hex number": {
			input:      `0x10`,
			wantOffset: 1,
		},
		"nan literal": {
			input:      `NaN`,
			wantOffset: 0,
		},
		"infinity literal": {
			input:      `Infinity`,
			wantOffset: 0,
		},
		"mangled true": {
			input:      `tru`,
			wantOffset: 0,
		},
		"uppercase literal": {
			input:      `TRUE`,
			wantOffset: 0,
		},
		"byte order mark": {
			input:      "\xEF\xBB\xBF{}",
			wantOffset: 0,
		},
		"line comment": {
			input:      "// c\n{}",
			wantOffset: 0,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := jetjson.NewContext()
			defer ctx.Close()

			_, err := ctx.ParseString(tc.input)
			require.Error(t, err)
			require.ErrorIs(t, err, jetjson.ErrSyntax)

			var perr *jetjson.ParseError

			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.wantOffset, perr.Offset)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	_, err := ctx.ParseString(`{`)
	require.Error(t, err)

	var perr *jetjson.ParseError

	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Offset)
	assert.Equal(t, "Unexpected end of input in object", perr.Reason)
}

func TestParseEmptyContainers(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	obj, err := ctx.ParseString(`{}`)
	require.NoError(t, err)
	assert.True(t, obj.IsObject())
	assert.Equal(t, 0, obj.Size())
	assert.Nil(t, obj.Get("anything"))

	arr, err := ctx.ParseString(`[]`)
	require.NoError(t, err)
	assert.True(t, arr.IsArray())
	assert.Equal(t, 0, arr.Size())
}

func TestParseNestingDepth(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	// 64 nested arrays parse; 65 exceed the fixed container stack.
	atCap := strings.Repeat("[", 64) + strings.Repeat("]", 64)

	_, err := ctx.ParseString(atCap)
	require.NoError(t, err)

	overCap := strings.Repeat("[", 65) + strings.Repeat("]", 65)

	_, err = ctx.ParseString(overCap)
	require.ErrorIs(t, err, jetjson.ErrSyntax)
}

func TestParseDuplicateKeys(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	root, err := ctx.ParseString(`{"a":1,"a":2}`)
	require.NoError(t, err)

	assert.Equal(t, 2, root.Size())

	num, err := root.GetNumber("a")
	require.NoError(t, err)

	n, err := num.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "get must return the first match in source order")
}

func TestParseEscapedKeyLookup(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	// The escaped spelling of a key must still be found by its decoded
	// form: the name hash is bypassed for escaped names and the lookup
	// falls back to decoded comparison.
	root, err := ctx.ParseString(`{"a\nb":1,"世":2}`)
	require.NoError(t, err)

	num, err := root.GetNumber("a\nb")
	require.NoError(t, err)

	n, err := num.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	num, err = root.GetNumber("世")
	require.NoError(t, err)

	n, err = num.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestParseUnicodeKeys(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	// Raw multibyte keys exercise the tokenizer's live hash folding: two-
	// and three-byte sequences fold to code points, four-byte sequences to
	// surrogate pairs.
	root, err := ctx.ParseString(`{"é":1,"世界":2,"😀":3}`)
	require.NoError(t, err)

	for key, want := range map[string]int64{"é": 1, "世界": 2, "😀": 3} {
		num, err := root.GetNumber(key)
		require.NoError(t, err, "key %q", key)

		n, err := num.Int64()
		require.NoError(t, err)
		assert.Equal(t, want, n, "key %q", key)
	}
}

func TestParseSourceVariants(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	v, err := ctx.ParseSource(jetjson.NewBytesSource([]byte(`[true]`)))
	require.NoError(t, err)
	assert.True(t, v.IsArray())

	v, err = ctx.ParseSource(jetjson.NewStringSource(`{"k":"v"}`))
	require.NoError(t, err)
	assert.True(t, v.IsObject())
}

func TestParseResetsPreviousDocument(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	_, err := ctx.ParseString(`{"old":[1,2,3]}`)
	require.NoError(t, err)

	// A failed parse leaves partial state that the next call must discard.
	_, err = ctx.ParseString(`{"broken":`)
	require.ErrorIs(t, err, jetjson.ErrSyntax)

	root, err := ctx.ParseString(`{"fresh":true}`)
	require.NoError(t, err)

	got, err := root.GetBool("fresh")
	require.NoError(t, err)
	assert.True(t, got)
	assert.Nil(t, root.Get("old"))
}
