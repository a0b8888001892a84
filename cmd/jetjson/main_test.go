package main

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jetjson"
)

func TestAppendIndented(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	root, err := ctx.ParseString(`{"a":1,"b":[true,"x"],"c":{},"d":null}`)
	require.NoError(t, err)

	out, err := appendIndented(nil, root, 2, 0)
	require.NoError(t, err)

	want := `{
  "a": 1,
  "b": [
    true,
    "x"
  ],
  "c": {},
  "d": null
}`
	assert.Equal(t, want, string(out))
}

func TestWriteAny(t *testing.T) {
	t.Parallel()

	doc := yaml.MapSlice{
		{Key: "name", Value: "jet"},
		{Key: "count", Value: 3},
		{Key: "ratio", Value: 0.5},
		{Key: "tags", Value: []any{"a", "b"}},
		{Key: "meta", Value: yaml.MapSlice{{Key: "ok", Value: true}}},
		{Key: "none", Value: nil},
	}

	sink := jetjson.NewBufferSink(64)
	w := jetjson.NewWriter(sink)

	require.NoError(t, writeAny(w, doc))
	require.NoError(t, w.Err())

	assert.Equal(t,
		`{"name":"jet","count":3,"ratio":0.5,"tags":["a","b"],"meta":{"ok":true},"none":null}`,
		sink.String())
}

func TestWriteAnyYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	input := []byte("name: jet\nitems:\n  - 1\n  - two\nnested:\n  ok: true\n")

	var doc any

	require.NoError(t, yaml.UnmarshalWithOptions(input, &doc, yaml.UseOrderedMap()))

	sink := jetjson.NewBufferSink(64)
	w := jetjson.NewWriter(sink)

	require.NoError(t, writeAny(w, doc))
	assert.Equal(t,
		`{"name":"jet","items":[1,"two"],"nested":{"ok":true}}`,
		sink.String())
}

func TestBuildTree(t *testing.T) {
	t.Parallel()

	ctx := jetjson.NewContext()
	defer ctx.Close()

	root, err := ctx.ParseString(`{"a":[1,2],"s":"hi"}`)
	require.NoError(t, err)

	tree, err := buildTree("", root)
	require.NoError(t, err)

	assert.Equal(t, "{2}", tree.label)
	require.Len(t, tree.children, 2)
	assert.Equal(t, "a: [2]", tree.children[0].label)
	assert.Equal(t, `s: "hi"`, tree.children[1].label)
	require.Len(t, tree.children[0].children, 2)
	assert.Equal(t, "0: 1", tree.children[0].children[0].label)
}
