package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDecodeItems_Mapping(t *testing.T) {
	data := `
10:
  id: 10
  title: Dune
  tags:
    1: {name: scifi}
9:
  id: 9
  title: null
`
	it, err := DecodeItems([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []Key{10, 9}, it.Keys(), "document order is kept")

	row, ok := it.Get(10)
	require.True(t, ok)
	assert.Equal(t, []string{"id", "title", "tags"}, row.Names())

	tags, _ := row.Get("tags")
	nested, ok := tags.(*Record)
	require.True(t, ok, "nested mapping decodes to *Record")
	assert.True(t, nested.Has("1"))

	row, _ = it.Get(9)
	v, ok := row.Get("title")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestDecodeItems_JSONSequence(t *testing.T) {
	it, err := DecodeItems([]byte(`[{"id": 1, "a_name": "x"}, {"id": 2, "a_name": null}]`))
	require.NoError(t, err)
	assert.Equal(t, []Key{0, 1}, it.Keys())

	row, _ := it.Get(1)
	v, _ := row.Get("id")
	assert.Equal(t, 2, v)
}

func TestDecodeItems_RejectsScalarRows(t *testing.T) {
	_, err := DecodeItems([]byte("1: nope\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotMapping)
}

func TestDecodeRecord_Aliases(t *testing.T) {
	data := `
base: &b {x: 1}
copy: *b
list: [1, two]
`
	r, err := DecodeRecord([]byte(data))
	require.NoError(t, err)

	v, _ := r.Get("copy")
	cp, ok := v.(*Record)
	require.True(t, ok)
	x, _ := cp.Get("x")
	assert.Equal(t, 1, x)

	list, _ := r.Get("list")
	assert.Equal(t, []any{1, "two"}, list)
}

func TestRecordYAMLRoundTrip(t *testing.T) {
	in := NewItems().
		Set(2, Of("z", 1, "a", Of("nested", true))).
		Set("k", Of("list", []any{Of("x", 1)}))

	out, err := yaml.Marshal(in)
	require.NoError(t, err)

	back, err := DecodeItems(out)
	require.NoError(t, err)
	assert.Equal(t, []Key{2, "k"}, back.Keys())

	row, _ := back.Get(2)
	assert.Equal(t, []string{"z", "a"}, row.Names())
	assert.Equal(t, "{z: 1, a: {nested: true}}", row.String())
}
