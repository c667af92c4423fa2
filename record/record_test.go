package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input    Key
		expected Key
	}{
		{10, 10},
		{int64(10), 10},
		{uint8(7), 7},
		{"10", 10},
		{"-3", -3},
		{"0", 0},
		{"010", "010"},
		{"-0", "-0"},
		{"+1", "+1"},
		{"abc", "abc"},
		{"", ""},
		{nil, ""},
		{true, 1},
		{false, 0},
		{2.9, 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeKey(tt.input), "NormalizeKey(%#v)", tt.input)
	}
}

func TestCompareKeys(t *testing.T) {
	assert.Negative(t, CompareKeys(9, 10))
	assert.Negative(t, CompareKeys("9", "10"))
	assert.Negative(t, CompareKeys(100, "a"))
	assert.Positive(t, CompareKeys("b", "a"))
	assert.Zero(t, CompareKeys("10", 10))
}

func TestRecord_Order(t *testing.T) {
	r := Of("id", 1, "title", "Dune", "year", nil)
	r.Set("id", 2)

	assert.Equal(t, []string{"id", "title", "year"}, r.Names())
	assert.Equal(t, 3, r.Len())

	v, ok := r.Get("id")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	assert.True(t, r.Has("year"), "nil field still exists")
	assert.False(t, r.Has("missing"))
}

func TestRecord_NilReceiver(t *testing.T) {
	var r *Record

	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Has("x"))
	assert.Nil(t, r.Names())
	assert.Equal(t, 0, r.Clone().Len())
}

func TestRecord_Clone(t *testing.T) {
	r := Of("a", 1)
	c := r.Clone()
	c.Set("b", 2)

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 2, c.Len())
}

func TestRecord_Embedded(t *testing.T) {
	r := Of("id", 1, "a_firstname", "Jane", "a_surname", "Doe", "a_", "ignored", "b_x", 3)

	sub, ok := r.Embedded("a_")
	require.True(t, ok)
	assert.Equal(t, []string{"firstname", "surname"}, sub.Names())

	v, _ := sub.Get("firstname")
	assert.Equal(t, "Jane", v)
}

func TestRecord_EmbeddedAllNil(t *testing.T) {
	r := Of("id", 1, "tag_name", nil, "tag_id", nil)

	sub, ok := r.Embedded("tag_")
	assert.False(t, ok)
	assert.Nil(t, sub)

	_, ok = r.Embedded("customer_")
	assert.False(t, ok, "no matching field")
}

func TestAsRecord(t *testing.T) {
	r, ok := AsRecord(map[string]any{"b": 2, "a": 1})
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, r.Names())

	_, ok = AsRecord(map[any]any{1: "x"})
	assert.False(t, ok)

	_, ok = AsRecord("scalar")
	assert.False(t, ok)

	var nilRec *Record
	_, ok = AsRecord(nilRec)
	assert.False(t, ok)
}

func TestIsEmpty(t *testing.T) {
	empty := []any{nil, false, 0, int64(0), 0.0, "", "0", New(), NewItems(), []any{}, map[string]any{}}
	for _, v := range empty {
		assert.True(t, IsEmpty(v), "IsEmpty(%#v)", v)
	}

	full := []any{true, 1, -1, 0.5, "a", "00", Of("a", nil), Rows(New()), []any{nil}}
	for _, v := range full {
		assert.False(t, IsEmpty(v), "IsEmpty(%#v)", v)
	}
}

func TestScalarConversions(t *testing.T) {
	n, ok := ToInt("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)

	n, ok = ToInt(float64(7))
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)

	_, ok = ToInt(7.5)
	assert.False(t, ok)

	_, ok = ToInt(true)
	assert.False(t, ok)

	f, ok := ToFloat("1.5")
	assert.True(t, ok)
	assert.InDelta(t, 1.5, f, 1e-9)

	b, ok := ToBool(1)
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = ToBool(2)
	assert.False(t, ok)

	s, ok := ToString([]byte("text"))
	assert.True(t, ok)
	assert.Equal(t, "text", s)
}
