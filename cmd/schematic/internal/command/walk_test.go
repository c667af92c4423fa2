package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schematic/entry"
	"schematic/record"
)

func TestWalk(t *testing.T) {
	reg := entry.NewRegistry()
	reg.MustDefine("Line")
	reg.MustDefine("Cart", entry.Associate("lines[]", "Line"), entry.Associate("?coupon", "Line"))

	cart, err := reg.New("Cart", record.Of(
		"id", 3,
		"lines", []any{record.Of("sku", "a"), record.Of("sku", "b")},
		"coupon", nil,
	))
	require.NoError(t, err)

	root := entry.ValueOf(cart)

	v, err := Walk(root, splitPath("lines.1.sku"))
	require.NoError(t, err)
	assert.Equal(t, "b", v.Scalar())

	v, err = Walk(root, splitPath("coupon.sku"))
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	v, err = Walk(root, nil)
	require.NoError(t, err)
	assert.Same(t, cart, v.Entry())

	_, err = Walk(root, splitPath("lines.7"))
	assert.ErrorIs(t, err, entry.ErrMissingKey)

	_, err = Walk(root, splitPath("id.value"))
	assert.EqualError(t, err, `cannot read "value" below "id": value is Scalar`)
}

func TestSplitPath(t *testing.T) {
	assert.Nil(t, splitPath(""))
	assert.Equal(t, []string{"a", "b"}, splitPath("a.b"))
}
