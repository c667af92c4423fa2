package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() *Items {
	return NewItems().
		Set(8, Of("id", 8)).
		Set(9, Of("id", 9)).
		Set(10, Of("id", 10))
}

func TestItems_KeysAreNormalized(t *testing.T) {
	it := sampleItems()

	assert.True(t, it.Has("10"))
	assert.True(t, it.Has(int64(9)))
	assert.Equal(t, []Key{8, 9, 10}, it.Keys())

	it.Set("8", Of("id", 80))
	assert.Equal(t, 3, it.Len(), "re-set keeps a single slot")

	row, ok := it.Get(8)
	require.True(t, ok)
	assert.Equal(t, "{id: 80}", row.String())
}

func TestItems_WithoutOnly(t *testing.T) {
	it := sampleItems()

	assert.Equal(t, []Key{8, 9}, it.Without(10).Keys())
	assert.Equal(t, []Key{8, 10}, it.Only(10, 8).Keys(), "stored order wins")
	assert.Equal(t, 3, it.Len(), "source untouched")
}

func TestItems_Missing(t *testing.T) {
	it := sampleItems()

	assert.Nil(t, it.Missing(8, "9"))
	assert.Equal(t, []Key{99, "x"}, it.Missing(99, 8, "99", "x"))
}

func TestItems_Delete(t *testing.T) {
	it := sampleItems().Clone()
	it.Delete(9).Delete(42)

	assert.Equal(t, []Key{8, 10}, it.Keys())
}

func TestToItems(t *testing.T) {
	t.Run("record keyed by ids", func(t *testing.T) {
		it, err := ToItems(Of("10", Of("id", 10), "11", map[string]any{"id": 11}))
		require.NoError(t, err)
		assert.Equal(t, []Key{10, 11}, it.Keys())
	})

	t.Run("go map sorted numerically", func(t *testing.T) {
		it, err := ToItems(map[string]any{
			"10": map[string]any{"id": 10},
			"9":  map[string]any{"id": 9},
		})
		require.NoError(t, err)
		assert.Equal(t, []Key{9, 10}, it.Keys())
	})

	t.Run("sequence", func(t *testing.T) {
		it, err := ToItems([]any{Of("id", 1), map[string]any{"id": 2}})
		require.NoError(t, err)
		assert.Equal(t, []Key{0, 1}, it.Keys())
	})

	t.Run("scalar element", func(t *testing.T) {
		_, err := ToItems([]any{Of("id", 1), "nope"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 1")
	})

	t.Run("not a row set", func(t *testing.T) {
		_, err := ToItems(42)
		require.Error(t, err)
	})
}
