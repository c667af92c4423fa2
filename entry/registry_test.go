package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schematic/association"
)

func TestRegistry_Define(t *testing.T) {
	reg := NewRegistry()

	book, err := reg.Define("Book",
		Associate("author", "Author"),
		AssociateIn("items[]", "Item", "Shelf"),
		WithCollection("Shelf"),
	)
	require.NoError(t, err)

	assert.Equal(t, "Book", book.Name())
	assert.Same(t, reg, book.Registry())
	assert.Equal(t, "Shelf", book.Collection())
	assert.Equal(t, []association.Declaration{
		association.Single("author", "Author"),
		association.Pair("items[]", "Item", "Shelf"),
	}, book.Declarations())

	got, ok := reg.Type("Book")
	require.True(t, ok)
	assert.Same(t, book, got)

	_, err = reg.Define("Book")
	assert.ErrorIs(t, err, ErrAlreadyDefined)

	_, err = reg.Define("")
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = reg.Define(DefaultCollection)
	assert.ErrorIs(t, err, ErrAlreadyDefined, "types and collections share one namespace")

	assert.Panics(t, func() { reg.MustDefine("Book") })
}

func TestRegistry_LazyTargets(t *testing.T) {
	reg := NewRegistry()
	book := reg.MustDefine("Book", AssociateIn("items[]", "Item", "Shelf"), WithCollection("Shelf"))

	_, err := book.Definitions()
	require.ErrorIs(t, err, ErrConfiguration, "compiled before its targets exist")

	fresh := NewRegistry()
	book = fresh.MustDefine("Book", AssociateIn("items[]", "Item", "Shelf"), WithCollection("Shelf"))
	fresh.MustDefine("Item")

	_, err = fresh.DefineCollection("Shelf")
	require.NoError(t, err)

	defs, err := book.Definitions()
	require.NoError(t, err)

	def, ok := defs.Lookup("items")
	require.True(t, ok)
	assert.Equal(t, "Item", def.Target)
	assert.Equal(t, "Shelf", def.Collection)
	assert.True(t, def.ExplicitCollection)
}

func TestRegistry_Listing(t *testing.T) {
	reg := NewRegistry()
	reg.MustDefine("Zed")
	reg.MustDefine("Alpha")

	_, err := reg.DefineCollection("Bag")
	require.NoError(t, err)

	_, err = reg.DefineCollection("Bag")
	assert.ErrorIs(t, err, ErrAlreadyDefined)

	var names []string
	for _, typ := range reg.Types() {
		names = append(names, typ.Name())
	}

	assert.Equal(t, []string{"Zed", "Alpha"}, names, "definition order")
	assert.Equal(t, []string{"Bag", DefaultCollection}, reg.Collections())

	assert.True(t, reg.IsEntryType("Zed"))
	assert.False(t, reg.IsEntryType("Bag"))
	assert.True(t, reg.IsCollectionType("Bag"))
	assert.False(t, reg.IsCollectionType("Zed"))

	assert.Empty(t, reg.Compile())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Null", KindNull.String())
	assert.Equal(t, "Entries", KindEntries.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.Equal(t, "null", Null().String())
}

func TestValueOf(t *testing.T) {
	reg := bookstore(t)

	e, err := reg.New("Tag", nil)
	require.NoError(t, err)

	assert.Equal(t, KindEntry, ValueOf(e).Kind())
	assert.Same(t, e, ValueOf(e).Entry())
	assert.Equal(t, KindNull, ValueOf((*Entry)(nil)).Kind())
	assert.Equal(t, KindNull, ValueOf((*Entries)(nil)).Kind())
	assert.Equal(t, KindNull, ValueOf(nil).Kind())
	assert.Equal(t, KindScalar, ValueOf(0).Kind())
	assert.Equal(t, 0, ValueOf(0).Interface())
}
