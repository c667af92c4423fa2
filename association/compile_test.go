package association

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testResolver struct {
	entries     []string
	collections []string
}

func (r testResolver) IsEntryType(name string) bool      { return slices.Contains(r.entries, name) }
func (r testResolver) IsCollectionType(name string) bool { return slices.Contains(r.collections, name) }

var resolver = testResolver{
	entries:     []string{"Customer", "OrderItem", "Tag", "Author"},
	collections: []string{"Entries", "TaggedEntries"},
}

func TestCompile(t *testing.T) {
	defs, err := Compile("Order", []Declaration{
		Single("?customer", "Customer"),
		Single("orderItems[]", "OrderItem"),
		Pair("tags[]", "Tag", "TaggedEntries"),
		Single("author.a_", "Author"),
	}, "Entries", resolver)
	require.NoError(t, err)

	assert.Equal(t, 4, defs.Len())
	assert.Equal(t, []string{"customer", "orderItems", "tags", "author"}, defs.Names())

	customer, ok := defs.Lookup("customer")
	require.True(t, ok)
	assert.True(t, customer.Nullable)
	assert.Equal(t, "Customer", customer.Target)
	assert.Equal(t, "Entries", customer.Collection)
	assert.False(t, customer.ExplicitCollection)

	tags, ok := defs.Lookup("tags")
	require.True(t, ok)
	assert.True(t, tags.Multiple)
	assert.Equal(t, "TaggedEntries", tags.Collection)
	assert.True(t, tags.ExplicitCollection)

	author, ok := defs.Lookup("author")
	require.True(t, ok)
	assert.Equal(t, "a_", author.Prefix)

	_, ok = defs.Lookup("author.a_")
	assert.False(t, ok, "definitions are keyed by property name")

	var names []string
	for def := range defs.All() {
		names = append(names, def.Name)
	}

	assert.Equal(t, defs.Names(), names)
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name   string
		decl   Declaration
		kind   ErrorKind
		param  int
		target string
		reason string
	}{
		{"malformed token", Single("a.b[]", "Tag"), KindSyntax, ParamNone, "", "mutually exclusive"},
		{"unknown target", Single("x", "Nope"), KindUnknownEntry, ParamNone, "Nope", "not a registered entry type"},
		{"pair entry capability", Pair("x[]", "Entries", "Entries"), KindUnknownEntry, ParamEntry, "Entries", "not a registered entry type"},
		{"pair collection capability", Pair("x[]", "Tag", "Tag"), KindUnknownCollection, ParamCollection, "Tag", "not a registered collection type"},
		{"too many params", Declaration{Token: "x", Params: []string{"Tag", "Entries", "Extra"}}, KindParams, ParamNone, "", "exactly 2, got 3"},
		{"no params", Declaration{Token: "x"}, KindParams, ParamNone, "", "exactly 2, got 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs, err := Compile("Order", []Declaration{tt.decl}, "Entries", resolver)
			require.Error(t, err)
			assert.Nil(t, defs)
			assert.ErrorIs(t, err, ErrConfiguration)

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "Order", cfgErr.Type)
			assert.Equal(t, tt.decl.Token, cfgErr.Token)
			assert.Equal(t, tt.kind, cfgErr.Kind)
			assert.Equal(t, tt.param, cfgErr.Param)
			assert.Equal(t, tt.target, cfgErr.Name)
			assert.Contains(t, cfgErr.Reason, tt.reason)
			assert.Contains(t, err.Error(), tt.decl.Token)
		})
	}
}

func TestCompile_ReportsEveryProblem(t *testing.T) {
	_, err := Compile("Order", []Declaration{
		Single("ok", "Tag"),
		Single("bad[", "Tag"),
		Single("ok", "Tag"),
		Single("gone", "Missing"),
	}, "Unknown", resolver)
	require.Error(t, err)

	parts := Errors(err)
	require.Len(t, parts, 4)

	var (
		kinds []ErrorKind
		names []string
	)

	for _, part := range parts {
		var cfgErr *ConfigurationError
		require.ErrorAs(t, part, &cfgErr)
		kinds = append(kinds, cfgErr.Kind)
		names = append(names, cfgErr.Name)
	}

	assert.Equal(t, []ErrorKind{KindUnknownCollection, KindSyntax, KindDuplicate, KindUnknownEntry}, kinds)
	assert.Equal(t, []string{"Unknown", "", "ok", "Missing"}, names)

	assert.Contains(t, parts[0].Error(), `default collection "Unknown"`)
	assert.Contains(t, parts[1].Error(), `"bad["`)
	assert.Contains(t, parts[2].Error(), "declared more than once")
	assert.Contains(t, parts[3].Error(), `"Missing"`)
}

func TestConfigurationError_Message(t *testing.T) {
	err := &ConfigurationError{Type: "Book", Token: "a.b[]", Offset: 3, Reason: "embedding and multiplicity are mutually exclusive"}
	assert.Equal(t, `invalid association on Book "a.b[]" at offset 3: embedding and multiplicity are mutually exclusive`, err.Error())

	err = &ConfigurationError{Token: "x[]", Offset: -1, Param: ParamCollection, Reason: `"Tag" is not a registered collection type`}
	assert.Equal(t, `invalid association "x[]" (second parameter): "Tag" is not a registered collection type`, err.Error())
}
