package entry

import (
	"fmt"
	"sync"

	"schematic/association"
	"schematic/record"
)

// Type is a registered entry type: a name, its association declarations
// and the definitions compiled from them.
type Type struct {
	name       string
	registry   *Registry
	decls      []association.Declaration
	collection string
	isEmpty    func(any) bool

	once sync.Once
	defs *association.Definitions
	err  error
}

// TypeOption configures a Type.
type TypeOption func(*Type)

// Associate declares an association on the type's default collection.
func Associate(token, target string) TypeOption {
	return WithDeclarations(association.Single(token, target))
}

// AssociateIn declares an association using a custom collection type.
func AssociateIn(token, target, collection string) TypeOption {
	return WithDeclarations(association.Pair(token, target, collection))
}

// WithDeclarations appends raw declarations.
func WithDeclarations(decls ...association.Declaration) TypeOption {
	return func(t *Type) {
		t.decls = append(t.decls, decls...)
	}
}

// WithCollection sets the default collection type of multiplicity
// associations.
func WithCollection(name string) TypeOption {
	return func(t *Type) {
		t.collection = name
	}
}

// WithEmptyPredicate replaces record.IsEmpty as the test deciding that the
// data of a nullable association is absent.
func WithEmptyPredicate(fn func(any) bool) TypeOption {
	return func(t *Type) {
		t.isEmpty = fn
	}
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// Registry returns the registry the type belongs to.
func (t *Type) Registry() *Registry { return t.registry }

// Collection returns the name of the default collection type.
func (t *Type) Collection() string { return t.collection }

// Declarations returns a copy of the declarations.
func (t *Type) Declarations() []association.Declaration {
	return append([]association.Declaration(nil), t.decls...)
}

// Definitions compiles the declarations on first call and returns the
// cached result, error included, on every later one.
func (t *Type) Definitions() (*association.Definitions, error) {
	t.once.Do(func() {
		t.defs, t.err = association.Compile(t.name, t.decls, t.collection, t.registry)

		if t.err != nil {
			t.registry.logger.Error(t.err, "invalid associations", "type", t.name)
			return
		}

		t.registry.logger.V(1).Info("compiled associations", "type", t.name, "count", t.defs.Len())
	})

	return t.defs, t.err
}

func (t *Type) empty(v any) bool {
	if t.isEmpty != nil {
		return t.isEmpty(v)
	}

	return record.IsEmpty(v)
}

// New wraps a copy of rec in an Entry.
func (t *Type) New(rec *record.Record) (*Entry, error) {
	return t.newEntry(rec.Clone(), nil)
}

// NewEntries wraps a copy of items in an Entries on the type's default
// collection, which the elements pass on to their own associations.
func (t *Type) NewEntries(items *record.Items) (*Entries, error) {
	coll, ok := t.registry.Collection(t.collection)
	if !ok {
		if _, err := t.Definitions(); err != nil {
			return nil, err
		}

		return nil, fmt.Errorf("collection type %q: %w", t.collection, ErrUnknownType)
	}

	return newEntries(coll, t, items.Clone())
}

func (t *Type) newEntry(rec *record.Record, inherited *CollectionType) (*Entry, error) {
	defs, err := t.Definitions()
	if err != nil {
		return nil, err
	}

	return &Entry{
		typ:       t,
		defs:      defs,
		inherited: inherited,
		data:      rec,
	}, nil
}

func (t *Type) String() string { return t.name }

// CollectionType is a registered collection type. Entries built from a
// custom collection type report it through Entries.Collection, which typed
// wrappers use to pick their own collection behavior.
type CollectionType struct {
	name     string
	registry *Registry
}

// Name returns the collection type name.
func (c *CollectionType) Name() string { return c.name }

// New wraps a copy of items as entries of typ. Elements pass this
// collection type on to their own multiplicity associations.
func (c *CollectionType) New(typ *Type, items *record.Items) (*Entries, error) {
	if typ.registry != c.registry {
		return nil, fmt.Errorf("entry type %q belongs to another registry: %w", typ.name, ErrUnknownType)
	}

	return newEntries(c, typ, items.Clone())
}

func (c *CollectionType) String() string { return c.name }
