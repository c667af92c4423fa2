package entry

import (
	"fmt"
	"iter"

	"schematic/record"
)

// Entries wraps an ordered keyed row set of one entry type. Each row is
// materialized into an *Entry on first access and cached.
//
// Entries never change their rows: Remove, ReduceTo and Transform return new
// collections over raw, unmaterialized data.
type Entries struct {
	typ  *Type
	coll *CollectionType
	items   *record.Items

	cache map[record.Key]*Entry
}

func newEntries(coll *CollectionType, typ *Type, items *record.Items) (*Entries, error) {
	if _, err := typ.Definitions(); err != nil {
		return nil, err
	}

	if items == nil {
		items = record.NewItems()
	}

	return &Entries{
		typ:     typ,
		coll:    coll,
		items:   items,
		cache:   make(map[record.Key]*Entry),
	}, nil
}

// Type returns the entry type of the elements.
func (e *Entries) Type() *Type { return e.typ }

// Collection returns the collection type.
func (e *Entries) Collection() *CollectionType { return e.coll }

// Items returns a copy of the raw rows.
func (e *Entries) Items() *record.Items { return e.items.Clone() }

// Count returns the number of rows.
func (e *Entries) Count() int { return e.items.Len() }

// Keys returns the row keys in stored order.
func (e *Entries) Keys() []record.Key { return e.items.Keys() }

// Has reports whether key exists without materializing anything.
func (e *Entries) Has(key record.Key) bool { return e.items.Has(key) }

// Get returns the entry stored under key, materializing it on first access.
func (e *Entries) Get(key record.Key) (*Entry, error) {
	key = record.NormalizeKey(key)

	row, ok := e.items.Get(key)
	if !ok {
		return nil, &MissingKeyError{Key: key}
	}

	if cached, ok := e.cache[key]; ok {
		return cached, nil
	}

	// Elements pass the collection type on to their own associations.
	ent, err := e.typ.newEntry(row, e.coll)
	if err != nil {
		return nil, err
	}

	e.cache[key] = ent

	return ent, nil
}

// All iterates the entries in stored key order, materializing each one. The
// sequence can be ranged over any number of times.
func (e *Entries) All() iter.Seq2[record.Key, *Entry] {
	return func(yield func(record.Key, *Entry) bool) {
		for _, key := range e.items.Keys() {
			// Get cannot fail: key comes from items, and newEntries refused
			// an element type whose associations do not compile.
			ent, _ := e.Get(key)

			if !yield(key, ent) {
				return
			}
		}
	}
}

// Slice materializes every entry and returns them in stored key order.
func (e *Entries) Slice() []*Entry {
	out := make([]*Entry, 0, e.Count())
	for _, ent := range e.All() {
		out = append(out, ent)
	}

	return out
}

// ToMap materializes every entry and returns them keyed by row key.
func (e *Entries) ToMap() map[record.Key]*Entry {
	out := make(map[record.Key]*Entry, e.Count())
	for key, ent := range e.All() {
		out[key] = ent
	}

	return out
}

// Remove returns a new collection without the given keys. Every key must
// exist; otherwise a *MissingKeysError lists all absent ones and nothing is
// built.
func (e *Entries) Remove(keys ...record.Key) (*Entries, error) {
	if err := e.validateKeys(keys); err != nil {
		return nil, err
	}

	return e.derive(e.typ, e.items.Without(keys...))
}

// ReduceTo returns a new collection holding only the given keys, in stored
// order. Validation follows Remove.
func (e *Entries) ReduceTo(keys ...record.Key) (*Entries, error) {
	if err := e.validateKeys(keys); err != nil {
		return nil, err
	}

	return e.derive(e.typ, e.items.Only(keys...))
}

// Transform applies fn to a deep copy of the raw rows and wraps the result as a
// new collection of the same entry type. fn may add, drop, reorder or
// reshape rows freely.
func (e *Entries) Transform(fn func(*record.Items) *record.Items) (*Entries, error) {
	return e.TransformAs(e.typ, fn)
}

// TransformAs is Transform with a different entry type for the result. A
// nil typ keeps the current one.
func (e *Entries) TransformAs(typ *Type, fn func(*record.Items) *record.Items) (*Entries, error) {
	if typ == nil {
		typ = e.typ
	}

	if typ.registry != e.typ.registry {
		return nil, fmt.Errorf("entry type %q belongs to another registry: %w", typ.name, ErrUnknownType)
	}

	rows := record.NewItems()
	for key, row := range e.items.All() {
		rows.Set(key, row.Clone())
	}

	return e.derive(typ, fn(rows))
}

func (e *Entries) derive(typ *Type, items *record.Items) (*Entries, error) {
	return newEntries(e.coll, typ, items)
}

func (e *Entries) validateKeys(keys []record.Key) error {
	if missing := e.items.Missing(keys...); len(missing) > 0 {
		return &MissingKeysError{Keys: missing}
	}

	return nil
}

func (e *Entries) String() string {
	return fmt.Sprintf("%s<%s>%v", e.coll.name, e.typ.name, e.items.Keys())
}
