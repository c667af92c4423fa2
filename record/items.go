package record

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Items is an ordered mapping of Key to *Record: the raw form of a row set.
// Keys are normalized on every access.
type Items struct {
	keys []Key
	rows map[Key]*Record
}

// NewItems creates an empty Items.
func NewItems() *Items {
	return &Items{rows: make(map[Key]*Record)}
}

// Rows builds Items keyed 0..n-1 in argument order.
func Rows(rows ...*Record) *Items {
	it := NewItems()
	for i, r := range rows {
		it.Set(i, r)
	}

	return it
}

// Set stores row under key. Re-setting a key keeps its position.
func (it *Items) Set(key Key, row *Record) *Items {
	if it.rows == nil {
		it.rows = make(map[Key]*Record)
	}

	key = NormalizeKey(key)
	if _, exists := it.rows[key]; !exists {
		it.keys = append(it.keys, key)
	}

	it.rows[key] = row

	return it
}

// Delete removes key if present.
func (it *Items) Delete(key Key) *Items {
	if it == nil {
		return it
	}

	key = NormalizeKey(key)
	if _, exists := it.rows[key]; !exists {
		return it
	}

	delete(it.rows, key)
	it.keys = slices.DeleteFunc(it.keys, func(k Key) bool { return k == key })

	return it
}

// Get returns the row stored under key.
func (it *Items) Get(key Key) (*Record, bool) {
	if it == nil {
		return nil, false
	}

	r, ok := it.rows[NormalizeKey(key)]

	return r, ok
}

// Has reports whether key exists.
func (it *Items) Has(key Key) bool {
	_, ok := it.Get(key)
	return ok
}

// Len returns the number of rows.
func (it *Items) Len() int {
	if it == nil {
		return 0
	}

	return len(it.keys)
}

// Keys returns the keys in stored order.
func (it *Items) Keys() []Key {
	if it == nil {
		return nil
	}

	return slices.Clone(it.keys)
}

// All iterates rows in stored order.
func (it *Items) All() iter.Seq2[Key, *Record] {
	return func(yield func(Key, *Record) bool) {
		if it == nil {
			return
		}

		for _, k := range it.keys {
			if !yield(k, it.rows[k]) {
				return
			}
		}
	}
}

// Clone returns a copy with its own key order; rows are shared.
func (it *Items) Clone() *Items {
	out := NewItems()
	if it == nil {
		return out
	}

	out.keys = slices.Clone(it.keys)
	maps.Copy(out.rows, it.rows)

	return out
}

// Without returns a copy lacking the given keys. Unknown keys are ignored.
func (it *Items) Without(keys ...Key) *Items {
	drop := keySet(keys)
	out := NewItems()

	for k, r := range it.All() {
		if _, skip := drop[k]; !skip {
			out.Set(k, r)
		}
	}

	return out
}

// Only returns a copy holding just the given keys, in stored order.
// Unknown keys are ignored.
func (it *Items) Only(keys ...Key) *Items {
	keep := keySet(keys)
	out := NewItems()

	for k, r := range it.All() {
		if _, ok := keep[k]; ok {
			out.Set(k, r)
		}
	}

	return out
}

// Missing returns the distinct keys absent from it, in argument order.
func (it *Items) Missing(keys ...Key) []Key {
	var missing []Key

	seen := make(map[Key]struct{}, len(keys))

	for _, k := range keys {
		k = NormalizeKey(k)
		if _, dup := seen[k]; dup {
			continue
		}

		seen[k] = struct{}{}

		if !it.Has(k) {
			missing = append(missing, k)
		}
	}

	return missing
}

func keySet(keys []Key) map[Key]struct{} {
	set := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		set[NormalizeKey(k)] = struct{}{}
	}

	return set
}

// ToItems converts the shapes a loader may produce for a row set:
// *Items, *Record or map (keys normalized), and slices (keys 0..n-1).
// Every element must convert with AsRecord.
func ToItems(v any) (*Items, error) {
	switch t := v.(type) {
	case *Items:
		if t == nil {
			return NewItems(), nil
		}

		return t, nil
	case *Record:
		return fromPairs(t.All())
	case Record:
		return fromPairs(t.All())
	case map[string]any:
		m := make(map[any]any, len(t))
		for k, elem := range t {
			m[k] = elem
		}

		return fromAnyMap(m)
	case map[any]any:
		return fromAnyMap(t)
	case []*Record:
		return Rows(t...), nil
	case []map[string]any:
		it := NewItems()
		for i, m := range t {
			it.Set(i, FromMap(m))
		}

		return it, nil
	case []any:
		it := NewItems()

		for i, elem := range t {
			r, ok := AsRecord(elem)
			if !ok {
				return nil, fmt.Errorf("row %d is %T, not a record", i, elem)
			}

			it.Set(i, r)
		}

		return it, nil
	default:
		return nil, fmt.Errorf("%T is not a keyed row set", v)
	}
}

func fromPairs[K any](seq iter.Seq2[K, any]) (*Items, error) {
	it := NewItems()

	for k, elem := range seq {
		r, ok := AsRecord(elem)
		if !ok {
			return nil, fmt.Errorf("row %v is %T, not a record", k, elem)
		}

		it.Set(k, r)
	}

	return it, nil
}

func fromAnyMap(m map[any]any) (*Items, error) {
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, CompareKeys)

	it := NewItems()

	for _, k := range keys {
		r, ok := AsRecord(m[k])
		if !ok {
			return nil, fmt.Errorf("row %v is %T, not a record", k, m[k])
		}

		it.Set(k, r)
	}

	return it, nil
}
