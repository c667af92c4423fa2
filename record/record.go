// Package record holds the raw data the entry package projects into typed
// entries: ordered field mappings (Record), ordered keyed row sets (Items)
// and the conversions between the shapes external loaders hand over.
//
// Both containers are append-only while being built and are treated as
// immutable once passed to the entry package.
package record

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Record is an ordered mapping of field name to value. Values are scalars,
// nil, nested *Record, *Items, []any or map[string]any.
//
// The zero value and the nil pointer are both valid empty records.
type Record struct {
	names  []string
	values map[string]any
}

// New creates an empty Record.
func New() *Record {
	return &Record{values: make(map[string]any)}
}

// Of builds a Record from alternating name/value arguments.
// It panics if a name is not a string or a value is missing.
func Of(pairs ...any) *Record {
	if len(pairs)%2 != 0 {
		panic("record.Of: odd number of arguments")
	}

	r := New()

	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("record.Of: field name at position %d is %T, not string", i, pairs[i]))
		}

		r.Set(name, pairs[i+1])
	}

	return r
}

// FromMap builds a Record from a Go map. Field order is lexical since Go
// maps carry none.
func FromMap(m map[string]any) *Record {
	r := New()

	for _, name := range slices.Sorted(maps.Keys(m)) {
		r.Set(name, m[name])
	}

	return r
}

// Set stores value under name. Re-setting a name keeps its position.
func (r *Record) Set(name string, value any) *Record {
	if r.values == nil {
		r.values = make(map[string]any)
	}

	if _, exists := r.values[name]; !exists {
		r.names = append(r.names, name)
	}

	r.values[name] = value

	return r
}

// Get returns the value stored under name and whether the field exists.
// A field holding nil exists.
func (r *Record) Get(name string) (any, bool) {
	if r == nil {
		return nil, false
	}

	v, ok := r.values[name]

	return v, ok
}

// Has reports whether the field exists, regardless of its value.
func (r *Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}

	return len(r.names)
}

// Names returns the field names in stored order.
func (r *Record) Names() []string {
	if r == nil {
		return nil
	}

	return slices.Clone(r.names)
}

// All iterates fields in stored order.
func (r *Record) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if r == nil {
			return
		}

		for _, name := range r.names {
			if !yield(name, r.values[name]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy: nested values are shared.
func (r *Record) Clone() *Record {
	out := New()
	if r == nil {
		return out
	}

	out.names = slices.Clone(r.names)
	maps.Copy(out.values, r.values)

	return out
}

// Map returns the fields as a plain Go map.
func (r *Record) Map() map[string]any {
	out := make(map[string]any, r.Len())
	for name, v := range r.All() {
		out[name] = v
	}

	return out
}

// Embedded collects every field whose name starts with prefix and is longer
// than it into a new Record keyed by the remainder of the name.
//
// ok is false when no field matched or every matched value is nil; an
// embedded object whose columns are all NULL cannot be told apart from a
// missing one.
func (r *Record) Embedded(prefix string) (sub *Record, ok bool) {
	sub = New()

	for name, v := range r.All() {
		if len(name) <= len(prefix) || !strings.HasPrefix(name, prefix) {
			continue
		}

		sub.Set(name[len(prefix):], v)

		if v != nil {
			ok = true
		}
	}

	if !ok {
		return nil, false
	}

	return sub, true
}

// String renders the record as {name: value, ...}.
func (r *Record) String() string {
	var b strings.Builder

	b.WriteByte('{')

	i := 0
	for name, v := range r.All() {
		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%s: %v", name, v)
		i++
	}

	b.WriteByte('}')

	return b.String()
}

// AsRecord converts the shapes a loader may produce for one row into a
// *Record. It accepts *Record, Record, map[string]any and map[any]any with
// string keys.
func AsRecord(v any) (*Record, bool) {
	switch t := v.(type) {
	case *Record:
		if t == nil {
			return nil, false
		}

		return t, true
	case Record:
		return &t, true
	case map[string]any:
		return FromMap(t), true
	case map[any]any:
		m := make(map[string]any, len(t))

		for k, val := range t {
			name, ok := k.(string)
			if !ok {
				return nil, false
			}

			m[name] = val
		}

		return FromMap(m), true
	default:
		return nil, false
	}
}
