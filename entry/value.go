package entry

import (
	"fmt"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind tells which member of the Value union is set.
type Kind int

const (
	KindNull    Kind = iota // no value: nil field or absent association
	KindScalar              // raw value, including unmaterialized nested data
	KindEntry               // resolved singular association
	KindEntries             // resolved multiplicity association
)

// Value is the result of reading an attribute.
type Value struct {
	kind    Kind
	scalar  any
	entry   *Entry
	entries *Entries
}

// Null is the empty Value.
func Null() Value { return Value{} }

func scalarValue(v any) Value {
	if v == nil {
		return Null()
	}

	return Value{kind: KindScalar, scalar: v}
}

func entryValue(e *Entry) Value { return Value{kind: KindEntry, entry: e} }

func entriesValue(e *Entries) Value { return Value{kind: KindEntries, entries: e} }

// ValueOf wraps v: *Entry and *Entries become the matching members, nil
// and nil pointers become Null, anything else a Scalar.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case *Entry:
		if t == nil {
			return Null()
		}

		return entryValue(t)
	case *Entries:
		if t == nil {
			return Null()
		}

		return entriesValue(t)
	default:
		return scalarValue(v)
	}
}

// Kind returns the union member set.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v holds nothing.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Scalar returns the raw value, or nil for other kinds.
func (v Value) Scalar() any { return v.scalar }

// Entry returns the resolved singular association, or nil.
func (v Value) Entry() *Entry { return v.entry }

// Entries returns the resolved multiplicity association, or nil.
func (v Value) Entries() *Entries { return v.entries }

// Interface returns whichever member is set as a plain interface value.
func (v Value) Interface() any {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindEntry:
		return v.entry
	case KindEntries:
		return v.entries
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindScalar:
		return fmt.Sprint(v.scalar)
	case KindEntry:
		return v.entry.String()
	default:
		return v.entries.String()
	}
}
