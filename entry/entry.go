package entry

import (
	"fmt"

	"schematic/association"
	"schematic/record"
)

// Entry wraps one raw record of a Type. Plain fields are read straight from
// the record; declared associations are materialized on first access and
// memoized for the lifetime of the Entry.
//
// An Entry is not safe for concurrent first access of the same attribute.
// Once every attribute a caller needs has been read, concurrent reads are
// safe.
type Entry struct {
	typ  *Type
	defs *association.Definitions
	// inherited is the collection type forwarded by the association or
	// collection that built this entry; nil for entries built directly.
	inherited *CollectionType
	data      *record.Record

	resolved map[string]struct{}
	memo     map[string]Value
}

// New wraps a copy of rec as an entry of the named type.
func (r *Registry) New(typeName string, rec *record.Record) (*Entry, error) {
	t, ok := r.Type(typeName)
	if !ok {
		return nil, fmt.Errorf("entry type %q: %w", typeName, ErrUnknownType)
	}

	return t.New(rec)
}

// Type returns the entry type.
func (e *Entry) Type() *Type { return e.typ }

// Record returns a copy of the raw record.
func (e *Entry) Record() *record.Record { return e.data.Clone() }

// Fields returns the raw field names in stored order.
func (e *Entry) Fields() []string { return e.data.Names() }

// Get reads the attribute name.
//
// A declared association is resolved on the first call: embedded ones
// collect the prefixed fields, others read the field of the same name.
// Absent data, and empty data of a nullable association, resolve to Null;
// anything else becomes an *Entry or *Entries of the target type. Every
// later call returns the same Value.
//
// Names that are neither fields nor associations fail with
// *MissingFieldError.
func (e *Entry) Get(name string) (Value, error) {
	def, declared := e.defs.Lookup(name)
	if _, done := e.resolved[name]; !declared || done {
		return e.read(name)
	}

	if e.resolved == nil {
		e.resolved = make(map[string]struct{})
		e.memo = make(map[string]Value)
	}

	e.resolved[name] = struct{}{}

	v, err := e.resolve(def)
	if err != nil {
		delete(e.resolved, name)
		return Null(), err
	}

	e.memo[name] = v

	return v, nil
}

func (e *Entry) resolve(def association.Definition) (Value, error) {
	var data any

	if def.Embedded {
		if sub, ok := e.data.Embedded(def.Prefix); ok {
			data = sub
		}
	} else {
		raw, ok := e.data.Get(def.Name)
		if !ok {
			return Null(), e.missing(def.Name)
		}

		data = raw
	}

	if data == nil || (def.Nullable && e.typ.empty(data)) {
		return Null(), nil
	}

	return e.materialize(def, data)
}

func (e *Entry) materialize(def association.Definition, data any) (Value, error) {
	reg := e.typ.registry

	target, ok := reg.Type(def.Target)
	if !ok {
		return Null(), e.invalid(def.Name, fmt.Errorf("target %q: %w", def.Target, ErrUnknownType))
	}

	coll := e.collectionFor(def)

	if def.Multiple {
		items, err := record.ToItems(data)
		if err != nil {
			return Null(), e.invalid(def.Name, err)
		}

		entries, err := newEntries(coll, target, items)
		if err != nil {
			return Null(), err
		}

		return entriesValue(entries), nil
	}

	rec, ok := record.AsRecord(data)
	if !ok {
		return Null(), e.invalid(def.Name, fmt.Errorf("%T is not a record", data))
	}

	child, err := target.newEntry(rec, coll)
	if err != nil {
		return Null(), err
	}

	return entryValue(child), nil
}

// collectionFor picks the collection type of def: the declared one, else
// the one inherited by this entry, else the owning type's default. The
// choice is forwarded to whatever def materializes.
func (e *Entry) collectionFor(def association.Definition) *CollectionType {
	if !def.ExplicitCollection && e.inherited != nil {
		return e.inherited
	}

	coll, _ := e.typ.registry.Collection(def.Collection)

	return coll
}

// read returns the memoized value of name if any, else the raw field.
func (e *Entry) read(name string) (Value, error) {
	if v, ok := e.memo[name]; ok {
		return v, nil
	}

	raw, ok := e.data.Get(name)
	if !ok {
		return Null(), e.missing(name)
	}

	return scalarValue(raw), nil
}

// Has reports whether name currently holds a non-null value, memoized or
// raw. It never resolves an association.
func (e *Entry) Has(name string) bool {
	if v, ok := e.memo[name]; ok {
		return !v.IsNull()
	}

	raw, ok := e.data.Get(name)

	return ok && raw != nil
}

// Resolved reports whether the association name has been materialized.
func (e *Entry) Resolved(name string) bool {
	_, ok := e.memo[name]
	return ok
}

func (e *Entry) missing(name string) error {
	return &MissingFieldError{Type: e.typ.name, Field: name}
}

func (e *Entry) invalid(name string, err error) error {
	return &InvalidDataError{Type: e.typ.name, Field: name, Err: err}
}

func (e *Entry) String() string {
	return e.typ.name + e.data.String()
}
