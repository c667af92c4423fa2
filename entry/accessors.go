package entry

import (
	"fmt"

	"schematic/record"
)

// Scalar reads a plain field. Resolved associations are rejected.
func (e *Entry) Scalar(name string) (any, error) {
	v, err := e.Get(name)
	if err != nil {
		return nil, err
	}

	switch v.Kind() {
	case KindNull:
		return nil, nil
	case KindScalar:
		return v.Scalar(), nil
	default:
		return nil, e.mismatch(name, v, "scalar")
	}
}

// Text reads a string field. Null reads as "".
func (e *Entry) Text(name string) (string, error) {
	return readScalar(e, name, "string", record.ToString)
}

// Int reads an integer field. Null reads as 0.
func (e *Entry) Int(name string) (int64, error) {
	return readScalar(e, name, "int", record.ToInt)
}

// Float reads a numeric field. Null reads as 0.
func (e *Entry) Float(name string) (float64, error) {
	return readScalar(e, name, "float", record.ToFloat)
}

// Bool reads a boolean field. Null reads as false.
func (e *Entry) Bool(name string) (bool, error) {
	return readScalar(e, name, "bool", record.ToBool)
}

// One reads a singular association. A null association yields nil.
func (e *Entry) One(name string) (*Entry, error) {
	v, err := e.Get(name)
	if err != nil {
		return nil, err
	}

	switch v.Kind() {
	case KindNull:
		return nil, nil
	case KindEntry:
		return v.Entry(), nil
	default:
		return nil, e.mismatch(name, v, "entry")
	}
}

// Many reads a multiplicity association. A null association yields nil.
func (e *Entry) Many(name string) (*Entries, error) {
	v, err := e.Get(name)
	if err != nil {
		return nil, err
	}

	switch v.Kind() {
	case KindNull:
		return nil, nil
	case KindEntries:
		return v.Entries(), nil
	default:
		return nil, e.mismatch(name, v, "entries")
	}
}

func readScalar[T any](e *Entry, name, want string, convert func(any) (T, bool)) (T, error) {
	var zero T

	raw, err := e.Scalar(name)
	if err != nil || raw == nil {
		return zero, err
	}

	out, ok := convert(raw)
	if !ok {
		return zero, e.invalid(name, fmt.Errorf("%T is not a %s", raw, want))
	}

	return out, nil
}

func (e *Entry) mismatch(name string, v Value, want string) error {
	return e.invalid(name, fmt.Errorf("holds %s, not %s", v.Kind(), want))
}

// ToMap materializes every declared association and returns the entry as
// plain maps: fields by name, resolved entries as nested maps and resolved
// collections as maps keyed by row key.
func (e *Entry) ToMap() (map[string]any, error) {
	out := make(map[string]any, e.data.Len())

	for name, raw := range e.data.All() {
		out[name] = raw
	}

	for _, name := range e.defs.Names() {
		v, err := e.Get(name)
		if err != nil {
			return nil, err
		}

		out[name], err = Plain(v)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Plain converts v into plain Go values, materializing nested entries.
func Plain(v Value) (any, error) {
	switch v.Kind() {
	case KindEntry:
		return v.Entry().ToMap()
	case KindEntries:
		rows := make(map[record.Key]any, v.Entries().Count())

		for k, ent := range v.Entries().All() {
			m, err := ent.ToMap()
			if err != nil {
				return nil, err
			}

			rows[k] = m
		}

		return rows, nil
	default:
		return v.Interface(), nil
	}
}
