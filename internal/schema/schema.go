package schema

import (
	"schematic/association"
	"schematic/internal/common"
)

// File represents the root of a schema file.
type File struct {
	// Version of the schema format.
	Version string `yaml:"version,omitempty"`

	// Collections lists custom collection types. The default collection
	// type is always available and need not be listed.
	Collections []string `yaml:"collections,omitempty"`

	// Types lists entry types in definition order.
	Types []TypeDef `yaml:"types"`
}

// TypeDef declares one entry type.
type TypeDef struct {
	Name string `yaml:"name"`

	// Collection is the default collection type of the type's multiplicity
	// associations.
	Collection string `yaml:"collection,omitempty"`

	// Empty selects the test deciding that nullable association data is
	// absent.
	Empty EmptyMode `yaml:"empty,omitempty"`

	Fields       FieldTable       `yaml:"fields,omitempty"`
	Associations AssociationTable `yaml:"associations,omitempty"`
}

// EmptyMode names an emptiness predicate.
type EmptyMode string

const (
	// EmptyStandard treats nil, false, zero, "", "0" and empty containers as
	// absent.
	EmptyStandard EmptyMode = "standard"
	// EmptyNever treats only nil as absent.
	EmptyNever EmptyMode = "never"
)

// IsValid returns true if the mode is a recognized value.
func (m EmptyMode) IsValid() bool {
	return m == EmptyStandard || m == EmptyNever
}

// FieldKind is the scalar kind of a declared field.
type FieldKind string

const (
	KindString FieldKind = "string"
	KindInt    FieldKind = "int"
	KindFloat  FieldKind = "float"
	KindBool   FieldKind = "bool"
	KindAny    FieldKind = "any"
)

// IsValid returns true if the kind is a recognized value.
func (k FieldKind) IsValid() bool {
	switch k {
	case KindString, KindInt, KindFloat, KindBool, KindAny:
		return true
	default:
		return false
	}
}

// Field is one declared scalar field.
type Field struct {
	Name string
	Kind FieldKind
}

// FieldTable is an ordered list of fields, written as a YAML mapping.
type FieldTable []Field

// Lookup returns the field called name.
func (t FieldTable) Lookup(name string) (Field, bool) {
	for _, f := range t {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// AssociationTable is an ordered list of declarations, written as a YAML
// mapping from token to target or [target, collection].
type AssociationTable []association.Declaration

// Params is a declaration parameter list written either as a single string
// or as a sequence.
type Params []string

// First returns the first parameter or "" if there is none.
func (p Params) First() string {
	if v, ok := common.First(p); ok {
		return v
	}

	return ""
}

// IsSingle returns true if there is exactly one parameter.
func (p Params) IsSingle() bool {
	return common.IsSingle(p)
}

// Type returns the type declared under name.
func (f *File) Type(name string) (*TypeDef, bool) {
	for i := range f.Types {
		if f.Types[i].Name == name {
			return &f.Types[i], true
		}
	}

	return nil, false
}

// TypeNames returns the declared type names in order.
func (f *File) TypeNames() []string {
	names := make([]string, 0, len(f.Types))
	for _, t := range f.Types {
		names = append(names, t.Name)
	}

	return names
}
