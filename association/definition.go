package association

import (
	"iter"
)

// Declaration is one association as written by a type author: a token and
// its parameters. One parameter names the target entry type; two name the
// target entry type and a collection type.
type Declaration struct {
	Token  string
	Params []string
}

// Single declares an association on the owning type's default collection.
func Single(token, target string) Declaration {
	return Declaration{Token: token, Params: []string{target}}
}

// Pair declares an association with a custom collection type.
func Pair(token, target, collection string) Declaration {
	return Declaration{Token: token, Params: []string{target, collection}}
}

// Definition is the compiled form of a Declaration.
type Definition struct {
	Token
	// Target is the related entry type.
	Target string
	// Collection is the collection type built for multiplicity associations
	// and forwarded to singular ones.
	Collection string
	// ExplicitCollection is set when the declaration named Collection.
	ExplicitCollection bool
}

// Definitions is the ordered set of Definitions of one entry type.
type Definitions struct {
	order  []string
	byName map[string]Definition
}

// Lookup returns the definition of the property name.
func (d *Definitions) Lookup(name string) (Definition, bool) {
	if d == nil {
		return Definition{}, false
	}

	def, ok := d.byName[name]

	return def, ok
}

// Len returns the number of definitions.
func (d *Definitions) Len() int {
	if d == nil {
		return 0
	}

	return len(d.order)
}

// Names returns the property names in declaration order.
func (d *Definitions) Names() []string {
	if d == nil {
		return nil
	}

	return append([]string(nil), d.order...)
}

// All iterates definitions in declaration order.
func (d *Definitions) All() iter.Seq[Definition] {
	return func(yield func(Definition) bool) {
		if d == nil {
			return
		}

		for _, name := range d.order {
			if !yield(d.byName[name]) {
				return
			}
		}
	}
}

func (d *Definitions) add(def Definition) {
	d.order = append(d.order, def.Name)
	d.byName[def.Name] = def
}
