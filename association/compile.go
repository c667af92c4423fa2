package association

import (
	"errors"
)

// pairParams is the number of parameters of the custom collection form.
const pairParams = 2

// Resolver reports which names denote registered entry and collection
// types.
type Resolver interface {
	IsEntryType(name string) bool
	IsCollectionType(name string) bool
}

// Compile turns the declarations of typeName into Definitions.
//
// Collections default to defaultCollection unless a declaration names one.
// Every problem is reported; the returned error joins one
// *ConfigurationError per offending declaration and is nil on success.
func Compile(typeName string, decls []Declaration, defaultCollection string, r Resolver) (*Definitions, error) {
	defs := &Definitions{byName: make(map[string]Definition, len(decls))}

	var errs []error

	fail := func(err *ConfigurationError) {
		err.Type = typeName
		errs = append(errs, err)
	}

	if !r.IsCollectionType(defaultCollection) {
		fail(declarationError("", KindUnknownCollection, ParamNone, defaultCollection,
			"default collection %q is not a registered collection type", defaultCollection))
	}

	for _, decl := range decls {
		def, err := compileOne(decl, defaultCollection, r)
		if err != nil {
			fail(err)
			continue
		}

		if _, dup := defs.byName[def.Name]; dup {
			fail(declarationError(decl.Token, KindDuplicate, ParamNone, def.Name,
				"property %q is declared more than once", def.Name))
			continue
		}

		defs.add(def)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return defs, nil
}

func compileOne(decl Declaration, defaultCollection string, r Resolver) (Definition, *ConfigurationError) {
	tok, err := ParseToken(decl.Token)
	if err != nil {
		return Definition{}, err.(*ConfigurationError)
	}

	def := Definition{Token: tok, Collection: defaultCollection}

	switch len(decl.Params) {
	case 1:
		def.Target = decl.Params[0]
		if !r.IsEntryType(def.Target) {
			return Definition{}, declarationError(decl.Token, KindUnknownEntry, ParamNone, def.Target,
				"target %q is not a registered entry type", def.Target)
		}
	case pairParams:
		def.Target = decl.Params[0]
		if !r.IsEntryType(def.Target) {
			return Definition{}, declarationError(decl.Token, KindUnknownEntry, ParamEntry, def.Target,
				"%q is not a registered entry type", def.Target)
		}

		def.Collection = decl.Params[1]
		def.ExplicitCollection = true

		if !r.IsCollectionType(def.Collection) {
			return Definition{}, declarationError(decl.Token, KindUnknownCollection, ParamCollection, def.Collection,
				"%q is not a registered collection type", def.Collection)
		}
	default:
		return Definition{}, declarationError(decl.Token, KindParams, ParamNone, "",
			"number of custom association parameters must be exactly %d, got %d", pairParams, len(decl.Params))
	}

	return def, nil
}
