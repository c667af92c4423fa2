package schema

import (
	"fmt"
	"slices"

	"schematic/entry"
	"schematic/internal/diagnostic"
	"schematic/internal/match"
	"schematic/record"
)

// maxSuggestions bounds the alternatives offered for an unknown name.
const maxSuggestions = 3

// Build registers every collection and entry type of f on a new registry.
// Associations are not compiled: they compile on first use, or all at once
// through Check or entry.Registry.Compile.
func Build(f *File, opts ...entry.RegistryOption) (*entry.Registry, error) {
	reg := entry.NewRegistry(opts...)

	for _, c := range f.Collections {
		if c == entry.DefaultCollection {
			continue
		}

		if _, err := reg.DefineCollection(c); err != nil {
			return nil, fmt.Errorf("schema collection %q: %w", c, err)
		}
	}

	for i := range f.Types {
		t := &f.Types[i]

		if _, err := reg.Define(t.Name, typeOptions(t)...); err != nil {
			return nil, fmt.Errorf("schema type %q: %w", t.Name, err)
		}
	}

	return reg, nil
}

func typeOptions(t *TypeDef) []entry.TypeOption {
	opts := []entry.TypeOption{entry.WithDeclarations(t.Associations...)}

	if t.Collection != "" {
		opts = append(opts, entry.WithCollection(t.Collection))
	}

	if t.Empty == EmptyNever {
		opts = append(opts, entry.WithEmptyPredicate(record.NeverEmpty))
	}

	return opts
}

// Check validates f, builds its registry and compiles every type, so that
// all problems of the file are reported in one pass. The registry is nil
// when the file could not be built.
func Check(f *File, opts ...entry.RegistryOption) (*entry.Registry, *diagnostic.Diagnostics) {
	res := Validate(f)
	if f == nil || res.HasErrors() {
		return nil, res
	}

	reg, err := Build(f, opts...)
	if err != nil {
		res.AddError("build_failed", err.Error(), "", "")
		return nil, res
	}

	res.Merge(compileReport(f, reg))

	return reg, res
}

// compileReport compiles every type of reg: one error per bad declaration,
// one note per type that compiled.
func compileReport(f *File, reg *entry.Registry) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	known := slices.Concat(f.TypeNames(), reg.Collections())
	suggest := func(name string) []string {
		return match.Suggest(name, known, maxSuggestions)
	}

	errs := reg.Compile()

	for _, t := range reg.Types() {
		if err, failed := errs[t.Name()]; failed {
			res.AddConfiguration(err, suggest)
			continue
		}

		defs, _ := t.Definitions()
		res.AddInfo("compiled", fmt.Sprintf("%d associations", defs.Len()), t.Name(), "")
	}

	return res
}
