package schema

import (
	"fmt"
	"slices"

	"schematic/association"
	"schematic/internal/common"
	"schematic/internal/diagnostic"
)

// Validate checks the structure of a schema file: names, modes, field
// kinds and token syntax. Type references are checked by Check, which
// needs a registry.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("schema_is_nil", "schema file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported schema version %q", f.Version), "", "")
	}

	if common.IsEmpty(f.Types) {
		res.AddWarning("no_types", "schema declares no entry types", "", "")
	}

	seen := map[string]struct{}{}

	for _, c := range f.Collections {
		if c == "" {
			res.AddError("empty_name", "collection type without a name", "", "")
			continue
		}

		if _, dup := seen[c]; dup {
			res.AddError("duplicate_name", fmt.Sprintf("name %q declared more than once", c), c, "")
			continue
		}

		seen[c] = struct{}{}
	}

	for i := range f.Types {
		t := &f.Types[i]

		if t.Name == "" {
			res.AddError("empty_name", fmt.Sprintf("entry type #%d has no name", i+1), "", "")
			continue
		}

		if _, dup := seen[t.Name]; dup {
			res.AddError("duplicate_name", fmt.Sprintf("name %q declared more than once", t.Name), t.Name, "")
		}

		seen[t.Name] = struct{}{}

		validateType(t, res)
	}

	validateReferences(f, res)

	return res
}

func validateType(t *TypeDef, res *diagnostic.Diagnostics) {
	if t.Empty != "" && !t.Empty.IsValid() {
		res.AddError("unknown_empty_mode", fmt.Sprintf("unknown empty mode %q", t.Empty), t.Name, "")
	}

	for _, field := range t.Fields {
		if !field.Kind.IsValid() {
			res.AddError("unknown_field_kind",
				fmt.Sprintf("field %q has unknown kind %q", field.Name, field.Kind), t.Name, "")
		}
	}

	for _, decl := range t.Associations {
		tok, err := association.ParseToken(decl.Token)
		if err != nil {
			// Reported with its offset by Check.
			continue
		}

		if !tok.Embedded {
			continue
		}

		if _, shadowed := t.Fields.Lookup(tok.Name); shadowed {
			res.AddWarning("field_shadowed",
				fmt.Sprintf("embedded association hides field %q", tok.Name), t.Name, decl.Token)
		}
	}
}

// validateReferences reports entry types that no association targets.
// They are legal roots, so this is informational only.
func validateReferences(f *File, res *diagnostic.Diagnostics) {
	targeted := map[string]struct{}{}

	for _, t := range f.Types {
		for _, decl := range t.Associations {
			if target := Params(decl.Params).First(); target != "" {
				targeted[target] = struct{}{}
			}
		}
	}

	for _, name := range f.TypeNames() {
		if _, ok := targeted[name]; !ok && name != "" {
			res.AddInfo("root_type", "not targeted by any association", name, "")
		}
	}

	for _, c := range f.Collections {
		used := slices.ContainsFunc(f.Types, func(t TypeDef) bool {
			if t.Collection == c {
				return true
			}

			return slices.ContainsFunc(t.Associations, func(d association.Declaration) bool {
				return len(d.Params) == 2 && d.Params[1] == c
			})
		})

		if !used && c != "" {
			res.AddWarning("unused_collection", "collection type is never used", c, "")
		}
	}
}
