package gen

import (
	"errors"
	"fmt"
	"strconv"

	"schematic/association"
	"schematic/internal/common"
	"schematic/internal/match"
	"schematic/internal/schema"
)

// ErrNameClash is returned when two schema names map to one Go identifier.
var ErrNameClash = errors.New("generated names clash")

// reserved lists the embedded field of the entry wrappers and the methods
// it promotes; getters with these names get an Attr suffix.
var reserved = map[string]bool{
	"Bool": true, "Entry": true, "Fields": true, "Float": true, "Get": true,
	"Has": true, "Int": true, "Many": true, "One": true, "Record": true,
	"Resolved": true, "Scalar": true, "Snapshot": true, "String": true,
	"Text": true, "ToMap": true, "Type": true,
}

// fieldKinds maps schema field kinds to the Go type and entry reader of
// the getter.
var fieldKinds = map[schema.FieldKind]struct{ goType, reader string }{
	schema.KindString: {"string", "Text"},
	schema.KindInt:    {"int64", "Int"},
	schema.KindFloat:  {"float64", "Float"},
	schema.KindBool:   {"bool", "Bool"},
	schema.KindAny:    {"any", "Scalar"},
}

// fileData holds all data needed for the accessors template.
type fileData struct {
	PackageName      string
	Source           string
	GenerateComments bool
	Collections      []string
	Types            []typeData
}

type typeData struct {
	Name     string
	GoName   string
	ListName string
	Options  []string
	Fields   []fieldData
	Assocs   []assocData
}

type fieldData struct {
	Name   string
	Method string
	GoType string
	Reader string
}

type assocData struct {
	Name       string
	Token      string
	Method     string
	Target     string
	TargetList string
	Multiple   bool
	Nullable   bool
	Embedded   bool
}

// buildFileData turns a schema file into template data. Tokens and
// targets must already be valid; run schema.Check first.
func buildFileData(f *schema.File, cfg GeneratorConfig) (*fileData, error) {
	data := &fileData{
		PackageName:      cfg.PackageName,
		Source:           cfg.Source,
		GenerateComments: cfg.GenerateComments,
		Collections:      f.Collections,
	}

	goNames := map[string]string{}
	declared := map[string]string{"Define": "the Define function"}

	claim := func(goName, owner string) error {
		if prev, ok := declared[goName]; ok {
			return fmt.Errorf("%w: %s and %s both generate %s", ErrNameClash, prev, owner, goName)
		}

		declared[goName] = owner

		return nil
	}

	for _, t := range f.Types {
		goName := match.ExportedName(t.Name)
		goNames[t.Name] = goName

		for _, name := range []string{goName, goName + "List", "New" + goName, "New" + goName + "List", "As" + goName} {
			if err := claim(name, strconv.Quote(t.Name)); err != nil {
				return nil, err
			}
		}
	}

	for i := range f.Types {
		td, err := buildTypeData(&f.Types[i], goNames)
		if err != nil {
			return nil, err
		}

		data.Types = append(data.Types, *td)
	}

	return data, nil
}

func buildTypeData(t *schema.TypeDef, goNames map[string]string) (*typeData, error) {
	td := &typeData{
		Name:     t.Name,
		GoName:   goNames[t.Name],
		ListName: goNames[t.Name] + "List",
	}

	methods := map[string]string{}

	method := func(name string) (string, error) {
		m := match.ExportedName(name)
		if reserved[m] {
			m += "Attr"
		}

		if prev, ok := methods[m]; ok {
			return "", fmt.Errorf("%w: %s.%s and %s.%s both generate %s",
				ErrNameClash, t.Name, prev, t.Name, name, m)
		}

		methods[m] = name

		return m, nil
	}

	assocNames := map[string]bool{}

	for _, decl := range t.Associations {
		tok, err := association.ParseToken(decl.Token)
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", t.Name, err)
		}

		if n := len(decl.Params); !common.IsInRange(1, n, 2) {
			return nil, fmt.Errorf("type %s association %q: %d parameters", t.Name, decl.Token, n)
		}

		target := schema.Params(decl.Params).First()

		targetGo, ok := goNames[target]
		if !ok {
			return nil, fmt.Errorf("type %s association %q: unknown target %q", t.Name, decl.Token, target)
		}

		m, err := method(tok.Name)
		if err != nil {
			return nil, err
		}

		assocNames[tok.Name] = true
		td.Assocs = append(td.Assocs, assocData{
			Name:       tok.Name,
			Token:      decl.Token,
			Method:     m,
			Target:     targetGo,
			TargetList: targetGo + "List",
			Multiple:   tok.Multiple,
			Nullable:   tok.Nullable,
			Embedded:   tok.Embedded,
		})
	}

	for _, field := range t.Fields {
		// A non-embedded association reads the field of the same name.
		if assocNames[field.Name] {
			continue
		}

		kind, ok := fieldKinds[field.Kind]
		if !ok {
			return nil, fmt.Errorf("type %s field %q: unknown kind %q", t.Name, field.Name, field.Kind)
		}

		m, err := method(field.Name)
		if err != nil {
			return nil, err
		}

		td.Fields = append(td.Fields, fieldData{
			Name:   field.Name,
			Method: m,
			GoType: kind.goType,
			Reader: kind.reader,
		})
	}

	td.Options = typeOptions(t)

	return td, nil
}

// typeOptions renders the entry.TypeOption expressions of t.
func typeOptions(t *schema.TypeDef) []string {
	var opts []string

	for _, decl := range t.Associations {
		target, coll := common.Unpack2(decl.Params)
		if !common.IsMultiple(decl.Params) {
			opts = append(opts, fmt.Sprintf("entry.Associate(%q, %q)", decl.Token, target))
			continue
		}

		opts = append(opts, fmt.Sprintf("entry.AssociateIn(%q, %q, %q)", decl.Token, target, coll))
	}

	if t.Collection != "" {
		opts = append(opts, fmt.Sprintf("entry.WithCollection(%q)", t.Collection))
	}

	if t.Empty == schema.EmptyNever {
		opts = append(opts, "entry.WithEmptyPredicate(record.NeverEmpty)")
	}

	return opts
}
