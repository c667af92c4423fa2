package gen

import "text/template"

var accessorsTemplate = template.Must(template.New("accessors").Parse(`// Code generated by schematic{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.PackageName}}

import (
	"fmt"
	"iter"

	"schematic/entry"
	"schematic/record"
)

// Define registers every collection and entry type of the schema on reg.
func Define(reg *entry.Registry) error {
{{- range .Collections}}
	if _, err := reg.DefineCollection({{printf "%q" .}}); err != nil {
		return err
	}
{{- end}}
{{- range .Types}}
	if _, err := reg.Define({{printf "%q" .Name}}{{range .Options}},
		{{.}}{{end}}{{if .Options}},
	{{end}}); err != nil {
		return err
	}
{{- end}}

	return nil
}
{{range .Types}}{{$t := .}}
{{if $.GenerateComments}}// {{.GoName}} is an entry of type {{.Name}}. The zero value holds no entry.
{{end -}}
type {{.GoName}} struct {
	*entry.Entry
}

{{if $.GenerateComments}}// As{{.GoName}} wraps e, which must be of type {{.Name}}.
{{end -}}
func As{{.GoName}}(e *entry.Entry) ({{.GoName}}, error) {
	if e == nil {
		return {{.GoName}}{}, nil
	}

	if name := e.Type().Name(); name != {{printf "%q" .Name}} {
		return {{.GoName}}{}, fmt.Errorf("entry type %q is not %q: %w", name, {{printf "%q" .Name}}, entry.ErrUnknownType)
	}

	return {{.GoName}}{e}, nil
}

{{if $.GenerateComments}}// New{{.GoName}} wraps a copy of rec as a {{.Name}} of reg.
{{end -}}
func New{{.GoName}}(reg *entry.Registry, rec *record.Record) ({{.GoName}}, error) {
	e, err := reg.New({{printf "%q" .Name}}, rec)
	if err != nil {
		return {{.GoName}}{}, err
	}

	return {{.GoName}}{e}, nil
}
{{range .Fields}}
{{if $.GenerateComments}}// {{.Method}} reads the {{.Name}} field.
{{end -}}
func (x {{$t.GoName}}) {{.Method}}() ({{.GoType}}, error) {
	return x.{{.Reader}}({{printf "%q" .Name}})
}
{{end}}
{{- range .Assocs}}
{{if $.GenerateComments}}// {{.Method}} resolves the {{printf "%q" .Token}} association.{{if .Nullable}} A null association yields an empty value.{{end}}
{{end -}}
{{if .Multiple -}}
func (x {{$t.GoName}}) {{.Method}}() ({{.TargetList}}, error) {
	es, err := x.Many({{printf "%q" .Name}})
	if err != nil || es == nil {
		return {{.TargetList}}{}, err
	}

	return {{.TargetList}}{es}, nil
}
{{else -}}
func (x {{$t.GoName}}) {{.Method}}() ({{.Target}}, error) {
	e, err := x.One({{printf "%q" .Name}})
	if err != nil || e == nil {
		return {{.Target}}{}, err
	}

	return {{.Target}}{e}, nil
}
{{end -}}
{{end}}
{{if $.GenerateComments}}// {{.ListName}} is a keyed collection of {{.Name}} entries. The zero value
// holds no collection.
{{end -}}
type {{.ListName}} struct {
	*entry.Entries
}

{{if $.GenerateComments}}// New{{.ListName}} wraps a copy of items as {{.Name}} entries of reg.
{{end -}}
func New{{.ListName}}(reg *entry.Registry, items *record.Items) ({{.ListName}}, error) {
	t, ok := reg.Type({{printf "%q" .Name}})
	if !ok {
		return {{.ListName}}{}, fmt.Errorf("entry type %q: %w", {{printf "%q" .Name}}, entry.ErrUnknownType)
	}

	es, err := t.NewEntries(items)
	if err != nil {
		return {{.ListName}}{}, err
	}

	return {{.ListName}}{es}, nil
}

{{if $.GenerateComments}}// Get returns the {{.Name}} stored under key.
{{end -}}
func (l {{.ListName}}) Get(key record.Key) ({{.GoName}}, error) {
	e, err := l.Entries.Get(key)
	if err != nil {
		return {{.GoName}}{}, err
	}

	return {{.GoName}}{e}, nil
}

{{if $.GenerateComments}}// All iterates the entries in stored key order.
{{end -}}
func (l {{.ListName}}) All() iter.Seq2[record.Key, {{.GoName}}] {
	return func(yield func(record.Key, {{.GoName}}) bool) {
		if l.Entries == nil {
			return
		}

		for key, e := range l.Entries.All() {
			if !yield(key, {{.GoName}}{e}) {
				return
			}
		}
	}
}
{{end}}`))
