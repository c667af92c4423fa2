package command_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schematic/cmd/schematic/internal/command"
)

const shopSchema = `
types:
  - name: Customer
    fields: {id: int, name: string}
  - name: OrderItem
    fields: {id: int, price: float}
  - name: Order
    fields: {id: int}
    associations:
      "?customer": Customer
      items[]: OrderItem
`

const shopRecords = `
1:
  id: 1
  customer: {id: 7, name: Ann}
  items:
    - {id: 10, price: 2.5}
    - {id: 11, price: 4}
2:
  id: 2
  customer: null
  items: []
`

const brokenSchema = `
types:
  - name: Tag
  - name: Post
    associations:
      tags.[]: Tag
      author: Autor
  - name: Author
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// unsetEnv clears the configuration variables for the duration of t.
func unsetEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"SCHEMATIC_SCHEMA", "SCHEMATIC_LOG_LEVEL", "SCHEMATIC_OUTPUT_DIR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

// run executes the CLI with a clean environment.
func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	unsetEnv(t)

	var out, errOut bytes.Buffer

	code = command.Execute(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestNewRootCommand(t *testing.T) {
	cmd := command.NewRootCommand(command.NewCLI(command.Config{LogLevel: "warn"}))

	assert.Equal(t, "schematic", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
	assert.True(t, cmd.CompletionOptions.DisableDefaultCmd)

	flag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, flag)
	assert.Equal(t, "warn", flag.DefValue)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.ElementsMatch(t, []string{"check", "inspect", "gen"}, names)
}

func TestNewRootCommand_NoArgs_ShowsHelp(t *testing.T) {
	code, stdout, _ := run(t)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "schematic")
	assert.Contains(t, stdout, "inspect")
}

func TestCheck_Valid(t *testing.T) {
	schema := writeFile(t, t.TempDir(), "schema.yaml", shopSchema)

	code, stdout, stderr := run(t, "check", "--schema", schema)

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "info: [Order]")
	assert.Contains(t, stdout, schema+": ok")
}

func TestCheck_ReportsEveryError(t *testing.T) {
	schema := writeFile(t, t.TempDir(), "schema.yaml", brokenSchema)

	code, stdout, stderr := run(t, "check", "--schema", schema)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "[association_syntax]")
	assert.Contains(t, stdout, "[unknown_target]")
	assert.Contains(t, stdout, "did you mean Author?")
	assert.Contains(t, stderr, "Error: "+schema+": 2 schema errors")
}

func TestCheck_SchemaFromEnvironment(t *testing.T) {
	schema := writeFile(t, t.TempDir(), "schema.yaml", shopSchema)

	var out, errOut bytes.Buffer

	unsetEnv(t)
	t.Setenv("SCHEMATIC_SCHEMA", schema)
	t.Setenv("SCHEMATIC_LOG_LEVEL", "error")

	code := command.Execute([]string{"check"}, &out, &errOut)

	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "ok")
}

func TestCheck_MissingSchema(t *testing.T) {
	code, _, stderr := run(t, "check")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "no schema file")
}

func TestRoot_BadLogLevel(t *testing.T) {
	code, _, stderr := run(t, "--log-level", "loud", "check")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unknown log level "loud"`)
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.yaml", shopSchema)
	records := writeFile(t, dir, "orders.yaml", shopRecords)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "scalar", path: "id", want: "1: 1\n2: 2\n"},
		{name: "through association", path: "customer.name", want: "1: Ann\n2: null\n"},
		{name: "nested entry", path: "customer", want: "1: Customer{id: 7, name: Ann}\n2: null\n"},
		{name: "collection", path: "items", want: "1: Entries<OrderItem>[0 1]\n2: Entries<OrderItem>[]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(t, "inspect", "-s", schema, "-r", records, "-t", "Order", "-p", tt.path)

			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestInspect_Errors(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.yaml", shopSchema)
	records := writeFile(t, dir, "orders.yaml", shopRecords)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing row key", args: []string{"-t", "Order", "-p", "items.1.price"}, want: "row 2"},
		{name: "unknown field", args: []string{"-t", "Order", "-p", "total"}, want: `missing field "total"`},
		{name: "below a scalar", args: []string{"-t", "Order", "-p", "id.x"}, want: `cannot read "x" below "id"`},
		{name: "unknown type", args: []string{"-t", "Invoice"}, want: `entry type "Invoice"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"inspect", "-s", schema, "-r", records}, tt.args...)

			code, _, stderr := run(t, args...)

			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestInspect_Dump(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.yaml", shopSchema)
	records := writeFile(t, dir, "orders.yaml", shopRecords)

	code, stdout, stderr := run(t, "inspect", "-s", schema, "-r", records, "-t", "Order", "-p", "customer", "--dump")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `(string) (len=3) "Ann"`)
	assert.Contains(t, stdout, "2: (interface {}) <nil>")
}

func TestGen(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.yaml", shopSchema)
	out := filepath.Join(dir, "shop")

	code, stdout, stderr := run(t, "gen", "-s", schema, "-o", out)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "wrote "+filepath.Join(out, "entries_gen.go"))

	src, err := os.ReadFile(filepath.Join(out, "entries_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package shop")
	assert.Contains(t, string(src), "func Define(reg *entry.Registry) error")
	assert.Contains(t, string(src), "schema.yaml")
}

func TestGen_RefusesBrokenSchema(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.yaml", brokenSchema)
	out := filepath.Join(dir, "shop")

	code, _, stderr := run(t, "gen", "-s", schema, "-o", out, "--package", "shop")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "[association_syntax]")
	assert.NoDirExists(t, out)
}
