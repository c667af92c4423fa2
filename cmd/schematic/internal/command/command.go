package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"schematic/entry"
	"schematic/internal/diagnostic"
	"schematic/internal/schema"
)

var errNoSchema = errors.New("no schema file: set --schema or SCHEMATIC_SCHEMA")

// CLI is the shared state passed from the root command to subcommands.
type CLI struct {
	Config Config
	Logger logr.Logger
}

// NewCLI returns a CLI with the given configuration and a discarding
// logger; the root command replaces the logger once flags are parsed.
func NewCLI(cfg Config) *CLI {
	return &CLI{Config: cfg, Logger: logr.Discard()}
}

// loadSchema loads path and checks it. Diagnostics are written to w when
// the schema has errors, and the error summarizes them.
func (c *CLI) loadSchema(path string, w io.Writer) (*schema.File, *entry.Registry, *diagnostic.Diagnostics, error) {
	if path == "" {
		return nil, nil, nil, errNoSchema
	}

	f, err := schema.LoadFile(path)
	if err != nil {
		return nil, nil, nil, err
	}

	c.Logger.V(1).Info("loaded schema", "path", path, "types", len(f.Types))

	reg, diags := schema.Check(f, entry.WithLogger(c.Logger))
	if diags.HasErrors() {
		if _, err := diags.WriteTo(w); err != nil {
			return nil, nil, diags, err
		}

		return nil, nil, diags, fmt.Errorf("%s: %d schema errors", path, len(diags.Errors))
	}

	return f, reg, diags, nil
}
