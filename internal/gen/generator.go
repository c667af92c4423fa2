package gen

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/tools/imports"

	"schematic/internal/schema"
)

// DefaultFilename is the name of the generated file.
const DefaultFilename = "entries_gen.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Filename is the name of the generated file.
	Filename string
	// Source is mentioned in the generated header when set.
	Source string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "entries",
		OutputDir:        "./generated",
		Filename:         DefaultFilename,
		GenerateComments: true,
	}
}

// Generator generates typed accessors from a schema file.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Filename == "" {
		config.Filename = DefaultFilename
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "entries_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders the accessors of every type in f. The file should have
// passed schema.Check: tokens are parsed again here but targets are only
// looked up among the file's own types.
func (g *Generator) Generate(f *schema.File) ([]GeneratedFile, error) {
	if g.config.PackageName == "" {
		return nil, errors.New("generating accessors: empty package name")
	}

	data, err := buildFileData(f, g.config)
	if err != nil {
		return nil, fmt.Errorf("generating accessors: %w", err)
	}

	var buf bytes.Buffer
	if err := accessorsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := imports.Process(g.config.Filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		// Best effort: keep the unformatted code next to the output for
		// debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, g.config.Filename, buf.Bytes())
		}

		return []GeneratedFile{{
			Filename: g.config.Filename,
			Content:  buf.Bytes(),
		}}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return []GeneratedFile{{
		Filename: g.config.Filename,
		Content:  formatted,
	}}, nil
}
