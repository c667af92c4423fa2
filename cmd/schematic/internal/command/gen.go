package command

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"schematic/internal/common"
	"schematic/internal/gen"
)

// GenOptions holds the options for the gen command.
type GenOptions struct {
	Schema     string
	OutputDir  string
	Package    string
	Filename   string
	NoComments bool
}

func NewGenCommand(cli *CLI) *cobra.Command {
	opts := GenOptions{Schema: cli.Config.Schema, OutputDir: cli.Config.OutputDir}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate typed accessors for the entry types of a schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(cmd, cli, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Schema, "schema", "s", opts.Schema, "Path to the schema file")
	cmd.Flags().StringVarP(&opts.OutputDir, "out", "o", opts.OutputDir, "Output directory")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Package name (defaults to the output directory name)")
	cmd.Flags().StringVar(&opts.Filename, "filename", gen.DefaultFilename, "Generated file name")
	cmd.Flags().BoolVar(&opts.NoComments, "no-comments", false, "Omit doc comments on generated declarations")

	return cmd
}

func runGen(cmd *cobra.Command, cli *CLI, opts *GenOptions) error {
	f, _, _, err := cli.loadSchema(opts.Schema, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	outDir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return err
	}

	pkg := opts.Package
	if pkg == "" {
		pkg = common.PkgAlias(filepath.ToSlash(outDir))
	}

	g := gen.NewGenerator(gen.GeneratorConfig{
		PackageName:      pkg,
		OutputDir:        outDir,
		Filename:         opts.Filename,
		Source:           filepath.Base(opts.Schema),
		GenerateComments: !opts.NoComments,
	})

	files, err := g.Generate(f)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files, outDir); err != nil {
		return err
	}

	for _, file := range files {
		cli.Logger.Info("generated accessors", "file", filepath.Join(outDir, file.Filename), "package", pkg)
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", filepath.Join(opts.OutputDir, file.Filename))
	}

	return nil
}
