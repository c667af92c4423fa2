package command

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"schematic/entry"
	"schematic/record"
)

// InspectOptions holds the options for the inspect command.
type InspectOptions struct {
	Schema  string
	Records string
	Type    string
	Path    string
	Dump    bool
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func NewInspectCommand(cli *CLI) *cobra.Command {
	opts := InspectOptions{Schema: cli.Config.Schema}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Materialize records as entries and print an attribute path",
		Example: "  schematic inspect -s schema.yaml -r orders.yaml -t Order -p customer.name\n" +
			"  schematic inspect -s schema.yaml -r orders.yaml -t Order --dump",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, cli, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Schema, "schema", "s", opts.Schema, "Path to the schema file")
	cmd.Flags().StringVarP(&opts.Records, "records", "r", "", "Path to a YAML or JSON row set")
	cmd.Flags().StringVarP(&opts.Type, "type", "t", "", "Entry type of the rows")
	cmd.Flags().StringVarP(&opts.Path, "path", "p", "", "Dotted attribute path to print for each row")
	cmd.Flags().BoolVar(&opts.Dump, "dump", false, "Print the fully materialized value")

	_ = cmd.MarkFlagRequired("records")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func runInspect(cmd *cobra.Command, cli *CLI, opts *InspectOptions) error {
	_, reg, _, err := cli.loadSchema(opts.Schema, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	typ, ok := reg.Type(opts.Type)
	if !ok {
		return fmt.Errorf("entry type %q: %w", opts.Type, entry.ErrUnknownType)
	}

	data, err := os.ReadFile(opts.Records)
	if err != nil {
		return fmt.Errorf("failed to read records: %w", err)
	}

	items, err := record.DecodeItems(data)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.Records, err)
	}

	entries, err := typ.NewEntries(items)
	if err != nil {
		return err
	}

	cli.Logger.V(1).Info("inspecting rows", "type", opts.Type, "rows", entries.Count())

	path := splitPath(opts.Path)

	for _, key := range entries.Keys() {
		ent, err := entries.Get(key)
		if err != nil {
			return err
		}

		v, err := Walk(entry.ValueOf(ent), path)
		if err != nil {
			return fmt.Errorf("row %v: %w", key, err)
		}

		if !opts.Dump {
			fmt.Fprintf(cmd.OutOrStdout(), "%v: %s\n", key, v)
			continue
		}

		plain, err := entry.Plain(v)
		if err != nil {
			return fmt.Errorf("row %v: %w", key, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%v: %s", key, dumper.Sdump(plain))
	}

	return nil
}
