package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CheckOptions holds the options for the check command.
type CheckOptions struct {
	Schema string
}

func NewCheckCommand(cli *CLI) *cobra.Command {
	opts := CheckOptions{Schema: cli.Config.Schema}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compile every association of a schema and report all problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, cli, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Schema, "schema", "s", opts.Schema, "Path to the schema file")

	return cmd
}

func runCheck(cmd *cobra.Command, cli *CLI, opts *CheckOptions) error {
	_, _, diags, err := cli.loadSchema(opts.Schema, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if _, err := diags.WriteTo(cmd.OutOrStdout()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", opts.Schema)

	return nil
}
