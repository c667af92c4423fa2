package command

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewRootCommand returns the schematic root command with every subcommand
// registered on it.
func NewRootCommand(cli *CLI) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "schematic",
		Short: "Work with entry schemas and the records they describe",
		Long: "schematic loads entry schemas: named types whose associations describe how\n" +
			"related objects are stored inside flat records. It checks schemas, walks\n" +
			"materialized records and generates typed accessors.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			cli.Logger = logger

			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", cli.Config.LogLevel,
		"Log level. One of: (debug | info | warn | error)")

	AddCommands(cmd, cli)

	return cmd
}

// AddCommands registers all subcommands to the root command.
func AddCommands(root *cobra.Command, cli *CLI) {
	root.AddCommand(
		NewCheckCommand(cli),
		NewInspectCommand(cli),
		NewGenCommand(cli),
	)
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cfg, err := ParseEnv()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	root := NewRootCommand(NewCLI(cfg))
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	return 0
}
