// Package main provides the CLI entrypoint for schematic.
//
// schematic works with entry schema files:
//   - check compiles every association and reports all problems at once
//   - inspect materializes records and walks attribute paths
//   - gen writes typed accessors for the schema's entry types
package main

import (
	"os"

	"schematic/cmd/schematic/internal/command"
)

func main() {
	os.Exit(command.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
