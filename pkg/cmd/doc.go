// Package cmd provides CLI commands for the metaexplorer tool.
//
// This package implements the command-line interface for metaexplorer: an
// interactive, menu-driven browser of database catalog metadata (tables,
// views, sequences and users) for Oracle and ClickHouse.
//
// # Available Commands
//
//   - explore: Prompt for credentials, connect and browse the catalog (default)
//   - ping: Check that the configured database is reachable
//   - sandbox: Start a disposable ClickHouse server and browse it
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are provided to
// the root command through the fx "commands" value group.
//
// # Configuration
//
// Connection settings come from metaexplorer.yaml (see pkg/config), then the
// environment, then flags; later sources win. Anything still missing is
// prompted for.
//
// # Global Options
//
//   - --config, -c: Configuration file (default metaexplorer.yaml)
//   - --log-level: Diagnostic log level written to stderr (default warn)
//   - --help, -h: Display command help
package cmd
