package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pseudomuto/metaexplorer/pkg/catalog"
	"github.com/pseudomuto/metaexplorer/pkg/config"
	"github.com/pseudomuto/metaexplorer/pkg/format"
	"github.com/urfave/cli/v3"
)

// ping creates a command that checks the configured database is reachable
// with the given credentials and reports its server version.
//
// Settings are resolved exactly as for explore, including prompts for a
// missing username, password or service name.
//
// Examples:
//
//	# Check the database in metaexplorer.yaml
//	metaexplorer ping
//
//	# Check a ClickHouse server without prompting
//	METAEXPLORER_PASSWORD= metaexplorer ping --dialect clickhouse -u default --service default
func ping(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:   "ping",
		Usage:  "Check that the database is reachable",
		Flags:  connectionFlags(),
		Action: pingAction(cfg),
	}
}

func pingAction(cfg *config.Config) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		conf, err := loadConfig(cmd, cfg)
		if err != nil {
			return err
		}

		conn, err := resolveConnection(cmd, conf)
		if err != nil {
			return err
		}

		in, err := openReader(cmd, "")
		if err != nil {
			return err
		}
		defer func() { _ = in.Close() }()

		opts, err := promptOptions(cmd, conn, in)
		if err != nil {
			return err
		}

		out := format.New(cmd.Root().Writer)

		client, err := catalog.Connect(ctx, opts)
		if err != nil {
			out.Line("Connection failed: %v", err)
			return errors.Wrap(err, "failed to connect")
		}
		defer func() { _ = client.Close() }()

		version, err := client.GetVersion(ctx)
		if err != nil {
			out.Line("Connection failed: %v", err)
			return err
		}

		reportVersion(out, client.Dialect(), version)
		return nil
	}
}

// reportVersion prints the connected server version, and a warning when it is
// older than the dialect supports.
func reportVersion(out *format.Formatter, d *catalog.Dialect, v *catalog.VersionInfo) {
	out.Line("Successfully connected to %s %s", d.Title, v)
	if !d.Supports(v) {
		out.Line("Warning: %s %s is older than %d.%d; some catalog views may be missing.",
			d.Title, v, d.MinVersion.Major, d.MinVersion.Minor)
	}
}
