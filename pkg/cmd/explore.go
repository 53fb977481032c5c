package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pseudomuto/metaexplorer/pkg/catalog"
	"github.com/pseudomuto/metaexplorer/pkg/config"
	"github.com/pseudomuto/metaexplorer/pkg/format"
	"github.com/urfave/cli/v3"
)

// explore creates the interactive catalog browsing command. It is the
// default command when metaexplorer runs without arguments.
//
// The command:
//   - Prints the welcome banner
//   - Prompts for whatever connection settings are still missing (username,
//     password, service name) after metaexplorer.yaml, the environment and
//     flags have been applied
//   - Connects and verifies the session, reporting "Connection failed: ..."
//     and exiting with status 1 when that isn't possible
//   - Runs the menu loop until the operator chooses Exit or input ends
//
// Examples:
//
//	# Prompt for everything, connect to localhost:8521
//	metaexplorer
//
//	# Connect as HR to a named service
//	metaexplorer explore --username hr --service hrpdb
//
//	# Browse a ClickHouse database
//	metaexplorer explore --dialect clickhouse --host ch.internal --service analytics
func explore(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:   "explore",
		Usage:  "Connect and browse catalog metadata",
		Flags:  append(connectionFlags(), historyFlag()),
		Action: exploreAction(cfg),
	}
}

func exploreAction(cfg *config.Config) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		conf, err := loadConfig(cmd, cfg)
		if err != nil {
			return err
		}

		conn, err := resolveConnection(cmd, conf)
		if err != nil {
			return err
		}

		out := format.New(cmd.Root().Writer)
		out.Banner(bannerTitle)

		in, err := openReader(cmd, historyFile(cmd, conf))
		if err != nil {
			return err
		}
		defer func() { _ = in.Close() }()

		opts, err := promptOptions(cmd, conn, in)
		if err != nil {
			return err
		}

		client, err := catalog.Connect(ctx, opts)
		if err != nil {
			out.Line("Connection failed: %v", err)
			return errors.Wrap(err, "failed to connect")
		}

		out.Blank()
		out.Line("Connected successfully!")
		out.Blank()

		return runExplorer(ctx, client, in, out.Writer())
	}
}
