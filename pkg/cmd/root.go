package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/metaexplorer/pkg/consts"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates the metaexplorer CLI application and schedules it to run once
// the fx application starts.
//
// The CLI runs on its own goroutine so interactive sessions aren't bound by
// fx's start timeout. When the command returns, the fx application is shut
// down with exit code 0, or 1 if the command failed.
//
// The application provides:
//   - Global --config flag for an alternate metaexplorer.yaml
//   - Global --log-level flag controlling diagnostics on stderr
//   - explore as the default command when none is given
//
// Example usage:
//
//	# Explore the database in ./metaexplorer.yaml
//	metaexplorer
//
//	# Check a ClickHouse server
//	metaexplorer ping --dialect clickhouse --host ch.internal --username default
func Run(p Params) {
	app := newApp(p.Version, p.Commands)

	p.Lifecycle.Append(fx.StartHook(func() {
		go func() {
			code := 0
			if err := app.Run(p.Ctx, p.Args); err != nil {
				slog.Error("Error running command", "err", err)
				code = 1
			}

			_ = p.Shutdowner.Shutdown(fx.ExitCode(code))
		}()
	}))
}

func newApp(version *Version, commands []*cli.Command) *cli.Command {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", version.Timestamp)
	}

	return &cli.Command{
		Name:  consts.AppName,
		Usage: "Browse database catalog metadata interactively",
		Description: `metaexplorer connects to an Oracle or ClickHouse database and walks you
through its tables, views, sequences and users with numbered menus, showing
columns, constraints, indexes, view definitions, sequence properties, roles
and privileges.`,
		Version:        version.Version,
		DefaultCommand: "explore",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the metaexplorer config file",
				Sources: cli.EnvVars("METAEXPLORER_CONFIG"),
				Value:   consts.DefaultConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "diagnostic log level (debug, info, warn, error)",
				Sources: cli.EnvVars("METAEXPLORER_LOG_LEVEL"),
				Value:   "warn",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger, err := newLogger(cmd.String("log-level"))
			if err != nil {
				return ctx, err
			}

			slog.SetDefault(logger)
			return ctx, nil
		},
		Commands: commands,
	}
}

// newLogger returns a text logger on stderr at the named level.
func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
