package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pseudomuto/metaexplorer/pkg/catalog"
	"github.com/pseudomuto/metaexplorer/pkg/config"
	"github.com/pseudomuto/metaexplorer/pkg/docker"
	"github.com/pseudomuto/metaexplorer/pkg/format"
	"github.com/urfave/cli/v3"
)

// sandbox creates a command that starts a disposable ClickHouse server in
// Docker, optionally seeds it with *.sql scripts, and opens the explorer
// against it. The container is removed when the session ends.
//
// Examples:
//
//	# Explore an empty ClickHouse 25.7 server
//	metaexplorer sandbox
//
//	# Seed from a directory of scripts
//	metaexplorer sandbox --seed ./seed --clickhouse-version 24.8
//
//	# Override server settings with a config.d directory
//	metaexplorer sandbox --config-dir ./clickhouse/config.d
func sandbox(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "sandbox",
		Usage: "Explore a disposable ClickHouse server running in Docker",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "clickhouse-version",
				Usage: "ClickHouse image tag",
				Value: docker.DefaultVersion,
			},
			&cli.StringFlag{
				Name:  "seed",
				Usage: "directory of *.sql scripts run when the server starts",
			},
			&cli.StringFlag{
				Name:  "config-dir",
				Usage: "directory of server config overrides mounted as config.d",
			},
			historyFlag(),
		},
		Action: sandboxAction(cfg),
	}
}

func sandboxAction(cfg *config.Config) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		conf, err := loadConfig(cmd, cfg)
		if err != nil {
			return err
		}

		out := format.New(cmd.Root().Writer)
		dockerOpts := sandboxOptions(cmd)
		container := docker.NewWithOptions(dockerOpts)

		out.Line("Starting ClickHouse %s container...", dockerOpts.Version)
		if err := container.Start(ctx); err != nil {
			return err
		}
		defer func() {
			if err := container.Stop(context.WithoutCancel(ctx)); err != nil {
				out.Line("Warning: %v", err)
			}
		}()

		opts, err := container.Options(ctx)
		if err != nil {
			return err
		}

		client, err := catalog.Connect(ctx, opts)
		if err != nil {
			out.Line("Connection failed: %v", err)
			return errors.Wrap(err, "failed to connect")
		}

		out.Banner(bannerTitle)
		out.Line("Connected to %s:%d as %s", opts.Host, opts.Port, opts.Username)
		out.Blank()

		in, err := openReader(cmd, historyFile(cmd, conf))
		if err != nil {
			_ = client.Close()
			return err
		}
		defer func() { _ = in.Close() }()

		return runExplorer(ctx, client, in, out.Writer())
	}
}

func sandboxOptions(cmd *cli.Command) docker.DockerOptions {
	return docker.DockerOptions{
		Version:   cmd.String("clickhouse-version"),
		SeedDir:   cmd.String("seed"),
		ConfigDir: cmd.String("config-dir"),
	}
}
