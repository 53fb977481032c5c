package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pseudomuto/metaexplorer/pkg/cmd"
	"github.com/pseudomuto/metaexplorer/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	app := fx.New(
		fx.Supply(&cmd.Version{
			Version:   version,
			Commit:    commit,
			Timestamp: date,
		}),
		fx.Provide(
			func() context.Context { return context.Background() },
			func() []string { return os.Args },
		),
		config.Module,
		cmd.Module,
		fx.NopLogger,
	)

	if err := app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "metaexplorer:", err)
		os.Exit(1)
	}

	app.Run()
}
