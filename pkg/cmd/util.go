package cmd

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/metaexplorer/pkg/catalog"
	"github.com/pseudomuto/metaexplorer/pkg/config"
	"github.com/pseudomuto/metaexplorer/pkg/explorer"
	"github.com/pseudomuto/metaexplorer/pkg/prompt"
	"github.com/urfave/cli/v3"
)

const (
	bannerTitle = "Welcome to Metadata Explorer!"
)

// connectionFlags are shared by every command that connects to a database.
// Each overrides the matching connection setting of metaexplorer.yaml.
func connectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "dialect",
			Usage:   "database dialect (oracle, clickhouse)",
			Sources: cli.EnvVars("METAEXPLORER_DIALECT"),
		},
		&cli.StringFlag{
			Name:    "host",
			Usage:   "database host",
			Sources: cli.EnvVars("METAEXPLORER_HOST"),
		},
		&cli.IntFlag{
			Name:    "port",
			Usage:   "database port (default 8521 for oracle, 9000 for clickhouse)",
			Sources: cli.EnvVars("METAEXPLORER_PORT"),
		},
		&cli.StringFlag{
			Name:    "service",
			Usage:   "Oracle service name or ClickHouse database",
			Sources: cli.EnvVars("METAEXPLORER_SERVICE"),
		},
		&cli.StringFlag{
			Name:    "username",
			Aliases: []string{"u"},
			Usage:   "database user",
			Sources: cli.EnvVars("METAEXPLORER_USERNAME"),
		},
		&cli.StringFlag{
			Name:    "password",
			Usage:   "database password (prompted for when not set)",
			Sources: cli.EnvVars("METAEXPLORER_PASSWORD"),
		},
		&cli.BoolFlag{
			Name:    "tls",
			Usage:   "connect over TLS",
			Sources: cli.EnvVars("METAEXPLORER_TLS"),
		},
		&cli.StringFlag{
			Name:    "tls-cert",
			Usage:   "client certificate (PEM, clickhouse only)",
			Sources: cli.EnvVars("METAEXPLORER_TLS_CERT"),
		},
		&cli.StringFlag{
			Name:    "tls-key",
			Usage:   "client certificate key (PEM, clickhouse only)",
			Sources: cli.EnvVars("METAEXPLORER_TLS_KEY"),
		},
		&cli.StringFlag{
			Name:    "tls-ca",
			Usage:   "CA bundle used to verify the server (PEM, clickhouse only)",
			Sources: cli.EnvVars("METAEXPLORER_TLS_CA"),
		},
	}
}

func historyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "history",
		Usage:   "readline history file",
		Sources: cli.EnvVars("METAEXPLORER_HISTORY"),
	}
}

// loadConfig returns the file named by --config or METAEXPLORER_CONFIG when
// either is set, and cfg otherwise. A named file must exist.
func loadConfig(cmd *cli.Command, cfg *config.Config) (*config.Config, error) {
	if cmd.IsSet("config") {
		loaded, err := config.LoadConfigFile(cmd.String("config"))
		if err != nil {
			return nil, errors.Wrap(err, "failed to load configuration")
		}
		cfg = loaded
	}

	if cfg == nil {
		cfg = config.Defaults()
	}

	return cfg, nil
}

// resolveConnection applies flag and environment overrides to the configured
// connection and validates the result.
func resolveConnection(cmd *cli.Command, cfg *config.Config) (config.Connection, error) {
	conn := cfg.Connection

	if cmd.IsSet("dialect") {
		conn.Dialect = strings.ToLower(cmd.String("dialect"))
	}

	if cmd.IsSet("host") {
		conn.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		conn.Port = int(cmd.Int("port"))
	}
	if cmd.IsSet("service") {
		conn.Service = cmd.String("service")
	}
	if cmd.IsSet("username") {
		conn.Username = cmd.String("username")
	}

	if cmd.IsSet("tls") {
		conn.TLS.Enabled = cmd.Bool("tls")
	}
	if cmd.IsSet("tls-cert") {
		conn.TLS.CertFile = cmd.String("tls-cert")
	}
	if cmd.IsSet("tls-key") {
		conn.TLS.KeyFile = cmd.String("tls-key")
	}
	if cmd.IsSet("tls-ca") {
		conn.TLS.CAFile = cmd.String("tls-ca")
	}

	// An unset port follows the final dialect.
	conn.Port = conn.EffectivePort()

	if err := (&config.Config{Connection: conn}).Validate(); err != nil {
		return conn, err
	}

	return conn, nil
}

// promptOptions fills credentials and the service name that weren't
// configured by asking the operator.
func promptOptions(cmd *cli.Command, conn config.Connection, in prompt.Reader) (catalog.Options, error) {
	opts := catalog.Options{
		Dialect:  conn.Dialect,
		Host:     conn.Host,
		Port:     conn.Port,
		Service:  conn.Service,
		Username: conn.Username,
		Password: cmd.String("password"),
		TLS:      tlsOptions(conn.TLS),
	}

	var err error
	if opts.Username == "" {
		if opts.Username, err = in.ReadLine("Enter username: "); err != nil {
			return opts, errors.Wrap(err, "failed to read username")
		}
	}

	if !cmd.IsSet("password") {
		if opts.Password, err = in.ReadPassword("Enter password: "); err != nil {
			return opts, errors.Wrap(err, "failed to read password")
		}
	}

	if opts.Service == "" {
		service, err := in.ReadLine("Enter service name (default: " + conn.DefaultService() + "): ")
		if err != nil {
			return opts, errors.Wrap(err, "failed to read service name")
		}

		opts.Service = strings.TrimSpace(service)
		if opts.Service == "" {
			opts.Service = conn.DefaultService()
		}
	}

	return opts, nil
}

func tlsOptions(t config.TLS) *catalog.TLSOptions {
	if !t.Enabled {
		return nil
	}

	return &catalog.TLSOptions{
		Enabled:            true,
		CertFile:           t.CertFile,
		KeyFile:            t.KeyFile,
		CAFile:             t.CAFile,
		InsecureSkipVerify: t.InsecureSkipVerify,
	}
}

// openReader returns an interactive reader when the command reads the
// process's stdin and a plain stream otherwise.
func openReader(cmd *cli.Command, historyFile string) (prompt.Reader, error) {
	root := cmd.Root()
	if f, ok := root.Reader.(*os.File); ok && f == os.Stdin {
		return prompt.Open(prompt.Options{
			HistoryFile: historyFile,
			Completions: explorer.Completions(),
		})
	}

	return prompt.NewStream(root.Reader, root.Writer), nil
}

// historyFile resolves the history file from --history or the configuration.
func historyFile(cmd *cli.Command, cfg *config.Config) string {
	p := cfg.Prompt
	if cmd.IsSet("history") {
		p.HistoryFile = cmd.String("history")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return p.HistoryFile
	}

	return p.HistoryPath(home)
}

// runExplorer runs the menus over client until the operator exits. The client is
// closed when it returns.
func runExplorer(ctx context.Context, client *catalog.Client, in prompt.Reader, out io.Writer) error {
	return explorer.New(client, client.Dialect(), in, out).Run(ctx)
}
