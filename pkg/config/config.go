package config

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/metaexplorer/pkg/consts"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid configuration")

// Dialects lists the dialect names accepted in configuration.
var Dialects = []string{"oracle", "clickhouse"}

type (
	// Connection describes the database the explorer connects to.
	//
	// The password is deliberately absent: it is supplied at runtime through the
	// prompt, the --password flag or the METAEXPLORER_PASSWORD variable.
	Connection struct {
		// Dialect selects the catalog query set and driver ("oracle" or "clickhouse")
		Dialect string `yaml:"dialect,omitempty"`

		// Host is the database host name
		Host string `yaml:"host,omitempty"`

		// Port is the listener port; zero means the dialect default
		Port int `yaml:"port,omitempty"`

		// Service is the Oracle service name or the ClickHouse database.
		// When empty the operator is prompted for it.
		Service string `yaml:"service,omitempty"`

		// Username skips the username prompt when set
		Username string `yaml:"username,omitempty"`

		// TLS configures encrypted connections
		TLS TLS `yaml:"tls,omitempty"`
	}

	// TLS holds transport security settings. Client certificates are only
	// honoured by the clickhouse dialect.
	TLS struct {
		Enabled            bool   `yaml:"enabled,omitempty"`
		CertFile           string `yaml:"cert_file,omitempty"`
		KeyFile            string `yaml:"key_file,omitempty"`
		CAFile             string `yaml:"ca_file,omitempty"`
		InsecureSkipVerify bool   `yaml:"insecure_skip_verify,omitempty"`
	}

	// Prompt controls interactive input.
	Prompt struct {
		// HistoryFile is where readline keeps its history. A leading "~/" is
		// expanded to the user's home directory.
		HistoryFile string `yaml:"history_file,omitempty"`
	}

	// Config is the explorer configuration.
	Config struct {
		Connection Connection `yaml:"connection"`
		Prompt     Prompt     `yaml:"prompt"`
	}
)

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// The reader holds a YAML document; an empty one yields the defaults. Missing
// values are filled from pkg/consts. The port stays zero unless configured and
// resolves to the dialect's default through EffectivePort.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader(`
//	connection:
//	  dialect: clickhouse
//	  host: ch.internal
//	`))
//	if err != nil {
//		return err
//	}
//
//	fmt.Println(cfg.Connection.EffectivePort()) // 9000
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Validate reports settings that cannot produce a connection.
func (c *Config) Validate() error {
	if !slices.Contains(Dialects, c.Connection.Dialect) {
		return errors.Wrapf(ErrInvalidConfig, "unknown dialect %q (expected one of %s)",
			c.Connection.Dialect, strings.Join(Dialects, ", "))
	}

	if c.Connection.Host == "" {
		return errors.Wrap(ErrInvalidConfig, "host must not be empty")
	}

	if port := c.Connection.EffectivePort(); port < 1 || port > 65535 {
		return errors.Wrapf(ErrInvalidConfig, "port %d out of range", port)
	}

	if t := c.Connection.TLS; (t.CertFile == "") != (t.KeyFile == "") {
		return errors.Wrap(ErrInvalidConfig, "tls cert_file and key_file must be set together")
	}

	return nil
}

// DefaultService returns the service name applied when the prompt is left blank.
func (c Connection) DefaultService() string {
	if c.Dialect == "clickhouse" {
		return consts.DefaultClickHouseDatabase
	}

	return consts.DefaultOracleService
}

// DefaultPort returns the listener port for the dialect.
func (c Connection) DefaultPort() int {
	if c.Dialect == "clickhouse" {
		return consts.DefaultClickHousePort
	}

	return consts.DefaultOraclePort
}

// EffectivePort returns the configured port, or the dialect default when none
// was configured.
func (c Connection) EffectivePort() int {
	if c.Port == 0 {
		return c.DefaultPort()
	}

	return c.Port
}

// HistoryPath resolves the history file, expanding "~/" against home.
func (p Prompt) HistoryPath(home string) string {
	if rest, ok := strings.CutPrefix(p.HistoryFile, "~/"); ok {
		return filepath.Join(home, rest)
	}

	return p.HistoryFile
}

func (c *Config) applyDefaults() {
	if c.Connection.Dialect == "" {
		c.Connection.Dialect = consts.DefaultDialect
	}
	c.Connection.Dialect = strings.ToLower(c.Connection.Dialect)

	if c.Connection.Host == "" {
		c.Connection.Host = consts.DefaultHost
	}
	if c.Prompt.HistoryFile == "" {
		c.Prompt.HistoryFile = "~/" + consts.DefaultHistoryFile
	}
}
