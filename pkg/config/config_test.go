package config_test

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/metaexplorer/pkg/config"
	"github.com/pseudomuto/metaexplorer/pkg/consts"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/metaexplorer.yaml
var testConfigYAML string

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		// Invalid YAML
		config, err := LoadConfig(strings.NewReader("invalid: yaml: ["))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal config")

		// Valid YAML with no known fields
		config, err = LoadConfig(strings.NewReader("other_key: value"))
		require.NoError(t, err)
		require.Equal(t, Defaults(), config)
	})

	t.Run("empty document", func(t *testing.T) {
		for _, doc := range []string{"", "\n"} {
			config, err := LoadConfig(strings.NewReader(doc))
			require.NoError(t, err)
			require.Equal(t, Defaults(), config)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("default file absent", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv(EnvConfigFile, "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, Defaults(), cfg)
	})

	t.Run("default file present", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, consts.DefaultConfigFile), []byte(testConfigYAML), consts.ModeFile))
		t.Chdir(dir)
		t.Setenv(EnvConfigFile, "")

		cfg, err := Load()
		require.NoError(t, err)
		validateTestConfig(t, cfg)
	})

	t.Run("empty default file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, consts.DefaultConfigFile), nil, consts.ModeFile))
		t.Chdir(dir)
		t.Setenv(EnvConfigFile, "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, Defaults(), cfg)
	})

	t.Run("named file missing", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "typo.yaml"))

		cfg, err := Load()
		require.Error(t, err)
		require.Nil(t, cfg)
		require.Contains(t, err.Error(), "failed to open file")
		require.Contains(t, err.Error(), "typo.yaml")
	})

	t.Run("named file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hr.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), consts.ModeFile))
		t.Setenv(EnvConfigFile, path)

		cfg, err := Load()
		require.NoError(t, err)
		validateTestConfig(t, cfg)
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), consts.DefaultConfigFile)
		require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), consts.ModeFile))

		config, err := LoadConfigFile(path)
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("missing file", func(t *testing.T) {
		config, err := LoadConfigFile("nonexistent.yaml")
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to open file")
	})
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		port       int
		configured int
		service    string
	}{
		{
			name:    "oracle when unspecified",
			yaml:    "connection: {}",
			port:    consts.DefaultOraclePort,
			service: consts.DefaultOracleService,
		},
		{
			name:    "clickhouse port and database",
			yaml:    "connection: {dialect: ClickHouse}",
			port:    consts.DefaultClickHousePort,
			service: consts.DefaultClickHouseDatabase,
		},
		{
			name:    "explicit port wins",
			yaml:    "connection: {dialect: clickhouse, port: 19000}",
			port:       19000,
			configured: 19000,
			service:    consts.DefaultClickHouseDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(strings.NewReader(tt.yaml))
			require.NoError(t, err)
			require.Equal(t, consts.DefaultHost, cfg.Connection.Host)
			require.Equal(t, tt.port, cfg.Connection.EffectivePort())
			require.Equal(t, tt.service, cfg.Connection.DefaultService())
			require.Empty(t, cfg.Connection.Service)
			require.Equal(t, tt.configured, cfg.Connection.Port)
			require.NoError(t, cfg.Validate())
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "unknown dialect",
			mutate: func(c *Config) { c.Connection.Dialect = "db2" },
			errMsg: `unknown dialect "db2"`,
		},
		{
			name:   "empty host",
			mutate: func(c *Config) { c.Connection.Host = "" },
			errMsg: "host must not be empty",
		},
		{
			name:   "port out of range",
			mutate: func(c *Config) { c.Connection.Port = 70000 },
			errMsg: "port 70000 out of range",
		},
		{
			name:   "negative port",
			mutate: func(c *Config) { c.Connection.Port = -1 },
			errMsg: "port -1 out of range",
		},
		{
			name:   "tls key without cert",
			mutate: func(c *Config) { c.Connection.TLS = TLS{Enabled: true, KeyFile: "client.key"} },
			errMsg: "cert_file and key_file must be set together",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			require.Equal(t, ErrInvalidConfig, errors.Cause(err))
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadConfig_TLS(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
connection:
  dialect: clickhouse
  port: 9440
  tls:
    enabled: true
    cert_file: /etc/metaexplorer/client.crt
    key_file: /etc/metaexplorer/client.key
    ca_file: /etc/metaexplorer/ca.crt
`))
	require.NoError(t, err)
	require.Equal(t, TLS{
		Enabled:  true,
		CertFile: "/etc/metaexplorer/client.crt",
		KeyFile:  "/etc/metaexplorer/client.key",
		CAFile:   "/etc/metaexplorer/ca.crt",
	}, cfg.Connection.TLS)
	require.NoError(t, cfg.Validate())
}

func TestPrompt_HistoryPath(t *testing.T) {
	require.Equal(t, "/home/op/.metaexplorer_history", Defaults().Prompt.HistoryPath("/home/op"))
	require.Equal(t, "/tmp/hist", Prompt{HistoryFile: "/tmp/hist"}.HistoryPath("/home/op"))
}

// validateTestConfig validates that a config contains the expected test data
func validateTestConfig(t *testing.T, config *Config) {
	t.Helper()
	require.NotNil(t, config)
	require.Equal(t, "oracle", config.Connection.Dialect)
	require.Equal(t, "db.internal", config.Connection.Host)
	require.Equal(t, 1521, config.Connection.Port)
	require.Equal(t, "hrpdb", config.Connection.Service)
	require.Equal(t, "hr", config.Connection.Username)
	require.Equal(t, "~/.hr_history", config.Prompt.HistoryFile)
}
