package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/metaexplorer/pkg/config"
	"github.com/pseudomuto/metaexplorer/pkg/consts"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// ConfigFixture is a temp directory holding a metaexplorer.yaml.
type ConfigFixture struct {
	Dir    string
	Path   string
	Config *config.Config
	t      *testing.T
}

// TestConfig writes cfg (defaults when nil) to a metaexplorer.yaml in a new
// temp directory.
func TestConfig(t *testing.T, cfg *config.Config) *ConfigFixture {
	t.Helper()

	if cfg == nil {
		cfg = config.Defaults()
	}

	dir := t.TempDir()
	f := &ConfigFixture{
		Dir:    dir,
		Path:   filepath.Join(dir, consts.DefaultConfigFile),
		Config: cfg,
		t:      t,
	}

	f.write()
	return f
}

// WithConnection updates the connection section and rewrites the file.
func (f *ConfigFixture) WithConnection(conn config.Connection) *ConfigFixture {
	f.t.Helper()

	f.Config.Connection = conn
	f.write()
	return f
}

func (f *ConfigFixture) write() {
	f.t.Helper()

	data, err := yaml.Marshal(f.Config)
	require.NoError(f.t, err, "Failed to marshal config")
	require.NoError(f.t, os.WriteFile(f.Path, data, consts.ModeFile), "Failed to write config")
}
