package config

import (
	"os"

	"github.com/pseudomuto/metaexplorer/pkg/consts"
	"go.uber.org/fx"
)

// EnvConfigFile names the variable that overrides the configuration file path.
const EnvConfigFile = "METAEXPLORER_CONFIG"

var Module = fx.Module("config", fx.Provide(Load))

// Load reads the file named by METAEXPLORER_CONFIG, which must exist. Without
// the variable it reads metaexplorer.yaml from the working directory, and
// falls back to the defaults when that file doesn't exist.
func Load() (*Config, error) {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return LoadConfigFile(path)
	}

	if _, err := os.Stat(consts.DefaultConfigFile); os.IsNotExist(err) {
		return Defaults(), nil
	}

	return LoadConfigFile(consts.DefaultConfigFile)
}
