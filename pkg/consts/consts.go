package consts

import "os"

const (
	// AppName is the binary name and the prefix used for environment variables.
	AppName = "metaexplorer"

	// DefaultConfigFile is read from the working directory when no --config is given.
	DefaultConfigFile = "metaexplorer.yaml"

	// DefaultDialect is the catalog dialect used when none is configured.
	DefaultDialect = "oracle"

	// DefaultHost is the database host used when none is configured.
	DefaultHost = "localhost"

	// DefaultOraclePort is the listener port of the local Oracle Free container.
	DefaultOraclePort = 8521

	// DefaultOracleService is applied when the operator leaves the service prompt blank.
	DefaultOracleService = "freepdb1"

	// DefaultClickHousePort is the ClickHouse native protocol port.
	DefaultClickHousePort = 9000

	// DefaultClickHouseDatabase is the ClickHouse equivalent of a service name.
	DefaultClickHouseDatabase = "default"

	// DefaultHistoryFile stores readline history, relative to the user's home directory.
	DefaultHistoryFile = ".metaexplorer_history"

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)
)
