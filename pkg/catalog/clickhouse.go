package catalog

import (
	"database/sql"
	"net"
	"strconv"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// ClickHouse queries the system tables of the current database. ClickHouse has
// no sequences and no catalog of table constraints, so those entries are absent.
var ClickHouse = &Dialect{
	Name:  "clickhouse",
	Title: "ClickHouse",
	Lists: map[ObjectKind]string{
		Tables: `
			SELECT name
			FROM system.tables
			WHERE database = currentDatabase()
			  AND engine NOT IN ('View', 'MaterializedView')
			  AND is_temporary = 0
			  AND name NOT LIKE '.inner%'
			ORDER BY name`,
		Views: `
			SELECT name
			FROM system.tables
			WHERE database = currentDatabase()
			  AND engine IN ('View', 'MaterializedView')
			ORDER BY name`,
		Users: `SELECT name FROM system.users ORDER BY name`,
	},
	Details: map[Detail]Query{
		TableColumns: {
			Text: `
				SELECT column_name, data_type, character_maximum_length, is_nullable
				FROM information_schema.columns
				WHERE table_schema = currentDatabase() AND table_name = @tbl
				ORDER BY ordinal_position`,
			Bind: "tbl",
		},
		TableIndexes: {
			Text: `
				SELECT name, 'NONUNIQUE' AS uniqueness
				FROM system.data_skipping_indices
				WHERE database = currentDatabase() AND table = @tbl`,
			Bind: "tbl",
		},
		ViewDefinition: {
			Text: `
				SELECT as_select
				FROM system.tables
				WHERE database = currentDatabase() AND name = @v`,
			Bind: "v",
		},
		ViewColumns: {
			Text: `
				SELECT column_name, data_type, character_maximum_length, is_nullable
				FROM information_schema.columns
				WHERE table_schema = currentDatabase() AND table_name = @v
				ORDER BY ordinal_position`,
			Bind: "v",
		},
		UserAccount: {
			Text: `
				SELECT name, storage, toString(auth_type), default_database
				FROM system.users
				WHERE name = @u`,
			Bind:   "u",
			Labels: []string{"Username", "Storage", "Authentication", "Default Database"},
		},
		UserRoles: {
			Text: `SELECT granted_role_name FROM system.role_grants WHERE user_name = @u ORDER BY granted_role_name`,
			Bind: "u",
		},
		UserPrivileges: {
			Text: `SELECT DISTINCT toString(access_type) AS privilege FROM system.grants WHERE user_name = @u ORDER BY privilege`,
			Bind: "u",
		},
	},
	VersionQuery: `SELECT version()`,
	// information_schema.columns needs 22.x; 22.8 is the oldest LTS with it.
	MinVersion: VersionInfo{Major: 22, Minor: 8},
	open: func(opts Options) (*sql.DB, error) {
		tlsConfig, err := opts.TLS.Config()
		if err != nil {
			return nil, err
		}

		return clickhouse.OpenDB(&clickhouse.Options{
			Addr: []string{net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port))},
			Auth: clickhouse.Auth{
				Database: opts.Service,
				Username: opts.Username,
				Password: opts.Password,
			},
			TLS: tlsConfig,
		}), nil
	},
}

func init() {
	register(ClickHouse)
}
