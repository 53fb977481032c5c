package catalog

import (
	"database/sql"

	"github.com/pkg/errors"
	goora "github.com/sijms/go-ora/v2"
)

// Oracle queries the data dictionary views visible to the connected user.
// Account, role and privilege details read the DBA_* views, so they need a
// user with SELECT_CATALOG_ROLE or equivalent.
var Oracle = &Dialect{
	Name:  "oracle",
	Title: "Oracle",
	Lists: map[ObjectKind]string{
		Tables:    `SELECT table_name FROM user_tables ORDER BY table_name`,
		Views:     `SELECT view_name FROM user_views ORDER BY view_name`,
		Sequences: `SELECT sequence_name FROM user_sequences ORDER BY sequence_name`,
		Users:     `SELECT username FROM all_users ORDER BY username`,
	},
	Details: map[Detail]Query{
		TableColumns: {
			Text: `
				SELECT column_name, data_type, data_length, nullable
				FROM user_tab_columns
				WHERE table_name = :tbl`,
			Bind: "tbl",
		},
		TableConstraints: {
			Text: `
				SELECT constraint_name, constraint_type
				FROM user_constraints
				WHERE table_name = :tbl`,
			Bind: "tbl",
		},
		TableIndexes: {
			Text: `
				SELECT index_name, uniqueness
				FROM user_indexes
				WHERE table_name = :tbl`,
			Bind: "tbl",
		},
		ViewDefinition: {
			Text: `SELECT text FROM user_views WHERE view_name = :v`,
			Bind: "v",
		},
		ViewColumns: {
			Text: `
				SELECT column_name, data_type, data_length, nullable
				FROM user_tab_columns
				WHERE table_name = :v`,
			Bind: "v",
		},
		SequenceProperties: {
			// NUMBER(28) bounds overflow int64, so they are fetched as text.
			Text: `
				SELECT TO_CHAR(min_value), TO_CHAR(max_value), increment_by,
				       cycle_flag, order_flag, TO_CHAR(last_number)
				FROM user_sequences
				WHERE sequence_name = :seq`,
			Bind:   "seq",
			Labels: []string{"Min Value", "Max Value", "Increment By", "Cycle", "Order", "Last Number"},
		},
		UserAccount: {
			Text: `
				SELECT username, account_status, created, default_tablespace, temporary_tablespace
				FROM dba_users
				WHERE username = :u`,
			Bind:   "u",
			Labels: []string{"Username", "Status", "Created", "Default Tablespace", "Temporary Tablespace"},
		},
		UserRoles: {
			Text: `SELECT granted_role FROM dba_role_privs WHERE grantee = :u`,
			Bind: "u",
		},
		UserPrivileges: {
			Text: `SELECT privilege FROM dba_sys_privs WHERE grantee = :u`,
			Bind: "u",
		},
	},
	VersionQuery: `SELECT banner FROM v$version WHERE ROWNUM = 1`,
	MinVersion:   VersionInfo{Major: 12, Minor: 1},
	open: func(opts Options) (*sql.DB, error) {
		urlOptions, err := oracleURLOptions(opts.TLS)
		if err != nil {
			return nil, err
		}

		url := goora.BuildUrl(opts.Host, opts.Port, opts.Service, opts.Username, opts.Password, urlOptions)
		return sql.Open("oracle", url)
	},
}

func init() {
	register(Oracle)
}

// oracleURLOptions maps TLS settings onto go-ora connection options.
func oracleURLOptions(t *TLSOptions) (map[string]string, error) {
	if t == nil || !t.Enabled {
		return nil, nil
	}

	if t.HasClientCert() || t.CAFile != "" {
		return nil, errors.New("oracle TLS uses wallets; certificate files are not supported")
	}

	opts := map[string]string{"SSL": "enable"}
	if t.InsecureSkipVerify {
		opts["SSL VERIFY"] = "false"
	}

	return opts, nil
}
