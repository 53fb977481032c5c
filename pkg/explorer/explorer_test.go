package explorer_test

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/pseudomuto/metaexplorer/pkg/catalog"
	"github.com/pseudomuto/metaexplorer/pkg/cmd/testutil"
	"github.com/pseudomuto/metaexplorer/pkg/explorer"
	"github.com/stretchr/testify/require"
)

type harness struct {
	mock    sqlmock.Sqlmock
	session *testutil.Session
	exp     *explorer.Explorer
}

func newHarness(t *testing.T, dialect *catalog.Dialect, session *testutil.Session) *harness {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	client := catalog.NewClient(db, dialect).WithLogger(testutil.NewTestLogger(t))
	exp := explorer.New(client, dialect, session, &session.Output).
		WithLogger(testutil.NewTestLogger(t))

	return &harness{mock: mock, session: session, exp: exp}
}

// run executes the explorer to completion and checks that every expected query
// ran and the session was closed.
func (h *harness) run(t *testing.T) string {
	t.Helper()

	h.mock.ExpectClose()
	require.NoError(t, h.exp.Run(t.Context()))
	require.NoError(t, h.mock.ExpectationsWereMet())

	return h.session.Output.String()
}

func expectList(mock sqlmock.Sqlmock, table, column string, names ...string) {
	rows := sqlmock.NewRows([]string{column})
	for _, n := range names {
		rows.AddRow(n)
	}

	mock.ExpectQuery(regexp.QuoteMeta("FROM " + table)).WillReturnRows(rows)
}

func TestExplorer_Exit(t *testing.T) {
	tests := []struct {
		name    string
		session *testutil.Session
	}{
		{name: "by number", session: testutil.NewSession("5")},
		{name: "by name", session: testutil.NewSession("EXIT")},
		{name: "quit", session: testutil.NewSession("quit")},
		{name: "end of input", session: testutil.NewSession()},
		{name: "interrupt", session: testutil.SessionFor(testutil.Script().Interrupt())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, catalog.Oracle, tt.session)
			out := h.run(t)

			testutil.RequireLinesInOrder(t, out,
				"Select the object type you want to view:\n",
				"1. Tables\n2. Views\n3. Sequences\n4. Users\n5. Exit\n",
				"Enter option number: ",
				"Exiting...\n",
			)
		})
	}
}

func TestExplorer_InvalidTopLevelSelection(t *testing.T) {
	h := newHarness(t, catalog.Oracle, testutil.NewSession("9", "", "tabels", "0", "5"))
	out := h.run(t)

	testutil.RequireCount(t, out, "Invalid selection.\n", 4)
	testutil.RequireCount(t, out, "Enter option number: ", 5)
}

func TestExplorer_EmptyCategories(t *testing.T) {
	tests := []struct {
		input   string
		table   string
		column  string
		message string
	}{
		{"1", "user_tables", "TABLE_NAME", "No tables found."},
		{"2", "user_views", "VIEW_NAME", "No views found."},
		{"3", "user_sequences", "SEQUENCE_NAME", "No sequences found."},
		{"4", "all_users", "USERNAME", "No users found."},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			h := newHarness(t, catalog.Oracle, testutil.NewSession(tt.input, "5"))
			expectList(h.mock, tt.table, tt.column)

			out := h.run(t)
			require.Contains(t, out, tt.message+"\n")
			require.NotContains(t, out, "Select a ")
			require.NotContains(t, out, "Select metadata option: ")
		})
	}
}

func TestExplorer_InvalidObjectSelection(t *testing.T) {
	h := newHarness(t, catalog.Oracle, testutil.NewSession("1", "0", "1", "3", "1", "abc", "1", "-1", "5"))
	for range 4 {
		expectList(h.mock, "user_tables", "TABLE_NAME", "ORDERS", "USERS")
	}

	out := h.run(t)
	testutil.RequireLinesInOrder(t, out,
		"Invalid selection or error: 0 is out of range [1, 2]\n",
		"Invalid selection or error: 3 is out of range [1, 2]\n",
		`Invalid selection or error: "abc" is not a number`,
		`Invalid selection or error: "-1" is not a number`,
	)
	require.NotContains(t, out, " TABLE: ")
}

func TestExplorer_TableFlow(t *testing.T) {
	h := newHarness(t, catalog.Oracle, testutil.NewSession("1", "2", "4", "5"))
	expectList(h.mock, "user_tables", "TABLE_NAME", "ORDERS", "USERS")

	out := h.run(t)
	testutil.RequireLinesInOrder(t, out,
		"1. ORDERS\n2. USERS\n",
		"Select a table number: ",
		"\n TABLE: USERS\n1. Columns\n2. Constraints\n3. Indexes\n4. Back\n",
		"Select metadata option: ",
		"Select the object type you want to view:\n",
		"Exiting...",
	)
}

func TestExplorer_TableDetails(t *testing.T) {
	h := newHarness(t, catalog.Oracle, testutil.NewSession("1", "1", "columns", "2", "3", "7", "back", "5"))
	expectList(h.mock, "user_tables", "TABLE_NAME", "ORDERS")
	h.mock.ExpectQuery(regexp.QuoteMeta("FROM user_tab_columns")).
		WithArgs(sql.Named("tbl", "ORDERS")).
		WillReturnRows(sqlmock.NewRows([]string{"COLUMN_NAME", "DATA_TYPE", "DATA_LENGTH", "NULLABLE"}).
			AddRow("ID", "NUMBER", int64(22), "N"))
	h.mock.ExpectQuery(regexp.QuoteMeta("FROM user_constraints")).
		WithArgs(sql.Named("tbl", "ORDERS")).
		WillReturnRows(sqlmock.NewRows([]string{"CONSTRAINT_NAME", "CONSTRAINT_TYPE"}).
			AddRow("ORDERS_PK", "P"))
	h.mock.ExpectQuery(regexp.QuoteMeta("FROM user_indexes")).
		WithArgs(sql.Named("tbl", "ORDERS")).
		WillReturnError(errors.New("ORA-01031: insufficient privileges"))

	out := h.run(t)
	testutil.RequireLinesInOrder(t, out,
		"\nColumns:\n",
		"│ ID          │ NUMBER    │ 22          │ N        │\n",
		"(1 rows)\n",
		"\nConstraints:\n",
		"ORDERS_PK",
		"Query failed: failed to execute catalog query: ORA-01031: insufficient privileges\n",
		"Invalid option.\n",
		"Exiting...",
	)
	testutil.RequireCount(t, out, " TABLE: ORDERS\n", 5)
}

func TestExplorer_EmptyColumns(t *testing.T) {
	h := newHarness(t, catalog.Oracle, testutil.NewSession("1", "1", "1", "4", "5"))
	expectList(h.mock, "user_tables", "TABLE_NAME", "EMPTY")
	h.mock.ExpectQuery(regexp.QuoteMeta("FROM user_tab_columns")).
		WithArgs(sql.Named("tbl", "EMPTY")).
		WillReturnRows(sqlmock.NewRows([]string{"COLUMN_NAME", "DATA_TYPE", "DATA_LENGTH", "NULLABLE"}))

	out := h.run(t)
	require.Contains(t, out, "\nColumns:\n(0 rows)\n")
	require.NotContains(t, out, "Query failed")
}

func TestExplorer_ViewDefinition(t *testing.T) {
	h := newHarness(t, catalog.Oracle, testutil.NewSession("2", "1", "definition", "1", "3", "5"))
	expectList(h.mock, "user_views", "VIEW_NAME", "ACTIVE_USERS")
	h.mock.ExpectQuery(regexp.QuoteMeta("SELECT text FROM user_views")).
		WithArgs(sql.Named("v", "ACTIVE_USERS")).
		WillReturnRows(sqlmock.NewRows([]string{"TEXT"}).AddRow("SELECT id FROM users WHERE active = 'Y'"))
	h.mock.ExpectQuery(regexp.QuoteMeta("SELECT text FROM user_views")).
		WithArgs(sql.Named("v", "ACTIVE_USERS")).
		WillReturnRows(sqlmock.NewRows([]string{"TEXT"}))

	out := h.run(t)
	testutil.RequireLinesInOrder(t, out,
		"\n VIEW: ACTIVE_USERS\n1. Definition (SQL Text)\n2. Columns\n3. Back\n",
		"\nView Definition:\nSELECT id FROM users WHERE active = 'Y'\n",
		"No definition found.\n",
	)
}

func TestExplorer_SequenceNotFound(t *testing.T) {
	h := newHarness(t, catalog.Oracle, testutil.NewSession("3", "1", "1", "2", "5"))
	expectList(h.mock, "user_sequences", "SEQUENCE_NAME", "ORDERS_SEQ")
	h.mock.ExpectQuery(regexp.QuoteMeta("FROM user_sequences")).
		WithArgs(sql.Named("seq", "ORDERS_SEQ")).
		WillReturnRows(sqlmock.NewRows([]string{"MIN_VALUE", "MAX_VALUE", "INCREMENT_BY", "CYCLE_FLAG", "ORDER_FLAG", "LAST_NUMBER"}))

	out := h.run(t)
	testutil.RequireLinesInOrder(t, out,
		" SEQUENCE: ORDERS_SEQ\n1. Properties\n2. Back\n",
		"Select metadata option: Sequence not found.\n",
		"\n SEQUENCE: ORDERS_SEQ\n",
		"Select the object type you want to view:\n",
	)
	require.NotContains(t, out, "Properties:")
}

func TestExplorer_SequenceProperties(t *testing.T) {
	h := newHarness(t, catalog.Oracle, testutil.NewSession("3", "1", "properties", "2", "5"))
	expectList(h.mock, "user_sequences", "SEQUENCE_NAME", "ORDERS_SEQ")
	h.mock.ExpectQuery(regexp.QuoteMeta("FROM user_sequences")).
		WithArgs(sql.Named("seq", "ORDERS_SEQ")).
		WillReturnRows(sqlmock.NewRows([]string{"MIN_VALUE", "MAX_VALUE", "INCREMENT_BY", "CYCLE_FLAG", "ORDER_FLAG", "LAST_NUMBER"}).
			AddRow("1", "9999999999999999999999999999", int64(1), "N", "N", "21"))

	out := h.run(t)
	require.Contains(t, out, "\nProperties:\n"+
		"Min Value: 1\n"+
		"Max Value: 9999999999999999999999999999\n"+
		"Increment By: 1\n"+
		"Cycle: N\n"+
		"Order: N\n"+
		"Last Number: 21\n")
}

func TestExplorer_UserPrivileges(t *testing.T) {
	h := newHarness(t, catalog.Oracle, testutil.NewSession("4", "1", "3", "4", "5"))
	expectList(h.mock, "all_users", "USERNAME", "ALICE")
	h.mock.ExpectQuery(regexp.QuoteMeta("FROM dba_sys_privs")).
		WithArgs(sql.Named("u", "ALICE")).
		WillReturnRows(sqlmock.NewRows([]string{"PRIVILEGE"}).AddRow("CREATE SESSION").AddRow("CREATE TABLE"))

	out := h.run(t)
	testutil.RequireLinesInOrder(t, out,
		"1. ALICE\n",
		"\n USER: ALICE\n1. Account Info\n2. Roles\n3. System Privileges\n4. Back\n",
		"\nSystem Privileges:\nCREATE SESSION\nCREATE TABLE\n",
		"Exiting...",
	)
}

func TestExplorer_UserAccountAndRoles(t *testing.T) {
	h := newHarness(t, catalog.Oracle, testutil.NewSession("users", "1", "account info", "roles", "1", "4", "5"))
	expectList(h.mock, "all_users", "USERNAME", "ALICE")
	h.mock.ExpectQuery(regexp.QuoteMeta("FROM dba_users")).
		WithArgs(sql.Named("u", "ALICE")).
		WillReturnRows(sqlmock.NewRows([]string{"USERNAME", "ACCOUNT_STATUS", "CREATED", "DEFAULT_TABLESPACE", "TEMPORARY_TABLESPACE"}).
			AddRow("ALICE", "OPEN", "2024-03-01 09:30:00", "USERS", "TEMP"))
	h.mock.ExpectQuery(regexp.QuoteMeta("FROM dba_role_privs")).
		WithArgs(sql.Named("u", "ALICE")).
		WillReturnRows(sqlmock.NewRows([]string{"GRANTED_ROLE"}).AddRow("CONNECT").AddRow("RESOURCE"))
	h.mock.ExpectQuery(regexp.QuoteMeta("FROM dba_users")).
		WithArgs(sql.Named("u", "ALICE")).
		WillReturnRows(sqlmock.NewRows([]string{"USERNAME", "ACCOUNT_STATUS", "CREATED", "DEFAULT_TABLESPACE", "TEMPORARY_TABLESPACE"}))

	out := h.run(t)
	testutil.RequireLinesInOrder(t, out,
		"\nAccount Info:\nUsername: ALICE\nStatus: OPEN\nCreated: 2024-03-01 09:30:00\nDefault Tablespace: USERS\nTemporary Tablespace: TEMP\n",
		"\nRoles:\nCONNECT\nRESOURCE\n",
		"User not found.\n",
	)
}

func TestExplorer_ListError(t *testing.T) {
	h := newHarness(t, catalog.Oracle, testutil.NewSession("2", "5"))
	h.mock.ExpectQuery(regexp.QuoteMeta("FROM user_views")).
		WillReturnError(errors.New("ORA-03113: end-of-file on communication channel"))

	out := h.run(t)
	require.Contains(t, out, "Error listing views: failed to execute catalog query: ORA-03113: end-of-file on communication channel\n")
}

func TestExplorer_SubmenuInput(t *testing.T) {
	t.Run("interrupt goes back", func(t *testing.T) {
		session := testutil.SessionFor(testutil.Script("1", "1").Interrupt().And("5"))

		h := newHarness(t, catalog.Oracle, session)
		expectList(h.mock, "user_tables", "TABLE_NAME", "ORDERS")

		out := h.run(t)
		testutil.RequireLinesInOrder(t, out, " TABLE: ORDERS\n", "Select the object type you want to view:\n", "Exiting...")
	})

	t.Run("interrupt at index prompt goes back", func(t *testing.T) {
		session := testutil.SessionFor(testutil.Script("1").Interrupt().And("5"))

		h := newHarness(t, catalog.Oracle, session)
		expectList(h.mock, "user_tables", "TABLE_NAME", "ORDERS")

		out := h.run(t)
		require.NotContains(t, out, " TABLE: ")
		require.Contains(t, out, "Exiting...")
	})

	t.Run("end of input exits", func(t *testing.T) {
		h := newHarness(t, catalog.Oracle, testutil.NewSession("1", "1"))
		expectList(h.mock, "user_tables", "TABLE_NAME", "ORDERS")

		out := h.run(t)
		testutil.RequireLinesInOrder(t, out, " TABLE: ORDERS\n", "Select metadata option: ", "Exiting...")
	})
}

func TestExplorer_ReadFailure(t *testing.T) {
	session := testutil.SessionFor(testutil.Script().Then(errors.New("tty gone")))

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	e := explorer.New(catalog.NewClient(db, catalog.Oracle), catalog.Oracle, session, &session.Output)
	err = e.Run(t.Context())
	require.EqualError(t, err, "failed to read menu selection: tty gone")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExplorer_ClickHouseUnsupported(t *testing.T) {
	h := newHarness(t, catalog.ClickHouse, testutil.NewSession("3", "1", "1", "constraints", "4", "5"))
	expectList(h.mock, "system.tables", "name", "orders")

	out := h.run(t)
	testutil.RequireLinesInOrder(t, out,
		"Sequences are not available for ClickHouse.\n",
		"1. orders\n",
		" TABLE: orders\n",
		"Constraints is not available for ClickHouse.\n",
		"Exiting...",
	)
	require.NotContains(t, out, "No sequences found.")
}
