// Package catalog is the query gateway between the explorer and a database's
// metadata catalog.
//
// A Client owns the single session connection of an explorer run. It executes
// read-only queries with named bind parameters and returns the rows as a
// Result. Which catalog views are queried is decided by a Dialect: each dialect
// carries one fixed list query per ObjectKind and one fixed query per Detail.
// Object names only ever reach a query as bind values.
//
// Supported dialects:
//   - oracle: the USER_* / ALL_USERS / DBA_* dictionary views, via go-ora
//   - clickhouse: system.tables, information_schema.columns, system.users,
//     system.role_grants and system.grants, via clickhouse-go
//
// Setting Options.TLS encrypts the connection. Client certificates are only
// supported by clickhouse; go-ora is limited to server-verified TLS.
//
// Example usage:
//
//	client, err := catalog.Connect(ctx, catalog.Options{
//		Dialect:  "oracle",
//		Host:     "localhost",
//		Port:     8521,
//		Service:  "freepdb1",
//		Username: "hr",
//		Password: os.Getenv("METAEXPLORER_PASSWORD"),
//	})
//	if err != nil {
//		return err // wraps catalog.ErrConnection
//	}
//	defer client.Close()
//
//	res, err := client.Query(ctx, client.Dialect().Lists[catalog.Tables], nil)
//	if err != nil {
//		return err
//	}
//
//	for _, name := range res.Strings() {
//		fmt.Println(name)
//	}
package catalog
