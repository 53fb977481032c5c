package catalog

import (
	"context"
	"database/sql"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/pkg/errors"
)

// ErrConnection matches every failure to open or reach the database.
var ErrConnection = errors.New("connection failed")

// ConnectionError carries the driver's message for a failed connection.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string { return e.Err.Error() }

func (e *ConnectionError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrConnection) true for every ConnectionError.
func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

// Client represents the session connection to a database catalog.
type Client struct {
	db      *sql.DB
	dialect *Dialect
	logger  *slog.Logger
}

// Connect opens a connection for opts.Dialect and verifies it with a ping.
// Failures (bad credentials, unreachable host or service) are returned as a
// *ConnectionError, which matches ErrConnection and reads as the driver's message.
//
// Example:
//
//	client, err := catalog.Connect(ctx, catalog.Options{
//		Dialect:  "clickhouse",
//		Host:     "localhost",
//		Port:     9000,
//		Service:  "default",
//		Username: "default",
//	})
//	if errors.Is(err, catalog.ErrConnection) {
//		fmt.Println("Connection failed:", err)
//	}
func Connect(ctx context.Context, opts Options) (*Client, error) {
	dialect, err := LookupDialect(opts.Dialect)
	if err != nil {
		return nil, err
	}

	db, err := dialect.open(opts)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &ConnectionError{Err: err}
	}

	return NewClient(db, dialect), nil
}

// NewClient wraps an already opened database handle.
func NewClient(db *sql.DB, dialect *Dialect) *Client {
	return &Client{db: db, dialect: dialect, logger: slog.Default()}
}

// WithLogger replaces the logger used for query diagnostics.
func (c *Client) WithLogger(l *slog.Logger) *Client {
	c.logger = l
	return c
}

// Dialect returns the query set of the connected database.
func (c *Client) Dialect() *Dialect {
	return c.dialect
}

// Close closes the session connection
func (c *Client) Close() error {
	return c.db.Close()
}

// Query executes a read-only catalog query. Each entry of binds is passed as a
// named argument, so placeholders in text refer to the map keys.
func (c *Client) Query(ctx context.Context, text string, binds map[string]any) (*Result, error) {
	start := time.Now()

	rows, err := c.db.QueryContext(ctx, text, namedArgs(binds)...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute catalog query")
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read result columns")
	}

	res := &Result{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "failed to scan catalog row")
		}

		res.Rows = append(res.Rows, Row(values))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating catalog rows")
	}

	c.logger.Debug("catalog query",
		"dialect", c.dialect.Name,
		"binds", slices.Sorted(maps.Keys(binds)),
		"rows", len(res.Rows),
		"elapsed", time.Since(start),
	)

	return res, nil
}

// namedArgs converts binds into sql.Named arguments in a stable order.
func namedArgs(binds map[string]any) []any {
	names := slices.Sorted(maps.Keys(binds))

	args := make([]any, len(names))
	for i, name := range names {
		args[i] = sql.Named(name, binds[name])
	}

	return args
}
