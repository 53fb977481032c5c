package catalog

import (
	"database/sql"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownDialect is returned by LookupDialect for unregistered names.
var ErrUnknownDialect = errors.New("unknown dialect")

type (
	// Dialect is the fixed catalog query set of one database engine.
	Dialect struct {
		// Name is the configuration name, e.g. "oracle"
		Name string

		// Title is the product name used in messages, e.g. "Oracle"
		Title string

		// Lists maps each supported kind to its list query. Every list query
		// returns a single name column ordered ascending.
		Lists map[ObjectKind]string

		// Details maps each supported detail to its query.
		Details map[Detail]Query

		// VersionQuery returns one row whose first column describes the server
		// version.
		VersionQuery string

		// MinVersion is the oldest server release whose catalog provides every
		// view the queries read.
		MinVersion VersionInfo

		open func(Options) (*sql.DB, error)
	}

	// Options describe a connection target and credentials.
	Options struct {
		Dialect  string
		Host     string
		Port     int
		Service  string
		Username string
		Password string

		// TLS is nil for plain connections
		TLS *TLSOptions
	}
)

var dialects = map[string]*Dialect{}

func register(d *Dialect) {
	dialects[d.Name] = d
}

// LookupDialect returns the dialect registered under name (case-insensitive).
func LookupDialect(name string) (*Dialect, error) {
	d, ok := dialects[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDialect, "%q (expected one of %s)", name, strings.Join(DialectNames(), ", "))
	}

	return d, nil
}

// DialectNames returns the registered dialect names, sorted.
func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// ListQuery returns the list query for kind and whether the dialect has one.
func (d *Dialect) ListQuery(kind ObjectKind) (string, bool) {
	q, ok := d.Lists[kind]
	return q, ok
}

// DetailQuery returns the query for detail and whether the dialect has one.
func (d *Dialect) DetailQuery(detail Detail) (Query, bool) {
	q, ok := d.Details[detail]
	return q, ok
}

// Supports reports whether v is at least the dialect's MinVersion.
func (d *Dialect) Supports(v *VersionInfo) bool {
	return v.IsAtLeast(d.MinVersion.Major, d.MinVersion.Minor)
}
