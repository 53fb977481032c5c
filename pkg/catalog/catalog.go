package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ObjectKind is a category of catalog object the operator can browse.
type ObjectKind int

const (
	Tables ObjectKind = iota + 1
	Views
	Sequences
	Users
)

// ObjectKinds lists every kind in menu order.
var ObjectKinds = []ObjectKind{Tables, Views, Sequences, Users}

// String returns the upper-case category name, e.g. "TABLES".
func (k ObjectKind) String() string {
	switch k {
	case Tables:
		return "TABLES"
	case Views:
		return "VIEWS"
	case Sequences:
		return "SEQUENCES"
	case Users:
		return "USERS"
	default:
		return "ObjectKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Detail identifies one per-object detail query.
type Detail string

const (
	TableColumns       Detail = "table.columns"
	TableConstraints   Detail = "table.constraints"
	TableIndexes       Detail = "table.indexes"
	ViewDefinition     Detail = "view.definition"
	ViewColumns        Detail = "view.columns"
	SequenceProperties Detail = "sequence.properties"
	UserAccount        Detail = "user.account"
	UserRoles          Detail = "user.roles"
	UserPrivileges     Detail = "user.privileges"
)

type (
	// Query is a fixed detail query. The object name is bound to the
	// placeholder called Bind.
	Query struct {
		Text string
		Bind string

		// Labels names the columns of a single-record result for display. When
		// empty the column names reported by the driver are used.
		Labels []string
	}

	// Row is one result row in column order.
	Row []any

	// Result holds the rows of one query.
	Result struct {
		Columns []string
		Rows    []Row
	}
)

// Binds returns the bind mapping for the given object name.
func (q Query) Binds(name string) map[string]any {
	if q.Bind == "" {
		return nil
	}

	return map[string]any{q.Bind: name}
}

// Empty reports whether the result has no rows.
func (r *Result) Empty() bool {
	return r == nil || len(r.Rows) == 0
}

// Strings returns the first column of every row, formatted for display.
func (r *Result) Strings() []string {
	if r == nil {
		return nil
	}

	out := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		if len(row) == 0 {
			continue
		}
		out = append(out, FormatValue(row[0]))
	}

	return out
}

// FormatValue renders a scanned column value as text. NULLs render as "NULL",
// timestamps as "2006-01-02 15:04:05".
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.DateTime)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}
