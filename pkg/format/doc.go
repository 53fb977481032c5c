// Package format renders catalog output for the interactive explorer.
//
// Every piece of operator-facing text goes through a Formatter so the menus,
// listings and metadata sections share one layout:
//
//   - Menus and listings are numbered from 1 ("1. ORDERS")
//   - Row sections render as a light box table followed by a row count
//   - Record sections render one "Label: value" line per field
//   - List sections render one value per line
//
// Usage:
//
//	f := format.New(os.Stdout)
//	f.Menu("Select the object type you want to view:", []string{"Tables", "Views"})
//	f.Section("Columns")
//	f.Rows(result)
//
// Output:
//
//	Select the object type you want to view:
//	1. Tables
//	2. Views
//
//	Columns:
//	┌─────────────┬───────────┐
//	│ COLUMN_NAME │ DATA_TYPE │
//	├─────────────┼───────────┤
//	│ ID          │ NUMBER    │
//	└─────────────┴───────────┘
//	(1 rows)
package format
