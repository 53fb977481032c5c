package explorer

import (
	"github.com/pseudomuto/metaexplorer/pkg/catalog"
)

// Shape selects how an option's result is printed.
type Shape int

const (
	// ShapeRows prints a table of every row.
	ShapeRows Shape = iota

	// ShapeList prints the first column of every row, one per line.
	ShapeList

	// ShapeRecord prints the first row as labeled lines.
	ShapeRecord

	// ShapeText prints the first column of the first row verbatim.
	ShapeText
)

type (
	// Option is one entry of a detail menu.
	Option struct {
		// Label is shown in the menu and accepted as input (case-insensitive)
		Label string

		// Aliases are additional accepted inputs
		Aliases []string

		// Detail keys the dialect query run for this option
		Detail catalog.Detail

		// Section is the heading printed above the result
		Section string

		Shape Shape

		// NotFound is printed instead of the section when a record or text
		// option returns no row
		NotFound string
	}

	// Category is one object type of the top-level menu together with its
	// detail menu.
	Category struct {
		Kind catalog.ObjectKind

		// Label is the top-level menu entry, e.g. "Tables"
		Label string

		// Plural and Singular are used in messages: "No tables found.",
		// "Select a table number: "
		Plural   string
		Singular string

		// Title heads the detail menu, e.g. "TABLE"
		Title string

		// Options of the detail menu, excluding Back
		Options []Option
	}
)

// backLabel is always the last detail menu entry.
const backLabel = "Back"

// Categories in top-level menu order.
var Categories = []*Category{
	{
		Kind:     catalog.Tables,
		Label:    "Tables",
		Plural:   "tables",
		Singular: "table",
		Title:    "TABLE",
		Options: []Option{
			{Label: "Columns", Detail: catalog.TableColumns, Section: "Columns", Shape: ShapeRows},
			{Label: "Constraints", Detail: catalog.TableConstraints, Section: "Constraints", Shape: ShapeRows},
			{Label: "Indexes", Aliases: []string{"indices"}, Detail: catalog.TableIndexes, Section: "Indexes", Shape: ShapeRows},
		},
	},
	{
		Kind:     catalog.Views,
		Label:    "Views",
		Plural:   "views",
		Singular: "view",
		Title:    "VIEW",
		Options: []Option{
			{
				Label:    "Definition (SQL Text)",
				Aliases:  []string{"definition", "sql", "text"},
				Detail:   catalog.ViewDefinition,
				Section:  "View Definition",
				Shape:    ShapeText,
				NotFound: "No definition found.",
			},
			{Label: "Columns", Detail: catalog.ViewColumns, Section: "Columns", Shape: ShapeRows},
		},
	},
	{
		Kind:     catalog.Sequences,
		Label:    "Sequences",
		Plural:   "sequences",
		Singular: "sequence",
		Title:    "SEQUENCE",
		Options: []Option{
			{
				Label:    "Properties",
				Detail:   catalog.SequenceProperties,
				Section:  "Properties",
				Shape:    ShapeRecord,
				NotFound: "Sequence not found.",
			},
		},
	},
	{
		Kind:     catalog.Users,
		Label:    "Users",
		Plural:   "users",
		Singular: "user",
		Title:    "USER",
		Options: []Option{
			{
				Label:    "Account Info",
				Aliases:  []string{"account", "info"},
				Detail:   catalog.UserAccount,
				Section:  "Account Info",
				Shape:    ShapeRecord,
				NotFound: "User not found.",
			},
			{Label: "Roles", Detail: catalog.UserRoles, Section: "Roles", Shape: ShapeList},
			{
				Label:   "System Privileges",
				Aliases: []string{"privileges"},
				Detail:  catalog.UserPrivileges,
				Section: "System Privileges",
				Shape:   ShapeList,
			},
		},
	},
}

// CategoryFor returns the category of kind.
func CategoryFor(kind catalog.ObjectKind) (*Category, bool) {
	for _, c := range Categories {
		if c.Kind == kind {
			return c, true
		}
	}

	return nil, false
}

// MenuLabels returns the detail menu entries including the trailing Back.
func (c *Category) MenuLabels() []string {
	labels := make([]string, 0, len(c.Options)+1)
	for _, o := range c.Options {
		labels = append(labels, o.Label)
	}

	return append(labels, backLabel)
}

func (o Option) names() []string {
	return append([]string{o.Label}, o.Aliases...)
}
