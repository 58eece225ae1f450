// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// missingType is shown when a property declares no type.
	missingType = "MISSING"
	// requiredMarker is shown for properties listed in "required".
	requiredMarker = "Required"
	// defaultTableWidth is the width of the short description column.
	defaultTableWidth = "3.8in"
	// narrowTableWidth is used by extension tables.
	narrowTableWidth = "2.8in"
)

// tableHeader holds the fixed column labels of summary tables.
var tableHeader = [4]string{"Field", "Required", "Type", "Short Description"}

// Table is a summary of one schema object's properties.
type Table struct {
	// Width is the width of the short description column, e.g. "3.8in".
	Width string
	// Striped enables alternating row colors.
	Striped bool
	Rows    []Row
}

// Row is one summary line for a property.
type Row struct {
	Field    string
	Required string
	Type     string
	Short    string
}

// RenderTable builds a summary table with one row per property in source order.
func RenderTable(node *Node) (Table, error) {
	properties, err := node.Lookup("properties")
	if err != nil {
		return Table{}, err
	}

	if properties.Kind() != KindObject {
		return Table{}, fmt.Errorf("%w: properties is %s, want object", ErrSchemaShape, properties.Kind())
	}

	required := node.Required()
	table := Table{
		Width: defaultTableWidth,
		Rows:  make([]Row, 0, properties.Len()),
	}

	for _, prop := range node.Properties() {
		table.Rows = append(table.Rows, Row{
			Field:    DisplayName(prop.Name, tableNamespaces),
			Required: requiredFlag(required, prop.Name),
			Type:     propertyType(prop.Schema),
			Short:    ShortDescription(prop.Schema.StringField("description")),
		})
	}

	return table, nil
}

// requiredFlag renders the Required column for key.
func requiredFlag(required []string, key string) string {
	if slices.Contains(required, key) {
		return requiredMarker
	}

	return ""
}

// propertyType renders the Type column for one property schema.
func propertyType(schema *Node) string {
	value, ok := schema.Get("type")
	if !ok {
		return missingType
	}

	return value.Text()
}

// writeLaTeX serializes the table as a booktabs tabular.
func (t Table) writeLaTeX(out *strings.Builder) {
	width := t.Width
	if strings.TrimSpace(width) == "" {
		width = defaultTableWidth
	}

	if t.Striped {
		out.WriteString("\\rowcolors{1}{}{lightblue}\n")
	}

	fmt.Fprintf(out, "\\begin{tabular}{lllp{%s}}%%\n", width)
	out.WriteString("\\toprule%\n")

	header := make([]string, 0, len(tableHeader))
	for _, label := range tableHeader {
		header = append(header, `\textbf{`+EscapeLaTeX(label)+`}`)
	}

	out.WriteString(strings.Join(header, "&"))
	out.WriteString("\\\\%\n\\midrule%\n")

	for _, row := range t.Rows {
		cells := []string{row.Field, row.Required, row.Type, row.Short}
		for index, cell := range cells {
			cells[index] = EscapeLaTeX(cell)
		}

		out.WriteString(strings.Join(cells, "&"))
		out.WriteString("\\\\%\n")
	}

	out.WriteString("\\bottomrule%\n\\end{tabular}\n\n")
}
