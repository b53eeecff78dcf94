package formats

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/cube2222/exprtraits/exprtraits"
)

type TableFormatter struct {
	table *tablewriter.Table
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	table := tablewriter.NewWriter(w)
	table.SetColWidth(48)
	table.SetRowLine(false)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)

	return &TableFormatter{
		table: table,
	}
}

func (t *TableFormatter) Write(record Record) error {
	t.table.Append(row(record))
	return nil
}

func (t *TableFormatter) Close() error {
	t.table.Render()
	return nil
}

// WriteMatrix prints a grid of results, with left operands as rows and right operands as columns.
// Valid cells show the expression name, invalid ones are left empty.
func WriteMatrix(w io.Writer, types []exprtraits.Type, results [][]exprtraits.Result) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	columns := make([]string, len(types)+1)
	columns[0] = "left \\ right"
	for i := range types {
		columns[i+1] = types[i].String()
	}
	table.SetHeader(columns)

	for i := range results {
		cells := make([]string, len(results[i])+1)
		cells[0] = types[i].String()
		for j, res := range results[i] {
			if expr, ok := exprtraits.AsExpression(res); ok {
				cells[j+1] = expr.Name
			}
		}
		table.Append(cells)
	}
	table.Render()
}
