package output

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dvloznov/bill2csv/internal/pipeline"
)

// Preview renders the normalized records as a console table.
func Preview(w io.Writer, result *pipeline.Result) {
	fields := result.Schema.Fields()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(fields))
	for i, name := range fields {
		header[i] = name
	}
	t.AppendHeader(header)

	for _, rec := range result.Records {
		row := make(table.Row, len(fields))
		for i, name := range fields {
			row[i] = rec.Field(name)
		}
		t.AppendRow(row)
	}

	t.Render()
}
