package tabular

import (
	"errors"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantHeader string
		wantSchema Schema
		wantLines  []string
	}{
		{
			name:       "bare table",
			raw:        "Date,Description,Amount\n13-06-2018,Monthly fee,-50.00\n",
			wantHeader: "Date,Description,Amount",
			wantSchema: Schema{},
			wantLines:  []string{"13-06-2018,Monthly fee,-50.00"},
		},
		{
			name:       "full schema",
			raw:        "Date,Description,Payee,Amount,Category\n13-06-2018,Coffee,Starbucks,-4.50,Food\n",
			wantHeader: "Date,Description,Payee,Amount,Category",
			wantSchema: Schema{HasPayee: true, HasCategory: true},
			wantLines:  []string{"13-06-2018,Coffee,Starbucks,-4.50,Food"},
		},
		{
			name:       "leading commentary",
			raw:        "Here are the transactions I found:\n\nDate,Description,Amount\n13-06-2018,Fee,-50.00\n",
			wantHeader: "Date,Description,Amount",
			wantSchema: Schema{},
			wantLines:  []string{"13-06-2018,Fee,-50.00"},
		},
		{
			name:       "csv code fence",
			raw:        "Sure!\n```csv\nDate,Description,Amount\n13-06-2018,Fee,-50.00\n```\nLet me know if you need more.",
			wantHeader: "Date,Description,Amount",
			wantSchema: Schema{},
			wantLines:  []string{"13-06-2018,Fee,-50.00"},
		},
		{
			name:       "plain code fence",
			raw:        "```\nDate,Description,Amount\n13-06-2018,Fee,-50.00\n```",
			wantHeader: "Date,Description,Amount",
			wantSchema: Schema{},
			wantLines:  []string{"13-06-2018,Fee,-50.00"},
		},
		{
			name:       "lowercase header",
			raw:        "date,description,amount\n13-06-2018,Fee,-50.00\n",
			wantHeader: "date,description,amount",
			wantSchema: Schema{},
			wantLines:  []string{"13-06-2018,Fee,-50.00"},
		},
		{
			// Detection needs the literal date/description/amount substrings;
			// synonym resolution happens later, at parse time, so the header
			// must survive verbatim.
			name:       "synonym header kept verbatim",
			raw:        "Posting Date,Description,Payee,Amount\n13-06-2018,Fee,Bank,-50.00\n",
			wantHeader: "Posting Date,Description,Payee,Amount",
			wantSchema: Schema{HasPayee: true},
			wantLines:  []string{"13-06-2018,Fee,Bank,-50.00"},
		},
		{
			name:       "blank lines and comments skipped",
			raw:        "Date,Description,Amount\n\n# a comment\n// another\n13-06-2018,Fee,-50.00\n\n",
			wantHeader: "Date,Description,Amount",
			wantSchema: Schema{},
			wantLines:  []string{"13-06-2018,Fee,-50.00"},
		},
		{
			name:       "header only",
			raw:        "Date,Description,Amount\n",
			wantHeader: "Date,Description,Amount",
			wantSchema: Schema{},
			wantLines:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Extract(tt.raw)
			if err != nil {
				t.Fatalf("Extract returned error: %v", err)
			}
			if table.Header != tt.wantHeader {
				t.Errorf("Header = %q, want %q", table.Header, tt.wantHeader)
			}
			if table.Schema != tt.wantSchema {
				t.Errorf("Schema = %+v, want %+v", table.Schema, tt.wantSchema)
			}
			if len(table.DataLines) != len(tt.wantLines) {
				t.Fatalf("DataLines = %q, want %q", table.DataLines, tt.wantLines)
			}
			for i := range tt.wantLines {
				if table.DataLines[i] != tt.wantLines[i] {
					t.Errorf("DataLines[%d] = %q, want %q", i, table.DataLines[i], tt.wantLines[i])
				}
			}
		})
	}
}

func TestExtract_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace only", raw: "  \n\t\n"},
		{name: "no header line", raw: "I could not find any transactions in this document."},
		{name: "partial header", raw: "Date,Amount\n13-06-2018,-50.00\n"},
		{
			// Detection is substring-based, not synonym-aware; a header
			// spelled entirely in synonyms is not recognized.
			name: "pure synonym header",
			raw:  "Transaction Date,Details,Merchant,Total\n13-06-2018,Fee,Bank,-50.00\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.raw)
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("Extract(%q) error = %v, want ErrMalformedInput", tt.raw, err)
			}
		})
	}
}

func TestSchema(t *testing.T) {
	tests := []struct {
		name       string
		schema     Schema
		wantCols   int
		wantFields []string
	}{
		{
			name:       "required only",
			schema:     Schema{},
			wantCols:   3,
			wantFields: []string{"Date", "Description", "Amount"},
		},
		{
			name:       "with payee",
			schema:     Schema{HasPayee: true},
			wantCols:   4,
			wantFields: []string{"Date", "Description", "Payee", "Amount"},
		},
		{
			name:       "with category",
			schema:     Schema{HasCategory: true},
			wantCols:   4,
			wantFields: []string{"Date", "Description", "Amount", "Category"},
		},
		{
			name:       "full",
			schema:     Schema{HasPayee: true, HasCategory: true},
			wantCols:   5,
			wantFields: []string{"Date", "Description", "Payee", "Amount", "Category"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.schema.Columns(); got != tt.wantCols {
				t.Errorf("Columns() = %d, want %d", got, tt.wantCols)
			}
			fields := tt.schema.Fields()
			if len(fields) != len(tt.wantFields) {
				t.Fatalf("Fields() = %v, want %v", fields, tt.wantFields)
			}
			for i := range fields {
				if fields[i] != tt.wantFields[i] {
					t.Errorf("Fields()[%d] = %q, want %q", i, fields[i], tt.wantFields[i])
				}
			}
		})
	}
}
