package tabular

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// headerSynonyms maps each canonical column to the header spellings that
// resolve to it, in priority order. Matching is case-insensitive; when two
// header cells resolve to the same canonical column, the first one wins.
var headerSynonyms = []struct {
	canonical string
	names     []string
}{
	{FieldDate, []string{"Date", "Transaction Date", "Posting Date"}},
	{FieldDescription, []string{"Description", "DESC", "Details", "Transaction"}},
	{FieldPayee, []string{"Payee", "Merchant", "Vendor", "Company"}},
	{FieldAmount, []string{"Amount", "AMT", "Total", "Value"}},
	{FieldCategory, []string{"Category", "CAT", "Type", "Classification"}},
}

// resolveColumn maps one header cell to its canonical column name, or "".
func resolveColumn(cell string) string {
	cell = strings.TrimSpace(cell)
	for _, entry := range headerSynonyms {
		for _, name := range entry.names {
			if strings.EqualFold(cell, name) {
				return entry.canonical
			}
		}
	}
	return ""
}

// ParseRecords turns the header plus repaired data lines into raw records.
// Each line is parsed independently with standard CSV quoting; a line that
// cannot be parsed (unbalanced quotes) is dropped and the batch continues —
// that is a documented limitation, not a per-row failure. The returned count
// reports how many lines were dropped.
func ParseRecords(table *Table) ([]RawRecord, int, error) {
	headerCells, err := splitStrict(table.Header)
	if err != nil {
		// The header passed detection but does not parse; treat the
		// whole table as unrecoverable.
		return nil, 0, fmt.Errorf("%w: unparseable header line", ErrMalformedInput)
	}

	columns := make([]string, len(headerCells))
	seen := make(map[string]bool)
	for i, cell := range headerCells {
		name := resolveColumn(cell)
		if name == "" || seen[name] {
			continue
		}
		columns[i] = name
		seen[name] = true
	}
	if !seen[FieldDate] || !seen[FieldDescription] || !seen[FieldAmount] {
		return nil, 0, fmt.Errorf("%w: header resolves no Date/Description/Amount columns", ErrMalformedInput)
	}

	var records []RawRecord
	dropped := 0
	for _, line := range table.DataLines {
		fields, err := splitStrict(line)
		if err != nil {
			dropped++
			continue
		}
		record := make(RawRecord, len(columns))
		for i, name := range columns {
			if name == "" || i >= len(fields) {
				continue
			}
			record[name] = fields[i]
		}
		records = append(records, record)
	}

	return records, dropped, nil
}

// splitStrict parses one line with standard CSV quoting rules.
func splitStrict(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	return r.Read()
}
