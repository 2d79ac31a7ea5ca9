// Package tabular recovers a delimited transaction table from the raw text
// returned by the extraction model. The text may carry commentary, markdown
// code fences, synonym headers and rows with unquoted embedded commas; this
// package strips the noise, repairs what it can, and parses the rest into raw
// field records. Repair is a line-local heuristic: it never inspects
// neighboring lines and offers no guarantee when several fields contain
// commas independently.
package tabular

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Canonical column names, in boundary output order.
const (
	FieldDate        = "Date"
	FieldDescription = "Description"
	FieldPayee       = "Payee"
	FieldAmount      = "Amount"
	FieldCategory    = "Category"
)

// RawRecord maps canonical field names to the string extracted from one data
// line, before any validation. Optional fields may be absent.
type RawRecord map[string]string

// ErrMalformedInput marks input with no recognizable table at all. It is
// fatal to the whole batch; everything else is row-scoped.
var ErrMalformedInput = errors.New("malformed input")

// Schema describes which optional columns the located header carries.
type Schema struct {
	HasPayee    bool
	HasCategory bool
}

// Columns is the expected field count for a data line under this schema.
func (s Schema) Columns() int {
	n := 3
	if s.HasPayee {
		n++
	}
	if s.HasCategory {
		n++
	}
	return n
}

// Fields lists the canonical column names in output order.
func (s Schema) Fields() []string {
	fields := []string{FieldDate, FieldDescription}
	if s.HasPayee {
		fields = append(fields, FieldPayee)
	}
	fields = append(fields, FieldAmount)
	if s.HasCategory {
		fields = append(fields, FieldCategory)
	}
	return fields
}

// Table is the structural extraction result: the header line verbatim (so
// synonym column names survive into parsing) plus the data lines below it.
type Table struct {
	Header    string
	Schema    Schema
	DataLines []string
}

// fencedBlock matches a single ```csv ... ``` (or plain ```) wrapper.
var fencedBlock = regexp.MustCompile("(?s)```(?:csv)?[ \t]*\n(.*?)\n[ \t]*```")

// Extract locates the transaction table in raw model output. The model is
// told not to use markdown, but it sometimes does anyway, so a single fenced
// code block replaces the full input if present. Header detection is
// case-insensitive: upstream casing is not reliable.
func Extract(raw string) (*Table, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedInput)
	}

	if m := fencedBlock.FindStringSubmatch(raw); m != nil {
		raw = m[1]
	}

	lines := strings.Split(raw, "\n")
	headerIdx := -1
	for i, line := range lines {
		if isHeaderLine(line) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, fmt.Errorf("%w: no header line found", ErrMalformedInput)
	}

	header := strings.TrimSpace(lines[headerIdx])
	table := &Table{
		Header: header,
		Schema: detectSchema(header),
	}

	for _, line := range lines[headerIdx+1:] {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		table.DataLines = append(table.DataLines, line)
	}

	return table, nil
}

// isHeaderLine reports whether the line names all three required columns.
func isHeaderLine(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "date") &&
		strings.Contains(lower, "description") &&
		strings.Contains(lower, "amount")
}

// detectSchema infers the optional columns from the header text.
func detectSchema(header string) Schema {
	lower := strings.ToLower(header)
	return Schema{
		HasPayee:    strings.Contains(lower, "payee"),
		HasCategory: strings.Contains(lower, "category"),
	}
}
