package pipeline

import "github.com/dvloznov/bill2csv/internal/tabular"

// NormalizedRecord is one validated transaction with canonical field formats:
// Date always DD-MM-YYYY, Amount a plain signed decimal, Description a
// non-empty single line. Payee and Category are empty when their column is
// absent from the source table.
type NormalizedRecord struct {
	Date        string
	Description string
	Payee       string
	Amount      string
	Category    string
}

// Field returns the record value for a canonical column name.
func (r NormalizedRecord) Field(name string) string {
	switch name {
	case tabular.FieldDate:
		return r.Date
	case tabular.FieldDescription:
		return r.Description
	case tabular.FieldPayee:
		return r.Payee
	case tabular.FieldAmount:
		return r.Amount
	case tabular.FieldCategory:
		return r.Category
	}
	return ""
}

// InvalidRecord is a row that failed validation, kept with its original raw
// fields for diagnostics. Row is the 1-based display index in the extracted
// table, offset so the header counts as row 1.
type InvalidRecord struct {
	Row    int
	Reason string
	Raw    tabular.RawRecord
}

// Result is the outcome of processing one batch of raw model output.
type Result struct {
	Records []NormalizedRecord
	Invalid []InvalidRecord
	Schema  tabular.Schema
	// Dropped counts data lines that could not be delimited-parsed at all
	// (unbalanced quotes). They are not individually reported.
	Dropped int
}
