package pipeline

import (
	"fmt"

	"github.com/dvloznov/bill2csv/internal/normalize"
	"github.com/dvloznov/bill2csv/internal/tabular"
)

// requiredFields are checked in this order; the failure names the first one
// missing.
var requiredFields = []string{tabular.FieldDate, tabular.FieldDescription, tabular.FieldAmount}

// ValidateRow normalizes one raw record. It returns the normalized record or
// a reason string prefixed with the originating field. Payee and Category are
// normalized only when their key is present in the input; both always succeed.
func ValidateRow(raw tabular.RawRecord, categories normalize.CategoryTable) (NormalizedRecord, string) {
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return NormalizedRecord{}, fmt.Sprintf("Missing field: %s", field)
		}
	}

	var rec NormalizedRecord
	var err error

	if rec.Date, err = normalize.Date(raw[tabular.FieldDate]); err != nil {
		return NormalizedRecord{}, fmt.Sprintf("Date error: %v", err)
	}
	if rec.Description, err = normalize.Description(raw[tabular.FieldDescription]); err != nil {
		return NormalizedRecord{}, fmt.Sprintf("Description error: %v", err)
	}
	if rec.Amount, err = normalize.Amount(raw[tabular.FieldAmount]); err != nil {
		return NormalizedRecord{}, fmt.Sprintf("Amount error: %v", err)
	}

	if payee, ok := raw[tabular.FieldPayee]; ok {
		rec.Payee = normalize.Payee(payee)
	}
	if category, ok := raw[tabular.FieldCategory]; ok {
		rec.Category = normalize.Category(category, categories)
	}

	return rec, ""
}
