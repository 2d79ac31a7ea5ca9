package pipeline

import (
	"github.com/dvloznov/bill2csv/internal/normalize"
	"github.com/dvloznov/bill2csv/internal/tabular"
)

// Step is a single stage of the batch pipeline.
type Step interface {
	Execute(state *BatchState) error
}

// BatchState holds the shared state across all pipeline steps.
type BatchState struct {
	RawText    string
	Categories normalize.CategoryTable

	Table   *tabular.Table
	Records []tabular.RawRecord
	Result  *Result
}

// ExtractTableStep strips narrative text and code fences and locates the
// header and data lines.
type ExtractTableStep struct{}

func (s *ExtractTableStep) Execute(state *BatchState) error {
	table, err := tabular.Extract(state.RawText)
	if err != nil {
		return err
	}
	state.Table = table
	state.Result.Schema = table.Schema
	return nil
}

// RepairRowsStep re-quotes data lines whose field count disagrees with the
// schema. Line-local; lines it cannot place pass through untouched.
type RepairRowsStep struct{}

func (s *RepairRowsStep) Execute(state *BatchState) error {
	for i, line := range state.Table.DataLines {
		state.Table.DataLines[i] = tabular.RepairLine(line, state.Table.Schema)
	}
	return nil
}

// ParseRecordsStep parses the repaired lines into raw field records, mapping
// synonym header names onto canonical columns.
type ParseRecordsStep struct{}

func (s *ParseRecordsStep) Execute(state *BatchState) error {
	records, dropped, err := tabular.ParseRecords(state.Table)
	if err != nil {
		return err
	}
	state.Records = records
	state.Result.Dropped = dropped
	return nil
}

// ValidateRowsStep runs the field normalizers over every record and
// partitions the batch into valid and invalid sets. Row failures never abort
// the batch.
type ValidateRowsStep struct{}

func (s *ValidateRowsStep) Execute(state *BatchState) error {
	for i, raw := range state.Records {
		rec, reason := ValidateRow(raw, state.Categories)
		if reason != "" {
			state.Result.Invalid = append(state.Result.Invalid, InvalidRecord{
				// Header is display row 1, first data row is 2.
				Row:    i + 2,
				Reason: reason,
				Raw:    raw,
			})
			continue
		}
		state.Result.Records = append(state.Result.Records, rec)
	}
	return nil
}
