// Package pipeline turns raw extraction-model output into validated,
// normalized transaction records. Processing is single-threaded and strictly
// input-ordered; the only batch-fatal condition is tabular.ErrMalformedInput,
// everything row-scoped is collected into the result instead.
package pipeline

import (
	"fmt"

	"github.com/dvloznov/bill2csv/internal/normalize"
)

// Pipeline executes a sequence of steps in order.
type Pipeline struct {
	steps []Step
}

// NewPipeline creates a pipeline with the given steps.
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Execute runs all steps sequentially, stopping at the first failure.
func (p *Pipeline) Execute(state *BatchState) error {
	for i, step := range p.steps {
		if err := step.Execute(state); err != nil {
			return fmt.Errorf("pipeline step %d: %w", i+1, err)
		}
	}
	return nil
}

// NewBatchPipeline creates the standard extract → repair → parse → validate
// pipeline for one batch of raw model output.
func NewBatchPipeline() *Pipeline {
	return NewPipeline(
		&ExtractTableStep{},
		&RepairRowsStep{},
		&ParseRecordsStep{},
		&ValidateRowsStep{},
	)
}

// Process runs the standard batch pipeline over raw model output and returns
// the partitioned result. categories is passed explicitly so callers own the
// taxonomy lifecycle and tests stay hermetic.
func Process(raw string, categories normalize.CategoryTable) (*Result, error) {
	state := &BatchState{
		RawText:    raw,
		Categories: categories,
		Result:     &Result{},
	}
	if err := NewBatchPipeline().Execute(state); err != nil {
		return nil, err
	}
	return state.Result, nil
}
