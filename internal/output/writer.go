// Package output writes the results of one run next to the source PDF (or
// into a chosen directory): <stem>.csv with the valid rows, <stem>.errors.csv
// with the rejected ones, and an optional <stem>.meta.json run summary.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"github.com/dvloznov/bill2csv/internal/pipeline"
)

// Writer manages the output files for a single source PDF.
type Writer struct {
	PDFPath    string
	CSVPath    string
	ErrorsPath string
	MetaPath   string
}

// NewWriter derives the output paths from the source PDF and output
// directory, creating the directory if needed.
func NewWriter(pdfPath, outDir string) (*Writer, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("output: creating %s: %w", outDir, err)
	}
	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	return &Writer{
		PDFPath:    pdfPath,
		CSVPath:    filepath.Join(outDir, stem+".csv"),
		ErrorsPath: filepath.Join(outDir, stem+".errors.csv"),
		MetaPath:   filepath.Join(outDir, stem+".meta.json"),
	}, nil
}

// WriteCSV writes the valid rows. Column order is the boundary contract:
// Date, Description, [Payee], Amount, [Category]. Fields come out of the
// normalizers already CSV-quoted where needed, so lines are joined verbatim
// rather than re-escaped.
func (w *Writer) WriteCSV(result *pipeline.Result) error {
	fields := result.Schema.Fields()

	var b strings.Builder
	b.WriteString(strings.Join(fields, ","))
	b.WriteByte('\n')
	for _, rec := range result.Records {
		values := make([]string, len(fields))
		for i, name := range fields {
			values[i] = rec.Field(name)
		}
		b.WriteString(strings.Join(values, ","))
		b.WriteByte('\n')
	}

	if err := os.WriteFile(w.CSVPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("output: writing %s: %w", w.CSVPath, err)
	}
	return nil
}

// WriteErrors writes the rejected rows with their display row index, reason,
// and original raw fields. No file is written when every row validated.
func (w *Writer) WriteErrors(result *pipeline.Result) error {
	if len(result.Invalid) == 0 {
		return nil
	}

	f, err := os.Create(w.ErrorsPath)
	if err != nil {
		return fmt.Errorf("output: creating %s: %w", w.ErrorsPath, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"row", "reason", "raw"}); err != nil {
		return fmt.Errorf("output: writing %s: %w", w.ErrorsPath, err)
	}
	for _, inv := range result.Invalid {
		raw := make([]string, 0, len(result.Schema.Fields()))
		for _, name := range result.Schema.Fields() {
			raw = append(raw, inv.Raw[name])
		}
		row := []string{fmt.Sprint(inv.Row), inv.Reason, strings.Join(raw, ",")}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("output: writing %s: %w", w.ErrorsPath, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Metadata is the run summary written as <stem>.meta.json.
type Metadata struct {
	SourceFile string    `json:"source_file"`
	Model      string    `json:"model"`
	RunID      string    `json:"run_id"`
	Timestamp  time.Time `json:"timestamp"`
	Pages      int       `json:"pages"`
	Rows       int       `json:"rows"`
	Errors     int       `json:"errors"`
}

// WriteMeta writes the run summary. The page count is read from the source
// PDF; an unreadable PDF reports zero pages rather than failing the run.
func (w *Writer) WriteMeta(model string, result *pipeline.Result) error {
	meta := Metadata{
		SourceFile: filepath.Base(w.PDFPath),
		Model:      model,
		RunID:      uuid.NewString(),
		Timestamp:  time.Now(),
		Pages:      pageCount(w.PDFPath),
		Rows:       len(result.Records),
		Errors:     len(result.Invalid),
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("output: marshaling metadata: %w", err)
	}
	if err := os.WriteFile(w.MetaPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("output: writing %s: %w", w.MetaPath, err)
	}
	return nil
}

func pageCount(path string) int {
	f, r, err := pdf.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()
	return r.NumPage()
}
