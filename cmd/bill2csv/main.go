// Command bill2csv converts a PDF bill into a normalized transaction CSV
// using the Gemini API for table extraction.
//
// Usage:
//
//	bill2csv [flags] <bill.pdf>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dvloznov/bill2csv/internal/apikey"
	"github.com/dvloznov/bill2csv/internal/config"
	"github.com/dvloznov/bill2csv/internal/gemini"
	"github.com/dvloznov/bill2csv/internal/logger"
	"github.com/dvloznov/bill2csv/internal/output"
	"github.com/dvloznov/bill2csv/internal/pipeline"
	"github.com/dvloznov/bill2csv/internal/taxonomy"
)

type options struct {
	outDir          string
	meta            bool
	quiet           bool
	strict          bool
	preview         bool
	debug           bool
	model           string
	categoriesFile  string
	apiKeyEnv       string
	keychainService string
	keychainAccount string
}

func main() {
	os.Exit(run())
}

func run() int {
	var opts options
	flag.StringVar(&opts.outDir, "outdir", "", "output directory (default: same as input file)")
	flag.BoolVar(&opts.meta, "meta", false, "write a metadata JSON file")
	flag.BoolVar(&opts.quiet, "quiet", false, "suppress progress logs (errors still shown)")
	flag.BoolVar(&opts.strict, "strict", false, "fail if any row is invalid instead of writing .errors.csv")
	flag.BoolVar(&opts.preview, "preview", false, "print the normalized records as a table on stdout")
	flag.BoolVar(&opts.debug, "debug", false, "dump the raw model response next to the output CSV")
	flag.StringVar(&opts.model, "model", "", "model name (default from config)")
	flag.StringVar(&opts.categoriesFile, "categories-file", "", "path to a category taxonomy document")
	flag.StringVar(&opts.apiKeyEnv, "api-key-env", apikey.DefaultEnvVar, "environment variable holding the API key")
	flag.StringVar(&opts.keychainService, "keychain-service", "", "macOS Keychain service name")
	flag.StringVar(&opts.keychainAccount, "keychain-account", "", "macOS Keychain account name")
	flag.Usage = usage
	flag.Parse()

	log := logger.New(opts.quiet)

	if flag.NArg() != 1 {
		usage()
		return 1
	}
	pdfPath := flag.Arg(0)

	if err := validateArgs(&opts, pdfPath); err != nil {
		log.Error().Err(err).Msg("Invalid arguments")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	if err := process(ctx, log, &opts, pdfPath); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "\nOperation cancelled by user")
			return 130
		}
		log.Error().Err(err).Msg("Run failed")
		return 1
	}
	return 0
}

func process(ctx context.Context, log zerolog.Logger, opts *options, pdfPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.model != "" {
		cfg.Model = opts.model
	}

	loader := &taxonomy.Loader{}
	if opts.categoriesFile != "" {
		loader.SetPath(opts.categoriesFile)
	}
	tax := loader.Load()
	log.Info().Str("source", tax.Source()).Int("entries", tax.Len()).Msg("Category taxonomy loaded")

	key, err := apikey.Resolve(log, opts.apiKeyEnv, opts.keychainService, opts.keychainAccount)
	if err != nil {
		return err
	}

	pdfBytes, err := os.ReadFile(pdfPath)
	if err != nil {
		return fmt.Errorf("reading PDF: %w", err)
	}
	log.Info().Str("file", filepath.Base(pdfPath)).Int("bytes", len(pdfBytes)).Msg("Sending PDF to Gemini API")

	extractor := gemini.NewClient(cfg, key, tax.Document())
	raw, err := extractor.ExtractTable(ctx, pdfBytes)
	if err != nil {
		return err
	}

	if opts.debug {
		dumpRawResponse(log, opts.outDir, pdfPath, raw)
	}

	result, err := pipeline.Process(raw, tax)
	if err != nil {
		return err
	}
	log.Info().
		Int("valid", len(result.Records)).
		Int("invalid", len(result.Invalid)).
		Int("dropped", result.Dropped).
		Msg("Batch processed")

	if opts.strict && len(result.Invalid) > 0 {
		for i, inv := range result.Invalid {
			if i == 5 {
				log.Error().Msgf("... and %d more invalid rows", len(result.Invalid)-5)
				break
			}
			log.Error().Int("row", inv.Row).Str("reason", inv.Reason).Msg("Invalid row")
		}
		return fmt.Errorf("validation failed in strict mode: %d invalid rows", len(result.Invalid))
	}

	writer, err := output.NewWriter(pdfPath, opts.outDir)
	if err != nil {
		return err
	}
	if err := writer.WriteCSV(result); err != nil {
		return err
	}
	if err := writer.WriteErrors(result); err != nil {
		return err
	}
	if len(result.Invalid) > 0 {
		log.Warn().Int("count", len(result.Invalid)).Str("file", writer.ErrorsPath).Msg("Invalid rows written")
	}
	if opts.meta {
		if err := writer.WriteMeta(cfg.Model, result); err != nil {
			return err
		}
		log.Info().Str("file", writer.MetaPath).Msg("Metadata written")
	}

	if opts.preview {
		output.Preview(os.Stdout, result)
	}

	log.Info().
		Str("source", filepath.Base(pdfPath)).
		Str("dest", filepath.Base(writer.CSVPath)).
		Int("rows", len(result.Records)).
		Int("errors", len(result.Invalid)).
		Msg("Done")
	return nil
}

func validateArgs(opts *options, pdfPath string) error {
	info, err := os.Stat(pdfPath)
	if err != nil {
		return fmt.Errorf("PDF file not found: %s", pdfPath)
	}
	if info.IsDir() {
		return fmt.Errorf("path is not a file: %s", pdfPath)
	}
	if !strings.EqualFold(filepath.Ext(pdfPath), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", pdfPath)
	}

	if (opts.keychainService == "") != (opts.keychainAccount == "") {
		return errors.New("-keychain-service and -keychain-account must be set together")
	}

	if opts.outDir == "" {
		opts.outDir = filepath.Dir(pdfPath)
	}
	return nil
}

// dumpRawResponse writes the unprocessed model output for offline analysis.
// Best effort: a failure here never fails the run.
func dumpRawResponse(log zerolog.Logger, outDir, pdfPath, raw string) {
	// The dump can run before the output writer creates the directory.
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Warn().Err(err).Msg("Could not write debug file")
		return
	}
	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	name := fmt.Sprintf("%s_llm_response_%s.txt", stem, time.Now().Format("20060102_150405"))
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		log.Warn().Err(err).Msg("Could not write debug file")
		return
	}
	log.Info().Str("file", path).Msg("Raw model response written")
}

func usage() {
	fmt.Fprintf(os.Stderr, `bill2csv - convert PDF bills to CSV using the Gemini API

Usage:
  bill2csv [flags] <bill.pdf>

Examples:
  bill2csv invoice.pdf
  bill2csv -outdir ./out -meta invoice.pdf
  bill2csv -keychain-service gemini-api -keychain-account bill2csv invoice.pdf

Flags:
`)
	flag.PrintDefaults()
}
