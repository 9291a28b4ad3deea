// Package main implements the daylex importer, a CLI for loading vocabulary
// files into the catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/daylex/daylex/internal/config"
	"github.com/daylex/daylex/internal/domain/srs"
	"github.com/daylex/daylex/internal/importer"
	"github.com/daylex/daylex/internal/platform/logger"
	"github.com/daylex/daylex/internal/platform/sqlite"
	"github.com/daylex/daylex/internal/service/vocab"
)

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
}

func run() error {
	var (
		filePath   = flag.String("file", "", "vocabulary file to import (.csv or .xlsx)")
		mode       = flag.String("mode", string(vocab.ImportModeNewOnly), "import mode: new-only or update")
		sheetName  = flag.String("sheet", "", "XLSX sheet name (default: first sheet)")
		skipHeader = flag.Bool("skip-header", true, "treat the first row as a header")
	)
	flag.Parse()

	if *filePath == "" {
		flag.Usage()
		return fmt.Errorf("the -file flag is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	result, err := importer.ParseFile(*filePath, importer.Config{
		SheetName:  *sheetName,
		SkipHeader: *skipHeader,
	})
	if err != nil {
		return err
	}

	for _, parseErr := range result.Errors {
		appLogger.Warn("skipped row", slog.String("reason", parseErr))
	}
	if len(result.Words) == 0 {
		return fmt.Errorf("no importable words in %s (%d rows, %d errors)",
			*filePath, result.TotalRows, len(result.Errors))
	}

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := sqlite.Migrate(db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("error closing database connection", "error", err)
		}
	}()

	wordStore := sqlite.NewSQLiteWordStore(db, appLogger)
	srsService := srs.NewServiceWithParams(srs.NewParams(cfg.SRS.ToParamsConfig()))
	vocabService := vocab.NewService(db, wordStore, srsService, appLogger)

	summary, err := vocabService.ImportWordsWithMode(
		context.Background(),
		result.Words,
		vocab.ImportMode(*mode),
	)
	if err != nil {
		return err
	}

	appLogger.Info("import finished",
		slog.String("file", *filePath),
		slog.Int("rows", result.TotalRows),
		slog.Int("created", summary.Created),
		slog.Int("updated", summary.Updated),
		slog.Int("skipped", summary.Skipped),
		slog.Int("parse_errors", len(result.Errors)))

	fmt.Fprintf(os.Stdout, "Imported %d words (%d updated, %d skipped, %d parse errors)\n",
		summary.Created, summary.Updated, summary.Skipped, len(result.Errors))

	return nil
}
