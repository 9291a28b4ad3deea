// Package importer parses vocabulary files (CSV and XLSX) into words ready
// for the catalog service.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/daylex/daylex/internal/domain"
)

// Expected column order: term, translation, pronunciation, example, tags,
// difficulty. Only term and translation are required.
const (
	colTerm = iota
	colTranslation
	colPronunciation
	colExample
	colTags
	colDifficulty
)

// ParseResult carries the parsed words and the per-row failures. Parsing is
// forgiving: a bad row is reported and skipped, never fatal.
type ParseResult struct {
	Words     []*domain.Word
	TotalRows int
	Errors    []string
}

// Config controls file parsing.
type Config struct {
	// SheetName is the XLSX sheet to read. Empty means the first sheet.
	SheetName string

	// SkipHeader drops the first row.
	SkipHeader bool
}

// ParseFile parses a vocabulary file, dispatching on its extension.
func ParseFile(path string, cfg Config) (*ParseResult, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCSV(path, cfg)
	case ".xlsx":
		return parseXLSX(path, cfg)
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

func parseCSV(path string, cfg Config) (*ParseResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	result := &ParseResult{}
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}

		rowNum++
		if cfg.SkipHeader && rowNum == 1 {
			continue
		}

		result.TotalRows++
		word, err := rowToWord(row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		result.Words = append(result.Words, word)
	}

	return result, nil
}

func parseXLSX(path string, cfg Config) (*ParseResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheet := cfg.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	result := &ParseResult{}
	for i, row := range rows {
		if cfg.SkipHeader && i == 0 {
			continue
		}

		result.TotalRows++
		word, err := rowToWord(row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.Words = append(result.Words, word)
	}

	return result, nil
}

func rowToWord(row []string) (*domain.Word, error) {
	term := cell(row, colTerm)
	translation := cell(row, colTranslation)

	word, err := domain.NewWord(term, translation)
	if err != nil {
		return nil, err
	}

	word.Pronunciation = cell(row, colPronunciation)
	word.Example = cell(row, colExample)

	if raw := cell(row, colTags); raw != "" {
		for _, tag := range strings.Split(raw, ";") {
			if tag = strings.TrimSpace(tag); tag != "" {
				word.Tags = append(word.Tags, tag)
			}
		}
	}

	if raw := cell(row, colDifficulty); raw != "" {
		difficulty, err := strconv.Atoi(raw)
		if err != nil || difficulty < 1 || difficulty > 5 {
			return nil, fmt.Errorf("invalid difficulty %q", raw)
		}
		word.Difficulty = difficulty
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}

	return word, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
