// Package common provides shared CSV read/write helpers built on gocsv.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"bankdash/internal/config"
	"bankdash/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

// Use the centralized logger from config package
var log = config.Logger

// Delimiter is the field separator used for all CSV input and output.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV input and output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TRow is the struct type whose csv tags map to the file's columns.
func ReadCSVFile[TRow any](filePath string) ([]TRow, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter

	var rows []TRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("parsing CSV file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  filePath,
		"count": len(rows),
	}).Debug("Read CSV data")
	return rows, nil
}

// WriteCSVFile writes a slice of structs to a CSV file using gocsv,
// creating the parent directory when needed.
func WriteCSVFile[TRow any](rows []TRow, filePath string) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  filePath,
		"count": len(rows),
	}).Debug("Wrote CSV data")
	return nil
}
