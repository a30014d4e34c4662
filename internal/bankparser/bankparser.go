// Package bankparser loads bank transaction exports from delimited text
// files and writes categorized transactions back out.
package bankparser

import (
	"fmt"

	"bankdash/internal/common"
	"bankdash/internal/config"
	"bankdash/internal/dateutils"
	"bankdash/internal/models"

	"github.com/sirupsen/logrus"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// csvRow mirrors the columns of the bank's transaction export.
type csvRow struct {
	Date      string `csv:"Date"`
	Narrative string `csv:"Narrative"`
	Debit     string `csv:"Debit Amount"`
	Credit    string `csv:"Credit Amount"`
}

// outputRow is the categorized export written back out. The source
// export itself is never modified.
type outputRow struct {
	Date      string `csv:"Date"`
	Narrative string `csv:"Narrative"`
	Debit     string `csv:"Debit Amount"`
	Credit    string `csv:"Credit Amount"`
	Category  string `csv:"Category"`
}

// ParseFile reads a transaction export and returns its records in file
// order. Malformed fields degrade instead of failing the batch: an
// unparsable date becomes a nil date and a non-numeric amount becomes
// zero. Every transaction starts with the Uncategorised label.
func ParseFile(filePath string) ([]models.Transaction, error) {
	rows, err := common.ReadCSVFile[csvRow](filePath)
	if err != nil {
		return nil, fmt.Errorf("loading transaction export: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		tx := models.Transaction{
			Narrative: row.Narrative,
			Debit:     models.ParseAmount(row.Debit),
			Credit:    models.ParseAmount(row.Credit),
			Category:  models.CategoryUncategorised,
		}
		if date, err := dateutils.ParseDate(row.Date); err == nil {
			tx.Date = &date
		}
		transactions = append(transactions, tx)
	}

	log.WithFields(logrus.Fields{
		"file":  filePath,
		"count": len(transactions),
	}).Info("Loaded transactions from export")
	return transactions, nil
}

// WriteFile writes categorized transactions to a new CSV file with a
// Category column appended to the export's columns.
func WriteFile(transactions []models.Transaction, filePath string) error {
	rows := make([]outputRow, 0, len(transactions))
	for _, tx := range transactions {
		row := outputRow{
			Narrative: tx.Narrative,
			Debit:     tx.Debit.StringFixed(2),
			Credit:    tx.Credit.StringFixed(2),
			Category:  tx.Category,
		}
		if tx.Date != nil {
			row.Date = dateutils.FormatExportDate(*tx.Date)
		}
		rows = append(rows, row)
	}

	if err := common.WriteCSVFile(rows, filePath); err != nil {
		return fmt.Errorf("writing categorized export: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  filePath,
		"count": len(rows),
	}).Info("Wrote categorized transactions")
	return nil
}
