// Package report aggregates categorized transactions into per-category totals.
package report

import (
	"sort"

	"bankdash/internal/config"
	"bankdash/internal/models"

	"github.com/shopspring/decimal"
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

// CategoryTotal is the summed amount for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Options controls summary output.
type Options struct {
	// SkipZeroTotals drops categories whose summed amount is zero.
	// Whether zero-total categories belong in a summary is a display
	// choice, so it is explicit here; by default every category that
	// appears on at least one transaction is included.
	SkipZeroTotals bool
}

// Summarize groups transactions by category and sums their debit
// amounts. The result is sorted by total descending, with ties broken
// by category name ascending so the output is deterministic.
func Summarize(transactions []models.Transaction, opts Options) []CategoryTotal {
	return summarize(transactions, opts, func(t models.Transaction) decimal.Decimal {
		return t.Debit
	})
}

// SummarizeCredits is Summarize over credit amounts, for the incoming
// side of an export. Same ordering rules.
func SummarizeCredits(transactions []models.Transaction, opts Options) []CategoryTotal {
	return summarize(transactions, opts, func(t models.Transaction) decimal.Decimal {
		return t.Credit
	})
}

func summarize(transactions []models.Transaction, opts Options, amount func(models.Transaction) decimal.Decimal) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		category := tx.Category
		if category == "" {
			category = models.CategoryUncategorised
		}
		totals[category] = totals[category].Add(amount(tx))
	}

	result := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		if opts.SkipZeroTotals && total.IsZero() {
			continue
		}
		result = append(result, CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		return result[i].Category < result[j].Category
	})

	log.WithFields(logrus.Fields{
		"transactions": len(transactions),
		"categories":   len(result),
	}).Debug("Summarized transactions")

	return result
}
