// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single record of a bank transaction export.
// Date is nil when the export value could not be parsed. Exactly one of
// Debit/Credit is nonzero in well-formed exports, but nothing enforces
// that here; malformed records carry whatever survived coercion.
type Transaction struct {
	Date      *time.Time
	Narrative string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Category  string
}

// IsDebit returns true if the transaction moves money out of the account.
func (t *Transaction) IsDebit() bool {
	return t.Debit.IsPositive()
}

// IsCredit returns true if the transaction moves money into the account.
func (t *Transaction) IsCredit() bool {
	return t.Credit.IsPositive()
}

// ParseAmount converts an export amount field to a decimal value.
// Currency symbols, surrounding whitespace, and thousands separators are
// stripped first. Anything that still fails to parse coerces to zero so
// a malformed record never aborts a load.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "$", "")
	amount = strings.ReplaceAll(amount, ",", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
