// Package dateutils provides date parsing and formatting for bank export fields.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants used throughout the application
const (
	// DateLayoutExport is the export's native DD/MM/YYYY format.
	DateLayoutExport = "02/01/2006"
	DateLayoutISO    = "2006-01-02"
)

// ExportFormats is the list of formats tried when parsing export dates,
// most likely first. The ambiguous US MM/DD/YYYY layout is deliberately
// absent; the export is DD/MM/YYYY.
var ExportFormats = []string{
	DateLayoutExport,
	DateLayoutISO,
	"02.01.2006",
	"02-01-2006",
	"2006/01/02",
	"2-Jan-2006",
}

// ParseDate attempts to parse a date string using the export formats.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, format := range ExportFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatExportDate renders a date in the export's native DD/MM/YYYY format.
func FormatExportDate(date time.Time) string {
	return date.Format(DateLayoutExport)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}
