package models

// Categories
const (
	// CategoryUncategorised is the reserved fallback category. It always
	// exists in a ruleset, is never deleted, and its keyword list is
	// ignored during matching.
	CategoryUncategorised = "Uncategorised"
)

// Export column headers
const (
	ColumnDate      = "Date"
	ColumnNarrative = "Narrative"
	ColumnDebit     = "Debit Amount"
	ColumnCredit    = "Credit Amount"
	ColumnCategory  = "Category"
)

// File permissions
const (
	PermissionRulesFile  = 0600
	PermissionDirectory  = 0750
	PermissionExportFile = 0644
)
