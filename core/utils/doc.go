// Package utils provides common utility functions for the registration
// manager. It holds the spreadsheet cell coercion helpers shared by the row
// sources and the ledger reconciliation, and other logic that doesn't fit
// into domain-specific packages.
package utils
