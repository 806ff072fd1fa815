// Package sheets provides an abstraction layer for Google Sheets access.
//
// It wraps the Google Sheets API client to provide a simplified interface for
// the three operations the application needs: enumerating sheet tabs, reading
// cell ranges, and writing rows at an explicit offset. Both the registration
// ledger and spreadsheet-backed form input go through this package.
//
// # Client Interface
//
// The Client interface abstracts the underlying API, making it easier to mock
// spreadsheet interactions for unit testing (as seen in core/sheets/mocks).
//
// # Operations
//
//   - ListSheetTitles: Enumerates sheet tabs in document order.
//   - ReadRange: Reads a cell range from one sheet as raw values.
//   - AppendRows: Writes rows starting at an explicit 1-based row offset.
//
// Writes always use the RAW value input option so ids, phone numbers and dates
// survive round trips without the backend reformatting them.
//
// # Usage
//
//	client, err := sheets.NewClient(ctx, config)
//	rows, err := client.ReadRange(ctx, ledgerID, "registrations", "A1:N")
package sheets
