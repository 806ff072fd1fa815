// Package registration processes the school transport registration forms
// end to end.
//
// A cycle reads the localized form responses from a source, maps every
// row to a validated Registration, reconciles the batch against the
// append-only ledger spreadsheet and, for each newly committed
// registration, emails the family a localized confirmation. An optional
// map export geocodes the family homes into a KML file for route
// planning.
//
// # Components
//
//   - Source: form input, either a CSV export or the form spreadsheet
//     with one sheet per locale.
//   - Service: runs one ingest, reconcile, notify, export cycle and
//     keeps a report of it for the ops endpoints.
//   - Notifier: renders and sends the per-locale confirmation emails.
//   - Exporter: geocodes family homes and writes the KML map.
//   - Runner: repeats cycles with an idle wait, retrying after transient
//     remote failures.
//
// The heavy lifting is delegated to feature/registration/form (row
// mapping), feature/registration/models (validation) and
// feature/registration/reconcile (ledger protocol).
package registration
