// Package reconcile commits parsed registrations to the append-only
// ledger spreadsheet exactly once.
//
// A cycle runs three steps:
//
//  1. Fetch: a single range read captures the registration ids already
//     committed and the number of rows in use.
//  2. Diff: registrations whose id is already committed, or that already
//     appeared earlier in the same batch, drop out; batch order is
//     preserved.
//  3. Apply: each remaining registration has its rows appended at the
//     next free row and its notification sent before the next one is
//     touched, so an interruption affects at most the registration in
//     flight.
//
// The ledger must be a spreadsheet with exactly one sheet; anything else
// is a configuration mistake reported as ShapeError before any read.
//
// # Row codec
//
// A registration spans one row per child across columns A through N. The
// shared fields (id, submission time, both parents, membership flag) are
// written on the first row only; continuation rows carry just the child
// columns. Data starts on row 3 below two header rows, which Apply writes
// itself when the sheet is still empty. The id column tolerates operator
// reformatting: every non-digit is ignored when ids are read back.
package reconcile
