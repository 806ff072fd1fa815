package reconcile

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"registration-manager/core/sheets"
	"registration-manager/core/utils"
	"registration-manager/feature/registration/models"
)

// ShapeError reports a ledger spreadsheet whose tab layout is unusable.
// The ledger must consist of exactly one sheet.
type ShapeError struct {
	SpreadsheetID string
	Sheets        []string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("ledger %s must contain exactly one sheet, found %d (%s)",
		e.SpreadsheetID, len(e.Sheets), strings.Join(e.Sheets, ", "))
}

// State is the reconciliation snapshot of the ledger: which registrations
// are already committed and how many rows are occupied. It is refetched
// from scratch every cycle and never cached across cycles.
type State struct {
	Sheet    string
	IDs      map[models.RegistrationID]struct{}
	UsedRows int
}

// Contains reports whether the ledger already holds the registration.
func (s *State) Contains(id models.RegistrationID) bool {
	_, ok := s.IDs[id]
	return ok
}

// Fetch reads the ledger state in a single range read. The row count of
// the returned grid is the number of used rows, which keeps trailing
// continuation rows (blank id, populated child columns) counted.
func Fetch(ctx context.Context, client sheets.Client, spreadsheetID string) (*State, error) {
	titles, err := client.ListSheetTitles(ctx, spreadsheetID)
	if err != nil {
		return nil, fmt.Errorf("list ledger sheets: %w", err)
	}
	if len(titles) != 1 {
		return nil, &ShapeError{SpreadsheetID: spreadsheetID, Sheets: titles}
	}
	sheet := titles[0]

	rows, err := client.ReadRange(ctx, spreadsheetID, sheet, ledgerRange)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	ids := make(map[models.RegistrationID]struct{})
	for i, row := range rows {
		if i < headerRowCount || len(row) == 0 {
			continue
		}
		cell := strings.TrimSpace(utils.ToString(row[0]))
		if cell == "" {
			continue
		}
		id, err := parseIDCell(cell)
		if err != nil {
			return nil, fmt.Errorf("ledger row %d: %w", i+1, err)
		}
		ids[id] = struct{}{}
	}

	return &State{Sheet: sheet, IDs: ids, UsedRows: len(rows)}, nil
}

// parseIDCell extracts the digits of an id cell. Operators reformat the
// column now and then (thousand separators, the dashed pretty form), so
// non-digit characters are ignored.
func parseIDCell(cell string) (models.RegistrationID, error) {
	var digits strings.Builder
	for _, r := range cell {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, fmt.Errorf("id cell %q contains no digits", cell)
	}

	id, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id cell %q: %w", cell, err)
	}
	return models.RegistrationID(id), nil
}
