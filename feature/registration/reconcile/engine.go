package reconcile

import (
	"context"
	"fmt"

	"registration-manager/core/sheets"
	"registration-manager/feature/registration/models"
)

// NotifyFunc runs right after one registration's rows land in the ledger.
type NotifyFunc func(ctx context.Context, reg *models.Registration) error

// Diff returns the registrations not yet committed to the ledger, in
// batch order. A registration whose id already appeared earlier in the
// batch is dropped too: families resubmit the form, and both rows carry
// the same identifier.
func Diff(batch []*models.Registration, state *State) []*models.Registration {
	var fresh []*models.Registration
	seen := make(map[models.RegistrationID]struct{}, len(batch))

	for _, reg := range batch {
		if state.Contains(reg.ID) {
			continue
		}
		if _, ok := seen[reg.ID]; ok {
			continue
		}
		seen[reg.ID] = struct{}{}
		fresh = append(fresh, reg)
	}

	return fresh
}

// Apply commits fresh registrations one at a time: each one's ledger rows
// are appended at the next free row and its notification sent before the
// next registration is touched. The returned count is the number of
// registrations fully appended, whether or not an error cut the batch
// short.
//
// An empty ledger gets its two header rows written first.
func Apply(ctx context.Context, client sheets.Client, spreadsheetID string, state *State, fresh []*models.Registration, notify NotifyFunc) (int, error) {
	if len(fresh) == 0 {
		return 0, nil
	}

	used := state.UsedRows
	if used == 0 {
		if err := client.AppendRows(ctx, spreadsheetID, state.Sheet, 1, HeaderRows()); err != nil {
			return 0, fmt.Errorf("write ledger header: %w", err)
		}
		used = headerRowCount
	}

	appended := 0
	for _, reg := range fresh {
		rows := BuildRows(reg)
		if err := client.AppendRows(ctx, spreadsheetID, state.Sheet, used+1, rows); err != nil {
			return appended, fmt.Errorf("append registration %s: %w", reg.ID, err)
		}
		used += len(rows)
		appended++

		if notify != nil {
			if err := notify(ctx, reg); err != nil {
				return appended, fmt.Errorf("notify registration %s: %w", reg.ID, err)
			}
		}
	}

	return appended, nil
}
