package reconcile

import (
	"registration-manager/feature/registration/models"
)

// Ledger geometry. Columns A through N hold one row per registered child;
// two banner rows precede the data.
const (
	columnCount    = 14
	headerRowCount = 2
	maxParents     = 2

	// ledgerRange spans every ledger column without a row bound, so one
	// read returns all used rows, trailing continuation rows included.
	ledgerRange = "A1:N"
)

// Timestamp formats used inside the ledger. They differ from the form
// formats on purpose: the ledger is sorted and filtered by operators, so
// dates are written big-endian.
const (
	submittedAtLayout = "2006-01-02 15:04:05"
	dateOfBirthLayout = "2006-01-02"
)

// HeaderRows returns the two banner rows of a fresh ledger: a title row
// and the column names.
func HeaderRows() [][]any {
	title := make([]any, columnCount)
	for i := range title {
		title[i] = ""
	}
	title[0] = "School transport registrations"

	header := []any{
		"Registration ID", "Submitted at",
		"Child", "Date of birth", "Grade",
		"Parent 1", "Email 1", "Phone 1", "Address 1",
		"Parent 2", "Email 2", "Phone 2", "Address 2",
		"Member",
	}

	return [][]any{title, header}
}

// BuildRows encodes a registration as its ledger rows, one per child.
// Shared fields appear on the first row only; continuation rows leave
// them blank so the first populated id cell always starts a new
// registration.
func BuildRows(reg *models.Registration) [][]any {
	rows := make([][]any, 0, len(reg.Children))

	for i, child := range reg.Children {
		row := make([]any, 0, columnCount)

		if i == 0 {
			row = append(row, int64(reg.ID), reg.SubmittedAt.Format(submittedAtLayout))
		} else {
			row = append(row, "", "")
		}

		row = append(row, child.FullName(), child.DateOfBirth.Format(dateOfBirthLayout), child.Grade.String())

		for j := 0; j < maxParents; j++ {
			if i == 0 && j < len(reg.Parents) {
				parent := reg.Parents[j]
				row = append(row, parent.FullName(), parent.Email, parent.Phone, parent.Address)
			} else {
				row = append(row, "", "", "", "")
			}
		}

		membership := ""
		if i == 0 {
			if reg.AssociationMember {
				membership = "Y"
			} else {
				membership = "N"
			}
		}
		row = append(row, membership)

		rows = append(rows, row)
	}

	return rows
}
