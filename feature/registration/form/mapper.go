package form

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"registration-manager/core/locale"
	"registration-manager/feature/registration/models"
)

// ErrMissingPrimaryParent marks a row whose primary parent group is empty.
// Such a row cannot be attributed to a family and is never partially
// imported.
var ErrMissingPrimaryParent = errors.New("the primary parent group is empty")

// MapRow converts one raw form row into a validated Registration.
//
// The row is right-padded to the full layout first. Empty child groups and
// an empty secondary parent group contribute nothing; any present group
// must validate completely or the whole row is rejected. Errors name the
// group they came from, counted from one as on the form.
func MapRow(row []string, loc locale.Locale) (*models.Registration, error) {
	if len(row) == 0 {
		return nil, errors.New("empty row")
	}
	row = padRow(row)

	rawSubmitted := strings.TrimSpace(row[submittedAtColumn])
	submitted, err := time.Parse(models.SubmittedAtLayout, rawSubmitted)
	if err != nil {
		return nil, fmt.Errorf("submission timestamp: cannot parse %q as %s", rawSubmitted, models.SubmittedAtLayout)
	}

	var children []models.Child
	for i, group := range childGroups {
		if !groupPresent(row, group.lastName) {
			continue
		}
		child, err := models.NewChild(row[group.lastName], row[group.firstName], row[group.dateOfBirth], row[group.grade], loc)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i+1, err)
		}
		children = append(children, child)
	}

	var parents []models.Parent
	for i, group := range parentGroups {
		secondary := i > 0
		if !groupPresent(row, group.lastName) {
			if secondary {
				continue
			}
			return nil, ErrMissingPrimaryParent
		}
		parent, err := models.NewParent(row[group.lastName], row[group.firstName], row[group.email], row[group.phone], row[group.address], secondary, loc)
		if err != nil {
			return nil, fmt.Errorf("parent %d: %w", i+1, err)
		}
		parents = append(parents, parent)
	}

	member := models.ParseFeeTier(row[feeColumn])

	return models.New(submitted, children, parents, member, loc)
}
