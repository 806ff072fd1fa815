package models

import (
	"strings"
	"time"

	"registration-manager/core/locale"
)

// DateOfBirthLayout is the date format the forms collect birth dates in.
const DateOfBirthLayout = "01/02/2006"

// Child is one child registered on the family's form.
type Child struct {
	Name
	DateOfBirth time.Time
	Grade       Grade
}

// NewChild builds a Child from the four cells of one child group. The
// form's declared locale drives name casing and ordering.
func NewChild(last, first, dob, grade string, loc locale.Locale) (Child, error) {
	birth, err := time.Parse(DateOfBirthLayout, strings.TrimSpace(dob))
	if err != nil {
		return Child{}, invalid("date of birth", "cannot parse %q as %s", dob, DateOfBirthLayout)
	}

	rank, err := ParseGrade(grade)
	if err != nil {
		return Child{}, err
	}

	return Child{
		Name:        NewName(last, first, loc),
		DateOfBirth: birth,
		Grade:       rank,
	}, nil
}
