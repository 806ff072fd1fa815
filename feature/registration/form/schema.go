package form

import "strings"

// FieldCount is the number of columns of a form export. Shorter rows are
// right-padded to this width before mapping.
const FieldCount = 31

// Column indexes into a padded row, 0-based. The checkbox columns 5, 10
// and 15 sit between consecutive child groups and are never read.
const (
	submittedAtColumn = 0
	feeColumn         = 30
)

// childGroup locates the four cells of one child within a row.
type childGroup struct {
	lastName    int
	firstName   int
	dateOfBirth int
	grade       int
}

// parentGroup locates the five cells of one parent within a row.
type parentGroup struct {
	lastName  int
	firstName int
	email     int
	phone     int
	address   int
}

var childGroups = []childGroup{
	{lastName: 1, firstName: 2, dateOfBirth: 3, grade: 4},
	{lastName: 6, firstName: 7, dateOfBirth: 8, grade: 9},
	{lastName: 11, firstName: 12, dateOfBirth: 13, grade: 14},
	{lastName: 16, firstName: 17, dateOfBirth: 18, grade: 19},
}

var parentGroups = []parentGroup{
	{lastName: 20, firstName: 21, email: 22, phone: 23, address: 24},
	{lastName: 25, firstName: 26, email: 27, phone: 28, address: 29},
}

// groupPresent is the single presence rule for participant groups: a
// group was filled in iff its first cell, the last name, is non-blank
// after trimming.
func groupPresent(row []string, firstColumn int) bool {
	return strings.TrimSpace(row[firstColumn]) != ""
}

// padRow right-pads a truncated row to the full field count.
func padRow(row []string) []string {
	if len(row) >= FieldCount {
		return row
	}
	padded := make([]string, FieldCount)
	copy(padded, row)
	return padded
}
