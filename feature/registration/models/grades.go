package models

import (
	"strconv"
	"strings"
)

// Grade is the rank of an education grade, from toute petite section (1)
// through terminale (16).
type Grade int

// gradeTable maps the grade labels printed on the forms to their rank.
// Labels are matched as substrings in declaration order, so TPS must stay
// ahead of PS, which it contains.
var gradeTable = []struct {
	label string
	rank  Grade
}{
	{"TPS", 1},
	{"PS", 2},
	{"MS", 3},
	{"GS", 4},
	{"CP", 5},
	{"CE1", 6},
	{"CE2", 7},
	{"CM1", 8},
	{"CM2", 9},
	{"Sixième", 10},
	{"Cinquième", 11},
	{"Quatrième", 12},
	{"Troisième", 13},
	{"Seconde", 14},
	{"Première", 15},
	{"Terminale", 16},
}

// ParseGrade resolves the free-text grade label of a form cell to its rank.
// The label only has to contain one of the known grade names, which lets
// localized cells like "CE1 (2ème année)" resolve. An unknown label is an
// error.
func ParseGrade(label string) (Grade, error) {
	for _, g := range gradeTable {
		if strings.Contains(label, g.label) {
			return g.rank, nil
		}
	}
	return 0, invalid("grade", "unknown grade label %q", label)
}

// String returns the canonical label of the grade, as written to the
// registration ledger.
func (g Grade) String() string {
	for _, entry := range gradeTable {
		if entry.rank == g {
			return entry.label
		}
	}
	return strconv.Itoa(int(g))
}
