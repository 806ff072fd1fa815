// Package form maps raw rows of the localized registration forms onto
// validated Registration records.
//
// # Layout
//
// A form export is a fixed 31-column positional layout, identical across
// locales:
//
//	 1      submission timestamp
//	 2-5    child 1 (last name, first name, date of birth, grade)
//	 6      "another child?" checkbox (never read)
//	 7-10   child 2
//	 11     checkbox
//	 12-15  child 3
//	 16     checkbox
//	 17-20  child 4
//	 21-25  parent 1 (last name, first name, email, phone, home address)
//	 26-30  parent 2
//	 31     chosen fee amount
//
// Rows shorter than the layout are right-padded with empty cells before
// mapping, because the sheets API truncates trailing blanks. A participant
// group counts as present iff its first cell is non-blank after trimming.
// The primary parent group is the only group that must be present; a row
// without it cannot be attributed to anyone and is rejected.
package form
