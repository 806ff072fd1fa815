package utils

import (
	"fmt"
	"strconv"
)

// ToString converts a spreadsheet cell value to its string form.
// The Sheets API hands back cells as any: strings stay as-is, numbers arrive
// as float64 and are rendered without an exponent or trailing zeros so that
// identifiers and grades round-trip, booleans render as TRUE/FALSE to match
// the grid rendering.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// RowStrings converts one spreadsheet row into plain strings, cell by cell.
func RowStrings(row []any) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = ToString(cell)
	}
	return out
}
