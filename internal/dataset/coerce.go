// Package dataset turns the raw string grid returned by the spreadsheet into typed Records.
//
// Google Sheets hands every cell back as formatted text, so the only type information left is
// whatever the text looks like. Coerce restores numbers; Materialize and FromTable apply it
// across a whole range.
package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Coerce returns the numeric value of cell when the cell holds a plain, finite decimal number,
// and the original cell text otherwise.
//
// Surrounding whitespace is ignored when deciding and parsing (" 42 " becomes 42), but a cell
// that stays text is returned untouched, whitespace included. Forms strconv.ParseFloat accepts
// that a spreadsheet user would not read as a number are kept as text: NaN, Inf/Infinity,
// hexadecimal floats and underscore digit separators. Values that overflow float64 are text too.
func Coerce(cell string) any {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" || !isDecimalLiteral(trimmed) {
		return cell
	}

	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return cell
	}
	return n
}

// isDecimalLiteral rejects the ParseFloat inputs that are not written in plain decimal:
// anything containing letters other than an exponent marker, or an underscore.
func isDecimalLiteral(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == '+' || r == '-' || r == 'e' || r == 'E':
		default:
			return false
		}
	}
	return true
}
