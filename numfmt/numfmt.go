package numfmt

import (
	"strconv"
	"strings"
)

const (
	prettyWidth    = 9
	prettyDecimals = 1
	compactWidth   = 1
)

// Formatter renders a single float64 as a string.
type Formatter func(value float64) string

// Pretty returns a formatter with one decimal, right-aligned in a
// 9-character column.
func Pretty() Formatter {
	return Of(prettyWidth, prettyDecimals)
}

// Compact returns a formatter with one decimal and no column padding.
func Compact() Formatter {
	return Of(compactWidth, prettyDecimals)
}

// CompactNoDecimals returns a formatter rounding to the nearest integer
// with no column padding.
func CompactNoDecimals() Formatter {
	return Of(compactWidth, 0)
}

// Of returns a formatter producing decimals fraction digits, right-aligned
// to at least width characters.
func Of(width, decimals int) Formatter {
	return func(value float64) string {
		s := strconv.FormatFloat(value, 'f', decimals, 64)
		if pad := width - len(s); pad > 0 {
			s = strings.Repeat(" ", pad) + s
		}

		return s
	}
}
