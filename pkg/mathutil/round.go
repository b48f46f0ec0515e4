// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/loanviz/loanviz/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundTo rounds a value half away from zero to the given number of decimal
// places. Compact notation uses this so 1.25 crore renders as "1.3Cr" rather
// than the banker's-rounded "1.2Cr".
func RoundTo(val float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Round(val)
	}
	factor := math.Pow(10, float64(decimals))
	return math.Round(val*factor) / factor
}

// IsFinite reports whether a value is a usable number (not NaN or an infinity).
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// WithinRelativeTolerance checks if two values agree within a relative
// tolerance, falling back to absolute comparison near zero.
func WithinRelativeTolerance(val1, val2, tolerance float64) bool {
	scale := math.Max(math.Abs(val1), math.Abs(val2))
	if scale < 1 {
		scale = 1
	}
	return math.Abs(val1-val2) <= tolerance*scale
}
