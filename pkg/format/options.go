// Package format renders numbers, percentages, ordinals, and monetary
// values into locale-aware display strings. All functions degrade to a safe
// displayable value on bad input: a non-finite number formats to the empty
// string and an unresolvable locale or currency falls back to a manual
// rendering, so callers never need to guard a formatting call.
package format

import "github.com/loanviz/loanviz/pkg/constants"

// Notation values for Options.Notation.
const (
	NotationStandard = "standard"
	NotationCompact  = "compact"
)

// Options controls fraction digits and notation for a single formatting
// call. A nil *Options means the defaults: no minimum fraction digits, at
// most two, standard notation. The digit fields are pointers so that an
// explicit zero is distinguishable from unset; build them with
// FractionDigits.
type Options struct {
	MinFractionDigits *int
	MaxFractionDigits *int
	Notation          string
}

// FractionDigits builds the digit fields of an Options literal.
func FractionDigits(n int) *int {
	return &n
}

// resolve merges the options over the supplied defaults and enforces the
// max >= min invariant. Negative digit counts are treated as unset.
func (o *Options) resolve(defMin, defMax int) (minDigits, maxDigits int, notation string) {
	minDigits = defMin
	maxDigits = defMax
	notation = NotationStandard

	if o != nil {
		if o.MinFractionDigits != nil && *o.MinFractionDigits >= 0 {
			minDigits = *o.MinFractionDigits
		}
		if o.MaxFractionDigits != nil && *o.MaxFractionDigits >= 0 {
			maxDigits = *o.MaxFractionDigits
		}
		if o.Notation != "" {
			notation = o.Notation
		}
	}

	if maxDigits < minDigits {
		maxDigits = minDigits
	}
	return minDigits, maxDigits, notation
}

// compactDigits returns the fraction digit count for compact notation.
func (o *Options) compactDigits() int {
	if o != nil && o.MaxFractionDigits != nil && *o.MaxFractionDigits >= 0 {
		return *o.MaxFractionDigits
	}
	return constants.DefaultCompactFractionDigits
}
