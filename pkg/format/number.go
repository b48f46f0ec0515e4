package format

import (
	"strconv"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/loanviz/loanviz/pkg/constants"
	"github.com/loanviz/loanviz/pkg/mathutil"
)

// parseTag resolves a locale code leniently. Formatting never fails on an
// unknown code; the undetermined tag still produces sensible output.
func parseTag(loc string) language.Tag {
	tag, err := language.Parse(loc)
	if err != nil {
		return language.Und
	}
	return tag
}

// Number formats a plain number for the given locale with grouping
// separators. Non-finite input formats to the empty string.
func Number(value float64, loc string, opts *Options) string {
	if !mathutil.IsFinite(value) {
		return ""
	}

	minDigits, maxDigits, notation := opts.resolve(constants.DefaultMinFractionDigits, constants.DefaultMaxFractionDigits)
	if notation == NotationCompact {
		return CompactNumber(value, loc, opts)
	}

	p := message.NewPrinter(parseTag(loc))
	return p.Sprint(number.Decimal(value,
		number.MinFractionDigits(minDigits),
		number.MaxFractionDigits(maxDigits),
	))
}

// Percentage formats a value expressed in percentage points, e.g. 5 renders
// as "5%". The value is scaled down before delegating to the percent-style
// formatter, which scales back up.
func Percentage(value float64, loc string, opts *Options) string {
	if !mathutil.IsFinite(value) {
		return ""
	}

	minDigits, maxDigits, _ := opts.resolve(constants.DefaultMinFractionDigits, constants.DefaultMaxFractionDigits)

	p := message.NewPrinter(parseTag(loc))
	return p.Sprint(number.Percent(value/constants.PercentageMultiplier,
		number.MinFractionDigits(minDigits),
		number.MaxFractionDigits(maxDigits),
	))
}

// CompactNumber formats a number with a scale suffix. The Indian locale
// uses lakh/crore notation; every other locale uses K/M/B. A whole-valued
// scaled number drops its trailing zero fraction ("5K", not "5.0K").
func CompactNumber(value float64, loc string, opts *Options) string {
	if !mathutil.IsFinite(value) {
		return ""
	}
	if loc == constants.IndianLocale {
		return IndianCompactNumber(value, opts)
	}

	digits := opts.compactDigits()
	sign := ""
	abs := value
	if abs < 0 {
		sign = "-"
		abs = -abs
	}

	scaled, suffix := compactScale(abs)
	if suffix == "" {
		// Below the smallest threshold; render standard notation directly
		// rather than via Number, whose compact option would loop back here.
		minDigits, maxDigits, _ := opts.resolve(constants.DefaultMinFractionDigits, constants.DefaultMaxFractionDigits)
		p := message.NewPrinter(parseTag(loc))
		return sign + p.Sprint(number.Decimal(abs,
			number.MinFractionDigits(minDigits),
			number.MaxFractionDigits(maxDigits),
		))
	}

	text := strconv.FormatFloat(mathutil.RoundTo(scaled, digits), 'f', digits, 64)
	text = trimZeroFraction(text)
	return sign + text + suffix
}

// IndianCompactNumber formats a number using lakh/crore units. Thresholds
// are checked strictly in descending order so a crore-scale value is never
// reported in lakhs. Fraction digits are fixed, one by default ("5.0K").
func IndianCompactNumber(value float64, opts *Options) string {
	if !mathutil.IsFinite(value) {
		return ""
	}

	digits := opts.compactDigits()
	sign := ""
	abs := value
	if abs < 0 {
		sign = "-"
		abs = -abs
	}

	scaled, suffix := indianCompactScale(abs)
	text := strconv.FormatFloat(mathutil.RoundTo(scaled, digits), 'f', digits, 64)
	return sign + text + suffix
}

// Ordinal renders an integer with its ordinal suffix (1st, 2nd, 3rd, 4th)
// according to the locale's ordinal plural category. Categories without an
// English suffix mapping fall back to "th".
func Ordinal(value int, loc string) string {
	tag := parseTag(loc)
	abs := value
	if abs < 0 {
		abs = -abs
	}

	suffix := "th"
	switch plural.Ordinal.MatchPlural(tag, abs, 0, 0, 0, 0) {
	case plural.One:
		suffix = "st"
	case plural.Two:
		suffix = "nd"
	case plural.Few:
		suffix = "rd"
	}

	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(value, number.MaxFractionDigits(0))) + suffix
}

// compactScale reduces an absolute value by the largest matching global
// threshold and returns the matching suffix, or the value unchanged with an
// empty suffix when it is below one thousand.
func compactScale(abs float64) (float64, string) {
	switch {
	case abs >= constants.BillionThreshold:
		return abs / constants.BillionThreshold, "B"
	case abs >= constants.MillionThreshold:
		return abs / constants.MillionThreshold, "M"
	case abs >= constants.ThousandThreshold:
		return abs / constants.ThousandThreshold, "K"
	default:
		return abs, ""
	}
}

// indianCompactScale is the lakh/crore analogue of compactScale. The check
// order crore, lakh, thousand is an invariant.
func indianCompactScale(abs float64) (float64, string) {
	switch {
	case abs >= constants.CroreThreshold:
		return abs / constants.CroreThreshold, "Cr"
	case abs >= constants.LakhThreshold:
		return abs / constants.LakhThreshold, "L"
	case abs >= constants.ThousandThreshold:
		return abs / constants.ThousandThreshold, "K"
	default:
		return abs, ""
	}
}

// trimZeroFraction drops an all-zero fraction part ("5.0" -> "5").
func trimZeroFraction(text string) string {
	for i := 0; i < len(text); i++ {
		if text[i] != '.' {
			continue
		}
		for j := i + 1; j < len(text); j++ {
			if text[j] != '0' {
				return text
			}
		}
		return text[:i]
	}
	return text
}
