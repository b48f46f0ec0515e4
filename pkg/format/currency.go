package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/loanviz/loanviz/pkg/constants"
	"github.com/loanviz/loanviz/pkg/mathutil"
)

// directSymbols maps the currencies the application supports to their
// display symbols. Consulted before the platform resolver because platform
// symbol rendering varies by locale (e.g. "US$" vs "$") and the UI needs
// one stable symbol per currency.
var directSymbols = map[string]string{
	"GBP": "£",
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"JPY": "¥",
	"CNY": "¥",
}

// Symbol resolves the display symbol for a currency code. Resolution order:
// the direct map, then the platform currency tables, then the code itself.
func Symbol(loc, currencyCode string) string {
	if sym, ok := directSymbols[currencyCode]; ok {
		return sym
	}

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return currencyCode
	}

	p := message.NewPrinter(parseTag(loc))
	sym := strings.TrimSpace(p.Sprint(currency.Symbol(unit)))
	if sym == "" {
		return currencyCode
	}
	return sym
}

// Currency formats a monetary value as symbol plus locale-grouped digits,
// zero fraction digits by default. Non-finite input formats to the empty
// string. A locale the platform cannot parse falls back to a manual
// grouped fixed-decimal rendering so the caller always gets a displayable
// string.
func Currency(value float64, loc, currencyCode string, opts *Options) string {
	if !mathutil.IsFinite(value) {
		return ""
	}

	minDigits, maxDigits, _ := opts.resolve(constants.CurrencyFractionDigits, constants.CurrencyFractionDigits)

	sign := ""
	abs := value
	if abs < 0 {
		sign = "-"
		abs = -abs
	}

	sym := Symbol(loc, currencyCode)

	tag, err := language.Parse(loc)
	if err != nil {
		return sign + sym + groupedFixed(abs, maxDigits)
	}

	p := message.NewPrinter(tag)
	return sign + sym + p.Sprint(number.Decimal(abs,
		number.MinFractionDigits(minDigits),
		number.MaxFractionDigits(maxDigits),
	))
}

// CurrencyForChart renders a compact symbol-prefixed label for chart axes
// and tooltips. The Indian locale uses crore/lakh/thousand units; other
// locales use millions/thousands. Values under one thousand render as
// symbol plus integer.
func CurrencyForChart(value float64, loc, currencyCode string) string {
	if !mathutil.IsFinite(value) {
		return ""
	}

	sign := ""
	abs := value
	if abs < 0 {
		sign = "-"
		abs = -abs
	}

	sym := Symbol(loc, currencyCode)

	var scaled float64
	var suffix string
	if loc == constants.IndianLocale {
		scaled, suffix = indianCompactScale(abs)
	} else {
		switch {
		case abs >= constants.MillionThreshold:
			scaled, suffix = abs/constants.MillionThreshold, "M"
		case abs >= constants.ThousandThreshold:
			scaled, suffix = abs/constants.ThousandThreshold, "K"
		default:
			scaled, suffix = abs, ""
		}
	}

	if suffix == "" {
		return sign + sym + strconv.FormatFloat(math.Round(scaled), 'f', 0, 64)
	}

	digits := constants.DefaultCompactFractionDigits
	return sign + sym + strconv.FormatFloat(mathutil.RoundTo(scaled, digits), 'f', digits, 64) + suffix
}

// groupedFixed renders a non-negative value with fixed decimals and comma
// grouping without consulting locale tables. Fallback path for locales the
// platform rejects.
func groupedFixed(value float64, decimals int) string {
	formatted := strconv.FormatFloat(value, 'f', decimals, 64)
	intPart := formatted
	decPart := ""
	if i := strings.IndexByte(formatted, '.'); i >= 0 {
		intPart = formatted[:i]
		decPart = formatted[i:]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + decPart
}
