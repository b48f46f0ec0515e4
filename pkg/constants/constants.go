// Package constants provides shared constants for the loanviz application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// MaxTermYears caps the projection and repayment horizon; longer terms
	// are treated as invalid input
	MaxTermYears = 1000
)

// Compaction thresholds (global notation)
const (
	// BillionThreshold is the lower bound for the "B" suffix
	BillionThreshold = 1_000_000_000

	// MillionThreshold is the lower bound for the "M" suffix
	MillionThreshold = 1_000_000

	// ThousandThreshold is the lower bound for the "K" suffix
	ThousandThreshold = 1_000
)

// Compaction thresholds (Indian notation)
const (
	// CroreThreshold is the lower bound for the "Cr" suffix (1 crore = 10,000,000)
	CroreThreshold = 10_000_000

	// LakhThreshold is the lower bound for the "L" suffix (1 lakh = 100,000)
	LakhThreshold = 100_000
)

// Formatting defaults
const (
	// DefaultMinFractionDigits is the default minimum number of fraction digits
	DefaultMinFractionDigits = 0

	// DefaultMaxFractionDigits is the default maximum number of fraction digits
	DefaultMaxFractionDigits = 2

	// DefaultCompactFractionDigits is the number of fraction digits for compact notation
	DefaultCompactFractionDigits = 1

	// CurrencyFractionDigits is the default number of fraction digits for currency display
	CurrencyFractionDigits = 0
)

// Theme constants
const (
	// ThemeLight is the light theme identifier
	ThemeLight = "light"

	// ThemeDark is the dark theme identifier
	ThemeDark = "dark"

	// ThemePreferenceKey is the key under which the theme preference is stored
	ThemePreferenceKey = "theme"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "loanviz.yaml"

	// DefaultLocale is the locale used when no selection has been made
	DefaultLocale = "en-GB"

	// IndianLocale is the locale code that selects Indian (lakh/crore) compaction
	IndianLocale = "en-IN"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodyBytes is the default maximum request body size (64 KB)
	DefaultMaxBodyBytes int64 = 64 * 1024

	// DefaultDatabasePath is the default path of the preference store
	DefaultDatabasePath = "data/loanviz.db"
)

// Validation constants
const (
	// ProjectionTolerance is the relative tolerance for comparing the
	// closed-form and iterative projection results
	ProjectionTolerance = 1e-6
)
