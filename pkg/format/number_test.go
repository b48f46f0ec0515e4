package format

import (
	"math"
	"testing"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		loc      string
		opts     *Options
		expected string
	}{
		{"Grouped thousands", 1234.5, "en-GB", nil, "1,234.5"},
		{"No grouping needed", 999, "en-GB", nil, "999"},
		{"Minimum fraction digits", 5, "en-GB", &Options{MinFractionDigits: FractionDigits(2)}, "5.00"},
		{"Explicit zero fraction digits", 1234.4, "en-GB", &Options{MaxFractionDigits: FractionDigits(0)}, "1,234"},
		{"German grouping", 1234567, "de-DE", nil, "1.234.567"},
		{"Unparseable locale still formats", 1234, "???", nil, "1,234"},
		{"Compact notation via options", 5000, "en-GB", &Options{Notation: NotationCompact}, "5K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Number(tt.value, tt.loc, tt.opts)
			if result != tt.expected {
				t.Errorf("Number(%v, %s) = %q, want %q", tt.value, tt.loc, result, tt.expected)
			}
		})
	}
}

func TestNumberNonFinite(t *testing.T) {
	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if result := Number(value, "en-GB", nil); result != "" {
			t.Errorf("Number(%v) = %q, want empty string", value, result)
		}
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"Whole percent", 5, "5%"},
		{"Fractional percent", 12.5, "12.5%"},
		{"Zero", 0, "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Percentage(tt.value, "en-GB", nil)
			if result != tt.expected {
				t.Errorf("Percentage(%v) = %q, want %q", tt.value, result, tt.expected)
			}
		})
	}

	if result := Percentage(math.NaN(), "en-GB", nil); result != "" {
		t.Errorf("Percentage(NaN) = %q, want empty string", result)
	}
}

func TestCompactNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		loc      string
		expected string
	}{
		{"Thousands", 5000, "en-GB", "5K"},
		{"Millions", 1200000, "en-GB", "1.2M"},
		{"Billions", 1230000000, "en-GB", "1.2B"},
		{"Below threshold", 999, "en-GB", "999"},
		{"Below threshold groups digits", 999.95, "en-GB", "999.95"},
		{"Negative", -5000, "en-GB", "-5K"},
		{"Indian locale delegates", 250000, "en-IN", "2.5L"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompactNumber(tt.value, tt.loc, nil)
			if result != tt.expected {
				t.Errorf("CompactNumber(%v, %s) = %q, want %q", tt.value, tt.loc, result, tt.expected)
			}
		})
	}
}

func TestIndianCompactNumber(t *testing.T) {
	// Thresholds must be checked crore -> lakh -> thousand in that order.
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"Crore", 12500000, "1.3Cr"},
		{"Lakh", 250000, "2.5L"},
		{"Thousand", 5000, "5.0K"},
		{"Exactly one crore", 10000000, "1.0Cr"},
		{"Exactly one lakh", 100000, "1.0L"},
		{"Below one thousand", 500, "500.0"},
		{"Negative crore", -12500000, "-1.3Cr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IndianCompactNumber(tt.value, nil)
			if result != tt.expected {
				t.Errorf("IndianCompactNumber(%v) = %q, want %q", tt.value, result, tt.expected)
			}
		})
	}

	if result := IndianCompactNumber(math.NaN(), nil); result != "" {
		t.Errorf("IndianCompactNumber(NaN) = %q, want empty string", result)
	}
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		value    int
		expected string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{22, "22nd"},
		{23, "23rd"},
		{112, "112th"},
	}

	for _, tt := range tests {
		result := Ordinal(tt.value, "en-GB")
		if result != tt.expected {
			t.Errorf("Ordinal(%d) = %q, want %q", tt.value, result, tt.expected)
		}
	}
}

func TestOrdinalUnrecognizedCategoryDefaultsToTh(t *testing.T) {
	// Japanese ordinals have no one/two/few categories.
	if result := Ordinal(1, "ja-JP"); result != "1th" {
		t.Errorf("Ordinal(1, ja-JP) = %q, want %q", result, "1th")
	}
}

func TestCompactOptionBelowThresholdDoesNotRecurse(t *testing.T) {
	result := CompactNumber(999, "en-GB", &Options{Notation: NotationCompact})
	if result != "999" {
		t.Errorf("CompactNumber(999) = %q, want 999", result)
	}
}

func TestFormattingIsIdempotent(t *testing.T) {
	opts := &Options{MinFractionDigits: FractionDigits(1), MaxFractionDigits: FractionDigits(2)}
	first := Number(98765.432, "en-GB", opts)
	second := Number(98765.432, "en-GB", opts)
	if first != second {
		t.Errorf("repeated formatting differs: %q vs %q", first, second)
	}
}
