// Package locale defines the locale profiles supported by the application
// and a registry that validates them up front. Formatting code resolves
// locales through a Registry so that an unsupported code is a configuration
// error at startup rather than a silent fallback at call time.
package locale

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Profile describes one selectable locale: its BCP 47 code, UI metadata,
// and the currency it formats monetary values in.
type Profile struct {
	Code           string
	DisplayName    string
	Flag           string
	CurrencyCode   string
	CurrencySymbol string

	// Tag is the parsed language tag, populated during registry construction.
	Tag language.Tag
}

// Registry is a frozen set of locale profiles keyed by code. Construct it
// once at startup; lookups afterwards are read-only.
type Registry struct {
	profiles map[string]Profile
	order    []string
}

// NewRegistry validates the given profiles and freezes them into a Registry.
// Every profile must carry a parseable language tag, a known ISO 4217
// currency code, and a code unique within the set.
func NewRegistry(profiles []Profile) (*Registry, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("locale registry requires at least one profile")
	}

	r := &Registry{
		profiles: make(map[string]Profile, len(profiles)),
		order:    make([]string, 0, len(profiles)),
	}

	for _, p := range profiles {
		if p.Code == "" {
			return nil, fmt.Errorf("locale profile missing code")
		}
		if _, exists := r.profiles[p.Code]; exists {
			return nil, fmt.Errorf("duplicate locale code %s", p.Code)
		}

		tag, err := language.Parse(p.Code)
		if err != nil {
			return nil, fmt.Errorf("invalid locale code %s: %w", p.Code, err)
		}
		p.Tag = tag

		if _, err := currency.ParseISO(p.CurrencyCode); err != nil {
			return nil, fmt.Errorf("locale %s has invalid currency code %s: %w", p.Code, p.CurrencyCode, err)
		}

		r.profiles[p.Code] = p
		r.order = append(r.order, p.Code)
	}

	return r, nil
}

// Lookup returns the profile registered under the given code.
func (r *Registry) Lookup(code string) (Profile, error) {
	p, ok := r.profiles[code]
	if !ok {
		return Profile{}, fmt.Errorf("unsupported locale %s", code)
	}
	return p, nil
}

// Contains reports whether a profile is registered under the given code.
func (r *Registry) Contains(code string) bool {
	_, ok := r.profiles[code]
	return ok
}

// Profiles returns the registered profiles in registration order.
func (r *Registry) Profiles() []Profile {
	out := make([]Profile, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.profiles[code])
	}
	return out
}

// DefaultProfiles returns the locales the application ships with.
func DefaultProfiles() []Profile {
	return []Profile{
		{Code: "en-GB", DisplayName: "United Kingdom", Flag: "🇬🇧", CurrencyCode: "GBP", CurrencySymbol: "£"},
		{Code: "en-US", DisplayName: "United States", Flag: "🇺🇸", CurrencyCode: "USD", CurrencySymbol: "$"},
		{Code: "en-IN", DisplayName: "India", Flag: "🇮🇳", CurrencyCode: "INR", CurrencySymbol: "₹"},
		{Code: "de-DE", DisplayName: "Germany", Flag: "🇩🇪", CurrencyCode: "EUR", CurrencySymbol: "€"},
		{Code: "ja-JP", DisplayName: "Japan", Flag: "🇯🇵", CurrencyCode: "JPY", CurrencySymbol: "¥"},
		{Code: "zh-CN", DisplayName: "China", Flag: "🇨🇳", CurrencyCode: "CNY", CurrencySymbol: "¥"},
	}
}

// MustDefaultRegistry builds a registry from DefaultProfiles and panics on
// error. The defaults are compiled in, so failure indicates a programming
// mistake rather than bad configuration.
func MustDefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultProfiles())
	if err != nil {
		panic(err)
	}
	return r
}
