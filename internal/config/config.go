// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/loanviz/loanviz/pkg/constants"
	"github.com/loanviz/loanviz/pkg/locale"
)

// Configuration holds all configuration for loanviz.
type Configuration struct {
	Locales       []LocaleConfig
	DefaultLocale string        `yaml:"defaultLocale,omitempty"`
	DefaultTheme  string        `yaml:"defaultTheme,omitempty"`
	Logging       LoggingConfig `yaml:"logging,omitempty"`
	Server        ServerConfig  `yaml:"server,omitempty"`
	Storage       StorageConfig `yaml:"storage,omitempty"`
}

// LocaleConfig describes one selectable locale in the registry.
type LocaleConfig struct {
	Code           string
	DisplayName    string `yaml:"displayName,omitempty"`
	Flag           string `yaml:"flag,omitempty"`
	CurrencyCode   string `yaml:"currencyCode"`
	CurrencySymbol string `yaml:"currencySymbol,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// ServerConfig holds HTTP server options.
type ServerConfig struct {
	Address      string `yaml:"address,omitempty"`
	MaxBodyBytes int64  `yaml:"maxBodyBytes,omitempty"`
}

// StorageConfig holds the preference store location.
type StorageConfig struct {
	DatabasePath string `yaml:"databasePath,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file is not an error; the compiled
// defaults apply.
func LoadConfiguration(configPath string) (*Configuration, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	var configuration Configuration
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// Default returns a configuration built entirely from compiled defaults.
func Default() *Configuration {
	conf := &Configuration{}
	conf.applyDefaults()
	return conf
}

// applyDefaults fills unset fields with the compiled defaults.
func (conf *Configuration) applyDefaults() {
	if len(conf.Locales) == 0 {
		for _, p := range locale.DefaultProfiles() {
			conf.Locales = append(conf.Locales, LocaleConfig{
				Code:           p.Code,
				DisplayName:    p.DisplayName,
				Flag:           p.Flag,
				CurrencyCode:   p.CurrencyCode,
				CurrencySymbol: p.CurrencySymbol,
			})
		}
	}
	if conf.DefaultLocale == "" {
		conf.DefaultLocale = constants.DefaultLocale
	}
	if conf.DefaultTheme == "" {
		conf.DefaultTheme = constants.ThemeLight
	}
	if conf.Server.Address == "" {
		conf.Server.Address = constants.DefaultServerAddress
	}
	if conf.Server.MaxBodyBytes <= 0 {
		conf.Server.MaxBodyBytes = constants.DefaultMaxBodyBytes
	}
	if conf.Storage.DatabasePath == "" {
		conf.Storage.DatabasePath = constants.DefaultDatabasePath
	}
}

// BuildRegistry constructs the validated locale registry from the
// configuration. Invalid registry entries fail here, at startup, rather
// than at formatting time.
func (conf *Configuration) BuildRegistry() (*locale.Registry, error) {
	profiles := make([]locale.Profile, 0, len(conf.Locales))
	for _, lc := range conf.Locales {
		profiles = append(profiles, locale.Profile{
			Code:           lc.Code,
			DisplayName:    lc.DisplayName,
			Flag:           lc.Flag,
			CurrencyCode:   lc.CurrencyCode,
			CurrencySymbol: lc.CurrencySymbol,
		})
	}

	registry, err := locale.NewRegistry(profiles)
	if err != nil {
		return nil, fmt.Errorf("invalid locale registry: %w", err)
	}

	if !registry.Contains(conf.DefaultLocale) {
		return nil, fmt.Errorf("default locale %s is not in the registry", conf.DefaultLocale)
	}

	return registry, nil
}

// ValidateConfiguration checks the configuration for conditions that are
// worth surfacing but do not prevent startup.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.DefaultTheme != constants.ThemeLight && conf.DefaultTheme != constants.ThemeDark {
		warnings = append(warnings, fmt.Sprintf("unknown default theme %q, expected %q or %q",
			conf.DefaultTheme, constants.ThemeLight, constants.ThemeDark))
	}

	for _, lc := range conf.Locales {
		if lc.DisplayName == "" {
			warnings = append(warnings, fmt.Sprintf("locale %s has no display name", lc.Code))
		}
		if lc.CurrencySymbol == "" {
			warnings = append(warnings, fmt.Sprintf("locale %s has no currency symbol; the resolver fallback chain will be used", lc.Code))
		}
	}

	return warnings
}
