package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/loanviz/loanviz/pkg/constants"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loanviz.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `
defaultLocale: en-IN
defaultTheme: dark
logging:
  level: debug
  format: console
server:
  address: ":9090"
locales:
  - code: en-IN
    displayName: India
    currencyCode: INR
    currencySymbol: "₹"
  - code: en-GB
    displayName: United Kingdom
    currencyCode: GBP
    currencySymbol: "£"
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if conf.DefaultLocale != "en-IN" {
		t.Errorf("DefaultLocale = %s, want en-IN", conf.DefaultLocale)
	}
	if conf.DefaultTheme != constants.ThemeDark {
		t.Errorf("DefaultTheme = %s, want dark", conf.DefaultTheme)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("unexpected logging config: %+v", conf.Logging)
	}
	if conf.Server.Address != ":9090" {
		t.Errorf("Server.Address = %s, want :9090", conf.Server.Address)
	}
	if len(conf.Locales) != 2 {
		t.Fatalf("expected 2 locales, got %d", len(conf.Locales))
	}

	// Unset fields pick up defaults.
	if conf.Server.MaxBodyBytes != constants.DefaultMaxBodyBytes {
		t.Errorf("MaxBodyBytes = %d, want default %d", conf.Server.MaxBodyBytes, constants.DefaultMaxBodyBytes)
	}
	if conf.Storage.DatabasePath != constants.DefaultDatabasePath {
		t.Errorf("DatabasePath = %s, want default", conf.Storage.DatabasePath)
	}
}

func TestLoadConfigurationMissingFileUsesDefaults(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfiguration on a missing file should fall back to defaults, got %v", err)
	}

	if conf.DefaultLocale != constants.DefaultLocale {
		t.Errorf("DefaultLocale = %s, want %s", conf.DefaultLocale, constants.DefaultLocale)
	}
	if len(conf.Locales) == 0 {
		t.Error("default configuration should carry the shipped locales")
	}
}

func TestLoadConfigurationMalformedYAML(t *testing.T) {
	path := writeConfig(t, "locales: [[[")
	if _, err := LoadConfiguration(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestBuildRegistry(t *testing.T) {
	conf := Default()
	registry, err := conf.BuildRegistry()
	if err != nil {
		t.Fatalf("BuildRegistry failed on defaults: %v", err)
	}
	if !registry.Contains(conf.DefaultLocale) {
		t.Error("registry does not contain the default locale")
	}
}

func TestBuildRegistryFailsFast(t *testing.T) {
	conf := Default()
	conf.Locales = []LocaleConfig{{Code: "en-GB", CurrencyCode: "NOPE"}}
	if _, err := conf.BuildRegistry(); err == nil {
		t.Error("expected configuration error for invalid currency code")
	}

	conf = Default()
	conf.DefaultLocale = "fr-FR"
	if _, err := conf.BuildRegistry(); err == nil {
		t.Error("expected configuration error for default locale outside the registry")
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	conf := Default()
	conf.DefaultTheme = "sepia"
	conf.Locales = append(conf.Locales, LocaleConfig{Code: "fr-FR", CurrencyCode: "EUR"})

	warnings := conf.ValidateConfiguration()
	if len(warnings) == 0 {
		t.Fatal("expected warnings")
	}

	joined := strings.Join(warnings, "\n")
	if !strings.Contains(joined, "sepia") {
		t.Errorf("missing theme warning in %q", joined)
	}
	if !strings.Contains(joined, "fr-FR") {
		t.Errorf("missing locale warnings in %q", joined)
	}
}
