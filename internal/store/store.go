// Package store persists user preferences. The application treats it as an
// opaque key/value store; today it holds a single key, the theme
// preference.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/loanviz/loanviz/pkg/constants"
)

// PreferenceStore is a sqlite-backed key/value store.
type PreferenceStore struct {
	conn   *sql.DB
	logger *zap.Logger
}

// Open opens (creating if necessary) the preference store at the given
// path and applies the schema.
func Open(dbPath string, logger *zap.Logger) (*PreferenceStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping preference store: %w", err)
	}

	s := &PreferenceStore{conn: conn, logger: logger}
	if err := s.migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the underlying database.
func (s *PreferenceStore) Close() error {
	return s.conn.Close()
}

func (s *PreferenceStore) migrate() error {
	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS preferences (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to apply preference schema: %w", err)
	}
	return nil
}

// Get returns the value stored under key, or fallback when the key is
// absent.
func (s *PreferenceStore) Get(key, fallback string) (string, error) {
	var value string
	err := s.conn.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, nil
}

// Set stores the value under key, replacing any previous value.
func (s *PreferenceStore) Set(key, value string) error {
	_, err := s.conn.Exec(`
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}

	s.logger.Debug("preference stored",
		zap.String("key", key),
		zap.String("value", value),
	)
	return nil
}

// Theme returns the stored theme preference, defaulting to the supplied
// theme when none has been saved.
func (s *PreferenceStore) Theme(fallback string) (string, error) {
	theme, err := s.Get(constants.ThemePreferenceKey, fallback)
	if err != nil {
		return "", err
	}
	if theme != constants.ThemeLight && theme != constants.ThemeDark {
		// A foreign value in the store degrades to the fallback rather
		// than leaking into the UI.
		return fallback, nil
	}
	return theme, nil
}

// SetTheme stores the theme preference. Only the known themes are
// accepted.
func (s *PreferenceStore) SetTheme(theme string) error {
	if theme != constants.ThemeLight && theme != constants.ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	return s.Set(constants.ThemePreferenceKey, theme)
}
