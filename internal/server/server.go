// Package server exposes the calculators, formatters, locale registry, and
// theme preference over a JSON API for the web front end.
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/loanviz/loanviz/internal/store"
	"github.com/loanviz/loanviz/pkg/announce"
	"github.com/loanviz/loanviz/pkg/constants"
	"github.com/loanviz/loanviz/pkg/growth"
	"github.com/loanviz/loanviz/pkg/loans"
	"github.com/loanviz/loanviz/pkg/locale"
)

// Options configures the handler.
type Options struct {
	Logger        *zap.Logger
	Registry      *locale.Registry
	Store         *store.PreferenceStore
	Announcer     *announce.Announcer
	DefaultLocale string
	DefaultTheme  string
	MaxBodyBytes  int64
	Version       string
}

type handler struct {
	logger        *zap.Logger
	registry      *locale.Registry
	store         *store.PreferenceStore
	announcer     *announce.Announcer
	projector     *growth.Projector
	calculator    *loans.Calculator
	defaultLocale string
	defaultTheme  string
	maxBodyBytes  int64
	version       string
}

// NewHandler constructs the HTTP handler serving the calculator API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := opts.Registry
	if registry == nil {
		registry = locale.MustDefaultRegistry()
	}

	defaultLocale := opts.DefaultLocale
	if defaultLocale == "" || !registry.Contains(defaultLocale) {
		defaultLocale = constants.DefaultLocale
	}

	defaultTheme := opts.DefaultTheme
	if defaultTheme == "" {
		defaultTheme = constants.ThemeLight
	}

	maxBodyBytes := opts.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = constants.DefaultMaxBodyBytes
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	h := &handler{
		logger:        logger,
		registry:      registry,
		store:         opts.Store,
		announcer:     opts.Announcer,
		projector:     growth.NewProjector(logger),
		calculator:    loans.NewCalculator(logger),
		defaultLocale: defaultLocale,
		defaultTheme:  defaultTheme,
		maxBodyBytes:  maxBodyBytes,
		version:       version,
	}

	mux := http.NewServeMux()

	// Projection API for the investment and affordability calculators
	mux.HandleFunc("/api/projection", h.handleProjection)

	// Repayment API for the mortgage and loan calculators
	mux.HandleFunc("/api/loan", h.handleLoan)

	// Formatting API for display strings
	mux.HandleFunc("/api/format", h.handleFormat)

	// Locale registry for the locale picker
	mux.HandleFunc("/api/locales", h.handleLocales)
	mux.HandleFunc("/api/locales/export", h.handleLocalesExport)

	// Theme preference
	mux.HandleFunc("/api/theme", h.handleTheme)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, message, op string) {
	h.logger.Warn(message, zap.String("op", op))
	h.respondError(w, status, message)
}

func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "failed to decode request body: "+err.Error())
		return false
	}
	return true
}

// resolveLocale maps a requested locale code onto the registry, falling
// back to the default for absent or unregistered codes.
func (h *handler) resolveLocale(code string) locale.Profile {
	if code != "" {
		if profile, err := h.registry.Lookup(code); err == nil {
			return profile
		}
	}
	profile, _ := h.registry.Lookup(h.defaultLocale)
	return profile
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

type localePayload struct {
	Code           string `json:"code" yaml:"code"`
	DisplayName    string `json:"displayName" yaml:"displayName"`
	Flag           string `json:"flag" yaml:"flag"`
	CurrencyCode   string `json:"currencyCode" yaml:"currencyCode"`
	CurrencySymbol string `json:"currencySymbol" yaml:"currencySymbol"`
}

func (h *handler) localePayloads() []localePayload {
	profiles := h.registry.Profiles()
	out := make([]localePayload, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, localePayload{
			Code:           p.Code,
			DisplayName:    p.DisplayName,
			Flag:           p.Flag,
			CurrencyCode:   p.CurrencyCode,
			CurrencySymbol: p.CurrencySymbol,
		})
	}
	return out
}

func (h *handler) handleLocales(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"locales":       h.localePayloads(),
		"defaultLocale": h.defaultLocale,
	})
}

// handleLocalesExport serializes the active registry as YAML in the shape
// the configuration file expects, so a deployment can snapshot its locale
// setup.
func (h *handler) handleLocalesExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	doc := map[string]interface{}{
		"defaultLocale": h.defaultLocale,
		"locales":       h.localePayloads(),
	}

	yamlBytes, err := yaml.Marshal(doc)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, "failed to encode locale registry", "server.handleLocalesExport")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"localesYaml": string(yamlBytes),
	})
}

func (h *handler) handleTheme(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		theme := h.defaultTheme
		if h.store != nil {
			stored, err := h.store.Theme(h.defaultTheme)
			if err != nil {
				h.respondErrorWithOp(w, http.StatusInternalServerError, "failed to read theme preference", "server.handleTheme")
				return
			}
			theme = stored
		}
		h.writeJSON(w, http.StatusOK, map[string]string{"theme": theme})

	case http.MethodPut:
		var payload struct {
			Theme string `json:"theme"`
		}
		if !h.decodeBody(w, r, &payload) {
			return
		}
		if h.store == nil {
			h.respondError(w, http.StatusServiceUnavailable, "preference store unavailable")
			return
		}
		if err := h.store.SetTheme(payload.Theme); err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]string{"theme": payload.Theme})

	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}
