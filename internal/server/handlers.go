package server

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/loanviz/loanviz/pkg/chart"
	"github.com/loanviz/loanviz/pkg/constants"
	"github.com/loanviz/loanviz/pkg/format"
	"github.com/loanviz/loanviz/pkg/growth"
	"github.com/loanviz/loanviz/pkg/loans"
)

// coerceNumber applies the UI's input coercion rules to a decoded JSON
// value: numbers pass through, numeric strings parse, non-numeric strings
// coerce to 0, and absent/null values become NaN so the formatters and the
// projector take their soft-failure paths.
func coerceNumber(raw interface{}) float64 {
	switch v := raw.(type) {
	case nil:
		return math.NaN()
	case float64:
		return v
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return math.NaN()
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// coerceAmount is coerceNumber for optional amount fields, where absence
// means zero rather than no value: a loan without a down payment borrows
// the full principal.
func coerceAmount(raw interface{}) float64 {
	value := coerceNumber(raw)
	if math.IsNaN(value) {
		return 0
	}
	return value
}

// coerceInt is coerceNumber for integer fields; NaN coerces to 0 and
// out-of-range magnitudes clamp so the float-to-int conversion stays
// defined.
func coerceInt(raw interface{}) int {
	value := coerceNumber(raw)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	if value > math.MaxInt32 {
		return math.MaxInt32
	}
	if value < math.MinInt32 {
		return math.MinInt32
	}
	return int(value)
}

type projectionRequest struct {
	Principal           interface{} `json:"principal"`
	MonthlyContribution interface{} `json:"monthlyContribution"`
	AnnualRatePercent   interface{} `json:"annualRatePercent"`
	TermYears           interface{} `json:"termYears"`
	Locale              string      `json:"locale"`
}

type projectionResponse struct {
	Locale      string            `json:"locale"`
	FutureValue float64           `json:"futureValue"`
	Trajectory  []float64         `json:"trajectory"`
	Series      chart.Series      `json:"series"`
	Formatted   map[string]string `json:"formatted"`
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req projectionRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	profile := h.resolveLocale(req.Locale)
	inputs := growth.Inputs{
		Principal:           coerceNumber(req.Principal),
		MonthlyContribution: coerceAmount(req.MonthlyContribution),
		AnnualRatePercent:   coerceNumber(req.AnnualRatePercent),
		TermYears:           coerceInt(req.TermYears),
	}

	if inputs.TermYears <= 0 || inputs.TermYears > constants.MaxTermYears {
		h.respondError(w, http.StatusBadRequest, "termYears must be between 1 and "+strconv.Itoa(constants.MaxTermYears))
		return
	}

	futureValue := h.projector.FutureValue(inputs)
	trajectory := h.projector.ValueOverTime(inputs)
	series := chart.GrowthSeries("Projected value", trajectory, profile)

	if h.announcer != nil {
		h.announcer.Announce("Projection updated")
	}

	h.writeJSON(w, http.StatusOK, projectionResponse{
		Locale:      profile.Code,
		FutureValue: futureValue,
		Trajectory:  trajectory,
		Series:      series,
		Formatted: map[string]string{
			"futureValue": format.Currency(futureValue, profile.Code, profile.CurrencyCode, nil),
			"chartValue":  format.CurrencyForChart(futureValue, profile.Code, profile.CurrencyCode),
		},
	})
}

type loanRequest struct {
	Principal         interface{} `json:"principal"`
	DownPayment       interface{} `json:"downPayment"`
	AnnualRatePercent interface{} `json:"annualRatePercent"`
	TermYears         interface{} `json:"termYears"`
	Locale            string      `json:"locale"`
}

type loanResponse struct {
	Locale         string            `json:"locale"`
	MonthlyPayment float64           `json:"monthlyPayment"`
	TotalInterest  float64           `json:"totalInterest"`
	Balance        []float64         `json:"balance"`
	Series         chart.Series      `json:"series"`
	Formatted      map[string]string `json:"formatted"`
}

func (h *handler) handleLoan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req loanRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	profile := h.resolveLocale(req.Locale)
	inputs := loans.Inputs{
		Principal:         coerceNumber(req.Principal),
		DownPayment:       coerceAmount(req.DownPayment),
		AnnualRatePercent: coerceNumber(req.AnnualRatePercent),
		TermYears:         coerceInt(req.TermYears),
	}

	if inputs.TermYears <= 0 || inputs.TermYears > constants.MaxTermYears {
		h.respondError(w, http.StatusBadRequest, "termYears must be between 1 and "+strconv.Itoa(constants.MaxTermYears))
		return
	}

	payment := h.calculator.MonthlyPayment(inputs)
	totalInterest := h.calculator.TotalInterest(inputs)
	balance := h.calculator.BalanceOverTime(inputs)
	series := chart.GrowthSeries("Remaining balance", balance, profile)

	if h.announcer != nil {
		h.announcer.Announce("Repayment updated")
	}

	twoDecimals := &format.Options{MinFractionDigits: format.FractionDigits(2), MaxFractionDigits: format.FractionDigits(2)}
	h.writeJSON(w, http.StatusOK, loanResponse{
		Locale:         profile.Code,
		MonthlyPayment: payment,
		TotalInterest:  totalInterest,
		Balance:        balance,
		Series:         series,
		Formatted: map[string]string{
			"monthlyPayment": format.Currency(payment, profile.Code, profile.CurrencyCode, twoDecimals),
			"totalInterest":  format.Currency(totalInterest, profile.Code, profile.CurrencyCode, nil),
		},
	})
}

type formatRequest struct {
	Kind     string         `json:"kind"`
	Value    interface{}    `json:"value"`
	Locale   string         `json:"locale"`
	Currency string         `json:"currency"`
	Options  *formatOptions `json:"options"`
}

type formatOptions struct {
	MinimumFractionDigits *int   `json:"minimumFractionDigits"`
	MaximumFractionDigits *int   `json:"maximumFractionDigits"`
	Notation              string `json:"notation"`
}

func (o *formatOptions) toOptions() *format.Options {
	if o == nil {
		return nil
	}
	return &format.Options{
		MinFractionDigits: o.MinimumFractionDigits,
		MaxFractionDigits: o.MaximumFractionDigits,
		Notation:          o.Notation,
	}
}

func (h *handler) handleFormat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req formatRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	profile := h.resolveLocale(req.Locale)
	currencyCode := req.Currency
	if currencyCode == "" {
		currencyCode = profile.CurrencyCode
	}

	value := coerceNumber(req.Value)
	opts := req.Options.toOptions()

	var text string
	switch req.Kind {
	case "number":
		text = format.Number(value, profile.Code, opts)
	case "percent":
		text = format.Percentage(value, profile.Code, opts)
	case "compact":
		text = format.CompactNumber(value, profile.Code, opts)
	case "ordinal":
		text = format.Ordinal(coerceInt(req.Value), profile.Code)
	case "currency":
		text = format.Currency(value, profile.Code, currencyCode, opts)
	case "chart-currency":
		text = format.CurrencyForChart(value, profile.Code, currencyCode)
	default:
		h.respondError(w, http.StatusBadRequest, "unknown format kind "+strconv.Quote(req.Kind))
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"text": text})
}
