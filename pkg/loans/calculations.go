// Package loans provides the repayment arithmetic behind the mortgage and
// loan calculators: monthly payment from the standard amortization formula,
// interest breakdown, and a year-by-year remaining-balance trajectory for
// charting. Like the growth projector, bad numeric input degrades to zero
// rather than propagating NaN into the UI.
package loans

import (
	"math"

	"go.uber.org/zap"

	"github.com/loanviz/loanviz/pkg/constants"
	"github.com/loanviz/loanviz/pkg/mathutil"
)

// Inputs are the parameters of one repayment calculation.
type Inputs struct {
	Principal         float64
	DownPayment       float64
	AnnualRatePercent float64
	TermYears         int
}

func (in Inputs) valid() bool {
	return mathutil.IsFinite(in.Principal) &&
		mathutil.IsFinite(in.DownPayment) &&
		mathutil.IsFinite(in.AnnualRatePercent) &&
		in.TermYears > 0 &&
		in.TermYears <= constants.MaxTermYears
}

// amount is the borrowed amount after the down payment.
func (in Inputs) amount() float64 {
	return in.Principal - in.DownPayment
}

func (in Inputs) monthlyRate() float64 {
	return in.AnnualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// Calculator handles repayment computations.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a calculator for loan repayment figures.
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// MonthlyPayment returns the level monthly payment from the standard
// amortization formula. A zero rate divides the amount evenly across the
// term.
func (c *Calculator) MonthlyPayment(in Inputs) float64 {
	if !in.valid() {
		c.logger.Debug("invalid loan inputs, returning zero",
			zap.Float64("principal", in.Principal),
			zap.Float64("downPayment", in.DownPayment),
			zap.Float64("annualRatePercent", in.AnnualRatePercent),
			zap.Int("termYears", in.TermYears),
		)
		return 0
	}

	termMonths := float64(in.TermYears * constants.MonthsPerYear)
	if in.monthlyRate() == 0 {
		return in.amount() / termMonths
	}

	r := in.monthlyRate()
	power := math.Pow(1+r, termMonths)
	discountFactor := (power - 1) / power
	return in.amount() * r / discountFactor
}

// TotalInterest returns the interest paid across the whole term.
func (c *Calculator) TotalInterest(in Inputs) float64 {
	if !in.valid() {
		return 0
	}
	termMonths := float64(in.TermYears * constants.MonthsPerYear)
	return c.MonthlyPayment(in)*termMonths - in.amount()
}

// BalanceOverTime returns the remaining principal sampled at every whole
// year boundary, index 0 holding the borrowed amount. The balance is
// advanced month by month with the level payment, so the final sample is
// zero up to floating-point rounding.
func (c *Calculator) BalanceOverTime(in Inputs) []float64 {
	if in.TermYears <= 0 || in.TermYears > constants.MaxTermYears {
		return nil
	}

	trajectory := make([]float64, in.TermYears+1)
	if !in.valid() {
		return trajectory
	}

	payment := c.MonthlyPayment(in)
	r := in.monthlyRate()
	balance := in.amount()
	trajectory[0] = balance

	for year := 1; year <= in.TermYears; year++ {
		for month := 0; month < constants.MonthsPerYear; month++ {
			interest := balance * r
			balance += interest - payment
		}
		if balance < 0 {
			balance = 0
		}
		trajectory[year] = balance
	}

	return trajectory
}
