// Package growth computes compound-interest projections for the investment
// and affordability calculators: a closed-form future value at maturity and
// a year-by-year trajectory built by iterative monthly compounding.
package growth

import (
	"math"

	"go.uber.org/zap"

	"github.com/loanviz/loanviz/pkg/constants"
	"github.com/loanviz/loanviz/pkg/mathutil"
)

// Inputs are the parameters of one projection. Consumed once per call and
// never mutated.
type Inputs struct {
	Principal           float64
	MonthlyContribution float64
	AnnualRatePercent   float64
	TermYears           int
}

// valid reports whether every numeric field is usable. The projector never
// propagates NaN or an infinity; bad input degrades to a zero result. The
// term is bounded above so an extreme term cannot blow up the trajectory
// allocation.
func (in Inputs) valid() bool {
	return mathutil.IsFinite(in.Principal) &&
		mathutil.IsFinite(in.MonthlyContribution) &&
		mathutil.IsFinite(in.AnnualRatePercent) &&
		in.TermYears > 0 &&
		in.TermYears <= constants.MaxTermYears
}

// monthlyRate converts the annual percentage rate to a per-month decimal.
func (in Inputs) monthlyRate() float64 {
	return in.AnnualRatePercent / constants.PercentageMultiplier / constants.MonthsPerYear
}

// Projector handles projection computations.
type Projector struct {
	logger *zap.Logger
}

// NewProjector creates a projector for growth calculations.
func NewProjector(logger *zap.Logger) *Projector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Projector{logger: logger}
}

// FutureValue returns the projected balance at the end of the term using
// the closed-form annuity formula. A zero rate is special-cased to linear
// accumulation since the closed form divides by the rate.
func (p *Projector) FutureValue(in Inputs) float64 {
	if !in.valid() {
		p.logger.Debug("invalid projection inputs, returning zero",
			zap.Float64("principal", in.Principal),
			zap.Float64("monthlyContribution", in.MonthlyContribution),
			zap.Float64("annualRatePercent", in.AnnualRatePercent),
			zap.Int("termYears", in.TermYears),
		)
		return 0
	}

	r := in.monthlyRate()
	n := float64(in.TermYears * constants.MonthsPerYear)

	if r == 0 {
		return in.Principal + in.MonthlyContribution*n
	}

	compounded := math.Pow(1+r, n)
	return in.Principal*compounded + in.MonthlyContribution*(compounded-1)/r
}

// ValueOverTime returns the running balance sampled at every whole year
// boundary, index 0 holding the starting principal. The balance is advanced
// month by month, so the final sample agrees with FutureValue only up to
// floating-point rounding.
func (p *Projector) ValueOverTime(in Inputs) []float64 {
	if in.TermYears <= 0 || in.TermYears > constants.MaxTermYears {
		return nil
	}

	trajectory := make([]float64, in.TermYears+1)
	if !in.valid() {
		return trajectory
	}

	r := in.monthlyRate()
	balance := in.Principal
	trajectory[0] = balance

	for year := 1; year <= in.TermYears; year++ {
		for month := 0; month < constants.MonthsPerYear; month++ {
			balance = balance*(1+r) + in.MonthlyContribution
		}
		trajectory[year] = balance
	}

	return trajectory
}
