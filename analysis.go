package networth

import (
	"fmt"
	"math"
)

// Net-worth checkpoints read from every analysis trajectory.
const (
	ShortCheckpoint = 10
	LongCheckpoint  = 30
)

// Advisor identifies who produced an analysis.
type Advisor struct {
	Key     string `json:"key"`     // stable identifier, e.g. "growth"
	Persona string `json:"persona"` // display name, e.g. "Alex Chen"
	Title   string `json:"title"`   // e.g. "Growth Optimizer"
}

func (a Advisor) String() string {
	if a.Title == "" {
		return a.Persona
	}
	return fmt.Sprintf("%s (%s)", a.Persona, a.Title)
}

// AnalysisResult is the outcome of one advisor's analysis of a profile. It is
// the unit folded by Synthesize.
type AnalysisResult struct {
	Advisor            Advisor       `json:"advisor"`
	Assumptions        AssumptionSet `json:"assumptions"`
	Strategy           Strategy      `json:"strategy"`
	Retirement         Retirement    `json:"retirement"`
	DebtPayoffMonths   int           `json:"debt_payoff_months"`
	NetWorth10         float64       `json:"net_worth_10yr"`
	NetWorth30         float64       `json:"net_worth_30yr"`
	MonthlyInvestment  float64       `json:"monthly_investment"`
	MonthlyDebtPayment float64       `json:"monthly_debt_payment"`
	Trajectory         Trajectory    `json:"trajectory"`

	// Synthetic is true when the result was generated with fixed demo
	// parameters instead of being computed for the advisor.
	Synthetic bool `json:"synthetic"`
}

// Analyze computes the full analysis of p under the advisor's assumptions and
// strategy, projecting years ahead.
//
// years must reach LongCheckpoint: a shorter horizon has no 30-year net worth
// and fails with ErrHorizonTooShort.
func Analyze(p Profile, adv Advisor, a AssumptionSet, s Strategy, years int) (AnalysisResult, error) {
	if years < LongCheckpoint {
		return AnalysisResult{}, fmt.Errorf("%w: %d years, need at least %d", ErrHorizonTooShort, years, LongCheckpoint)
	}
	t, err := Project(p, a, s, years)
	if err != nil {
		return AnalysisResult{}, err
	}
	ret, err := EstimateRetirementAge(p, a)
	if err != nil {
		return AnalysisResult{}, err
	}
	invest, repay := s.split(p.MonthlySurplus(), p.TotalDebt())
	r := AnalysisResult{
		Advisor:            adv,
		Assumptions:        a,
		Strategy:           s,
		Retirement:         ret,
		DebtPayoffMonths:   MonthsToPayoff(p.TotalDebt(), p.DebtInterestRate(), repay),
		NetWorth10:         t[ShortCheckpoint].NetWorth,
		NetWorth30:         t[LongCheckpoint].NetWorth,
		MonthlyInvestment:  invest,
		MonthlyDebtPayment: repay,
		Trajectory:         t,
	}
	return r, r.Validate()
}

// Validate checks that r is a well formed result, whatever produced it.
func (r AnalysisResult) Validate() error {
	if r.Advisor.Key == "" {
		return invalidf("analysis has no advisor key")
	}
	if err := r.Assumptions.Validate(); err != nil {
		return fmt.Errorf("analysis of %q: %w", r.Advisor.Key, err)
	}
	if !r.Strategy.valid() {
		return invalidf("analysis of %q: unknown strategy %d", r.Advisor.Key, int(r.Strategy))
	}
	if r.Trajectory.Horizon() < LongCheckpoint {
		return fmt.Errorf("%w: analysis of %q has %d years", ErrHorizonTooShort, r.Advisor.Key, r.Trajectory.Horizon())
	}
	for i, pt := range r.Trajectory {
		if pt.Year != i {
			return invalidf("analysis of %q: trajectory point %d is year %d", r.Advisor.Key, i, pt.Year)
		}
	}
	for _, v := range []float64{r.NetWorth10, r.NetWorth30, r.MonthlyInvestment, r.MonthlyDebtPayment} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidf("analysis of %q: value is not a number", r.Advisor.Key)
		}
	}
	if !r.Retirement.Reachable && r.Retirement.Age != UnreachableAge {
		return invalidf("analysis of %q: unreachable retirement with age %d", r.Advisor.Key, r.Retirement.Age)
	}
	return nil
}
