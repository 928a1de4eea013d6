package networth

import "math"

// fireMultiple is the number of years of expenses a portfolio must hold to
// sustain a 4% withdrawal rate.
const fireMultiple = 25

// ProfileInput holds the raw fields of a household profile, as entered by a
// user. It is validated by NewProfile.
type ProfileInput struct {
	Age              int
	MonthlyIncome    float64
	MonthlyExpenses  float64
	TotalDebt        float64
	DebtInterestRate float64 // annual nominal rate, e.g. 0.055
	CurrentSavings   float64
	RiskTolerance    RiskTolerance
}

// Profile describes the financial state of one household.
//
// A Profile is immutable: fields are only readable, and every derived ratio is
// recomputed on each call. Changing a value means building a new Profile.
type Profile struct {
	in ProfileInput
}

// NewProfile validates in and returns the corresponding Profile.
func NewProfile(in ProfileInput) (Profile, error) {
	if in.Age < 0 {
		return Profile{}, invalidf("age must not be negative, got %d", in.Age)
	}
	amounts := []struct {
		name  string
		value float64
	}{
		{"monthly income", in.MonthlyIncome},
		{"monthly expenses", in.MonthlyExpenses},
		{"total debt", in.TotalDebt},
		{"current savings", in.CurrentSavings},
	}
	for _, a := range amounts {
		if !finite(a.value) {
			return Profile{}, invalidf("%s is not a number: %v", a.name, a.value)
		}
		if a.value < 0 {
			return Profile{}, invalidf("%s must not be negative, got %v", a.name, a.value)
		}
	}
	if !finite(in.DebtInterestRate) {
		return Profile{}, invalidf("debt interest rate is not a number: %v", in.DebtInterestRate)
	}
	if in.RiskTolerance.String() == "unknown" {
		return Profile{}, invalidf("unknown risk tolerance: %d", int(in.RiskTolerance))
	}
	return Profile{in: in}, nil
}

func (p Profile) Age() int                     { return p.in.Age }
func (p Profile) MonthlyIncome() float64       { return p.in.MonthlyIncome }
func (p Profile) MonthlyExpenses() float64     { return p.in.MonthlyExpenses }
func (p Profile) TotalDebt() float64           { return p.in.TotalDebt }
func (p Profile) DebtInterestRate() float64    { return p.in.DebtInterestRate }
func (p Profile) CurrentSavings() float64      { return p.in.CurrentSavings }
func (p Profile) RiskTolerance() RiskTolerance { return p.in.RiskTolerance }

// Input returns a copy of the fields the profile was built from.
func (p Profile) Input() ProfileInput { return p.in }

// MonthlySurplus is income minus expenses. It is negative when the household
// spends more than it earns.
func (p Profile) MonthlySurplus() float64 { return p.in.MonthlyIncome - p.in.MonthlyExpenses }

// AnnualIncome is twelve months of income.
func (p Profile) AnnualIncome() float64 { return p.in.MonthlyIncome * 12 }

// SavingsRate is the surplus as a ratio of income, 0 without income.
func (p Profile) SavingsRate() float64 {
	if p.in.MonthlyIncome <= 0 {
		return 0
	}
	return p.MonthlySurplus() / p.in.MonthlyIncome
}

// NetWorth is savings minus debt.
func (p Profile) NetWorth() float64 { return p.in.CurrentSavings - p.in.TotalDebt }

// DebtToIncome is the debt as a ratio of annual income, 0 without income.
func (p Profile) DebtToIncome() float64 {
	annual := p.AnnualIncome()
	if annual <= 0 {
		return 0
	}
	return p.in.TotalDebt / annual
}

// EmergencyFundMonths is how many months of expenses the savings cover, 0
// without expenses.
func (p Profile) EmergencyFundMonths() float64 {
	if p.in.MonthlyExpenses <= 0 {
		return 0
	}
	return p.in.CurrentSavings / p.in.MonthlyExpenses
}

// FireNumber is the portfolio size required for financial independence:
// 25 times the annual expenses.
func (p Profile) FireNumber() float64 { return p.in.MonthlyExpenses * 12 * fireMultiple }

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
