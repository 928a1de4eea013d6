package networth

import (
	"math"
	"testing"
)

// scenarioProfile is the reference household used across tests.
func scenarioProfile(t *testing.T) Profile {
	t.Helper()
	return mustProfile(t, ProfileInput{
		Age:              28,
		MonthlyIncome:    6500,
		MonthlyExpenses:  4200,
		TotalDebt:        18000,
		DebtInterestRate: 0.055,
		CurrentSavings:   12000,
		RiskTolerance:    Moderate,
	})
}

func mustProfile(t *testing.T, in ProfileInput) Profile {
	t.Helper()
	p, err := NewProfile(in)
	if err != nil {
		t.Fatalf("NewProfile(%+v) failed: %v", in, err)
	}
	return p
}

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

func approx(got, want, tolerance float64) bool {
	return math.Abs(got-want) <= tolerance
}
