package networth

import (
	"errors"
	"math"
	"testing"
)

func TestProfile_Derived(t *testing.T) {
	p := scenarioProfile(t)

	if got, want := p.MonthlySurplus(), 2300.0; got != want {
		t.Errorf("MonthlySurplus() = %v, want %v", got, want)
	}
	if got, want := p.AnnualIncome(), 78000.0; got != want {
		t.Errorf("AnnualIncome() = %v, want %v", got, want)
	}
	if got, want := p.SavingsRate(), 2300.0/6500; !approx(got, want, 1e-9) {
		t.Errorf("SavingsRate() = %v, want %v", got, want)
	}
	if got, want := p.NetWorth(), -6000.0; got != want {
		t.Errorf("NetWorth() = %v, want %v", got, want)
	}
	if got, want := p.FireNumber(), 1260000.0; got != want {
		t.Errorf("FireNumber() = %v, want %v", got, want)
	}
	if got, want := p.DebtToIncome(), 0.2308; !approx(got, want, 0.0001) {
		t.Errorf("DebtToIncome() = %v, want ~%v", got, want)
	}
	if got, want := p.EmergencyFundMonths(), 12000.0/4200; !approx(got, want, 1e-9) {
		t.Errorf("EmergencyFundMonths() = %v, want %v", got, want)
	}
}

func TestProfile_DegenerateRatios(t *testing.T) {
	p := mustProfile(t, ProfileInput{Age: 40, TotalDebt: 5000, CurrentSavings: 1000})

	if got := p.SavingsRate(); got != 0 {
		t.Errorf("SavingsRate() without income = %v, want 0", got)
	}
	if got := p.DebtToIncome(); got != 0 {
		t.Errorf("DebtToIncome() without income = %v, want 0", got)
	}
	if got := p.EmergencyFundMonths(); got != 0 {
		t.Errorf("EmergencyFundMonths() without expenses = %v, want 0", got)
	}
	if got := p.FireNumber(); got != 0 {
		t.Errorf("FireNumber() without expenses = %v, want 0", got)
	}
}

func TestProfile_NegativeSurplus(t *testing.T) {
	p := mustProfile(t, ProfileInput{Age: 30, MonthlyIncome: 3000, MonthlyExpenses: 3500})
	if got, want := p.MonthlySurplus(), -500.0; got != want {
		t.Errorf("MonthlySurplus() = %v, want %v", got, want)
	}
	if got := p.SavingsRate(); got >= 0 {
		t.Errorf("SavingsRate() = %v, want negative", got)
	}
}

func TestNewProfile_Errors(t *testing.T) {
	testCases := []struct {
		name string
		in   ProfileInput
	}{
		{"negative age", ProfileInput{Age: -1}},
		{"negative income", ProfileInput{MonthlyIncome: -1}},
		{"negative expenses", ProfileInput{MonthlyExpenses: -1}},
		{"negative debt", ProfileInput{TotalDebt: -1}},
		{"negative savings", ProfileInput{CurrentSavings: -1}},
		{"nan income", ProfileInput{MonthlyIncome: math.NaN()}},
		{"infinite savings", ProfileInput{CurrentSavings: math.Inf(1)}},
		{"nan debt rate", ProfileInput{DebtInterestRate: math.NaN()}},
		{"unknown risk tolerance", ProfileInput{RiskTolerance: RiskTolerance(42)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProfile(tc.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("NewProfile(%+v) error = %v, want ErrInvalidInput", tc.in, err)
			}
		})
	}
}

func TestParseRiskTolerance(t *testing.T) {
	testCases := []struct {
		in      string
		want    RiskTolerance
		wantErr bool
	}{
		{"conservative", Conservative, false},
		{"moderate", Moderate, false},
		{"", Moderate, false},
		{"aggressive", Aggressive, false},
		{"yolo", 0, true},
	}
	for _, tc := range testCases {
		got, err := ParseRiskTolerance(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseRiskTolerance(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRiskTolerance(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if !tc.wantErr && tc.in != "" && got.String() != tc.in {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tc.in)
		}
	}
}
