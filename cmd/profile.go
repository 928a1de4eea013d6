package cmd

import (
	"flag"

	"github.com/etnz/networth"
	"github.com/rotisserie/eris"
)

// profileFlags are the household flags shared by every command that analyzes
// a profile.
type profileFlags struct {
	age      int
	income   float64
	expenses float64
	debt     float64
	debtRate float64
	savings  float64
	risk     string
}

func (p *profileFlags) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.age, "age", 30, "Current age in years.")
	f.Float64Var(&p.income, "income", 0, "Monthly take-home income.")
	f.Float64Var(&p.expenses, "expenses", 0, "Monthly expenses.")
	f.Float64Var(&p.debt, "debt", 0, "Total debt balance.")
	f.Float64Var(&p.debtRate, "debt-rate", 0, "Annual debt interest rate, e.g. 0.055 for 5.5%.")
	f.Float64Var(&p.savings, "savings", 0, "Current savings and investments.")
	f.StringVar(&p.risk, "risk", "moderate", "Risk tolerance: conservative, moderate or aggressive.")
}

// Profile validates the flags into a profile.
func (p *profileFlags) Profile() (networth.Profile, error) {
	risk, err := networth.ParseRiskTolerance(p.risk)
	if err != nil {
		return networth.Profile{}, eris.Wrap(err, "invalid -risk")
	}
	profile, err := networth.NewProfile(networth.ProfileInput{
		Age:              p.age,
		MonthlyIncome:    p.income,
		MonthlyExpenses:  p.expenses,
		TotalDebt:        p.debt,
		DebtInterestRate: p.debtRate,
		CurrentSavings:   p.savings,
		RiskTolerance:    risk,
	})
	if err != nil {
		return networth.Profile{}, eris.Wrap(err, "invalid profile")
	}
	return profile, nil
}

// assumptionFlags override the configured market assumptions.
type assumptionFlags struct {
	ret       float64
	inflation float64
}

func (a *assumptionFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&a.ret, "return", 0, "Expected annual market return, e.g. 0.065. Defaults to the configuration.")
	f.Float64Var(&a.inflation, "inflation", 0, "Expected annual inflation, e.g. 0.03. Defaults to the configuration.")
}

// Assumptions applies the flags explicitly set on f on top of def.
func (a *assumptionFlags) Assumptions(f *flag.FlagSet, def networth.AssumptionSet) networth.AssumptionSet {
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "return":
			def.AnnualReturn = a.ret
		case "inflation":
			def.AnnualInflation = a.inflation
		}
	})
	return def
}
