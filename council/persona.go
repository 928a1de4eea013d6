package council

import (
	"github.com/etnz/networth"
	"github.com/rotisserie/eris"
)

// Persona is an advisor's fixed point of view: the economic assumptions it
// believes in and the allocation strategy it recommends.
type Persona struct {
	Key         string
	Name        string
	Title       string
	Assumptions networth.AssumptionSet
	Strategy    networth.Strategy

	// DemoInvestShare is the share of the surplus a synthetic result of this
	// persona recommends investing, the rest going to debt.
	DemoInvestShare float64
}

// Advisor identifies the persona in analysis results.
func (p Persona) Advisor() networth.Advisor {
	return networth.Advisor{Key: p.Key, Persona: p.Name, Title: p.Title}
}

// Validate reports whether the persona can run an analysis.
func (p Persona) Validate() error {
	if p.Key == "" {
		return eris.Wrapf(networth.ErrInvalidInput, "council: persona %q has no key", p.Name)
	}
	if p.DemoInvestShare < 0 || p.DemoInvestShare > 1 {
		return eris.Wrapf(networth.ErrInvalidInput, "council: persona %q: demo invest share %v out of [0, 1]", p.Key, p.DemoInvestShare)
	}
	if err := p.Assumptions.Validate(); err != nil {
		return eris.Wrapf(err, "council: persona %q", p.Key)
	}
	return nil
}

// The default council.
var (
	Growth = Persona{
		Key:             "growth",
		Name:            "Alex Chen",
		Title:           "Growth Optimizer",
		Assumptions:     networth.AssumptionSet{AnnualReturn: 0.07, AnnualInflation: 0.025},
		Strategy:        networth.InvestFirst,
		DemoInvestShare: 0.6,
	}
	Safety = Persona{
		Key:             "safety",
		Name:            "Morgan Wells",
		Title:           "Safety Architect",
		Assumptions:     networth.AssumptionSet{AnnualReturn: 0.05, AnnualInflation: 0.035},
		Strategy:        networth.DebtFirst,
		DemoInvestShare: 0.2,
	}
	Planner = Persona{
		Key:             "planner",
		Name:            "Jordan Rivera",
		Title:           "Evidence-Based Planner",
		Assumptions:     networth.AssumptionSet{AnnualReturn: 0.065, AnnualInflation: 0.03},
		Strategy:        networth.Balanced,
		DemoInvestShare: 0.6,
	}
)

// Personas returns the default council, in report order.
func Personas() []Persona { return []Persona{Growth, Safety, Planner} }
