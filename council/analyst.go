package council

import (
	"context"
	"math"

	"github.com/etnz/networth"
	"github.com/rotisserie/eris"
)

// Analyst produces one analysis of a profile from a persona's point of view.
//
// Implementations must be safe to call from their own goroutine and should
// return early when ctx is done.
type Analyst interface {
	Persona() Persona
	Analyze(ctx context.Context, p networth.Profile, years int) (networth.AnalysisResult, error)
}

// Engine returns an Analyst computing the persona's analysis with the
// projection engine.
func Engine(p Persona) Analyst { return engine{p} }

type engine struct{ persona Persona }

func (e engine) Persona() Persona { return e.persona }

func (e engine) Analyze(ctx context.Context, p networth.Profile, years int) (networth.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return networth.AnalysisResult{}, err
	}
	r, err := networth.Analyze(p, e.persona.Advisor(), e.persona.Assumptions, e.persona.Strategy, years)
	if err != nil {
		return networth.AnalysisResult{}, eris.Wrapf(err, "council: %s", e.persona.Key)
	}
	return r, nil
}

// Demo returns a synthetic analysis for the persona: the Balanced projection
// under the persona's assumptions, with the persona's demo split of the
// surplus as monthly recommendation. The result is flagged Synthetic.
func Demo(p networth.Profile, persona Persona, years int) (networth.AnalysisResult, error) {
	r, err := networth.Analyze(p, persona.Advisor(), persona.Assumptions, networth.Balanced, years)
	if err != nil {
		return networth.AnalysisResult{}, eris.Wrapf(err, "council: demo %s", persona.Key)
	}
	surplus := p.MonthlySurplus()
	r.MonthlyInvestment = math.Round(surplus * persona.DemoInvestShare)
	r.MonthlyDebtPayment = math.Round(surplus * (1 - persona.DemoInvestShare))
	r.Synthetic = true
	return r, nil
}
