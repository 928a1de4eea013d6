package networth

import "math"

// AssumptionSet holds the exogenous economic assumptions of one analysis.
type AssumptionSet struct {
	AnnualReturn    float64 `json:"annual_return"`    // expected market return, e.g. 0.07
	AnnualInflation float64 `json:"annual_inflation"` // e.g. 0.025
}

// Validate reports whether the assumptions can be fed to the engine.
func (a AssumptionSet) Validate() error {
	if !finite(a.AnnualReturn) {
		return invalidf("annual return is not a number: %v", a.AnnualReturn)
	}
	if a.AnnualReturn <= -1 {
		return invalidf("annual return must be greater than -100%%, got %v", a.AnnualReturn)
	}
	if !finite(a.AnnualInflation) {
		return invalidf("annual inflation is not a number: %v", a.AnnualInflation)
	}
	if a.AnnualInflation <= -1 {
		return invalidf("annual inflation must be greater than -100%%, got %v", a.AnnualInflation)
	}
	return nil
}

// deflator returns the factor that converts a nominal value at year into
// today's purchasing power.
func (a AssumptionSet) deflator(year int) float64 {
	return math.Pow(1+a.AnnualInflation, float64(year))
}
