package fred

import "github.com/etnz/networth"

// Check compares one advisor's assumptions with reference rates.
type Check struct {
	Advisor          networth.Advisor
	InflationAssumed networth.Percent
	InflationActual  networth.Percent
	ReturnAssumed    networth.Percent
	Treasury10Y      networth.Percent
}

// InflationDelta is how much higher the assumed inflation is than the CPI.
func (c Check) InflationDelta() networth.Percent { return c.InflationAssumed - c.InflationActual }

// EquityPremium is the excess of the assumed market return over the
// risk-free 10-year treasury yield.
func (c Check) EquityPremium() networth.Percent { return c.ReturnAssumed - c.Treasury10Y }

// Compare checks every analysis' assumptions against r, in results order.
func Compare(r Rates, results []networth.AnalysisResult) []Check {
	checks := make([]Check, 0, len(results))
	for _, res := range results {
		checks = append(checks, Check{
			Advisor:          res.Advisor,
			InflationAssumed: networth.Ratio(res.Assumptions.AnnualInflation),
			InflationActual:  r.Inflation,
			ReturnAssumed:    networth.Ratio(res.Assumptions.AnnualReturn),
			Treasury10Y:      r.Treasury10Y,
		})
	}
	return checks
}
