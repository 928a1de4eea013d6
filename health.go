package networth

import "fmt"

// Health dimension names.
const (
	SavingsRateDimension   = "Savings Rate"
	EmergencyFundDimension = "Emergency Fund"
	DebtLoadDimension      = "Debt Load"
	InvestmentMixDimension = "Investment Mix"
	CashFlowDimension      = "Cash Flow"
	OverallDimension       = "Overall"
)

// Benchmarks for a full score.
const (
	targetSavingsRate   = 20.0 // percent of income
	targetEmergencyFund = 6.0  // months of expenses
	targetCashFlow      = 30.0 // percent of income
)

// Dimension is one scored aspect of financial health.
type Dimension struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`  // in [0, 100], one decimal
	Weight float64 `json:"weight"` // contribution to the overall score
}

// HealthScore is the five-dimension financial health rubric of a profile.
type HealthScore struct {
	Dimensions []Dimension `json:"dimensions"`
	Overall    float64     `json:"overall"` // weighted sum, in [0, 100], one decimal
}

// Get returns the score of the named dimension, including OverallDimension.
func (h HealthScore) Get(name string) (float64, bool) {
	if name == OverallDimension {
		return h.Overall, true
	}
	for _, d := range h.Dimensions {
		if d.Name == name {
			return d.Score, true
		}
	}
	return 0, false
}

// Score maps the profile ratios onto the health rubric.
//
// Each dimension is clipped to [0, 100]; the overall score is the weighted sum
// of the unrounded dimension scores. Weights sum to 1.
func Score(p Profile) HealthScore {
	sr := p.SavingsRate() * 100
	invested := p.CurrentSavings() + p.TotalDebt()
	mix := 100.0
	if invested > 0 {
		mix = p.CurrentSavings() / invested * 100
	}

	raw := []Dimension{
		{SavingsRateDimension, sr / targetSavingsRate * 100, 0.25},
		{EmergencyFundDimension, p.EmergencyFundMonths() / targetEmergencyFund * 100, 0.20},
		{DebtLoadDimension, 100 - p.DebtToIncome()*100, 0.20},
		{InvestmentMixDimension, mix, 0.15},
		{CashFlowDimension, sr / targetCashFlow * 100, 0.20},
	}

	var h HealthScore
	var overall float64
	for _, d := range raw {
		d.Score = clip(d.Score)
		overall += d.Score * d.Weight
		d.Score = round(d.Score, 1)
		h.Dimensions = append(h.Dimensions, d)
	}
	h.Overall = round(clip(overall), 1)
	return h
}

func (d Dimension) String() string { return fmt.Sprintf("%s: %.1f", d.Name, d.Score) }

func clip(f float64) float64 { return min(100, max(0, f)) }
