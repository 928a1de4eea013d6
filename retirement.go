package networth

// UnreachableAge is the age reported by a Retirement that is not Reachable.
const UnreachableAge = 99

// retirementSearchYears bounds the retirement search.
const retirementSearchYears = 50

// retirementInvestShare is the share of the surplus assumed invested, the
// investment share of the Balanced strategy.
const retirementInvestShare = 0.60

// Retirement is the outcome of a retirement age search.
type Retirement struct {
	Age       int  `json:"age"`       // UnreachableAge when not Reachable
	Reachable bool `json:"reachable"` // false when the FIRE number is never met
}

// YearsFrom returns how many years separate the retirement from age.
func (r Retirement) YearsFrom(age int) (int, bool) {
	if !r.Reachable {
		return 0, false
	}
	return r.Age - age, true
}

var unreachable = Retirement{Age: UnreachableAge}

// EstimateRetirementAge returns the first age at which the household savings,
// growing at a.AnnualReturn with 60% of the monthly surplus invested, reach
// the FIRE number.
//
// Savings that already meet the FIRE number retire at the current age, even
// without surplus. Otherwise years 1 to 50 are searched in ascending order and
// the first crossing wins.
func EstimateRetirementAge(p Profile, a AssumptionSet) (Retirement, error) {
	if err := a.Validate(); err != nil {
		return Retirement{}, err
	}
	fire := p.FireNumber()
	if p.CurrentSavings() >= fire {
		return Retirement{Age: p.Age(), Reachable: true}, nil
	}
	invest := p.MonthlySurplus() * retirementInvestShare
	if invest <= 0 {
		return unreachable, nil
	}
	for years := 1; years <= retirementSearchYears; years++ {
		if futureValue(p.CurrentSavings(), invest, a.AnnualReturn, years) >= fire {
			return Retirement{Age: p.Age() + years, Reachable: true}, nil
		}
	}
	return unreachable, nil
}
