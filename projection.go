package networth

// MaxHorizon is the longest projection, in years, the engine accepts.
const MaxHorizon = 50

// YearPoint is the state of a household at a year boundary of a projection.
type YearPoint struct {
	Year         int     `json:"year"`
	Age          int     `json:"age"`
	Savings      float64 `json:"savings"`
	Debt         float64 `json:"debt"`
	NetWorth     float64 `json:"net_worth"`
	RealNetWorth float64 `json:"real_net_worth"` // NetWorth in today's purchasing power
}

// Trajectory is a year-indexed projection: Trajectory[y].Year == y.
type Trajectory []YearPoint

// At returns the point at year, and false if the trajectory does not reach it.
func (t Trajectory) At(year int) (YearPoint, bool) {
	if year < 0 || year >= len(t) {
		return YearPoint{}, false
	}
	return t[year], true
}

// Final returns the last point of the trajectory.
func (t Trajectory) Final() YearPoint {
	if len(t) == 0 {
		return YearPoint{}
	}
	return t[len(t)-1]
}

// Horizon is the number of projected years.
func (t Trajectory) Horizon() int { return len(t) - 1 }

// Project simulates the household month by month for years, allocating the
// monthly surplus according to s, and returns a snapshot at every year
// boundary. Point 0 is the current state with no growth applied.
//
// Each month savings compound at a.AnnualReturn/12 before receiving the
// investment share; debt accrues interest at the profile's rate and the debt
// share repays whatever exceeds that interest. Debt never goes below zero and
// an unused debt share is not redirected to savings within that month.
func Project(p Profile, a AssumptionSet, s Strategy, years int) (Trajectory, error) {
	if years < 0 || years > MaxHorizon {
		return nil, invalidf("years must be within [0, %d], got %d", MaxHorizon, years)
	}
	if !s.valid() {
		return nil, invalidf("unknown strategy: %d", int(s))
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	var (
		savings = p.CurrentSavings()
		debt    = p.TotalDebt()
		surplus = p.MonthlySurplus()
		rInvest = a.AnnualReturn / 12
		rDebt   = p.DebtInterestRate() / 12
	)

	t := make(Trajectory, 0, years+1)
	for year := 0; ; year++ {
		nw := savings - debt
		t = append(t, YearPoint{
			Year:         year,
			Age:          p.Age() + year,
			Savings:      savings,
			Debt:         debt,
			NetWorth:     nw,
			RealNetWorth: nw / a.deflator(year),
		})
		if year == years {
			break
		}
		for range 12 {
			invest, repay := s.split(surplus, debt)
			savings = savings*(1+rInvest) + invest
			if debt > 0 {
				interest := debt * rDebt
				principal := max(0, repay-interest)
				debt = max(0, debt-principal)
			}
		}
	}
	return t, nil
}

// Scenario is the projection of one strategy.
type Scenario struct {
	Strategy   Strategy
	Trajectory Trajectory
}

// Scenarios projects every strategy under the same assumptions, in the order
// of Strategies.
func Scenarios(p Profile, a AssumptionSet, years int) ([]Scenario, error) {
	res := make([]Scenario, 0, len(Strategies))
	for _, s := range Strategies {
		t, err := Project(p, a, s, years)
		if err != nil {
			return nil, err
		}
		res = append(res, Scenario{Strategy: s, Trajectory: t})
	}
	return res, nil
}
