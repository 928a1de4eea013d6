package networth

// Baseline summarizes a profile as it stands today, before any projection.
type Baseline struct {
	MonthlySurplus      float64 `json:"monthly_surplus"`
	SavingsRatePct      float64 `json:"savings_rate_pct"` // one decimal
	NetWorth            float64 `json:"net_worth"`
	DebtPayoffMonths    int     `json:"debt_payoff_months"`
	MonthlyDebtPayment  float64 `json:"monthly_debt_payment"`
	MonthlyInvestment   float64 `json:"monthly_investment"`
	EmergencyFundMonths float64 `json:"emergency_fund_months"` // one decimal
	FireNumber          float64 `json:"fire_number"`
	DebtToIncome        float64 `json:"debt_to_income"` // two decimals
}

// NewBaseline computes the baseline of p.
//
// While there is debt, the suggested payment is half of the surplus, but never
// less than 10% of income; what remains of the surplus is invested.
func NewBaseline(p Profile) Baseline {
	surplus := p.MonthlySurplus()
	var payment float64
	if p.TotalDebt() > 0 {
		payment = max(p.MonthlyIncome()*0.10, min(surplus*0.5, surplus))
	}
	return Baseline{
		MonthlySurplus:      surplus,
		SavingsRatePct:      round(p.SavingsRate()*100, 1),
		NetWorth:            p.NetWorth(),
		DebtPayoffMonths:    MonthsToPayoff(p.TotalDebt(), p.DebtInterestRate(), payment),
		MonthlyDebtPayment:  payment,
		MonthlyInvestment:   max(0, surplus-payment),
		EmergencyFundMonths: round(p.EmergencyFundMonths(), 1),
		FireNumber:          p.FireNumber(),
		DebtToIncome:        round(p.DebtToIncome(), 2),
	}
}
