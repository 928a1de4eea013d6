package renderer

import (
	"fmt"

	"github.com/etnz/networth"
)

// BaselineMarkdown renders the current financial position of a profile.
func BaselineMarkdown(p networth.Profile, b networth.Baseline, cur string) string {
	r := newReport(cur)
	r.H1f("Financial Baseline at %d", p.Age()).LF()

	r.table([]string{"Metric", "Value"}, [][]string{
		{"Monthly Income", r.money(p.MonthlyIncome())},
		{"Monthly Expenses", r.money(p.MonthlyExpenses())},
		{"Monthly Surplus", r.money(b.MonthlySurplus)},
		{"Savings Rate", networth.Percent(b.SavingsRatePct).String()},
		{"Net Worth", r.money(b.NetWorth)},
		{"Emergency Fund", fmt.Sprintf("%.1f months", b.EmergencyFundMonths)},
		{"Debt to Income", fmt.Sprintf("%.2f", b.DebtToIncome)},
		{"FIRE Number", r.whole(b.FireNumber)},
	})

	if surplus := networth.M(b.MonthlySurplus, cur); surplus.IsNegative() {
		r.PlainTextf("Expenses exceed income by %s a month: savings are drawn down.",
			networth.M(0, cur).Sub(surplus)).LF()
	}

	if p.TotalDebt() > 0 {
		r.H2("Suggested Split").LF()
		r.table([]string{"Allocation", "Monthly"}, [][]string{
			{"Debt Payment", r.money(b.MonthlyDebtPayment)},
			{"Investment", r.money(b.MonthlyInvestment)},
		})
		r.PlainTextf("Debt of %s at %s is repaid in %s.",
			r.money(p.TotalDebt()), networth.Ratio(p.DebtInterestRate()), months(b.DebtPayoffMonths)).LF()
	}
	return r.String()
}
