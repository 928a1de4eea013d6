package renderer

import (
	"github.com/etnz/networth"
)

// RetirementMarkdown renders a retirement age estimate.
func RetirementMarkdown(p networth.Profile, a networth.AssumptionSet, ret networth.Retirement, cur string) string {
	r := newReport(cur)
	r.H1("Retirement Estimate").LF()
	r.table([]string{"Metric", "Value"}, [][]string{
		{"FIRE Number", r.whole(p.FireNumber())},
		{"Current Savings", r.money(p.CurrentSavings())},
		{"Monthly Investment", r.money(max(0, p.MonthlySurplus()*0.6))},
		{"Expected Return", networth.Ratio(a.AnnualReturn).String()},
		{"Retirement Age", retirement(ret)},
	})
	if n, ok := ret.YearsFrom(p.Age()); ok {
		if n == 0 {
			r.PlainText("Savings already cover 25 years of expenses.").LF()
		} else {
			r.PlainTextf("Financial independence in %d years.", n).LF()
		}
	} else {
		r.PlainText("Savings never reach the FIRE number: increase the monthly surplus.").LF()
	}
	return r.String()
}
