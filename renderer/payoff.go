package renderer

import (
	"github.com/etnz/networth"
)

// PayoffMarkdown renders a debt amortization summary.
func PayoffMarkdown(principal, annualRate, payment float64, cur string) string {
	r := newReport(cur)
	n := networth.MonthsToPayoff(principal, annualRate, payment)
	r.H1("Debt Payoff").LF()

	rows := [][]string{
		{"Principal", r.money(principal)},
		{"Annual Rate", networth.Ratio(annualRate).String()},
		{"Monthly Payment", r.money(payment)},
		{"Months to Payoff", months(n)},
	}
	if n != networth.NeverPaidOff && n > 0 {
		rows = append(rows, []string{"Total Paid (at most)", r.money(payment * float64(n))})
	}
	r.table([]string{"Metric", "Value"}, rows)
	if n == networth.NeverPaidOff {
		r.PlainTextf("A payment of %s does not cover the %s monthly interest.",
			r.money(payment), r.money(principal*annualRate/12)).LF()
	}
	return r.String()
}
