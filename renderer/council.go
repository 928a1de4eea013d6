package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/networth"
	"github.com/etnz/networth/council"
	"github.com/etnz/networth/fred"
)

// CouncilMarkdown renders a council session: every analysis, the consensus
// and the audit log. checks are optional.
func CouncilMarkdown(s *council.Session, checks []fred.Check, cur string) string {
	r := newReport(cur)
	r.H1("Advisor Council").LF()

	var rows [][]string
	for _, a := range s.Results {
		name := a.Advisor.String()
		if a.Synthetic {
			name += " *(demo)*"
		}
		rows = append(rows, []string{
			name,
			a.Strategy.Title(),
			networth.Ratio(a.Assumptions.AnnualReturn).String(),
			networth.Ratio(a.Assumptions.AnnualInflation).String(),
			retirement(a.Retirement),
			months(a.DebtPayoffMonths),
			r.whole(a.NetWorth10),
			r.whole(a.NetWorth30),
		})
	}
	r.table([]string{"Advisor", "Strategy", "Return", "Inflation", "Retire", "Debt Free", "10 Years", "30 Years"}, rows)

	rep := s.Report
	r.H2f("Consensus: %s divergence (%.1f)", rep.DivergenceLevel, rep.DivergenceScore).LF()
	var crows [][]string
	if rep.RetirementAge.Defined() {
		m := rep.RetirementAge
		crows = append(crows, []string{"Retirement Age", fmt.Sprintf("%.1f", m.Consensus), fmt.Sprintf("%.0f to %.0f", m.Min, m.Max), fmt.Sprintf("%.1f%%", m.CV)})
	} else {
		crows = append(crows, []string{"Retirement Age", "unreachable", "", ""})
	}
	for _, x := range []struct {
		name string
		m    networth.Metric
	}{
		{"Net Worth at 10", rep.NetWorth10},
		{"Net Worth at 30", rep.NetWorth30},
	} {
		spread := networth.M(x.m.Max, cur).Sub(networth.M(x.m.Min, cur))
		crows = append(crows, []string{x.name, r.whole(x.m.Consensus), r.whole(x.m.Min) + " to " + r.whole(x.m.Max) + " (" + spread.Whole() + ")", fmt.Sprintf("%.1f%%", x.m.CV)})
	}
	r.table([]string{"Metric", "Consensus", "Range", "CV"}, crows)

	var notes []string
	if rep.Synthetic > 0 {
		notes = append(notes, fmt.Sprintf("%d of %d analyses are synthetic demo results.", rep.Synthetic, rep.Analyses))
	}
	if rep.Unreachable > 0 {
		notes = append(notes, fmt.Sprintf("%d advisors see no retirement within 50 years; they are left out of the retirement consensus.", rep.Unreachable))
	}
	if len(notes) > 0 {
		r.BulletList(notes...).LF()
	}

	if len(checks) > 0 {
		r.H2("Assumptions vs Market Data").LF()
		var vrows [][]string
		for _, c := range checks {
			vrows = append(vrows, []string{
				c.Advisor.Persona,
				c.InflationAssumed.String(),
				c.InflationActual.String(),
				c.InflationDelta().SignedString(),
				c.ReturnAssumed.String(),
				c.Treasury10Y.String(),
				c.EquityPremium().SignedString(),
			})
		}
		r.table([]string{"Advisor", "Inflation", "CPI", "Delta", "Return", "10Y Treasury", "Equity Premium"}, vrows)
	}

	r.PlainText(LogMarkdown(s.Log))
	return r.String()
}

// LogMarkdown renders an audit log.
func LogMarkdown(log council.Log) string {
	r := &logRenderer{Builder: &strings.Builder{}}
	r.Printf("## Audit Log\n\n")
	r.Printf("| Time | Event | Advisor | Detail |\n")
	r.Printf("|:---|:---|:---|:---|\n")
	for _, e := range log {
		r.Printf("| %s | %s | %s | %s |\n", e.Time.Format(time.TimeOnly), e.Kind, e.Advisor, escape(e.Detail))
	}
	return r.String()
}

// logRenderer formats the audit log into a markdown string.
type logRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *logRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// escape keeps s on one table cell.
func escape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
