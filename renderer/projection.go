package renderer

import (
	"fmt"

	"github.com/etnz/networth"
)

// milestones are the years shown in projection tables, in addition to the
// last one.
var milestones = []int{0, 1, 5, 10, 15, 20, 25, 30, 40, 50}

// ProjectionMarkdown renders the net worth of one or more strategies side by
// side, in nominal and real terms.
func ProjectionMarkdown(p networth.Profile, a networth.AssumptionSet, scenarios []networth.Scenario, cur string) string {
	r := newReport(cur)
	r.H1("Net Worth Projection").LF()
	r.PlainTextf("Return %s, inflation %s, monthly surplus %s.",
		networth.Ratio(a.AnnualReturn), networth.Ratio(a.AnnualInflation), r.money(p.MonthlySurplus())).LF()
	if len(scenarios) == 0 {
		return r.String()
	}

	header := []string{"Year", "Age"}
	for _, s := range scenarios {
		header = append(header, s.Strategy.Title(), "(today's "+cur+")")
	}
	var rows [][]string
	for _, year := range years(scenarios[0].Trajectory.Horizon()) {
		row := []string{fmt.Sprintf("%d", year), fmt.Sprintf("%d", p.Age()+year)}
		for _, s := range scenarios {
			pt, _ := s.Trajectory.At(year)
			row = append(row, r.whole(pt.NetWorth), r.whole(pt.RealNetWorth))
		}
		rows = append(rows, row)
	}
	r.table(header, rows)

	if len(scenarios) > 1 {
		best, worst := scenarios[0], scenarios[0]
		for _, s := range scenarios[1:] {
			if s.Trajectory.Final().NetWorth > best.Trajectory.Final().NetWorth {
				best = s
			}
			if s.Trajectory.Final().NetWorth < worst.Trajectory.Final().NetWorth {
				worst = s
			}
		}
		gap := networth.M(best.Trajectory.Final().NetWorth, cur).Sub(networth.M(worst.Trajectory.Final().NetWorth, cur))
		r.PlainTextf("%s ends highest at %s after %d years, %s over %s.",
			best.Strategy.Title(), r.whole(best.Trajectory.Final().NetWorth), best.Trajectory.Horizon(),
			gap.SignedString(), worst.Strategy.Title()).LF()
	}
	return r.String()
}

// years returns the milestones up to horizon, always ending with horizon.
func years(horizon int) []int {
	var res []int
	for _, y := range milestones {
		if y < horizon {
			res = append(res, y)
		}
	}
	return append(res, horizon)
}
