package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	profile     profileFlags
	assumptions assumptionFlags
	strategy    string
	years       int
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the net worth of a household year by year" }
func (*projectCmd) Usage() string {
	return `nwc project <profile flags> [-strategy <strategy>] [-years <n>] [-return <r>] [-inflation <i>]

  Simulates the household month by month and displays its net worth at
  milestone years, in nominal terms and in today's money. Without -strategy,
  every strategy is shown side by side. See 'nwc topic strategies'.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	c.profile.SetFlags(f)
	c.assumptions.SetFlags(f)
	f.StringVar(&c.strategy, "strategy", "", "Strategy to project: debt_first, invest_first or balanced. All of them by default.")
	f.IntVar(&c.years, "years", 0, "Number of years to project. Defaults to the configuration.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, ok := loadConfig()
	if !ok {
		return subcommands.ExitFailure
	}
	p, err := c.profile.Profile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a := c.assumptions.Assumptions(f, cfg.Projection.Assumptions())
	years := c.years
	if years == 0 {
		years = cfg.Projection.Years
	}

	var scenarios []networth.Scenario
	if c.strategy == "" {
		scenarios, err = networth.Scenarios(p, a, years)
	} else {
		var s networth.Strategy
		if s, err = networth.ParseStrategy(c.strategy); err == nil {
			var t networth.Trajectory
			t, err = networth.Project(p, a, s, years)
			scenarios = []networth.Scenario{{Strategy: s, Trajectory: t}}
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.ProjectionMarkdown(p, a, scenarios, cfg.Currency))
	return subcommands.ExitSuccess
}
