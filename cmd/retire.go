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

type retireCmd struct {
	profile     profileFlags
	assumptions assumptionFlags
}

func (*retireCmd) Name() string     { return "retire" }
func (*retireCmd) Synopsis() string { return "estimate the age of financial independence" }
func (*retireCmd) Usage() string {
	return `nwc retire <profile flags> [-return <r>]

  Estimates the first age at which savings reach 25 times the annual
  expenses. See 'nwc topic retirement'.
`
}

func (c *retireCmd) SetFlags(f *flag.FlagSet) {
	c.profile.SetFlags(f)
	c.assumptions.SetFlags(f)
}

func (c *retireCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	ret, err := networth.EstimateRetirementAge(p, a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.RetirementMarkdown(p, a, ret, cfg.Currency))
	return subcommands.ExitSuccess
}
