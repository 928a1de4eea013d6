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

// baselineCmd holds the flags for the 'baseline' subcommand.
type baselineCmd struct {
	profile profileFlags
}

func (*baselineCmd) Name() string     { return "baseline" }
func (*baselineCmd) Synopsis() string { return "display the current financial position of a household" }
func (*baselineCmd) Usage() string {
	return `nwc baseline <profile flags>

  Displays the monthly surplus, savings rate, net worth, emergency fund,
  debt-to-income ratio and FIRE number of a household, and a suggested split
  of the surplus between debt payment and investment.

Usage Examples:
$ nwc baseline -age 28 -income 6500 -expenses 4200 -debt 18000 -debt-rate 0.055 -savings 12000

`
}

func (c *baselineCmd) SetFlags(f *flag.FlagSet) {
	c.profile.SetFlags(f)
}

func (c *baselineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, ok := loadConfig()
	if !ok {
		return subcommands.ExitFailure
	}
	p, err := c.profile.Profile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.BaselineMarkdown(p, networth.NewBaseline(p), cfg.Currency))
	return subcommands.ExitSuccess
}
