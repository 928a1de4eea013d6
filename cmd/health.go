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

type healthCmd struct {
	profile profileFlags
}

func (*healthCmd) Name() string     { return "health" }
func (*healthCmd) Synopsis() string { return "score the financial health of a household" }
func (*healthCmd) Usage() string {
	return `nwc health <profile flags>

  Scores the household from 0 to 100 on savings rate, emergency fund, debt
  load, investment mix and cash flow. See 'nwc topic health'.
`
}

func (c *healthCmd) SetFlags(f *flag.FlagSet) {
	c.profile.SetFlags(f)
}

func (c *healthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, ok := loadConfig(); !ok {
		return subcommands.ExitFailure
	}
	p, err := c.profile.Profile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.HealthMarkdown(networth.Score(p)))
	return subcommands.ExitSuccess
}
