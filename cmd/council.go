package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/fred"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// councilCmd holds the flags for the 'council' subcommand.
type councilCmd struct {
	profile profileFlags
	json    bool
	offline bool
}

func (*councilCmd) Name() string     { return "council" }
func (*councilCmd) Synopsis() string { return "ask the advisor council for a consensus" }
func (*councilCmd) Usage() string {
	return `nwc council <profile flags> [-json] [-offline]

  Runs every configured advisor over the household in parallel and reconciles
  their retirement ages and net worth projections into a consensus, with a
  divergence score and the audit log of the session. Advisor assumptions are
  compared with the FRED reference rates unless -offline is set.
  See 'nwc topic council'.

Usage Examples:
$ nwc council -age 28 -income 6500 -expenses 4200 -debt 18000 -debt-rate 0.055 -savings 12000
$ nwc council -json -offline -age 40 -income 9000 -expenses 5000 -savings 150000

`
}

func (c *councilCmd) SetFlags(f *flag.FlagSet) {
	c.profile.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "Print the analyses and the consensus as JSON.")
	f.BoolVar(&c.offline, "offline", false, "Do not compare assumptions with FRED rates.")
}

func (c *councilCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, ok := loadConfig()
	if !ok {
		return subcommands.ExitFailure
	}
	p, err := c.profile.Profile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cl, err := cfg.Council.Council()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	cl.Currency = cfg.Currency

	fmt.Fprintf(os.Stderr, "Convening %d advisors...\n", len(cl.Analysts))
	s, err := cl.Run(ctx, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: council failed: %v\n", err)
		return subcommands.ExitFailure
	}
	if s.Report.Synthetic > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d advisors answered in demo mode.\n", s.Report.Synthetic)
	}

	if c.json {
		if err := networth.EncodeCouncil(os.Stdout, cfg.Currency, s.Results, s.Report); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	var checks []fred.Check
	if !c.offline {
		rates := fred.New(cfg.Fred.Client()).Rates(ctx)
		checks = fred.Compare(rates, s.Results)
	}
	printMarkdown(renderer.CouncilMarkdown(s, checks, cfg.Currency))
	return subcommands.ExitSuccess
}
