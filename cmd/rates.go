package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth/fred"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type ratesCmd struct {
	json bool
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display reference economic rates from FRED" }
func (*ratesCmd) Usage() string {
	return `nwc rates [-json]

  Displays the latest CPI inflation, 10-year treasury yield and federal funds
  rate from FRED, and the savings rate they imply. Default rates are shown
  when no FRED API key is configured or FRED cannot be reached.
  See 'nwc topic config'.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the rates as JSON.")
}

func (c *ratesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, ok := loadConfig()
	if !ok {
		return subcommands.ExitFailure
	}

	rates := fred.New(cfg.Fred.Client()).Rates(ctx)
	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rates); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RatesMarkdown(rates))
	return subcommands.ExitSuccess
}
