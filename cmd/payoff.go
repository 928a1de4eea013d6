package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type payoffCmd struct {
	debt    float64
	rate    float64
	payment float64
}

func (*payoffCmd) Name() string     { return "payoff" }
func (*payoffCmd) Synopsis() string { return "compute how long a debt takes to repay" }
func (*payoffCmd) Usage() string {
	return `nwc payoff -debt <balance> -debt-rate <rate> -payment <monthly>

  Computes the number of months needed to repay a debt with a fixed monthly
  payment.
`
}

func (c *payoffCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.debt, "debt", 0, "Debt balance.")
	f.Float64Var(&c.rate, "debt-rate", 0, "Annual interest rate, e.g. 0.055 for 5.5%.")
	f.Float64Var(&c.payment, "payment", 0, "Monthly payment.")
}

func (c *payoffCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, ok := loadConfig()
	if !ok {
		return subcommands.ExitFailure
	}
	for _, v := range []struct {
		name  string
		value float64
	}{{"-debt", c.debt}, {"-debt-rate", c.rate}, {"-payment", c.payment}} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) || v.value < 0 {
			fmt.Fprintf(os.Stderr, "Error: %s must be a non negative number, got %v\n", v.name, v.value)
			return subcommands.ExitUsageError
		}
	}

	printMarkdown(renderer.PayoffMarkdown(c.debt, c.rate, c.payment, cfg.Currency))
	return subcommands.ExitSuccess
}
