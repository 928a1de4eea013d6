// Package cmd implements the nwc command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth/config"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&baselineCmd{}, "profile")
	c.Register(&healthCmd{}, "profile")
	c.Register(&projectCmd{}, "profile")
	c.Register(&retireCmd{}, "profile")
	c.Register(&payoffCmd{}, "profile")

	c.Register(&councilCmd{}, "council")
	c.Register(&ratesCmd{}, "council")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file. Defaults to nwc.yaml in the current directory, if any.")

// loadConfig reads the configuration and sets up the global logger. Errors
// are reported on stderr.
func loadConfig() (*config.Config, bool) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return nil, false
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		return nil, false
	}
	return cfg, true
}
