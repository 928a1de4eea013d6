package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/networth/cmd"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	status := commander.Execute(context.Background())
	_ = zap.L().Sync()
	os.Exit(int(status))
}
