package main

import (
	"context"
	"flag"
	"os"
	"path"

	"feona/internal/cli"
	"feona/internal/config"
	"feona/internal/logging"

	"github.com/google/subcommands"
)

func main() {
	configFile := flag.String("config", "", "Path to the config file (YAML). Defaults to the XDG config directory.")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	flag.Parse()

	conf, err := config.Load(*configFile)
	if err != nil {
		logging.NewCLI().Error(err)
		os.Exit(1)
	}

	cli.Register(commander, &conf)

	os.Exit(int(commander.Execute(context.Background())))
}
