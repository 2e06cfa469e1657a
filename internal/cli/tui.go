package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"feona/internal/config"
	"feona/internal/logging"
	"feona/internal/session"
	"feona/internal/tui"

	"github.com/google/subcommands"
)

type tuiCmd struct {
	conf *config.Config
}

func (*tuiCmd) Name() string     { return "tui" }
func (*tuiCmd) Synopsis() string { return "browse the ledger interactively" }
func (*tuiCmd) Usage() string {
	return `feona tui

  Opens the interactive ledger browser. Keys: n/p cycle months, j/k
  cycle entries, a adds, u updates, d deletes, q quits. Esc cancels a
  guided entry, Enter confirms a step.
`
}

func (p *tuiCmd) SetFlags(_ *flag.FlagSet) {}

func (p *tuiCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger, closer, err := logging.OpenFile(p.conf.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return subcommands.ExitFailure
	}
	defer closer.Close()

	sess := session.New(store(p.conf))

	if err := tui.Run(sess, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)

		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
