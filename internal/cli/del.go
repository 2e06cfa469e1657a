package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"feona/internal/config"
	"feona/internal/ledger"

	"github.com/google/subcommands"
)

type delCmd struct {
	conf *config.Config
	date string
}

func (*delCmd) Name() string     { return "del" }
func (*delCmd) Synopsis() string { return "delete one ledger entry by index" }
func (*delCmd) Usage() string {
	return `feona del [-date YYYY-MM-DD] <index>

  Deletes the entry at the given positional index of the month's
  date-sorted list, as printed by "feona list". Without -date, the
  current month is used.
`
}

func (p *delCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "date", "", "Any date inside the month. Defaults to today.")
}

func (p *delCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one argument: <index>")

		return subcommands.ExitUsageError
	}

	index, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid index %q: %v\n", f.Arg(0), err)

		return subcommands.ExitFailure
	}

	date, err := ledger.DateOrToday(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return subcommands.ExitFailure
	}

	if err := store(p.conf).RemoveAt(ledger.MonthOf(date), index); err != nil {
		fmt.Fprintln(os.Stderr, err)

		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
