package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"feona/internal/config"
	"feona/internal/ledger"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	conf   *config.Config
	date   string
	repeat string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record one expense in the ledger" }
func (*addCmd) Usage() string {
	return `feona add [-date YYYY-MM-DD] [-repeat <tag>] <amount> <description>

  Records an expense. The amount is entered as a positive magnitude
  and stored negated, so month sums represent a net balance. Without
  -date, today is used.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "date", "", "The entry date. Defaults to today.")
	f.StringVar(&p.repeat, "repeat", "", "Repeat tag, e.g. 3d, 2w, 1m, 1y.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "expected exactly two arguments: <amount> <description>")

		return subcommands.ExitUsageError
	}

	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid amount %q: %v\n", f.Arg(0), err)

		return subcommands.ExitFailure
	}

	date, err := ledger.DateOrToday(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return subcommands.ExitFailure
	}

	repeat, err := ledger.ParseRepeat(p.repeat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return subcommands.ExitFailure
	}

	tx := ledger.Transaction{
		Date:        date,
		Amount:      amount.Neg(),
		Description: f.Arg(1),
		Repeat:      repeat,
	}

	if err := store(p.conf).Add(tx); err != nil {
		fmt.Fprintln(os.Stderr, err)

		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
