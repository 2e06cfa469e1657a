package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"feona/internal/config"
	"feona/internal/ledger"

	"github.com/google/subcommands"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const listSeparator = "------------------------------------------------------------"

type listCmd struct {
	conf   *config.Config
	date   string
	full   bool
	search string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list one month of the ledger" }
func (*listCmd) Usage() string {
	return `feona list [-date YYYY-MM-DD] [-full] [-search <term>]

  Lists the entries of the month the given date falls into, with their
  positional indices as used by "feona del". Without -date, the current
  month is listed. -full appends the month sum; -search fuzzy-filters
  by description while keeping the original indices.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "date", "", "Any date inside the month to list. Defaults to today.")
	f.BoolVar(&p.full, "full", false, "Also print the month sum.")
	f.StringVar(&p.search, "search", "", "Fuzzy-filter entries by description.")
}

func (p *listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	date, err := ledger.DateOrToday(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return subcommands.ExitFailure
	}

	s := store(p.conf)
	m := ledger.MonthOf(date)

	txs, err := s.Load(m)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return subcommands.ExitFailure
	}

	fmt.Println(listSeparator)

	for i, tx := range txs {
		if p.search != "" && !fuzzy.MatchFold(p.search, tx.Description) {
			continue
		}

		fmt.Printf("%3d  %v\n", i, tx)
	}

	fmt.Println(listSeparator)

	if p.full {
		sum, err := s.SumAmounts(m)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)

			return subcommands.ExitFailure
		}

		fmt.Printf("Sum:\t\t%7v\n", ledger.FormatAmount(sum))
	}

	return subcommands.ExitSuccess
}
