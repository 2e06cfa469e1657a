package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"feona/internal/config"
	"feona/internal/export"
	"feona/internal/ledger"

	"github.com/google/subcommands"
)

type exportCmd struct {
	conf   *config.Config
	date   string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export one month to an XLSX workbook" }
func (*exportCmd) Usage() string {
	return `feona export [-date YYYY-MM-DD] [-o <file.xlsx>]

  Writes the month's entries and their sum to an XLSX workbook.
  Without -o, the file is named after the month label, e.g.
  "2024-03.xlsx".
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "date", "", "Any date inside the month to export. Defaults to today.")
	f.StringVar(&p.output, "o", "", "Output file name.")
}

func (p *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	sum, err := s.SumAmounts(m)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return subcommands.ExitFailure
	}

	b, err := export.MonthXLSX(m.String(), txs, sum)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return subcommands.ExitFailure
	}

	output := p.output
	if output == "" {
		output = m.String() + ".xlsx"
	}

	//nolint:gosec
	if err := os.WriteFile(output, b, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %v: %v\n", output, err)

		return subcommands.ExitFailure
	}

	fmt.Printf("exported %v entries to %v\n", len(txs), output)

	return subcommands.ExitSuccess
}
