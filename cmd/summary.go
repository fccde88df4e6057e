package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finman"
	"github.com/etnz/finman/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	folder string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show income, expense and balance totals" }
func (*summaryCmd) Usage() string {
	return `finman summary [-f <folder>]

  Totals income, expense, balance and record count over one folder, or over
  the whole ledger when no folder is given.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.folder, "f", "", "Folder to total; defaults to the whole ledger.")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, account, err := activeAccount()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	settings := finman.LoadSettings(DataDir())

	var s finman.Summary
	title := "All folders"
	if p.folder == "" {
		s = account.Ledger.AggregateAll()
	} else {
		s, err = account.Ledger.Aggregate(p.folder)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		title = p.folder
	}
	printMarkdown(settings, renderer.Summary(title, s))
	return subcommands.ExitSuccess
}
