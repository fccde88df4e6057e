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

type lsCmd struct {
	folder string
}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list folders, or the records of one folder" }
func (*lsCmd) Usage() string {
	return `finman ls [-f <folder>]

  Without -f, lists all folders with their balances. With -f, lists the
  records of that folder in insertion order, with their stable identifiers.
`
}

func (p *lsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.folder, "f", "", "Folder whose records to list.")
}

func (p *lsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, account, err := activeAccount()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	settings := finman.LoadSettings(DataDir())

	if p.folder == "" {
		printMarkdown(settings, renderer.Folders(account.Ledger))
		return subcommands.ExitSuccess
	}

	records, err := account.Ledger.Records(p.folder)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(settings, renderer.Records(p.folder, records))
	return subcommands.ExitSuccess
}
