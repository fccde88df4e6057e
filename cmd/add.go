package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/finman"
	"github.com/google/subcommands"
)

type addCmd struct {
	folder   string
	name     string
	amount   string
	typ      string
	currency string
	date     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append an income or expense record to a folder" }
func (*addCmd) Usage() string {
	return `finman add -f <folder> -name <text> -amount <number> [-type income|expense] [-cur <label>] [-date <DD.MM.YYYY HH:MM>]

  Appends a record to the end of a folder. The amount must be a non-negative
  number; the date defaults to now.

Usage Examples:
$ finman add -f Groceries -name "Milk" -amount 3.50 -type expense
$ finman add -f Home -name "Salary" -amount 2500 -type income -cur "€ EUR"
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.folder, "f", "", "Folder to append to.")
	f.StringVar(&p.name, "name", "", "Record name.")
	f.StringVar(&p.amount, "amount", "", "Amount, a non-negative number.")
	f.StringVar(&p.typ, "type", "expense", "Record type: income or expense.")
	f.StringVar(&p.currency, "cur", "", "Currency label, one of: "+strings.Join(finman.Currencies, ", ")+".")
	f.StringVar(&p.date, "date", "", "Timestamp; defaults to now.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := finman.ParseRecordType(p.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if p.currency != "" && !finman.KnownCurrency(p.currency) {
		fmt.Fprintf(os.Stderr, "Error: unknown currency %q, use one of: %s\n", p.currency, strings.Join(finman.Currencies, ", "))
		return subcommands.ExitUsageError
	}
	record, err := finman.NewRecord(p.name, p.amount, typ, p.currency, p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	registry, account, err := activeAccount()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	stored, err := account.Ledger.AddRecord(p.folder, record)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := registry.Save(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added #%d %s to %q.\n", stored.ID, stored.Name, p.folder)
	return subcommands.ExitSuccess
}
