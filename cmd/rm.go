package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	folder string
	id     uint64
	index  int
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a record from a folder" }
func (*rmCmd) Usage() string {
	return `finman rm -f <folder> (-id <n> | -i <position>)

  Deletes one record. -id removes the record with that stable identifier (as
  shown by ls) and is the recommended form. -i removes by position in the
  folder, zero-based; positions of later records shift down by one after the
  deletion.
`
}

func (p *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.folder, "f", "", "Folder to delete from.")
	f.Uint64Var(&p.id, "id", 0, "Stable record identifier.")
	f.IntVar(&p.index, "i", -1, "Zero-based record position.")
}

func (p *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (p.id == 0) == (p.index < 0) {
		fmt.Fprintln(os.Stderr, "Error: use exactly one of -id or -i.")
		return subcommands.ExitUsageError
	}

	registry, account, err := activeAccount()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if p.id != 0 {
		err = account.Ledger.DeleteRecordByID(p.folder, p.id)
	} else {
		err = account.Ledger.DeleteRecord(p.folder, p.index)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := registry.Save(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Record deleted.")
	return subcommands.ExitSuccess
}
