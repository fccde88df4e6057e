package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type folderCmd struct{}

func (*folderCmd) Name() string     { return "folder" }
func (*folderCmd) Synopsis() string { return "create a new folder" }
func (*folderCmd) Usage() string {
	return `finman folder <name>

  Creates a new empty folder in the logged-in account's ledger. Folder names
  are case-sensitive and must be unique.
`
}

func (*folderCmd) SetFlags(f *flag.FlagSet) {}

func (p *folderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one folder name.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	registry, account, err := activeAccount()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := account.Ledger.CreateFolder(name); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := registry.Save(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Folder %q created.\n", name)
	return subcommands.ExitSuccess
}
