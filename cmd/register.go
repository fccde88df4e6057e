package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finman"
	"github.com/google/subcommands"
)

type registerCmd struct {
	email string
	nick  string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account and open a session" }
func (*registerCmd) Usage() string {
	return `finman register -email <address> -nick <nickname>

  Creates a new account identified by the email address. The nickname (at
  least 2 characters) is the credential asked for at login. No password is
  involved.
`
}

func (p *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.email, "email", "", "Email address, used to derive the account identifier.")
	f.StringVar(&p.nick, "nick", "", "Nickname, compared exactly at login.")
}

func (p *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	registry := finman.OpenRegistry(DataDir())
	account, err := registry.Register(p.email, p.nick)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := saveSession(DataDir(), account.ID); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Welcome, %s! Account created for %s.\n", account.Nickname, account.Email)
	return subcommands.ExitSuccess
}
