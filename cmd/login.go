package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finman"
	"github.com/google/subcommands"
)

type loginCmd struct {
	email string
	nick  string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "open a session for an existing account" }
func (*loginCmd) Usage() string {
	return `finman login -email <address> -nick <nickname>

  Opens a session for the account registered with this email. The nickname
  must match the registered one exactly.
`
}

func (p *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.email, "email", "", "Email address of the account.")
	f.StringVar(&p.nick, "nick", "", "Nickname registered with the account.")
}

func (p *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	registry := finman.OpenRegistry(DataDir())
	account, err := registry.Login(p.email, p.nick)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := saveSession(DataDir(), account.ID); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Welcome back, %s!\n", account.Nickname)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "close the current session" }
func (*logoutCmd) Usage() string {
	return `finman logout

  Closes the current session unconditionally. Account data stays on disk.
`
}

func (*logoutCmd) SetFlags(f *flag.FlagSet) {}

func (*logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := clearSession(DataDir()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the account of the current session" }
func (*whoamiCmd) Usage() string {
	return `finman whoami

  Prints the email and nickname of the logged-in account.
`
}

func (*whoamiCmd) SetFlags(f *flag.FlagSet) {}

func (*whoamiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, account, err := activeAccount()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s <%s>, registered %s\n", account.Nickname, account.Email, account.CreatedAt)
	return subcommands.ExitSuccess
}
