// Package cmd implements the CLI presentation shell over the finman data
// core.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finman"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers each of them on
// a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&registerCmd{},
	&loginCmd{},
	&logoutCmd{},
	&whoamiCmd{},
	&folderCmd{},
	&addCmd{},
	&rmCmd{},
	&lsCmd{},
	&summaryCmd{},
	&settingsCmd{},
	&topicCmd{},
	&fmtCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use a global variable for the data directory.

var dataDir = flag.String("data", "", "Path to the data directory holding users.json, settings.json and the session (default $FINMAN_DATA or ./finance_data)")

// DataDir returns the active data directory: the -data flag, then the
// FINMAN_DATA environment variable (possibly loaded from a .env file by
// main), then ./finance_data. Resolution happens at call time so a .env
// loaded after package init still applies.
func DataDir() string {
	if *dataDir != "" {
		return *dataDir
	}
	if dir := os.Getenv("FINMAN_DATA"); dir != "" {
		return dir
	}
	return "finance_data"
}

// activeAccount resolves the current session into its account. It fails when
// no session is open or when the session points at an account that no longer
// resolves (e.g. the accounts file was replaced).
func activeAccount() (*finman.Registry, *finman.Account, error) {
	id, err := loadSession(DataDir())
	if err != nil {
		return nil, nil, err
	}
	registry := finman.OpenRegistry(DataDir())
	account := registry.Account(id)
	if account == nil {
		return nil, nil, fmt.Errorf("session account is gone, log in again")
	}
	return registry, account, nil
}

// printMarkdown renders markdown to the terminal, with colors matching the
// configured theme. On any rendering failure the raw markdown is printed
// instead.
func printMarkdown(settings finman.Settings, md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle(settings.Theme)),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// glamourStyle maps a finman theme to the closest glamour standard style.
func glamourStyle(theme string) string {
	if theme == "Light" {
		return "light"
	}
	return "dark"
}
