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

type settingsCmd struct {
	theme string
	lang  string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change theme and language" }
func (*settingsCmd) Usage() string {
	return `finman settings [-theme <name>] [-lang <code>]

  Without flags, prints the current settings. With flags, updates them.
  Settings belong to the installation, not to an account.
`
}

func (p *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.theme, "theme", "", "Theme: "+strings.Join(finman.Themes, ", ")+".")
	f.StringVar(&p.lang, "lang", "", "Language: "+strings.Join(finman.Languages, ", ")+".")
}

func (p *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings := finman.LoadSettings(DataDir())

	if p.theme == "" && p.lang == "" {
		fmt.Printf("Theme: %s\nLanguage: %s\n", settings.Theme, settings.Language)
		return subcommands.ExitSuccess
	}

	// The store persists whatever it is given; the shell is where input gets
	// constrained to the known sets.
	if p.theme != "" {
		theme, err := finman.ParseTheme(p.theme)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		settings.Theme = theme
	}
	if p.lang != "" {
		lang, err := finman.ParseLanguage(p.lang)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		settings.Language = lang
	}
	if err := finman.SaveSettings(DataDir(), settings); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Settings saved: theme %s, language %s.\n", settings.Theme, settings.Language)
	return subcommands.ExitSuccess
}
