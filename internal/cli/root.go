package cli

import (
	"github.com/alexanderramin/idlewage/internal/cli/formatter"
	"github.com/alexanderramin/idlewage/internal/session"
	"github.com/spf13/cobra"
)

// App holds the session and presentation settings used by CLI commands.
type App struct {
	State    *session.State
	Currency string

	// IsInteractive reports whether stdin is a terminal. When nil the root
	// command never launches the TUI.
	IsInteractive func() bool
}

// money formats an amount in the configured currency with two decimals.
func (a *App) money(v float64) string {
	return formatter.Money(a.Currency, v, formatter.AmountPlaces)
}

// NewRootCmd creates the top-level "idlewage" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// TUI on a terminal and prints the status report otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "idlewage",
		Short:         "Work out what your idle time is worth",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return writeStatus(cmd.OutOrStdout(), app)
		},
	}

	root.AddCommand(
		newSetupCmd(app),
		newStatusCmd(app),
		newAddCmd(app),
		newListCmd(app),
		newRemoveCmd(app),
		newClearCmd(app),
		newResetCmd(app),
		newParseCmd(),
	)

	return root
}
