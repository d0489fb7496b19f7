package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/idlewage/internal/cli/formatter"
	"github.com/alexanderramin/idlewage/internal/duration"
	"github.com/alexanderramin/idlewage/internal/session"
	"github.com/spf13/cobra"
)

var errNotSetUp = errors.New("not set up yet; run 'idlewage setup --salary N' first")

func requireActive(app *App) error {
	if app.State.Phase() != session.PhaseActive {
		return errNotSetUp
	}
	return nil
}

func newAddCmd(app *App) *cobra.Command {
	var desc string

	cmd := &cobra.Command{
		Use:   "add DURATION",
		Short: "Log an idle activity",
		Long: `Log an idle activity. DURATION accepts "1h 20m 5s", "1:20:05",
"20:05" or plain seconds; words may be given unquoted.`,
		Example: `  idlewage add 15m --desc "Coffee"
  idlewage add 1h 30m`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActive(app); err != nil {
				return err
			}

			s := app.State
			s.SetIdleText(strings.Join(args, " "))
			secs := s.IdleSeconds()
			earned := s.IdleEarnings()
			if cmd.Flags().Changed("desc") {
				s.SetDescription(desc)
			}

			added, err := s.AddActivity(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !added {
				fmt.Fprintln(out, formatter.Dim("Nothing logged: duration is zero."))
				return nil
			}
			acts := s.Activities()
			last := acts[len(acts)-1]
			fmt.Fprintf(out, "%s Logged %s %s %s %s\n",
				formatter.Check(),
				formatter.Bold(last.Description),
				duration.Format(secs),
				formatter.Dim("→"),
				formatter.StyleMoney.Render(app.money(earned)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Activity description (default \"Idle\")")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List logged activities with earnings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActive(app); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), activityReport(app, -1))
			return err
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove N",
		Aliases: []string{"rm"},
		Short:   "Remove the Nth activity (as numbered by list)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActive(app); err != nil {
				return err
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid activity number %q", args[0])
			}

			acts := app.State.Activities()
			if n < 1 || n > len(acts) {
				return fmt.Errorf("no activity #%d (have %d)", n, len(acts))
			}
			removed := acts[n-1]

			ok, err := app.State.RemoveActivity(cmd.Context(), n-1)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Removed #%d %s (%s)\n",
					formatter.Check(), n, formatter.Bold(removed.Description),
					duration.Format(removed.Seconds))
			}
			return nil
		},
	}
}

func newClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all logged activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireActive(app); err != nil {
				return err
			}
			n := app.State.ActivityCount()
			if err := app.State.ClearActivities(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Cleared %d %s\n",
				formatter.Check(), n, pluralize(n, "activity", "activities"))
			return nil
		},
	}
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
