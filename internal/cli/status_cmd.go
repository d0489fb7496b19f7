package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/idlewage/internal/cli/formatter"
	"github.com/alexanderramin/idlewage/internal/session"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show schedule, rates and logged activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeStatus(cmd.OutOrStdout(), app)
		},
	}
}

// writeStatus prints the status report: a setup hint before setup is
// complete, otherwise the schedule, rates, activities and totals.
func writeStatus(w io.Writer, app *App) error {
	s := app.State
	if s.Phase() != session.PhaseActive {
		_, err := fmt.Fprintln(w, formatter.RenderBox("idlewage",
			formatter.StyleYellow.Render("Not set up yet.")+"\n\n"+
				formatter.Dim("Run: idlewage setup --salary 3000 --days 26 --hours 8")))
		return err
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Schedule") + "\n")
	b.WriteString(formatter.FormatSchedule(app.Currency, s.Config()) + "\n\n")
	b.WriteString(formatter.Header("Rates") + "\n")
	b.WriteString(formatter.FormatRates(app.Currency, s.Rates()) + "\n\n")
	b.WriteString(formatter.Header("Activities") + "\n")
	b.WriteString(activityReport(app, -1))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// activityRows pairs each logged activity with its earnings.
func activityRows(s *session.State) []formatter.ActivityRow {
	acts := s.Activities()
	rows := make([]formatter.ActivityRow, len(acts))
	for i, a := range acts {
		rows[i] = formatter.ActivityRow{Activity: a, Earnings: s.ActivityEarnings(i)}
	}
	return rows
}

// activityReport renders the activity table followed by the totals block.
func activityReport(app *App, selected int) string {
	s := app.State
	table := formatter.FormatActivities(app.Currency, activityRows(s), selected)
	totals := formatter.FormatTotals(app.Currency, formatter.IdleTotals{
		Seconds:     s.TotalSeconds(),
		Earnings:    s.TotalEarnings(),
		Summary:     s.Summary(app.money),
		WorkdayFrac: workdayShare(s),
	})
	return strings.TrimRight(table, "\n") + "\n\n" + totals
}

// workdayShare is the logged idle time as a fraction of one working day.
func workdayShare(s *session.State) float64 {
	day := s.Config().WorkingHoursPerDay * 3600
	if day <= 0 {
		return 0
	}
	return float64(s.TotalSeconds()) / day
}
