package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/idlewage/internal/cli/formatter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var errSalaryRequired = errors.New("monthly salary must be greater than zero")

// scheduleFlags holds the values bound to the setup flags.
type scheduleFlags struct {
	salary float64
	days   float64
	hours  float64
}

func addScheduleFlags(fs *pflag.FlagSet, f *scheduleFlags) {
	fs.Float64Var(&f.salary, "salary", 0, "Monthly salary")
	fs.Float64Var(&f.days, "days", 0, "Working days per month (default 26)")
	fs.Float64Var(&f.hours, "hours", 0, "Working hours per day (default 8)")
}

func newSetupCmd(app *App) *cobra.Command {
	var flags scheduleFlags

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set monthly salary and working schedule",
		Long: `Set the monthly salary and working schedule used to derive the
per-second wage. Flags that are not given keep their current value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			if fs.Changed("salary") {
				app.State.SetMonthlySalary(flags.salary)
			}
			if fs.Changed("days") {
				app.State.SetWorkingDays(flags.days)
			}
			if fs.Changed("hours") {
				app.State.SetWorkingHours(flags.hours)
			}

			ok, err := app.State.CompleteSetup(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				return errSalaryRequired
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Setup saved\n\n", formatter.Check())
			fmt.Fprintln(out, formatter.FormatSchedule(app.Currency, app.State.Config()))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.FormatRates(app.Currency, app.State.Rates()))
			return nil
		},
	}

	addScheduleFlags(cmd.Flags(), &flags)

	return cmd
}
