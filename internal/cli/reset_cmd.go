package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/idlewage/internal/cli/formatter"
	"github.com/spf13/cobra"
)

var errResetUnconfirmed = errors.New("reset deletes the schedule and every activity; pass --yes to confirm")

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the schedule and all activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errResetUnconfirmed
			}
			if err := app.State.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Reset. Run 'idlewage setup' to start again.\n", formatter.Check())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")

	return cmd
}
