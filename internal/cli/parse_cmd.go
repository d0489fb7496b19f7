package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/idlewage/internal/duration"
	"github.com/alexanderramin/idlewage/internal/session"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse TEXT",
		Short: "Show how a duration is read",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secs := duration.Parse(strings.Join(args, " "))
			line := fmt.Sprintf("%d\t%s", secs, duration.Format(secs))
			if h := session.Humanize(secs); h != "" {
				line += "\t" + h
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}
}
