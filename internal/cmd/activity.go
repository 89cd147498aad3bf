package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newActivityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Show the audit trail",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			logs, err := a.audit.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tUSER\tACTION\tENTITY\tDETAILS")
			for _, entry := range logs {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s/%d\t%s\n",
					entry.Timestamp.Format("2006-01-02 15:04:05"), entry.UserID, entry.Action,
					entry.EntityType, entry.EntityID, entry.Details)
			}
			return w.Flush()
		},
	}
}
