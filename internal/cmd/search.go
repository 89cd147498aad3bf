package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <question>",
		Short: "Ask a natural-language question about the data",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			result, err := a.search.Query(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("search failed: %s", result.Error)
			}

			fmt.Printf("SQL: %s\n\n", result.SQL)
			if len(result.Results) == 0 {
				fmt.Println("No rows.")
				return nil
			}

			// stable column order from the first row
			var cols []string
			for col := range result.Results[0] {
				cols = append(cols, col)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, strings.ToUpper(strings.Join(cols, "\t")))
			for _, row := range result.Results {
				vals := make([]string, 0, len(cols))
				for _, col := range cols {
					vals = append(vals, formatCell(row[col]))
				}
				fmt.Fprintln(w, strings.Join(vals, "\t"))
			}
			return w.Flush()
		},
	}
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return fmt.Sprintf("%g", val)
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(raw)
	}
}
