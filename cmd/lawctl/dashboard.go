package main

import (
	"fmt"
	"net/http"

	"caseboard/services"

	"github.com/spf13/cobra"
)

func (c *cli) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show record counts, recent notes and upcoming hearings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var summary services.DashboardSummary
			if err := c.client().request(cmd.Context(), http.MethodGet, "/api/dashboard", nil, nil, &summary); err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), summary)
			}

			w := cmd.OutOrStdout()
			printKV(w, [][2]string{
				{"Clients", fmt.Sprint(summary.Totals.Clients)},
				{"Cases", fmt.Sprintf("%d (%d active, %d pending, %d closed)", summary.Totals.Cases,
					summary.CasesByStatus["Active"], summary.CasesByStatus["Pending"], summary.CasesByStatus["Closed"])},
				{"Documents", fmt.Sprint(summary.Totals.Documents)},
				{"Notes", fmt.Sprint(summary.Totals.Notes)},
			})

			fmt.Fprintln(w, "\nUpcoming hearings")
			rows := make([][]string, 0, len(summary.UpcomingHearings))
			for _, h := range summary.UpcomingHearings {
				rows = append(rows, []string{h.Date, h.CaseNumber, h.Title, orDash(h.Court)})
			}
			printTable(w, []string{"DATE", "NUMBER", "TITLE", "COURT"}, rows)
			return nil
		},
	}
}
