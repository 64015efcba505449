package main

import (
	"fmt"
	"net/http"
	"net/url"

	"caseboard/models"

	"github.com/spf13/cobra"
)

type caseList struct {
	Data  []models.Case `json:"data"`
	Total int           `json:"total"`
}

type noteList struct {
	Data  []models.Note `json:"data"`
	Total int           `json:"total"`
}

func (c *cli) casesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cases",
		Short: "Manage cases and their notes",
	}

	var search, status string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List cases, optionally filtered by title, number or client and by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out caseList
			if err := c.client().request(cmd.Context(), http.MethodGet, "/api/cases", caseQuery(search, status), nil, &out); err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			rows := make([][]string, 0, len(out.Data))
			for _, cs := range out.Data {
				rows = append(rows, []string{cs.ID, cs.CaseNumber, cs.Title, cs.Client, cs.Status, orDash(cs.HearingDate)})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "NUMBER", "TITLE", "CLIENT", "STATUS", "HEARING"}, rows)
			return nil
		},
	}
	listCmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive search term")
	listCmd.Flags().StringVar(&status, "status", "", "Active, Pending or Closed")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cs models.Case
			if err := c.client().request(cmd.Context(), http.MethodGet, "/api/cases/"+url.PathEscape(args[0]), nil, nil, &cs); err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), cs)
			}
			printKV(cmd.OutOrStdout(), [][2]string{
				{"ID", cs.ID},
				{"Title", cs.Title},
				{"Number", cs.CaseNumber},
				{"Client", cs.Client},
				{"Status", cs.Status},
				{"Type", cs.Type},
				{"Opened", cs.DateOpened},
				{"Judge", cs.Judge},
				{"Court", cs.Court},
				{"Filed", cs.FilingDate},
				{"Hearing", cs.HearingDate},
				{"Attorney", cs.Attorney},
				{"Description", cs.Description},
			})
			return nil
		},
	}

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a case (its notes and documents are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.deleteRecord(cmd, "/api/cases/", args[0], yes)
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")

	notesCmd := &cobra.Command{
		Use:   "notes <case-id>",
		Short: "List the notes of a case, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out noteList
			if err := c.client().request(cmd.Context(), http.MethodGet, "/api/cases/"+url.PathEscape(args[0])+"/notes", nil, nil, &out); err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			rows := make([][]string, 0, len(out.Data))
			for _, n := range out.Data {
				rows = append(rows, []string{n.CreatedAt.Format("2006-01-02 15:04"), n.CreatedBy, n.Content})
			}
			printTable(cmd.OutOrStdout(), []string{"WHEN", "BY", "NOTE"}, rows)
			return nil
		},
	}

	var author string
	noteCmd := &cobra.Command{
		Use:   "note <case-id> <content>",
		Short: "Append a note to a case",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := map[string]string{"content": args[1], "created_by": author}
			var note models.Note
			if err := c.client().request(cmd.Context(), http.MethodPost, "/api/cases/"+url.PathEscape(args[0])+"/notes", nil, in, &note); err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), note)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added note %s to case %s\n", note.ID, note.CaseID)
			return nil
		},
	}
	noteCmd.Flags().StringVar(&author, "author", "", "note author (defaults to the server's)")

	var exportSearch, exportStatus, output string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Download cases as an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.saveDownload(cmd, "/api/cases/export.xlsx", caseQuery(exportSearch, exportStatus), output)
		},
	}
	exportCmd.Flags().StringVarP(&exportSearch, "search", "s", "", "only export matching cases")
	exportCmd.Flags().StringVar(&exportStatus, "status", "", "only export cases with this status")
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to the server's file name)")

	cmd.AddCommand(listCmd, getCmd, deleteCmd, notesCmd, noteCmd, exportCmd)
	return cmd
}

func caseQuery(search, status string) url.Values {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if status != "" {
		query.Set("status", status)
	}
	return query
}
