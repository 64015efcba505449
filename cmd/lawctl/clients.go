package main

import (
	"fmt"
	"net/http"
	"net/url"

	"caseboard/models"
	"caseboard/services"

	"github.com/spf13/cobra"
)

type clientList struct {
	Data  []models.Client `json:"data"`
	Total int             `json:"total"`
}

func (c *cli) clientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Manage clients",
	}

	var search string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List clients, optionally filtered by name, email or phone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out clientList
			query := url.Values{}
			if search != "" {
				query.Set("search", search)
			}
			if err := c.client().request(cmd.Context(), http.MethodGet, "/api/clients", query, nil, &out); err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			rows := make([][]string, 0, len(out.Data))
			for _, cl := range out.Data {
				rows = append(rows, []string{cl.ID, cl.Name, cl.Type, cl.Email, cl.Phone, cl.DateAdded})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "TYPE", "EMAIL", "PHONE", "ADDED"}, rows)
			return nil
		},
	}
	listCmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive search term")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a client and its cases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api := c.client()
			var client models.Client
			if err := api.request(cmd.Context(), http.MethodGet, "/api/clients/"+url.PathEscape(args[0]), nil, nil, &client); err != nil {
				return err
			}
			var cases caseList
			if err := api.request(cmd.Context(), http.MethodGet, "/api/clients/"+url.PathEscape(args[0])+"/cases", nil, nil, &cases); err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), map[string]any{"client": client, "cases": cases.Data})
			}
			printKV(cmd.OutOrStdout(), [][2]string{
				{"ID", client.ID},
				{"Name", client.Name},
				{"Type", client.Type},
				{"Email", client.Email},
				{"Phone", client.Phone},
				{"Address", client.Address},
				{"Added", client.DateAdded},
				{"Cases", fmt.Sprint(cases.Total)},
			})
			return nil
		},
	}

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a client (its cases are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.deleteRecord(cmd, "/api/clients/", args[0], yes)
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")

	var exportSearch, output string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Download clients as an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if exportSearch != "" {
				query.Set("search", exportSearch)
			}
			return c.saveDownload(cmd, "/api/clients/export.xlsx", query, output)
		},
	}
	exportCmd.Flags().StringVarP(&exportSearch, "search", "s", "", "only export matching clients")
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to the server's file name)")

	importCmd := &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Create clients from an XLSX workbook laid out like the export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out services.ImportResult
			if err := c.client().upload(cmd.Context(), "/api/clients/import", nil, args[0], &out); err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Processed %d rows: %d imported, %d failed\n", out.TotalProcessed, out.SuccessCount, out.FailedCount)
			for _, e := range out.Errors {
				fmt.Fprintf(w, "  %s\n", e)
			}
			return nil
		},
	}

	cmd.AddCommand(listCmd, getCmd, deleteCmd, exportCmd, importCmd)
	return cmd
}
