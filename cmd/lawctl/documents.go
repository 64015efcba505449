package main

import (
	"fmt"
	"net/http"
	"net/url"

	"caseboard/models"

	"github.com/spf13/cobra"
)

type document struct {
	models.Document
	DownloadURL string `json:"download_url"`
}

type documentList struct {
	Data  []document `json:"data"`
	Total int        `json:"total"`
}

func (c *cli) documentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"docs"},
		Short:   "Manage documents",
	}

	var search, category string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List documents, optionally filtered by name, case or client and by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if search != "" {
				query.Set("search", search)
			}
			if category != "" {
				query.Set("category", category)
			}
			var out documentList
			if err := c.client().request(cmd.Context(), http.MethodGet, "/api/documents", query, nil, &out); err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			rows := make([][]string, 0, len(out.Data))
			for _, d := range out.Data {
				rows = append(rows, []string{d.ID, d.Name, d.Category, d.Size, derefOrDash(d.CaseName), derefOrDash(d.ClientName)})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "CATEGORY", "SIZE", "CASE", "CLIENT"}, rows)
			return nil
		},
	}
	listCmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive search term")
	listCmd.Flags().StringVarP(&category, "category", "c", "", "document category")

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List document categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var categories []string
			if err := c.client().request(cmd.Context(), http.MethodGet, "/api/documents/categories", nil, nil, &categories); err != nil {
				return err
			}
			for _, name := range categories {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	var (
		name, file, uploadCategory, caseID, clientID, uploadedBy string
	)
	uploadCmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a file, or register a document by name only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" && name == "" {
				return fmt.Errorf("either --file or --name is required")
			}
			fields := map[string]string{
				"name":        name,
				"category":    uploadCategory,
				"case_id":     caseID,
				"client_id":   clientID,
				"uploaded_by": uploadedBy,
			}
			var doc document
			if err := c.client().upload(cmd.Context(), "/api/documents", fields, file, &doc); err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), doc)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s as document %s (%s, %s)\n", doc.Name, doc.ID, doc.Category, doc.Size)
			return nil
		},
	}
	uploadCmd.Flags().StringVarP(&file, "file", "f", "", "file to upload")
	uploadCmd.Flags().StringVarP(&name, "name", "n", "", "document name (defaults to the file name)")
	uploadCmd.Flags().StringVarP(&uploadCategory, "category", "c", "", "document category (defaults to Pleadings)")
	uploadCmd.Flags().StringVar(&caseID, "case", "", "related case id")
	uploadCmd.Flags().StringVar(&clientID, "client", "", "related client id")
	uploadCmd.Flags().StringVar(&uploadedBy, "by", "", "uploader name")

	var output string
	downloadCmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Download a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.saveDownload(cmd, "/api/documents/"+url.PathEscape(args[0])+"/download", nil, output)
		},
	}
	downloadCmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to the document name)")

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.deleteRecord(cmd, "/api/documents/", args[0], yes)
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")

	cmd.AddCommand(listCmd, categoriesCmd, uploadCmd, downloadCmd, deleteCmd)
	return cmd
}
