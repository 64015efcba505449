package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// cli carries the global flags shared by every command
type cli struct {
	server  string
	timeout time.Duration
	asJSON  bool
}

func (c *cli) client() *apiClient {
	return newAPIClient(c.server, c.timeout)
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "lawctl",
		Short: "Command line client for the caseboard API",
		Long: `lawctl talks to a running caseboard server.

It lists, inspects and deletes clients, cases and documents, appends case
notes, uploads and downloads documents, and exports spreadsheets.`,
		SilenceUsage: true,
	}

	server := os.Getenv("LAWCTL_SERVER")
	if server == "" {
		server = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&c.server, "server", server, "caseboard base URL (env LAWCTL_SERVER)")
	rootCmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "request timeout")
	rootCmd.PersistentFlags().BoolVar(&c.asJSON, "json", false, "print raw JSON")

	rootCmd.AddCommand(
		c.clientsCmd(),
		c.casesCmd(),
		c.documentsCmd(),
		c.dashboardCmd(),
	)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
