package main

import (
	"os"

	"github.com/spf13/cobra"

	"quickdesk/internal/interfaces/cli/migrate"
	"quickdesk/internal/interfaces/cli/roles"
	"quickdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quickdesk",
		Short: "QuickDesk - a helpdesk ticketing service",
		Long:  `QuickDesk is a helpdesk ticketing service with an HTTP API, migration tooling, and staff account administration.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		roles.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
