package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd returns the inventory command tree. Running it without a subcommand serves the API.
func RootCmd() *cobra.Command {
	serve := ServeCmd()

	cmd := &cobra.Command{
		Use:          "inventory",
		Short:        "IT systems inventory API",
		Long:         `Tracks an organization's IT systems: what they do, how they are built and what they exchange.`,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	cmd.AddCommand(serve)
	cmd.AddCommand(SeedCmd())
	cmd.AddCommand(VersionCmd())

	return cmd
}
