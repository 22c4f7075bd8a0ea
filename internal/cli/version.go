package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// VersionCmd returns the version subcommand
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			v := Version
			if env := os.Getenv("APP_VERSION"); env != "" && v == "dev" {
				v = env
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
		},
	}
}
