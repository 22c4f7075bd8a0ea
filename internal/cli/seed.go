package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/domain"
	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/seed"
)

// SeedCmd returns the seed parent command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Work with seed fixtures",
	}

	cmd.AddCommand(SeedCheckCmd())

	return cmd
}

// SeedCheckCmd returns the seed check subcommand
func SeedCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a seed fixture",
		Long: `Parse and validate a YAML seed fixture without starting the server.

Examples:
  inventory seed check fixtures/projects.yaml
`,
		Args: cobra.ExactArgs(1),
		RunE: runSeedCheck,
	}
}

func runSeedCheck(cmd *cobra.Command, args []string) error {
	drafts, err := seed.LoadFile(args[0])
	if err != nil {
		return err
	}

	var stats domain.Stats
	for _, d := range drafts {
		stats.Add(domain.Project{DevelopmentType: d.DevelopmentType})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d projects (web %d, desktop %d, legacy %d, other %d)\n",
		args[0], stats.Total, stats.Web, stats.Desktop, stats.Legacy, stats.Other)
	for _, d := range drafts {
		fmt.Fprintf(out, "  - %s [%s] %d connections\n", d.Name, d.DevelopmentType.LongLabel(), len(d.Connections))
	}
	return nil
}
