package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orgbrain/kag/internal/graph"
)

var seedCmd = &cobra.Command{
	Use:   "seed [file]",
	Short: "Load sample data into the knowledge graph",
	Long:  `Reads a YAML seed file of employees, projects, outcomes and reports and merges it into Neo4j. Re-running is idempotent.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		data, err := graph.ParseSeedFile(args[0])
		if err != nil {
			return err
		}

		ctx := context.Background()
		store, err := connectGraph(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close(ctx)

		if err := store.Seed(ctx, data); err != nil {
			return fmt.Errorf("seeding graph: %w", err)
		}

		fmt.Fprintf(os.Stderr, "seeded %d employees, %d projects, %d outcomes, %d reports\n",
			len(data.Employees), len(data.Projects), len(data.Outcomes), len(data.Reports))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
