package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var queryJSON bool

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Answer a question against the knowledge graph",
	Long:  `Runs one question through the full pipeline and prints the cited answer.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output the full response as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	pipeline, store, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	resp := pipeline.ProcessQuery(ctx, args[0])

	if queryJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	if resp.HasError() {
		return fmt.Errorf("%s", resp.Error)
	}

	fmt.Println(resp.FinalAnswer())
	if verbose && resp.ExtractedEntities != nil {
		fmt.Fprintf(os.Stderr, "\nintent: %s, %d facts, %d citations\n",
			resp.ExtractedEntities.Intent, resp.EntityCount(), len(resp.Citations))
	}
	return nil
}
