package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kag",
	Short: "Knowledge-augmented generation over an organizational graph",
	Long: `kag answers natural-language questions about employees, projects,
outcomes and reports stored in a Neo4j knowledge graph. It extracts
entities from the question, retrieves the relevant subgraph, and
generates a cited answer with an LLM.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// API keys and Neo4j credentials may live in a local .env file.
	godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "kag.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
