package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orgbrain/kag/internal/history"
	"github.com/orgbrain/kag/internal/server"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the KAG HTTP server",
	Long:  `Starts the HTTP server exposing the question-answering API over the knowledge graph.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		pipeline, store, err := buildPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close(context.Background())

		hist, err := history.Open(cfg.HistoryPath)
		if err != nil {
			return fmt.Errorf("opening history database: %w", err)
		}
		defer hist.Close()

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: serveAllowAll,
		}, pipeline, hist)

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "kag server v%s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Provider: %s (%s)\n", cfg.Provider, cfg.Model)
		fmt.Fprintf(os.Stderr, "  Neo4j: %s\n", cfg.Neo4j.URI)
		fmt.Fprintf(os.Stderr, "  History: %s\n", cfg.HistoryPath)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "Allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}
