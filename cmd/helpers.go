package cmd

import (
	"context"
	"fmt"

	"github.com/orgbrain/kag/internal/config"
	"github.com/orgbrain/kag/internal/graph"
	"github.com/orgbrain/kag/internal/kag"
	"github.com/orgbrain/kag/internal/llm"
	"github.com/orgbrain/kag/internal/nlp"
)

// loadConfig loads and validates the config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// createLLMProviderFromConfig creates the LLM provider, rate limited
// when requests_per_minute is set.
func createLLMProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, err
	}
	if cfg.RequestsPerMinute > 0 {
		provider = llm.NewRateLimitedProvider(provider, cfg.RequestsPerMinute)
	}
	return provider, nil
}

// connectGraph opens the Neo4j store from config.
func connectGraph(ctx context.Context, cfg *config.Config) (*graph.Neo4jStore, error) {
	store, err := graph.NewNeo4jStore(ctx, graph.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
		Database: cfg.Neo4j.Database,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to neo4j at %s: %w", cfg.Neo4j.URI, err)
	}
	return store, nil
}

// buildPipeline wires the full KAG pipeline from config. The returned
// store must be closed by the caller when the pipeline is done.
func buildPipeline(ctx context.Context, cfg *config.Config) (*kag.Pipeline, *graph.Neo4jStore, error) {
	provider, err := createLLMProviderFromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("creating LLM provider: %w", err)
	}

	// The NER collaborator is process-wide; disabling it leaves keyword
	// extraction and intent classification intact.
	var ner nlp.NER
	if cfg.NEREnabled {
		ner = nlp.NewLLMNER(provider, cfg.EffectiveNERModel())
	}
	extractor := nlp.NewExtractor(ner)

	store, err := connectGraph(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	retriever := kag.NewRetriever(store)
	generator := kag.NewProviderGenerator(provider, cfg.Model)

	return kag.NewPipeline(extractor, retriever, generator), store, nil
}
