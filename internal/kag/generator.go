package kag

import (
	"context"
	"log"
	"strings"

	"github.com/orgbrain/kag/internal/llm"
)

// Generator is the natural-language-generation collaborator: it blocks
// until a single completed answer is available.
type Generator interface {
	Generate(ctx context.Context, prompt, systemPrompt string) (string, error)
}

// ProviderGenerator adapts an llm.Provider to the Generator interface.
type ProviderGenerator struct {
	provider llm.Provider
	model    string
}

// NewProviderGenerator creates a generator backed by the given provider
// and model.
func NewProviderGenerator(provider llm.Provider, model string) *ProviderGenerator {
	return &ProviderGenerator{provider: provider, model: model}
}

func (g *ProviderGenerator) Generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	resp, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Model: g.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   2048,
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}

	log.Printf("llm: %s used %d input + %d output tokens (est. $%.4f)",
		resp.Model, resp.InputTokens, resp.OutputTokens,
		llm.EstimateCost(resp.Model, resp.InputTokens, resp.OutputTokens))
	return strings.TrimSpace(resp.Content), nil
}
