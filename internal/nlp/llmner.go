package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/orgbrain/kag/internal/llm"
)

// LLMNER implements NER with a JSON-mode LLM call. It holds no per-call
// state and is shared by all concurrent queries.
type LLMNER struct {
	provider llm.Provider
	model    string
}

// NewLLMNER creates an LLM-backed NER collaborator.
func NewLLMNER(provider llm.Provider, model string) *LLMNER {
	return &LLMNER{provider: provider, model: model}
}

const nerSystemPrompt = `You are a named-entity recognition engine. Extract person names and organization names from the input text.

You MUST respond with valid JSON matching this schema:
{
  "persons": ["full or partial person names found in the text"],
  "organizations": ["organization names found in the text"]
}

Return empty arrays when no names are present. Do not invent names.`

func (n *LLMNER) Extract(ctx context.Context, text string) (Names, error) {
	resp, err := n.provider.Complete(ctx, llm.CompletionRequest{
		Model: n.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: nerSystemPrompt},
			{Role: llm.RoleUser, Content: text},
		},
		MaxTokens:   512,
		Temperature: 0,
		JSONMode:    true,
	})
	if err != nil {
		return Names{}, fmt.Errorf("NER completion: %w", err)
	}

	return parseNERResponse(resp.Content)
}

// parseNERResponse tolerates responses wrapped in markdown code fences
// by trimming to the outermost JSON object.
func parseNERResponse(content string) (Names, error) {
	jsonStr := content
	if idx := strings.Index(content, "{"); idx >= 0 {
		jsonStr = content[idx:]
	}
	if idx := strings.LastIndex(jsonStr, "}"); idx >= 0 {
		jsonStr = jsonStr[:idx+1]
	}

	var names Names
	if err := json.Unmarshal([]byte(jsonStr), &names); err != nil {
		return Names{}, fmt.Errorf("parsing NER response: %w", err)
	}
	return names, nil
}
