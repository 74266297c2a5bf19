package kag

import (
	"context"
	"log"
	"time"

	"github.com/orgbrain/kag/internal/nlp"
)

// Pipeline sequences the KAG stages for a single query: extract,
// retrieve, format, compose prompt, generate, annotate citations,
// assemble response. It holds no per-request state; one instance serves
// all concurrent queries.
type Pipeline struct {
	extractor *nlp.Extractor
	retriever *Retriever
	generator Generator
	citations *CitationEngine
}

// NewPipeline wires the pipeline from its collaborators.
func NewPipeline(extractor *nlp.Extractor, retriever *Retriever, generator Generator) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		retriever: retriever,
		generator: generator,
		citations: NewCitationEngine(),
	}
}

// ProcessQuery runs the full pipeline. A failure at any stage yields a
// response carrying only the original query and an error message; no
// partial pipeline output is attached.
func (p *Pipeline) ProcessQuery(ctx context.Context, userQuery string) *Response {
	log.Printf("kag: processing query %q", userQuery)

	entities := p.extractor.Extract(ctx, userQuery)
	log.Printf("kag: extracted intent %s (%d person names)", entities.Intent, entities.PersonNames.Len())

	kgc := p.retriever.Retrieve(ctx, entities)

	formatted := FormatContext(kgc)
	prompt := BuildPrompt(userQuery, formatted)

	answer, err := p.generator.Generate(ctx, prompt, SystemPrompt)
	if err != nil {
		log.Printf("kag: generation failed: %v", err)
		return p.failure(userQuery, err)
	}

	// Citation injection runs exactly once per query; a second pass over
	// an already-annotated answer would duplicate the Sources footnote.
	annotated := p.citations.Inject(answer, kgc)

	response := &Response{
		UserQuery:         userQuery,
		ExtractedEntities: &entities,
		Context:           kgc,
		Answer:            answer,
		AnnotatedAnswer:   annotated,
		Citations:         p.citations.Extract(kgc),
		Timestamp:         time.Now(),
	}

	log.Printf("kag: query complete, %d entities, %d citations",
		response.EntityCount(), len(response.Citations))
	return response
}

func (p *Pipeline) failure(userQuery string, cause error) *Response {
	return &Response{
		UserQuery: userQuery,
		Error:     "Failed to process query: " + cause.Error(),
		Timestamp: time.Now(),
	}
}
