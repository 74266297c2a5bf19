package kag

import (
	"time"

	"github.com/orgbrain/kag/internal/nlp"
)

// Response is the final result of one pipeline run. It is constructed
// once per query and immutable after construction.
type Response struct {
	UserQuery         string             `json:"user_query"`
	ExtractedEntities *nlp.QueryEntities `json:"extracted_entities,omitempty"`
	Context           *Context           `json:"knowledge_graph_context,omitempty"`
	Answer            string             `json:"answer,omitempty"`
	AnnotatedAnswer   string             `json:"annotated_answer,omitempty"`
	Citations         []Citation         `json:"citations,omitempty"`
	Error             string             `json:"error,omitempty"`
	Timestamp         time.Time          `json:"timestamp"`
}

// HasError reports whether the pipeline failed for this query.
func (r *Response) HasError() bool {
	return r.Error != ""
}

// HasCitations reports whether any citations were extracted.
func (r *Response) HasCitations() bool {
	return len(r.Citations) > 0
}

// EntityCount returns the number of facts retrieved for this query.
func (r *Response) EntityCount() int {
	if r.Context == nil {
		return 0
	}
	return r.Context.TotalEntities()
}

// FinalAnswer returns the annotated answer when citation injection
// produced one, otherwise the raw generated answer. Callers must check
// HasError first.
func (r *Response) FinalAnswer() string {
	if r.AnnotatedAnswer != "" {
		return r.AnnotatedAnswer
	}
	return r.Answer
}
