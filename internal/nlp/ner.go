package nlp

import "context"

// Names is the result of named-entity recognition over free text.
type Names struct {
	Persons       []string `json:"persons"`
	Organizations []string `json:"organizations"`
}

// NER extracts person and organization names from text. Implementations
// must be safe for concurrent use; one instance is shared by all
// in-flight queries. Callers treat any error as "no names found".
type NER interface {
	Extract(ctx context.Context, text string) (Names, error)
}
