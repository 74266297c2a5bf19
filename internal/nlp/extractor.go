package nlp

import (
	"context"
	"log"
	"strings"
)

// Extractor turns a raw query string into a fully populated
// QueryEntities. Extraction never fails outright: the keyword pass
// always runs, and the NER pass degrades to empty name sets when the
// collaborator is absent or errors.
type Extractor struct {
	ner NER // may be nil
}

// NewExtractor creates an extractor. ner may be nil to disable the
// person/organization pass.
func NewExtractor(ner NER) *Extractor {
	return &Extractor{ner: ner}
}

// Extract runs the keyword pass, the best-effort NER pass, and intent
// classification.
func (e *Extractor) Extract(ctx context.Context, query string) QueryEntities {
	entities := NewQueryEntities()
	lower := strings.ToLower(query)

	e.extractEmployeeKeywords(lower, entities.EmployeeKeywords)
	e.extractProjectKeywords(lower, entities.ProjectKeywords)
	e.extractOutcomeKeywords(lower, entities.OutcomeKeywords)
	e.extractReportKeywords(lower, entities.ReportKeywords)

	if e.ner != nil {
		names, err := e.ner.Extract(ctx, query)
		if err != nil {
			log.Printf("nlp: NER extraction failed, continuing with keywords only: %v", err)
		} else {
			for _, p := range names.Persons {
				entities.PersonNames.Add(p)
			}
			for _, o := range names.Organizations {
				entities.Organizations.Add(o)
			}
		}
	}

	entities.Intent = classifyIntent(lower)
	return entities
}

func (e *Extractor) extractEmployeeKeywords(query string, keywords Set) {
	for _, kw := range employeeVocabulary {
		if strings.Contains(query, kw) {
			keywords.Add(kw)
		}
	}
	if strings.Contains(query, "ai safety") || strings.Contains(query, "safety") {
		keywords.Add("AI Safety")
	}
	if strings.Contains(query, "researcher") {
		keywords.Add("researcher")
	}
	if strings.Contains(query, "engineer") {
		keywords.Add("engineer")
	}
}

func (e *Extractor) extractProjectKeywords(query string, keywords Set) {
	for _, kw := range projectVocabulary {
		if strings.Contains(query, kw) {
			keywords.Add(kw)
		}
	}
	if strings.Contains(query, "ai safety") || strings.Contains(query, "safety") {
		keywords.Add("AI Safety")
	}
	if strings.Contains(query, "bias") {
		keywords.Add("bias")
	}
	if strings.Contains(query, "ethics") {
		keywords.Add("ethics")
	}
}

func (e *Extractor) extractOutcomeKeywords(query string, keywords Set) {
	for _, kw := range outcomeVocabulary {
		if strings.Contains(query, kw) {
			keywords.Add(kw)
		}
	}
	if strings.Contains(query, "reduction") || strings.Contains(query, "reduced") {
		keywords.Add("reduction")
	}
	if strings.Contains(query, "improvement") || strings.Contains(query, "improved") {
		keywords.Add("improvement")
	}
	if strings.Contains(query, "accuracy") {
		keywords.Add("accuracy")
	}
}

func (e *Extractor) extractReportKeywords(query string, keywords Set) {
	for _, kw := range reportVocabulary {
		if strings.Contains(query, kw) {
			keywords.Add(kw)
		}
	}
}

// classifyIntent walks an ordered rule cascade over the lower-cased
// query; the first matching rule wins, so a query matching both the
// people rule and the outcomes rule classifies as people.
func classifyIntent(query string) Intent {
	contains := func(s string) bool { return strings.Contains(query, s) }

	if contains("who") && (contains("worked") || contains("involved")) {
		return IntentFindPeopleByProject
	}
	if contains("what") && (contains("outcome") || contains("result") || contains("achievement")) {
		return IntentFindOutcomes
	}
	if contains("project") && (contains("outcome") || contains("result")) {
		return IntentFindProjectOutcomes
	}
	if contains("report") || contains("document") {
		return IntentFindReports
	}
	return IntentComprehensiveSearch
}
