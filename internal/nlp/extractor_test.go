package nlp

import (
	"context"
	"errors"
	"testing"
)

// mockNER returns canned names or an error.
type mockNER struct {
	names Names
	err   error
	calls int
}

func (m *mockNER) Extract(ctx context.Context, text string) (Names, error) {
	m.calls++
	if m.err != nil {
		return Names{}, m.err
	}
	return m.names, nil
}

func TestClassifyIntentCascade(t *testing.T) {
	tests := []struct {
		query string
		want  Intent
	}{
		{"Who worked on AI safety projects?", IntentFindPeopleByProject},
		{"Who was involved in the ethics framework?", IntentFindPeopleByProject},
		{"What outcomes were achieved?", IntentFindOutcomes},
		{"What results did the team deliver?", IntentFindOutcomes},
		{"Show project outcomes for bias detection", IntentFindProjectOutcomes},
		{"Which reports cover AI safety?", IntentFindReports},
		{"Which documents describe the framework?", IntentFindReports},
		{"Tell me about Sarah Chen", IntentComprehensiveSearch},
		{"", IntentComprehensiveSearch},
	}

	extractor := NewExtractor(nil)
	for _, tt := range tests {
		got := extractor.Extract(context.Background(), tt.query)
		if got.Intent != tt.want {
			t.Errorf("query %q: expected intent %s, got %s", tt.query, tt.want, got.Intent)
		}
	}
}

func TestClassifyIntentFirstRuleWins(t *testing.T) {
	// Matches both the people rule and the outcomes rule; the people
	// rule is earlier in the cascade.
	extractor := NewExtractor(nil)
	got := extractor.Extract(context.Background(), "Who worked on it and what outcome did they achieve?")
	if got.Intent != IntentFindPeopleByProject {
		t.Errorf("expected FIND_PEOPLE_BY_PROJECT, got %s", got.Intent)
	}
}

func TestExtractKeywordCanonicalization(t *testing.T) {
	extractor := NewExtractor(nil)
	entities := extractor.Extract(context.Background(), "What SAFETY improvements reduced bias?")

	if !entities.ProjectKeywords.Has("AI Safety") {
		t.Error("expected 'safety' to canonicalize to project keyword 'AI Safety'")
	}
	if !entities.EmployeeKeywords.Has("AI Safety") {
		t.Error("expected 'safety' to canonicalize to employee keyword 'AI Safety'")
	}
	if !entities.ProjectKeywords.Has("bias") {
		t.Error("expected project keyword 'bias'")
	}
	if !entities.OutcomeKeywords.Has("reduction") {
		t.Error("expected 'reduced' to canonicalize to 'reduction'")
	}
	if !entities.OutcomeKeywords.Has("improvement") {
		t.Error("expected 'improvements' to yield 'improvement'")
	}
}

func TestExtractEmptyQuery(t *testing.T) {
	extractor := NewExtractor(nil)
	entities := extractor.Extract(context.Background(), "")

	if entities.EmployeeKeywords.Len() != 0 || entities.ProjectKeywords.Len() != 0 ||
		entities.OutcomeKeywords.Len() != 0 || entities.ReportKeywords.Len() != 0 {
		t.Error("expected no keywords for empty query")
	}
	if entities.Intent != IntentComprehensiveSearch {
		t.Errorf("expected COMPREHENSIVE_SEARCH, got %s", entities.Intent)
	}
	if entities.PersonNames == nil || entities.Organizations == nil {
		t.Error("expected all sets to be non-nil")
	}
}

func TestExtractNERNames(t *testing.T) {
	ner := &mockNER{names: Names{
		Persons:       []string{"Sarah Chen"},
		Organizations: []string{"Anthropic"},
	}}
	extractor := NewExtractor(ner)
	entities := extractor.Extract(context.Background(), "What did Sarah Chen work on at Anthropic?")

	if !entities.PersonNames.Has("Sarah Chen") {
		t.Error("expected person name from NER")
	}
	if !entities.Organizations.Has("Anthropic") {
		t.Error("expected organization from NER")
	}
	if ner.calls != 1 {
		t.Errorf("expected 1 NER call, got %d", ner.calls)
	}
}

func TestExtractNERFailureIsSoft(t *testing.T) {
	ner := &mockNER{err: errors.New("model unavailable")}
	extractor := NewExtractor(ner)
	entities := extractor.Extract(context.Background(), "Who worked on AI safety?")

	if entities.PersonNames.Len() != 0 {
		t.Error("expected empty person names after NER failure")
	}
	if !entities.ProjectKeywords.Has("AI Safety") {
		t.Error("keyword extraction should survive NER failure")
	}
	if entities.Intent != IntentFindPeopleByProject {
		t.Errorf("intent classification should survive NER failure, got %s", entities.Intent)
	}
}

func TestSetValuesSorted(t *testing.T) {
	s := NewSet("zeta", "alpha", "mid")
	got := s.Values()
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPrimaryProjectCategory(t *testing.T) {
	tests := []struct {
		name    string
		project []string
		emp     []string
		want    string
	}{
		{"ai safety wins", []string{"AI Safety", "bias"}, nil, "AI Safety"},
		{"employee keyword counts", nil, []string{"AI Safety"}, "AI Safety"},
		{"bias", []string{"bias"}, nil, "bias"},
		{"ethics", []string{"ethics"}, nil, "ethics"},
		{"default", nil, nil, "AI Safety"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueryEntities()
			for _, kw := range tt.project {
				q.ProjectKeywords.Add(kw)
			}
			for _, kw := range tt.emp {
				q.EmployeeKeywords.Add(kw)
			}
			if got := q.PrimaryProjectCategory(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPrimaryOutcomeKeyword(t *testing.T) {
	q := NewQueryEntities()
	if got := q.PrimaryOutcomeKeyword(); got != "" {
		t.Errorf("expected empty keyword, got %q", got)
	}

	q.OutcomeKeywords.Add("accuracy")
	q.OutcomeKeywords.Add("reduction")
	if got := q.PrimaryOutcomeKeyword(); got != "reduction" {
		t.Errorf("expected 'reduction' to take priority, got %q", got)
	}
}
