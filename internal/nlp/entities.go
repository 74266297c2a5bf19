package nlp

import (
	"encoding/json"
	"sort"
)

// Intent classifies what kind of retrieval a query requires.
type Intent string

const (
	IntentFindPeopleByProject Intent = "FIND_PEOPLE_BY_PROJECT"
	IntentFindOutcomes        Intent = "FIND_OUTCOMES"
	IntentFindProjectOutcomes Intent = "FIND_PROJECT_OUTCOMES"
	IntentFindReports         Intent = "FIND_REPORTS"
	IntentComprehensiveSearch Intent = "COMPREHENSIVE_SEARCH"
)

// Set is a case-preserving string set. The zero value is not usable;
// construct with NewSet.
type Set map[string]struct{}

// NewSet creates a set containing the given items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s Set) Add(v string)      { s[v] = struct{}{} }
func (s Set) Has(v string) bool { _, ok := s[v]; return ok }
func (s Set) Len() int          { return len(s) }

// Values returns the members in sorted order.
func (s Set) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON renders the set as a sorted array.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON reads the set from an array.
func (s *Set) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewSet(items...)
	return nil
}

// QueryEntities is the structured result of entity extraction. All sets
// are always non-nil; Intent is always one of the five values.
type QueryEntities struct {
	EmployeeKeywords Set    `json:"employee_keywords"`
	ProjectKeywords  Set    `json:"project_keywords"`
	OutcomeKeywords  Set    `json:"outcome_keywords"`
	ReportKeywords   Set    `json:"report_keywords"`
	PersonNames      Set    `json:"person_names"`
	Organizations    Set    `json:"organizations"`
	Intent           Intent `json:"query_intent"`
}

// NewQueryEntities returns an entity bundle with empty sets and the
// default catch-all intent.
func NewQueryEntities() QueryEntities {
	return QueryEntities{
		EmployeeKeywords: NewSet(),
		ProjectKeywords:  NewSet(),
		OutcomeKeywords:  NewSet(),
		ReportKeywords:   NewSet(),
		PersonNames:      NewSet(),
		Organizations:    NewSet(),
		Intent:           IntentComprehensiveSearch,
	}
}

// PrimaryProjectCategory derives the single canonical retrieval anchor.
// The system always has an anchor, even for unrelated queries.
func (q QueryEntities) PrimaryProjectCategory() string {
	if q.ProjectKeywords.Has("AI Safety") || q.EmployeeKeywords.Has("AI Safety") {
		return "AI Safety"
	}
	if q.ProjectKeywords.Has("bias") {
		return "bias"
	}
	if q.ProjectKeywords.Has("ethics") {
		return "ethics"
	}
	return "AI Safety"
}

// PrimaryOutcomeKeyword picks the highest-priority canonical outcome
// keyword, or empty when none is present.
func (q QueryEntities) PrimaryOutcomeKeyword() string {
	for _, kw := range []string{"reduction", "improvement", "accuracy"} {
		if q.OutcomeKeywords.Has(kw) {
			return kw
		}
	}
	return ""
}
