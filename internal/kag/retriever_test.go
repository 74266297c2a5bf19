package kag

import (
	"context"
	"errors"
	"testing"

	"github.com/orgbrain/kag/internal/graph"
	"github.com/orgbrain/kag/internal/nlp"
)

// mockStore returns canned data per query shape and records the
// arguments it was called with.
type mockStore struct {
	employeesByCategory []graph.Employee
	employeesByName     map[string][]graph.Employee
	projectsByEmployee  map[string][]graph.Project
	projectsByCategory  []graph.Project
	projectsWithOut     []graph.Project
	summaries           []graph.ProjectSummary
	outcomeDetails      []graph.OutcomeDetail
	outcomesByCategory  []graph.OutcomeDetail
	reportDetails       []graph.ReportDetail

	failEmployeesByCategory bool

	categories   []string
	nameLookups  []string
	outcomeCalls [][2]string
}

func (m *mockStore) EmployeesByProjectCategory(ctx context.Context, category string) ([]graph.Employee, error) {
	m.categories = append(m.categories, category)
	if m.failEmployeesByCategory {
		return nil, errors.New("connection reset")
	}
	return m.employeesByCategory, nil
}

func (m *mockStore) EmployeesByName(ctx context.Context, name string) ([]graph.Employee, error) {
	m.nameLookups = append(m.nameLookups, name)
	return m.employeesByName[name], nil
}

func (m *mockStore) ProjectsByEmployeeName(ctx context.Context, name string) ([]graph.Project, error) {
	return m.projectsByEmployee[name], nil
}

func (m *mockStore) ProjectsByCategory(ctx context.Context, category string) ([]graph.Project, error) {
	return m.projectsByCategory, nil
}

func (m *mockStore) ProjectsWithOutcomesByCategory(ctx context.Context, category string) ([]graph.Project, error) {
	return m.projectsWithOut, nil
}

func (m *mockStore) ProjectSummariesByCategory(ctx context.Context, category string) ([]graph.ProjectSummary, error) {
	return m.summaries, nil
}

func (m *mockStore) OutcomeDetails(ctx context.Context, category, keyword string) ([]graph.OutcomeDetail, error) {
	m.outcomeCalls = append(m.outcomeCalls, [2]string{category, keyword})
	return m.outcomeDetails, nil
}

func (m *mockStore) OutcomesByProjectCategory(ctx context.Context, category string) ([]graph.OutcomeDetail, error) {
	return m.outcomesByCategory, nil
}

func (m *mockStore) ReportDetailsByProjectCategory(ctx context.Context, category string) ([]graph.ReportDetail, error) {
	return m.reportDetails, nil
}

func entitiesWithIntent(intent nlp.Intent) nlp.QueryEntities {
	e := nlp.NewQueryEntities()
	e.Intent = intent
	return e
}

func TestRetrievePeopleByProject(t *testing.T) {
	store := &mockStore{
		employeesByCategory: []graph.Employee{{ID: "e1", Name: "Sarah Chen"}},
		projectsByCategory:  []graph.Project{{ID: "p1", Name: "AI Safety Initiative"}},
		outcomesByCategory:  []graph.OutcomeDetail{{Outcome: graph.Outcome{ID: "o1"}}},
		reportDetails:       []graph.ReportDetail{{Report: graph.Report{ID: "r1"}}},
		summaries:           []graph.ProjectSummary{{ProjectName: "should not appear"}},
	}

	kgc := NewRetriever(store).Retrieve(context.Background(), entitiesWithIntent(nlp.IntentFindPeopleByProject))

	if len(kgc.Employees) != 1 || len(kgc.Projects) != 1 {
		t.Errorf("expected employees and projects, got %d/%d", len(kgc.Employees), len(kgc.Projects))
	}
	if len(kgc.OutcomeDetails) != 1 || len(kgc.ReportDetails) != 1 {
		t.Errorf("expected detail records, got %d/%d", len(kgc.OutcomeDetails), len(kgc.ReportDetails))
	}
	if len(kgc.Outcomes) != 0 || len(kgc.Reports) != 0 || len(kgc.ProjectSummaries) != 0 {
		t.Error("typed outcome/report lists and summaries must stay empty on this path")
	}
	if store.categories[0] != "AI Safety" {
		t.Errorf("expected default category anchor, got %q", store.categories[0])
	}
}

func TestRetrieveOutcomesPassesKeyword(t *testing.T) {
	store := &mockStore{
		outcomeDetails:  []graph.OutcomeDetail{{Outcome: graph.Outcome{ID: "o1"}}},
		projectsWithOut: []graph.Project{{ID: "p1"}},
	}

	e := entitiesWithIntent(nlp.IntentFindOutcomes)
	e.ProjectKeywords.Add("bias")
	e.OutcomeKeywords.Add("reduction")

	kgc := NewRetriever(store).Retrieve(context.Background(), e)

	if len(store.outcomeCalls) != 1 {
		t.Fatalf("expected 1 outcome details call, got %d", len(store.outcomeCalls))
	}
	if store.outcomeCalls[0] != [2]string{"bias", "reduction"} {
		t.Errorf("unexpected outcome call args %v", store.outcomeCalls[0])
	}
	if len(kgc.OutcomeDetails) != 1 || len(kgc.Projects) != 1 {
		t.Errorf("expected outcome details and projects, got %d/%d", len(kgc.OutcomeDetails), len(kgc.Projects))
	}
}

func TestRetrieveProjectOutcomes(t *testing.T) {
	store := &mockStore{
		summaries:          []graph.ProjectSummary{{ProjectName: "Ethics Framework"}},
		outcomesByCategory: []graph.OutcomeDetail{{Outcome: graph.Outcome{ID: "o1"}}},
	}

	e := entitiesWithIntent(nlp.IntentFindProjectOutcomes)
	e.ProjectKeywords.Add("ethics")

	kgc := NewRetriever(store).Retrieve(context.Background(), e)

	if len(kgc.ProjectSummaries) != 1 || len(kgc.OutcomeDetails) != 1 {
		t.Errorf("expected summaries and outcomes, got %d/%d", len(kgc.ProjectSummaries), len(kgc.OutcomeDetails))
	}
}

func TestRetrieveReports(t *testing.T) {
	store := &mockStore{
		reportDetails:      []graph.ReportDetail{{Report: graph.Report{ID: "r1"}}},
		outcomesByCategory: []graph.OutcomeDetail{{Outcome: graph.Outcome{ID: "o1"}}},
	}

	kgc := NewRetriever(store).Retrieve(context.Background(), entitiesWithIntent(nlp.IntentFindReports))

	if len(kgc.ReportDetails) != 1 || len(kgc.OutcomeDetails) != 1 {
		t.Errorf("expected reports and outcomes, got %d/%d", len(kgc.ReportDetails), len(kgc.OutcomeDetails))
	}
}

func TestRetrieveComprehensiveNameVariants(t *testing.T) {
	store := &mockStore{
		employeesByName: map[string][]graph.Employee{
			"Sarah Chen": {{ID: "e1", Name: "Sarah Chen"}},
		},
		projectsByEmployee: map[string][]graph.Project{
			"Sarah Chen": {{ID: "p1", Name: "AI Safety Initiative"}},
		},
	}

	e := entitiesWithIntent(nlp.IntentComprehensiveSearch)
	e.PersonNames.Add("sarah chen")

	kgc := NewRetriever(store).Retrieve(context.Background(), e)

	// Lowercase input is retried with capitalized variants.
	wantLookups := []string{"sarah chen", "Sarah chen", "Sarah Chen"}
	if len(store.nameLookups) != len(wantLookups) {
		t.Fatalf("expected %d name lookups, got %v", len(wantLookups), store.nameLookups)
	}
	for i, want := range wantLookups {
		if store.nameLookups[i] != want {
			t.Errorf("lookup %d: expected %q, got %q", i, want, store.nameLookups[i])
		}
	}

	if len(kgc.Employees) != 1 || len(kgc.Projects) != 1 {
		t.Errorf("expected 1 employee and 1 project, got %d/%d", len(kgc.Employees), len(kgc.Projects))
	}
	// The targeted search succeeded, so no category fallback ran.
	if len(store.categories) != 0 {
		t.Errorf("expected no category fallback, got %v", store.categories)
	}
}

func TestRetrieveComprehensiveDeduplicates(t *testing.T) {
	emp := graph.Employee{ID: "e1", Name: "Sarah Chen"}
	store := &mockStore{
		employeesByName: map[string][]graph.Employee{
			"Sarah Chen": {emp},
			"SARAH CHEN": {emp},
		},
	}

	e := entitiesWithIntent(nlp.IntentComprehensiveSearch)
	e.PersonNames.Add("Sarah Chen")
	e.PersonNames.Add("SARAH CHEN")

	kgc := NewRetriever(store).Retrieve(context.Background(), e)

	if len(kgc.Employees) != 1 {
		t.Errorf("expected variants to deduplicate by id, got %d employees", len(kgc.Employees))
	}
}

func TestRetrieveComprehensiveFallsBackToCategory(t *testing.T) {
	store := &mockStore{
		employeesByCategory: []graph.Employee{{ID: "e2", Name: "Maya Patel"}},
		projectsByCategory:  []graph.Project{{ID: "p2"}},
	}

	e := entitiesWithIntent(nlp.IntentComprehensiveSearch)
	e.PersonNames.Add("Nobody Known")

	kgc := NewRetriever(store).Retrieve(context.Background(), e)

	if len(kgc.Employees) != 1 {
		t.Errorf("expected category fallback to populate employees, got %d", len(kgc.Employees))
	}
	if len(store.categories) == 0 {
		t.Error("expected fallback category lookup")
	}
}

func TestRetrieveSubQueryFailureIsIsolated(t *testing.T) {
	store := &mockStore{
		failEmployeesByCategory: true,
		projectsByCategory:      []graph.Project{{ID: "p1"}},
		outcomesByCategory:      []graph.OutcomeDetail{{Outcome: graph.Outcome{ID: "o1"}}},
		reportDetails:           []graph.ReportDetail{{Report: graph.Report{ID: "r1"}}},
	}

	kgc := NewRetriever(store).Retrieve(context.Background(), entitiesWithIntent(nlp.IntentFindPeopleByProject))

	if len(kgc.Employees) != 0 {
		t.Errorf("expected empty employees after sub-query failure, got %d", len(kgc.Employees))
	}
	if len(kgc.Projects) != 1 || len(kgc.OutcomeDetails) != 1 || len(kgc.ReportDetails) != 1 {
		t.Error("other sub-queries must still populate the context")
	}
}

func TestRetrieveUnknownIntentFallsBack(t *testing.T) {
	store := &mockStore{
		employeesByCategory: []graph.Employee{{ID: "e1"}},
	}

	kgc := NewRetriever(store).Retrieve(context.Background(), entitiesWithIntent(nlp.Intent("SOMETHING_NEW")))

	// The comprehensive strategy runs: category lookups happen and the
	// context is populated.
	if len(store.categories) == 0 {
		t.Error("expected comprehensive fallback for unknown intent")
	}
	if len(kgc.Employees) != 1 {
		t.Errorf("expected fallback retrieval, got %d employees", len(kgc.Employees))
	}
}
