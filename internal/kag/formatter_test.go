package kag

import (
	"strings"
	"testing"

	"github.com/orgbrain/kag/internal/graph"
)

func TestFormatContextEmpty(t *testing.T) {
	got := FormatContext(NewContext())
	if got != "KNOWLEDGE GRAPH CONTEXT:\n\n" {
		t.Errorf("expected header only, got %q", got)
	}
}

func TestFormatContextSections(t *testing.T) {
	kgc := NewContext()
	kgc.Employees = append(kgc.Employees, graph.Employee{
		Name:       "Sarah Chen",
		Role:       "Research Lead",
		Department: "Safety",
		Email:      "sarah@example.com",
	})
	kgc.Projects = append(kgc.Projects, graph.Project{
		Name:        "AI Safety Initiative",
		Description: "Alignment research",
		Status:      "active",
	})
	kgc.OutcomeDetails = append(kgc.OutcomeDetails, graph.OutcomeDetail{
		Outcome: graph.Outcome{Description: "reduced bias", ImpactLevel: "high", Metrics: "40%", Category: "bias"},
	})

	got := FormatContext(kgc)

	if !strings.Contains(got, "EMPLOYEES:\n- Sarah Chen (Research Lead) - Safety, sarah@example.com\n") {
		t.Errorf("unexpected employees section in %q", got)
	}
	if !strings.Contains(got, "PROJECTS:\n- AI Safety Initiative: Alignment research (Status: active)\n") {
		t.Errorf("unexpected projects section in %q", got)
	}
	if !strings.Contains(got, "OUTCOMES:\n- reduced bias (impact: high, metrics: 40%, category: bias)\n") {
		t.Errorf("unexpected outcomes section in %q", got)
	}
	// Empty collections leave no trace.
	if strings.Contains(got, "PROJECT SUMMARIES") || strings.Contains(got, "SUPPORTING REPORTS") {
		t.Errorf("empty sections must be omitted, got %q", got)
	}
}

func TestFormatContextDeterministic(t *testing.T) {
	kgc := NewContext()
	kgc.ReportDetails = append(kgc.ReportDetails, graph.ReportDetail{
		Report:      graph.Report{Title: "Audit", Type: "audit", Date: "2024-06-01", Summary: "All clear"},
		ProjectName: "Ethics Framework",
	})

	first := FormatContext(kgc)
	second := FormatContext(kgc)
	if first != second {
		t.Error("formatting must be deterministic")
	}
	if !strings.Contains(first, "- Audit (audit, 2024-06-01): All clear [project: Ethics Framework]\n") {
		t.Errorf("unexpected report line in %q", first)
	}
}

func TestContextTotalEntities(t *testing.T) {
	kgc := NewContext()
	if !kgc.IsEmpty() || kgc.TotalEntities() != 0 {
		t.Error("fresh context must be empty")
	}

	kgc.Employees = append(kgc.Employees, graph.Employee{})
	kgc.Reports = append(kgc.Reports, graph.Report{}, graph.Report{})
	kgc.ProjectSummaries = append(kgc.ProjectSummaries, graph.ProjectSummary{})

	if got := kgc.TotalEntities(); got != 4 {
		t.Errorf("expected 4 entities, got %d", got)
	}
	if kgc.IsEmpty() {
		t.Error("populated context must not report empty")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Who worked on safety?", "KNOWLEDGE GRAPH CONTEXT:\n\n")

	if !strings.Contains(prompt, "USER QUERY: Who worked on safety?\n") {
		t.Error("expected the literal user query")
	}
	if !strings.Contains(prompt, "Base your answer ONLY on the provided knowledge graph context") {
		t.Error("expected the grounding instruction")
	}
	if BuildPrompt("q", "ctx") != BuildPrompt("q", "ctx") {
		t.Error("prompt building must be deterministic")
	}
}
