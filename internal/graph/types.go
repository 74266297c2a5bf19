package graph

import (
	"fmt"
	"strings"
)

// Employee is a person node in the knowledge graph.
type Employee struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Department string   `json:"department"`
	Role       string   `json:"role"`
	JoinDate   string   `json:"join_date,omitempty"`
	Skills     []string `json:"skills,omitempty"`
}

// Project is a project node in the knowledge graph.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Status      string `json:"status"`
	Budget      int    `json:"budget,omitempty"`
}

// Outcome is a measurable result node achieved by a project.
type Outcome struct {
	ID           string `json:"id"`
	Description  string `json:"description"`
	ImpactLevel  string `json:"impact_level"`
	Metrics      string `json:"metrics"`
	AchievedDate string `json:"achieved_date,omitempty"`
	Category     string `json:"category"`
}

// Report is a document node in the knowledge graph.
type Report struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content,omitempty"`
	Type     string `json:"type"`
	Date     string `json:"date"`
	FilePath string `json:"file_path,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// ProjectSummary is the composite record returned by the project-summary
// query: one project joined with its team, outcomes, and reports.
type ProjectSummary struct {
	ProjectName        string   `json:"project_name"`
	ProjectDescription string   `json:"project_description"`
	TeamMembers        []string `json:"team_members"`
	Outcomes           []string `json:"outcomes"`
	Metrics            []string `json:"metrics"`
	SupportingReports  []string `json:"supporting_reports"`
}

// String renders the summary as a single deterministic line.
func (s ProjectSummary) String() string {
	return fmt.Sprintf("%s: %s | Team: %s | Outcomes: %s | Metrics: %s | Reports: %s",
		s.ProjectName, s.ProjectDescription,
		strings.Join(s.TeamMembers, ", "),
		strings.Join(s.Outcomes, "; "),
		strings.Join(s.Metrics, "; "),
		strings.Join(s.SupportingReports, "; "))
}

// OutcomeDetail is the composite record returned by outcome queries:
// an outcome plus the titles of the reports that document it.
type OutcomeDetail struct {
	Outcome      Outcome  `json:"outcome"`
	DocumentedIn []string `json:"documented_in,omitempty"`
}

// String renders the detail as a single deterministic line. The citation
// engine matches answer fragments against this text by substring.
func (d OutcomeDetail) String() string {
	line := fmt.Sprintf("%s (impact: %s, metrics: %s, category: %s)",
		d.Outcome.Description, d.Outcome.ImpactLevel, d.Outcome.Metrics, d.Outcome.Category)
	if len(d.DocumentedIn) > 0 {
		line += " documented in: " + strings.Join(d.DocumentedIn, ", ")
	}
	return line
}

// ReportDetail is the composite record returned by the report-by-project
// query: a report joined with the name of the project that produced it.
type ReportDetail struct {
	Report      Report `json:"report"`
	ProjectName string `json:"project_name"`
}

// String renders the detail as a single deterministic line.
func (d ReportDetail) String() string {
	line := fmt.Sprintf("%s (%s, %s)", d.Report.Title, d.Report.Type, d.Report.Date)
	if d.Report.Summary != "" {
		line += ": " + d.Report.Summary
	}
	if d.ProjectName != "" {
		line += " [project: " + d.ProjectName + "]"
	}
	return line
}
