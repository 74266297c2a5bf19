package kag

import "github.com/orgbrain/kag/internal/graph"

// Context is the aggregate of retrieved graph facts for one query. It is
// created fresh per retrieval, owned by the pipeline invocation that
// produced it, and discarded after the response is built. Collections
// are always non-nil.
type Context struct {
	Employees []graph.Employee `json:"employees"`
	Projects  []graph.Project  `json:"projects"`
	Reports   []graph.Report   `json:"reports"`
	Outcomes  []graph.Outcome  `json:"outcomes"`

	ProjectSummaries []graph.ProjectSummary `json:"project_summaries"`
	OutcomeDetails   []graph.OutcomeDetail  `json:"outcome_details"`
	ReportDetails    []graph.ReportDetail   `json:"report_details"`
}

// NewContext returns a context with all collections empty.
func NewContext() *Context {
	return &Context{
		Employees:        []graph.Employee{},
		Projects:         []graph.Project{},
		Reports:          []graph.Report{},
		Outcomes:         []graph.Outcome{},
		ProjectSummaries: []graph.ProjectSummary{},
		OutcomeDetails:   []graph.OutcomeDetail{},
		ReportDetails:    []graph.ReportDetail{},
	}
}

// TotalEntities is the sum of all seven collection sizes, computed on
// every call so it can never drift from the collections.
func (c *Context) TotalEntities() int {
	return len(c.Employees) + len(c.Projects) + len(c.Reports) + len(c.Outcomes) +
		len(c.ProjectSummaries) + len(c.OutcomeDetails) + len(c.ReportDetails)
}

// IsEmpty reports whether no facts were retrieved at all.
func (c *Context) IsEmpty() bool {
	return c.TotalEntities() == 0
}
