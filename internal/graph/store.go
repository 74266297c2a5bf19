package graph

import "context"

// Store is the read surface of the knowledge graph. Each method is one
// named query shape with scalar parameters; implementations are expected
// to be idempotent and side-effect-free.
type Store interface {
	// EmployeesByProjectCategory returns distinct employees who worked on
	// projects whose category or name contains the given category.
	EmployeesByProjectCategory(ctx context.Context, category string) ([]Employee, error)

	// EmployeesByName returns employees whose name exactly matches.
	EmployeesByName(ctx context.Context, name string) ([]Employee, error)

	// ProjectsByEmployeeName returns the projects a named employee worked on.
	ProjectsByEmployeeName(ctx context.Context, name string) ([]Project, error)

	// ProjectsByCategory returns projects whose category or name contains
	// the given category.
	ProjectsByCategory(ctx context.Context, category string) ([]Project, error)

	// ProjectsWithOutcomesByCategory returns projects in the category that
	// achieved at least one outcome.
	ProjectsWithOutcomesByCategory(ctx context.Context, category string) ([]Project, error)

	// ProjectSummariesByCategory returns one composite summary per project
	// in the category, joining team members, outcomes, metrics, and reports.
	ProjectSummariesByCategory(ctx context.Context, category string) ([]ProjectSummary, error)

	// OutcomeDetails returns outcomes whose category contains the given
	// category or whose description contains the keyword, with the titles
	// of the reports documenting them.
	OutcomeDetails(ctx context.Context, category, keyword string) ([]OutcomeDetail, error)

	// OutcomesByProjectCategory returns the outcomes achieved by projects
	// in the category, with documenting report titles.
	OutcomesByProjectCategory(ctx context.Context, category string) ([]OutcomeDetail, error)

	// ReportDetailsByProjectCategory returns reports produced by projects
	// in the category, newest first, with the producing project's name.
	ReportDetailsByProjectCategory(ctx context.Context, category string) ([]ReportDetail, error)
}
