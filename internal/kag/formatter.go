package kag

import (
	"fmt"
	"strings"
)

// FormatContext renders the retrieved facts as the deterministic text
// block passed to the model. Sections backed by empty collections are
// omitted entirely; an all-empty context yields only the header line.
func FormatContext(kgc *Context) string {
	var b strings.Builder
	b.WriteString("KNOWLEDGE GRAPH CONTEXT:\n\n")

	if len(kgc.Employees) > 0 {
		b.WriteString("EMPLOYEES:\n")
		for _, emp := range kgc.Employees {
			fmt.Fprintf(&b, "- %s (%s) - %s, %s\n", emp.Name, emp.Role, emp.Department, emp.Email)
		}
		b.WriteString("\n")
	}

	if len(kgc.Projects) > 0 {
		b.WriteString("PROJECTS:\n")
		for _, proj := range kgc.Projects {
			fmt.Fprintf(&b, "- %s: %s (Status: %s)\n", proj.Name, proj.Description, proj.Status)
		}
		b.WriteString("\n")
	}

	if len(kgc.ProjectSummaries) > 0 {
		b.WriteString("PROJECT SUMMARIES:\n")
		for _, summary := range kgc.ProjectSummaries {
			fmt.Fprintf(&b, "- %s\n", summary)
		}
		b.WriteString("\n")
	}

	if len(kgc.OutcomeDetails) > 0 {
		b.WriteString("OUTCOMES:\n")
		for _, outcome := range kgc.OutcomeDetails {
			fmt.Fprintf(&b, "- %s\n", outcome)
		}
		b.WriteString("\n")
	}

	if len(kgc.ReportDetails) > 0 {
		b.WriteString("SUPPORTING REPORTS:\n")
		for _, report := range kgc.ReportDetails {
			fmt.Fprintf(&b, "- %s\n", report)
		}
		b.WriteString("\n")
	}

	return b.String()
}
