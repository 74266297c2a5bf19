package kag

import (
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/orgbrain/kag/internal/graph"
)

// CitationType classifies what kind of claim a citation supports.
type CitationType string

const (
	CitationMetric         CitationType = "METRIC"
	CitationOutcome        CitationType = "OUTCOME"
	CitationProject        CitationType = "PROJECT"
	CitationProjectSummary CitationType = "PROJECT_SUMMARY"
	CitationReport         CitationType = "REPORT"
)

// Citation is a structured pointer from a claim in the generated answer
// back to a source record in the context.
type Citation struct {
	Type           CitationType `json:"type"`
	Content        string       `json:"content"`
	SourceDocument string       `json:"source_document"`
	SourceType     string       `json:"source_type,omitempty"`
	FilePath       string       `json:"file_path,omitempty"`
	Metadata       string       `json:"metadata,omitempty"`
}

// Formatted renders the citation for the Sources footnote. Optional
// suffixes appear only when their field is present.
func (c Citation) Formatted() string {
	var b strings.Builder
	b.WriteString(c.SourceDocument)
	if c.SourceType != "" {
		b.WriteString(" (" + c.SourceType + ")")
	}
	if c.FilePath != "" {
		b.WriteString(" - " + c.FilePath)
	}
	if c.Metadata != "" {
		b.WriteString(" - " + c.Metadata)
	}
	return b.String()
}

// Same reports citation identity for deduplication: two citations are
// the same iff type, source document, and content match, regardless of
// the other fields.
func (c Citation) Same(other Citation) bool {
	return c.Type == other.Type &&
		c.SourceDocument == other.SourceDocument &&
		c.Content == other.Content
}

var (
	metricPattern  = regexp.MustCompile(`(\d+\.\d+%|\d+%|\d+ [a-zA-Z]+)`)
	outcomePattern = regexp.MustCompile(`(?i)(reduced|improved|achieved|implemented|established)\s+([^.]+)`)
)

// CitationEngine post-processes generated answers. Both operations are
// stateless and independently invokable.
type CitationEngine struct{}

// NewCitationEngine creates a citation engine.
func NewCitationEngine() *CitationEngine {
	return &CitationEngine{}
}

// Inject scans the answer for metric and outcome claims supported by
// the context, rewrites metric spans with bracketed citation indexes,
// adds project and project-summary citations, and appends a Sources
// footnote. Injection is best-effort: on any internal failure the
// original answer is returned unchanged.
func (e *CitationEngine) Inject(answer string, kgc *Context) string {
	annotated, err := e.inject(answer, kgc)
	if err != nil {
		log.Printf("kag: citation injection failed, returning plain answer: %v", err)
		return answer
	}
	return annotated
}

type replacement struct {
	start, end int
	text       string
}

func (e *CitationEngine) inject(answer string, kgc *Context) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("injection panic: %v", r)
		}
	}()

	var citations []Citation
	var replacements []replacement

	// Metric pass. All matches are located on the original text and the
	// replacements applied once, left-to-right, so earlier rewrites can
	// never shift later offsets.
	for _, m := range metricPattern.FindAllStringSubmatchIndex(answer, -1) {
		start, end := m[2], m[3]
		metric := answer[start:end]

		for _, rd := range kgc.ReportDetails {
			if !strings.Contains(rd.String(), metric) {
				continue
			}
			citation := Citation{
				Type:           CitationMetric,
				Content:        metric,
				SourceDocument: reportDetailTitle(rd),
				SourceType:     "Report",
			}
			if index, added := appendCitation(&citations, citation); added {
				replacements = append(replacements, replacement{
					start: start,
					end:   end,
					text:  fmt.Sprintf("%s [%d]", metric, index),
				})
			}
			break
		}
	}

	annotated := applyReplacements(answer, replacements)

	// Outcome-verb pass: recorded as citations but not rewritten in
	// place.
	for _, match := range outcomePattern.FindAllString(answer, -1) {
		lowerMatch := strings.ToLower(match)
		for _, od := range kgc.OutcomeDetails {
			if !strings.Contains(strings.ToLower(od.String()), lowerMatch) {
				continue
			}
			citation := Citation{
				Type:           CitationOutcome,
				Content:        match,
				SourceDocument: outcomeSource(od),
				SourceType:     "Outcome Documentation",
			}
			appendCitation(&citations, citation)
			break
		}
	}

	// Project-name pass: one citation per project mentioned verbatim.
	for _, proj := range kgc.Projects {
		if proj.Name == "" || !strings.Contains(answer, proj.Name) {
			continue
		}
		citation := Citation{
			Type:           CitationProject,
			Content:        proj.Name,
			SourceDocument: proj.Name + " Project Documentation",
			SourceType:     "Project",
			Metadata:       fmt.Sprintf("Start: %s, Status: %s", proj.StartDate, proj.Status),
		}
		appendCitation(&citations, citation)
	}

	// Project-summary pass: one citation per summary record present.
	for _, summary := range kgc.ProjectSummaries {
		doc := summary.ProjectName
		if doc == "" {
			doc = "Project Documentation"
		}
		citation := Citation{
			Type:           CitationProjectSummary,
			Content:        "Project Summary",
			SourceDocument: doc,
			SourceType:     "Project Summary",
		}
		appendCitation(&citations, citation)
	}

	if len(citations) > 0 {
		var b strings.Builder
		b.WriteString(annotated)
		b.WriteString("\n\n**Sources:**\n")
		for i, citation := range citations {
			fmt.Fprintf(&b, "[%d] %s\n", i+1, citation.Formatted())
		}
		annotated = b.String()
	}

	return annotated, nil
}

// Extract builds the full citation list from the context alone,
// independent of the answer text. It is not deduplicated against the
// injected citations.
func (e *CitationEngine) Extract(kgc *Context) []Citation {
	citations := []Citation{}

	for _, report := range kgc.Reports {
		citations = append(citations, Citation{
			Type:           CitationReport,
			Content:        report.Title,
			SourceDocument: report.Title,
			SourceType:     "Report",
			FilePath:       report.FilePath,
			Metadata:       fmt.Sprintf("Date: %s, Type: %s", report.Date, report.Type),
		})
	}

	for _, rd := range kgc.ReportDetails {
		title := reportDetailTitle(rd)
		citations = append(citations, Citation{
			Type:           CitationReport,
			Content:        title,
			SourceDocument: title,
			SourceType:     "Report",
		})
	}

	return citations
}

// appendCitation adds the citation unless an identical one (by Same) is
// already present. It returns the 1-based index of the citation in the
// list and whether it was newly added.
func appendCitation(citations *[]Citation, citation Citation) (int, bool) {
	for i, existing := range *citations {
		if existing.Same(citation) {
			return i + 1, false
		}
	}
	*citations = append(*citations, citation)
	return len(*citations), true
}

// applyReplacements rewrites the spans in a single pass over the
// original string.
func applyReplacements(s string, replacements []replacement) string {
	if len(replacements) == 0 {
		return s
	}
	sort.Slice(replacements, func(i, j int) bool {
		return replacements[i].start < replacements[j].start
	})

	var b strings.Builder
	last := 0
	for _, r := range replacements {
		if r.start < last {
			// Regexp matches never overlap; an overlapping span is dropped.
			continue
		}
		b.WriteString(s[last:r.start])
		b.WriteString(r.text)
		last = r.end
	}
	b.WriteString(s[last:])
	return b.String()
}

func reportDetailTitle(rd graph.ReportDetail) string {
	if rd.Report.Title == "" {
		return "Unknown Report"
	}
	return rd.Report.Title
}

func outcomeSource(od graph.OutcomeDetail) string {
	if len(od.DocumentedIn) > 0 {
		return strings.Join(od.DocumentedIn, ", ")
	}
	return "Internal Documentation"
}
