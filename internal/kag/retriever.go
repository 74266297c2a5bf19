package kag

import (
	"context"
	"log"
	"strings"
	"unicode"

	"github.com/orgbrain/kag/internal/graph"
	"github.com/orgbrain/kag/internal/nlp"
)

// strategyFunc is one composite retrieval procedure. Strategies isolate
// every underlying graph call: a failed sub-query is logged and leaves
// only its field of the context empty.
type strategyFunc func(ctx context.Context, entities nlp.QueryEntities) *Context

// Retriever routes an extracted intent to its retrieval strategy.
type Retriever struct {
	store      graph.Store
	strategies map[nlp.Intent]strategyFunc
}

// NewRetriever creates a retriever with the fixed intent-to-strategy
// mapping.
func NewRetriever(store graph.Store) *Retriever {
	r := &Retriever{store: store}
	r.strategies = map[nlp.Intent]strategyFunc{
		nlp.IntentFindPeopleByProject: r.peopleByProject,
		nlp.IntentFindOutcomes:        r.outcomes,
		nlp.IntentFindProjectOutcomes: r.projectOutcomes,
		nlp.IntentFindReports:         r.reports,
		nlp.IntentComprehensiveSearch: r.comprehensive,
	}
	return r
}

// Retrieve dispatches to the strategy for the entities' intent. Unknown
// intents fall back to the comprehensive strategy.
func (r *Retriever) Retrieve(ctx context.Context, entities nlp.QueryEntities) *Context {
	strategy, ok := r.strategies[entities.Intent]
	if !ok {
		strategy = r.comprehensive
	}
	kgc := strategy(ctx, entities)
	log.Printf("kag: retrieval for intent %s produced %d entities", entities.Intent, kgc.TotalEntities())
	return kgc
}

func (r *Retriever) peopleByProject(ctx context.Context, entities nlp.QueryEntities) *Context {
	kgc := NewContext()
	category := entities.PrimaryProjectCategory()

	if employees, err := r.store.EmployeesByProjectCategory(ctx, category); err != nil {
		log.Printf("kag: employees by project category %q: %v", category, err)
	} else {
		kgc.Employees = append(kgc.Employees, employees...)
	}

	if projects, err := r.store.ProjectsByCategory(ctx, category); err != nil {
		log.Printf("kag: projects by category %q: %v", category, err)
	} else {
		kgc.Projects = append(kgc.Projects, projects...)
	}

	// Detail records carry outcomes and reports here; the typed lists
	// stay empty.
	if outcomes, err := r.store.OutcomesByProjectCategory(ctx, category); err != nil {
		log.Printf("kag: outcomes by project category %q: %v", category, err)
	} else {
		kgc.OutcomeDetails = append(kgc.OutcomeDetails, outcomes...)
	}

	if reports, err := r.store.ReportDetailsByProjectCategory(ctx, category); err != nil {
		log.Printf("kag: reports by project category %q: %v", category, err)
	} else {
		kgc.ReportDetails = append(kgc.ReportDetails, reports...)
	}

	return kgc
}

func (r *Retriever) outcomes(ctx context.Context, entities nlp.QueryEntities) *Context {
	kgc := NewContext()
	category := entities.PrimaryProjectCategory()
	keyword := entities.PrimaryOutcomeKeyword()

	if details, err := r.store.OutcomeDetails(ctx, category, keyword); err != nil {
		log.Printf("kag: outcome details (%q, %q): %v", category, keyword, err)
	} else {
		kgc.OutcomeDetails = append(kgc.OutcomeDetails, details...)
	}

	if projects, err := r.store.ProjectsWithOutcomesByCategory(ctx, category); err != nil {
		log.Printf("kag: projects with outcomes by category %q: %v", category, err)
	} else {
		kgc.Projects = append(kgc.Projects, projects...)
	}

	return kgc
}

func (r *Retriever) projectOutcomes(ctx context.Context, entities nlp.QueryEntities) *Context {
	kgc := NewContext()
	category := entities.PrimaryProjectCategory()

	if summaries, err := r.store.ProjectSummariesByCategory(ctx, category); err != nil {
		log.Printf("kag: project summaries by category %q: %v", category, err)
	} else {
		kgc.ProjectSummaries = append(kgc.ProjectSummaries, summaries...)
	}

	if outcomes, err := r.store.OutcomesByProjectCategory(ctx, category); err != nil {
		log.Printf("kag: outcomes by project category %q: %v", category, err)
	} else {
		kgc.OutcomeDetails = append(kgc.OutcomeDetails, outcomes...)
	}

	return kgc
}

func (r *Retriever) reports(ctx context.Context, entities nlp.QueryEntities) *Context {
	kgc := NewContext()
	category := entities.PrimaryProjectCategory()

	if reports, err := r.store.ReportDetailsByProjectCategory(ctx, category); err != nil {
		log.Printf("kag: report details by category %q: %v", category, err)
	} else {
		kgc.ReportDetails = append(kgc.ReportDetails, reports...)
	}

	// Include the outcomes those reports document.
	if outcomes, err := r.store.OutcomesByProjectCategory(ctx, category); err != nil {
		log.Printf("kag: outcomes by project category %q: %v", category, err)
	} else {
		kgc.OutcomeDetails = append(kgc.OutcomeDetails, outcomes...)
	}

	return kgc
}

func (r *Retriever) comprehensive(ctx context.Context, entities nlp.QueryEntities) *Context {
	kgc := NewContext()
	category := entities.PrimaryProjectCategory()

	// With extracted person names, try a targeted search first: each name
	// is looked up under three casing variants, and the union is
	// deduplicated by graph element id.
	if entities.PersonNames.Len() > 0 {
		seenEmployees := make(map[string]bool)
		seenProjects := make(map[string]bool)

		for _, personName := range entities.PersonNames.Values() {
			for _, variant := range nameVariants(personName) {
				employees, err := r.store.EmployeesByName(ctx, variant)
				if err != nil {
					log.Printf("kag: employees by name %q: %v", variant, err)
				}
				for _, emp := range employees {
					if !seenEmployees[emp.ID] {
						seenEmployees[emp.ID] = true
						kgc.Employees = append(kgc.Employees, emp)
					}
				}

				projects, err := r.store.ProjectsByEmployeeName(ctx, variant)
				if err != nil {
					log.Printf("kag: projects by employee name %q: %v", variant, err)
				}
				for _, proj := range projects {
					if !seenProjects[proj.ID] {
						seenProjects[proj.ID] = true
						kgc.Projects = append(kgc.Projects, proj)
					}
				}
			}
		}
	}

	// Fall back to the category lookup when the targeted search found
	// nobody.
	if len(kgc.Employees) == 0 {
		if employees, err := r.store.EmployeesByProjectCategory(ctx, category); err != nil {
			log.Printf("kag: employees by project category %q: %v", category, err)
		} else {
			kgc.Employees = append(kgc.Employees, employees...)
		}

		if projects, err := r.store.ProjectsByCategory(ctx, category); err != nil {
			log.Printf("kag: projects by category %q: %v", category, err)
		} else {
			kgc.Projects = append(kgc.Projects, projects...)
		}
	}

	// Project summaries are intentionally left empty on this path.
	if details, err := r.store.OutcomeDetails(ctx, category, ""); err != nil {
		log.Printf("kag: outcome details by category %q: %v", category, err)
	} else {
		kgc.OutcomeDetails = append(kgc.OutcomeDetails, details...)
	}

	if reports, err := r.store.ReportDetailsByProjectCategory(ctx, category); err != nil {
		log.Printf("kag: report details by category %q: %v", category, err)
	} else {
		kgc.ReportDetails = append(kgc.ReportDetails, reports...)
	}

	return kgc
}

// nameVariants returns the casing variants tried for a person name:
// verbatim, first letter capitalized, and every word capitalized.
func nameVariants(name string) []string {
	return []string{name, capitalizeFirst(name), capitalizeWords(name)}
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}

func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalizeFirst(w)
	}
	return strings.Join(words, " ")
}
