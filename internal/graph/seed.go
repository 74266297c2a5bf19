package graph

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedData is the YAML shape consumed by `kag seed`. Nodes are keyed by
// id; relationships reference those ids.
type SeedData struct {
	Employees []SeedEmployee `yaml:"employees"`
	Projects  []SeedProject  `yaml:"projects"`
	Outcomes  []SeedOutcome  `yaml:"outcomes"`
	Reports   []SeedReport   `yaml:"reports"`

	WorkedOn  []SeedRelation `yaml:"worked_on"`
	Achieved  []SeedRelation `yaml:"achieved"`
	Produced  []SeedRelation `yaml:"produced"`
	Documents []SeedRelation `yaml:"documents"`
}

type SeedEmployee struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Email      string   `yaml:"email"`
	Department string   `yaml:"department"`
	Role       string   `yaml:"role"`
	JoinDate   string   `yaml:"join_date"`
	Skills     []string `yaml:"skills"`
}

type SeedProject struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	StartDate   string `yaml:"start_date"`
	EndDate     string `yaml:"end_date"`
	Status      string `yaml:"status"`
	Budget      int    `yaml:"budget"`
}

type SeedOutcome struct {
	ID           string `yaml:"id"`
	Description  string `yaml:"description"`
	ImpactLevel  string `yaml:"impact_level"`
	Metrics      string `yaml:"metrics"`
	AchievedDate string `yaml:"achieved_date"`
	Category     string `yaml:"category"`
}

type SeedReport struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Content  string `yaml:"content"`
	Type     string `yaml:"type"`
	Date     string `yaml:"date"`
	FilePath string `yaml:"file_path"`
	Summary  string `yaml:"summary"`
}

// SeedRelation connects two seeded nodes by id.
type SeedRelation struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// ParseSeedFile reads and validates a seed YAML file.
func ParseSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}
	return &data, nil
}

// Validate checks that every relationship references a seeded node id.
func (d *SeedData) Validate() error {
	ids := make(map[string]bool)
	for _, e := range d.Employees {
		if e.ID == "" {
			return fmt.Errorf("employee %q has no id", e.Name)
		}
		ids[e.ID] = true
	}
	for _, p := range d.Projects {
		if p.ID == "" {
			return fmt.Errorf("project %q has no id", p.Name)
		}
		ids[p.ID] = true
	}
	for _, o := range d.Outcomes {
		if o.ID == "" {
			return fmt.Errorf("outcome %q has no id", o.Description)
		}
		ids[o.ID] = true
	}
	for _, r := range d.Reports {
		if r.ID == "" {
			return fmt.Errorf("report %q has no id", r.Title)
		}
		ids[r.ID] = true
	}

	check := func(kind string, rels []SeedRelation) error {
		for _, rel := range rels {
			if !ids[rel.From] || !ids[rel.To] {
				return fmt.Errorf("%s relation %s -> %s references unknown id", kind, rel.From, rel.To)
			}
		}
		return nil
	}

	for kind, rels := range map[string][]SeedRelation{
		"worked_on": d.WorkedOn,
		"achieved":  d.Achieved,
		"produced":  d.Produced,
		"documents": d.Documents,
	} {
		if err := check(kind, rels); err != nil {
			return err
		}
	}
	return nil
}

// Seed loads the dataset into Neo4j. Nodes are merged on id so reseeding
// is idempotent.
func (s *Neo4jStore) Seed(ctx context.Context, data *SeedData) error {
	for _, e := range data.Employees {
		err := s.write(ctx, `
			MERGE (n:Employee {id: $id})
			SET n.name = $name, n.email = $email, n.department = $department,
			    n.role = $role, n.joinDate = $joinDate, n.skills = $skills`,
			map[string]any{
				"id": e.ID, "name": e.Name, "email": e.Email,
				"department": e.Department, "role": e.Role,
				"joinDate": e.JoinDate, "skills": e.Skills,
			})
		if err != nil {
			return fmt.Errorf("seeding employee %s: %w", e.ID, err)
		}
	}

	for _, p := range data.Projects {
		err := s.write(ctx, `
			MERGE (n:Project {id: $id})
			SET n.name = $name, n.description = $description, n.category = $category,
			    n.startDate = $startDate, n.endDate = $endDate, n.status = $status,
			    n.budget = $budget`,
			map[string]any{
				"id": p.ID, "name": p.Name, "description": p.Description,
				"category": p.Category, "startDate": p.StartDate,
				"endDate": p.EndDate, "status": p.Status, "budget": p.Budget,
			})
		if err != nil {
			return fmt.Errorf("seeding project %s: %w", p.ID, err)
		}
	}

	for _, o := range data.Outcomes {
		err := s.write(ctx, `
			MERGE (n:Outcome {id: $id})
			SET n.description = $description, n.impactLevel = $impactLevel,
			    n.metrics = $metrics, n.achievedDate = $achievedDate, n.category = $category`,
			map[string]any{
				"id": o.ID, "description": o.Description, "impactLevel": o.ImpactLevel,
				"metrics": o.Metrics, "achievedDate": o.AchievedDate, "category": o.Category,
			})
		if err != nil {
			return fmt.Errorf("seeding outcome %s: %w", o.ID, err)
		}
	}

	for _, r := range data.Reports {
		err := s.write(ctx, `
			MERGE (n:Report {id: $id})
			SET n.title = $title, n.content = $content, n.type = $type,
			    n.date = $date, n.filePath = $filePath, n.summary = $summary`,
			map[string]any{
				"id": r.ID, "title": r.Title, "content": r.Content, "type": r.Type,
				"date": r.Date, "filePath": r.FilePath, "summary": r.Summary,
			})
		if err != nil {
			return fmt.Errorf("seeding report %s: %w", r.ID, err)
		}
	}

	relTypes := []struct {
		rels   []SeedRelation
		cypher string
		name   string
	}{
		{data.WorkedOn, `MATCH (a:Employee {id: $from}), (b:Project {id: $to}) MERGE (a)-[:WORKED_ON]->(b)`, "worked_on"},
		{data.Achieved, `MATCH (a:Project {id: $from}), (b:Outcome {id: $to}) MERGE (a)-[:ACHIEVED]->(b)`, "achieved"},
		{data.Produced, `MATCH (a:Project {id: $from}), (b:Report {id: $to}) MERGE (a)-[:PRODUCED]->(b)`, "produced"},
		{data.Documents, `MATCH (a:Report {id: $from}), (b:Outcome {id: $to}) MERGE (a)-[:DOCUMENTS]->(b)`, "documents"},
	}

	for _, rt := range relTypes {
		for _, rel := range rt.rels {
			if err := s.write(ctx, rt.cypher, map[string]any{"from": rel.From, "to": rel.To}); err != nil {
				return fmt.Errorf("seeding %s relation %s -> %s: %w", rt.name, rel.From, rel.To, err)
			}
		}
	}

	return nil
}
