package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Config holds Neo4j connection settings.
type Config struct {
	URI      string
	Username string
	Password string
	Database string
}

// Neo4jStore implements Store over the Neo4j Bolt driver. A single
// instance is created at process start and shared by all queries; the
// driver manages its own connection pool.
type Neo4jStore struct {
	cfg    Config
	driver neo4j.DriverWithContext
}

// NewNeo4jStore creates a store and verifies connectivity.
func NewNeo4jStore(ctx context.Context, cfg Config) (*Neo4jStore, error) {
	auth := neo4j.BasicAuth(cfg.Username, cfg.Password, "")

	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth, func(c *neo4j.Config) {
		c.MaxConnectionPoolSize = 25
		c.ConnectionAcquisitionTimeout = 30 * time.Second
	})
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("verifying neo4j connectivity: %w", err)
	}

	return &Neo4jStore{cfg: cfg, driver: driver}, nil
}

// Close releases the driver and its connection pool.
func (s *Neo4jStore) Close(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}
	return s.driver.Close(ctx)
}

// read runs a Cypher query in a read transaction and collects all records.
func (s *Neo4jStore) read(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.cfg.Database})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("executing graph query: %w", err)
	}
	return result.([]*neo4j.Record), nil
}

// write runs a Cypher statement in a write transaction.
func (s *Neo4jStore) write(ctx context.Context, cypher string, params map[string]any) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.cfg.Database})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, cypher, params)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("executing graph write: %w", err)
	}
	return nil
}

func (s *Neo4jStore) EmployeesByProjectCategory(ctx context.Context, category string) ([]Employee, error) {
	records, err := s.read(ctx, `
		MATCH (e:Employee)-[:WORKED_ON]->(p:Project)
		WHERE p.category CONTAINS $category OR p.name CONTAINS $category
		RETURN DISTINCT e`,
		map[string]any{"category": category})
	if err != nil {
		return nil, err
	}
	return mapNodes(records, "e", employeeFromNode)
}

func (s *Neo4jStore) EmployeesByName(ctx context.Context, name string) ([]Employee, error) {
	records, err := s.read(ctx, `
		MATCH (e:Employee) WHERE e.name = $name RETURN e`,
		map[string]any{"name": name})
	if err != nil {
		return nil, err
	}
	return mapNodes(records, "e", employeeFromNode)
}

func (s *Neo4jStore) ProjectsByEmployeeName(ctx context.Context, name string) ([]Project, error) {
	records, err := s.read(ctx, `
		MATCH (e:Employee {name: $name})-[:WORKED_ON]->(p:Project)
		RETURN DISTINCT p`,
		map[string]any{"name": name})
	if err != nil {
		return nil, err
	}
	return mapNodes(records, "p", projectFromNode)
}

func (s *Neo4jStore) ProjectsByCategory(ctx context.Context, category string) ([]Project, error) {
	records, err := s.read(ctx, `
		MATCH (p:Project)
		WHERE p.category CONTAINS $category OR p.name CONTAINS $category
		RETURN p`,
		map[string]any{"category": category})
	if err != nil {
		return nil, err
	}
	return mapNodes(records, "p", projectFromNode)
}

func (s *Neo4jStore) ProjectsWithOutcomesByCategory(ctx context.Context, category string) ([]Project, error) {
	records, err := s.read(ctx, `
		MATCH (p:Project)-[:ACHIEVED]->(:Outcome)
		WHERE p.category CONTAINS $category
		RETURN DISTINCT p`,
		map[string]any{"category": category})
	if err != nil {
		return nil, err
	}
	return mapNodes(records, "p", projectFromNode)
}

func (s *Neo4jStore) ProjectSummariesByCategory(ctx context.Context, category string) ([]ProjectSummary, error) {
	records, err := s.read(ctx, `
		MATCH (e:Employee)-[:WORKED_ON]->(p:Project)
		WHERE p.category CONTAINS $category
		MATCH (p)-[:ACHIEVED]->(o:Outcome)
		OPTIONAL MATCH (r:Report)-[:DOCUMENTS]->(o)
		RETURN p.name AS projectName,
		       p.description AS projectDescription,
		       collect(DISTINCT e.name) AS teamMembers,
		       collect(DISTINCT o.description) AS outcomes,
		       collect(DISTINCT o.metrics) AS metrics,
		       collect(DISTINCT r.title) AS supportingReports`,
		map[string]any{"category": category})
	if err != nil {
		return nil, err
	}

	summaries := make([]ProjectSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, ProjectSummary{
			ProjectName:        recordString(rec, "projectName"),
			ProjectDescription: recordString(rec, "projectDescription"),
			TeamMembers:        recordStrings(rec, "teamMembers"),
			Outcomes:           recordStrings(rec, "outcomes"),
			Metrics:            recordStrings(rec, "metrics"),
			SupportingReports:  recordStrings(rec, "supportingReports"),
		})
	}
	return summaries, nil
}

func (s *Neo4jStore) OutcomeDetails(ctx context.Context, category, keyword string) ([]OutcomeDetail, error) {
	records, err := s.read(ctx, `
		MATCH (o:Outcome)
		WHERE o.category CONTAINS $category OR ($keyword <> '' AND o.description CONTAINS $keyword)
		OPTIONAL MATCH (r:Report)-[:DOCUMENTS]->(o)
		RETURN o, collect(DISTINCT r.title) AS documentedIn`,
		map[string]any{"category": category, "keyword": keyword})
	if err != nil {
		return nil, err
	}
	return outcomeDetailsFromRecords(records)
}

func (s *Neo4jStore) OutcomesByProjectCategory(ctx context.Context, category string) ([]OutcomeDetail, error) {
	records, err := s.read(ctx, `
		MATCH (p:Project)-[:ACHIEVED]->(o:Outcome)
		WHERE p.category CONTAINS $category
		OPTIONAL MATCH (r:Report)-[:DOCUMENTS]->(o)
		RETURN DISTINCT o, collect(DISTINCT r.title) AS documentedIn`,
		map[string]any{"category": category})
	if err != nil {
		return nil, err
	}
	return outcomeDetailsFromRecords(records)
}

func (s *Neo4jStore) ReportDetailsByProjectCategory(ctx context.Context, category string) ([]ReportDetail, error) {
	records, err := s.read(ctx, `
		MATCH (p:Project)-[:PRODUCED]->(r:Report)
		WHERE p.category CONTAINS $category
		RETURN r, p.name AS projectName
		ORDER BY r.date DESC`,
		map[string]any{"category": category})
	if err != nil {
		return nil, err
	}

	details := make([]ReportDetail, 0, len(records))
	for _, rec := range records {
		node, ok := recordNode(rec, "r")
		if !ok {
			continue
		}
		details = append(details, ReportDetail{
			Report:      reportFromNode(node),
			ProjectName: recordString(rec, "projectName"),
		})
	}
	return details, nil
}

func outcomeDetailsFromRecords(records []*neo4j.Record) ([]OutcomeDetail, error) {
	details := make([]OutcomeDetail, 0, len(records))
	for _, rec := range records {
		node, ok := recordNode(rec, "o")
		if !ok {
			continue
		}
		details = append(details, OutcomeDetail{
			Outcome:      outcomeFromNode(node),
			DocumentedIn: recordStrings(rec, "documentedIn"),
		})
	}
	return details, nil
}

// mapNodes converts the node bound to key in every record using fn.
func mapNodes[T any](records []*neo4j.Record, key string, fn func(neo4j.Node) T) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		node, ok := recordNode(rec, key)
		if !ok {
			continue
		}
		out = append(out, fn(node))
	}
	return out, nil
}

func recordNode(rec *neo4j.Record, key string) (neo4j.Node, bool) {
	val, ok := rec.Get(key)
	if !ok {
		return neo4j.Node{}, false
	}
	node, ok := val.(neo4j.Node)
	return node, ok
}

func recordString(rec *neo4j.Record, key string) string {
	val, ok := rec.Get(key)
	if !ok {
		return ""
	}
	s, _ := val.(string)
	return s
}

// recordStrings reads a collect() column, dropping nulls that OPTIONAL
// MATCH can introduce.
func recordStrings(rec *neo4j.Record, key string) []string {
	val, ok := rec.Get(key)
	if !ok {
		return nil
	}
	items, ok := val.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func propString(node neo4j.Node, key string) string {
	s, _ := node.Props[key].(string)
	return s
}

func propInt(node neo4j.Node, key string) int {
	switch v := node.Props[key].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func propStrings(node neo4j.Node, key string) []string {
	items, ok := node.Props[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func employeeFromNode(node neo4j.Node) Employee {
	return Employee{
		ID:         node.GetElementId(),
		Name:       propString(node, "name"),
		Email:      propString(node, "email"),
		Department: propString(node, "department"),
		Role:       propString(node, "role"),
		JoinDate:   propString(node, "joinDate"),
		Skills:     propStrings(node, "skills"),
	}
}

func projectFromNode(node neo4j.Node) Project {
	return Project{
		ID:          node.GetElementId(),
		Name:        propString(node, "name"),
		Description: propString(node, "description"),
		Category:    propString(node, "category"),
		StartDate:   propString(node, "startDate"),
		EndDate:     propString(node, "endDate"),
		Status:      propString(node, "status"),
		Budget:      propInt(node, "budget"),
	}
}

func outcomeFromNode(node neo4j.Node) Outcome {
	return Outcome{
		ID:           node.GetElementId(),
		Description:  propString(node, "description"),
		ImpactLevel:  propString(node, "impactLevel"),
		Metrics:      propString(node, "metrics"),
		AchievedDate: propString(node, "achievedDate"),
		Category:     propString(node, "category"),
	}
}

func reportFromNode(node neo4j.Node) Report {
	return Report{
		ID:       node.GetElementId(),
		Title:    propString(node, "title"),
		Content:  propString(node, "content"),
		Type:     propString(node, "type"),
		Date:     propString(node, "date"),
		FilePath: propString(node, "filePath"),
		Summary:  propString(node, "summary"),
	}
}
