// Candidates table accessor: hydrates between SQLite rows and
// *types.Candidate structs and persists changes to candidates.jsonl.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/rulebook/pkg/types"
)

// Compile-time interface check.
var _ types.Table = (*candidatesTable)(nil)

// candidatesTable implements the Table interface for the candidates entity.
type candidatesTable struct {
	backend *Backend
}

// candidateColumns is the column list used by every candidates query, in
// Scan order.
const candidateColumns = `candidate_id, name, category, has_syntax, can_be_held,
    meaning_is_serialized, requires_parsing, is_ontology_descriptor,
    has_identity, chosen_language_candidate, distance_from_concept, sort_order`

// candidateFieldToColumn maps Candidate struct field names to columns for
// Fetch filters.
var candidateFieldToColumn = map[string]string{
	"CandidateID":             "candidate_id",
	"Name":                    "name",
	"Category":                "category",
	"HasSyntax":               "has_syntax",
	"CanBeHeld":               "can_be_held",
	"MeaningIsSerialized":     "meaning_is_serialized",
	"RequiresParsing":         "requires_parsing",
	"IsOntologyDescriptor":    "is_ontology_descriptor",
	"HasIdentity":             "has_identity",
	"ChosenLanguageCandidate": "chosen_language_candidate",
	"DistanceFromConcept":     "distance_from_concept",
	"SortOrder":               "sort_order",
}

// scanner abstracts *sql.Row and *sql.Rows for hydration.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateCandidate scans one row into a Candidate.
func hydrateCandidate(s scanner) (*types.Candidate, error) {
	var (
		c                   types.Candidate
		name, category      sql.NullString
		hasSyntax           sql.NullBool
		canBeHeld           sql.NullBool
		meaningIsSerialized sql.NullBool
		requiresParsing     sql.NullBool
		isOntology          sql.NullBool
		hasIdentity         sql.NullBool
		chosen              sql.NullBool
		distance            sql.NullInt64
		sortOrder           sql.NullInt64
	)
	err := s.Scan(&c.CandidateID, &name, &category, &hasSyntax, &canBeHeld,
		&meaningIsSerialized, &requiresParsing, &isOntology, &hasIdentity,
		&chosen, &distance, &sortOrder)
	if err != nil {
		return nil, err
	}
	c.Name = stringPtr(name)
	c.Category = stringPtr(category)
	c.HasSyntax = boolPtr(hasSyntax)
	c.CanBeHeld = boolPtr(canBeHeld)
	c.MeaningIsSerialized = boolPtr(meaningIsSerialized)
	c.RequiresParsing = boolPtr(requiresParsing)
	c.IsOntologyDescriptor = boolPtr(isOntology)
	c.HasIdentity = boolPtr(hasIdentity)
	c.ChosenLanguageCandidate = boolPtr(chosen)
	c.DistanceFromConcept = intPtr(distance)
	c.SortOrder = intPtr(sortOrder)
	return &c, nil
}

// candidateBindValues returns the bind values matching candidateColumns.
func candidateBindValues(c *types.Candidate) []any {
	return []any{
		c.CandidateID,
		bindString(c.Name),
		bindString(c.Category),
		bindBool(c.HasSyntax),
		bindBool(c.CanBeHeld),
		bindBool(c.MeaningIsSerialized),
		bindBool(c.RequiresParsing),
		bindBool(c.IsOntologyDescriptor),
		bindBool(c.HasIdentity),
		bindBool(c.ChosenLanguageCandidate),
		bindInt(c.DistanceFromConcept),
		bindInt(c.SortOrder),
	}
}

// Get retrieves a candidate by ID.
func (ct *candidatesTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	ct.backend.mu.RLock()
	defer ct.backend.mu.RUnlock()
	if !ct.backend.attached {
		return nil, types.ErrStoreDetached
	}

	row := ct.backend.db.QueryRow(
		"SELECT "+candidateColumns+" FROM candidates WHERE candidate_id = ?", id)
	c, err := hydrateCandidate(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting candidate %s: %w", id, err)
	}
	return c, nil
}

// Set creates or updates a candidate. When id is empty a UUID v7 is
// generated. The candidates JSONL file is rewritten after the row is
// persisted.
func (ct *candidatesTable) Set(id string, data any) (string, error) {
	c, ok := data.(*types.Candidate)
	if !ok {
		return "", types.ErrInvalidData
	}

	ct.backend.mu.Lock()
	defer ct.backend.mu.Unlock()
	if !ct.backend.attached {
		return "", types.ErrStoreDetached
	}

	if id == "" {
		newID, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating UUID v7: %w", err)
		}
		id = newID.String()
	}
	c.CandidateID = id

	_, err := ct.backend.db.Exec(
		"INSERT OR REPLACE INTO candidates ("+candidateColumns+") VALUES "+
			"(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		candidateBindValues(c)...)
	if err != nil {
		return "", fmt.Errorf("persisting candidate: %w", err)
	}

	if err := ct.persist(); err != nil {
		return "", err
	}
	return id, nil
}

// Delete removes a candidate by ID.
func (ct *candidatesTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	ct.backend.mu.Lock()
	defer ct.backend.mu.Unlock()
	if !ct.backend.attached {
		return types.ErrStoreDetached
	}

	res, err := ct.backend.db.Exec("DELETE FROM candidates WHERE candidate_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting candidate %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return ct.persist()
}

// Fetch returns candidates matching the filter, ordered by sort_order.
// Filter keys are Candidate struct field names; an empty filter matches all.
func (ct *candidatesTable) Fetch(filter map[string]any) ([]any, error) {
	ct.backend.mu.RLock()
	defer ct.backend.mu.RUnlock()
	if !ct.backend.attached {
		return nil, types.ErrStoreDetached
	}

	query := "SELECT " + candidateColumns + " FROM candidates"
	var (
		clauses []string
		args    []any
	)
	for field, value := range filter {
		col, ok := candidateFieldToColumn[field]
		if !ok {
			return nil, fmt.Errorf("%w: %s", types.ErrInvalidFilter, field)
		}
		clauses = append(clauses, col+" = ?")
		args = append(args, value)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY sort_order IS NULL, sort_order, candidate_id"

	rows, err := ct.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching candidates: %w", err)
	}
	defer rows.Close()

	var out []any
	for rows.Next() {
		c, err := hydrateCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating candidate: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating candidates: %w", err)
	}
	return out, nil
}

// persist rewrites candidates.jsonl from the current table contents.
// Callers must hold the backend write lock.
func (ct *candidatesTable) persist() error {
	rows, err := ct.backend.db.Query(
		"SELECT " + candidateColumns + " FROM candidates ORDER BY candidate_id")
	if err != nil {
		return fmt.Errorf("reading candidates for persist: %w", err)
	}
	defer rows.Close()

	var candidates []types.Candidate
	for rows.Next() {
		c, err := hydrateCandidate(rows)
		if err != nil {
			return fmt.Errorf("hydrating candidate for persist: %w", err)
		}
		candidates = append(candidates, *c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating candidates for persist: %w", err)
	}

	records, err := marshalJSONL(candidates)
	if err != nil {
		return err
	}
	return writeJSONL(ct.backend.dataPath(candidatesFile), records)
}
