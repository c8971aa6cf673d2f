// Argument-steps table accessor: hydrates between SQLite rows and
// *types.ArgumentStep structs and persists changes to argument_steps.jsonl.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/rulebook/pkg/types"
)

// Compile-time interface check.
var _ types.Table = (*argumentStepsTable)(nil)

// argumentStepsTable implements the Table interface for argument steps.
type argumentStepsTable struct {
	backend *Backend
}

// stepColumns is the column list used by every argument_steps query, in
// Scan order.
const stepColumns = `step_id, name, argument_name, argument_category, step_type,
    statement, formalization, related_candidate_name, related_candidate_id,
    evidence, notes`

// stepFieldToColumn maps ArgumentStep struct field names to columns for
// Fetch filters.
var stepFieldToColumn = map[string]string{
	"StepID":               "step_id",
	"Name":                 "name",
	"ArgumentName":         "argument_name",
	"ArgumentCategory":     "argument_category",
	"StepType":             "step_type",
	"Statement":            "statement",
	"Formalization":        "formalization",
	"RelatedCandidateName": "related_candidate_name",
	"RelatedCandidateID":   "related_candidate_id",
	"Evidence":             "evidence",
	"Notes":                "notes",
}

// hydrateStep scans one row into an ArgumentStep.
func hydrateStep(s scanner) (*types.ArgumentStep, error) {
	var (
		step                          types.ArgumentStep
		name, argName, argCategory    sql.NullString
		stepType, statement           sql.NullString
		formalization, relName, relID sql.NullString
		evidence, notes               sql.NullString
	)
	err := s.Scan(&step.StepID, &name, &argName, &argCategory, &stepType,
		&statement, &formalization, &relName, &relID, &evidence, &notes)
	if err != nil {
		return nil, err
	}
	step.Name = stringPtr(name)
	step.ArgumentName = stringPtr(argName)
	step.ArgumentCategory = stringPtr(argCategory)
	step.StepType = stringPtr(stepType)
	step.Statement = stringPtr(statement)
	step.Formalization = stringPtr(formalization)
	step.RelatedCandidateName = stringPtr(relName)
	step.RelatedCandidateID = stringPtr(relID)
	step.Evidence = stringPtr(evidence)
	step.Notes = stringPtr(notes)
	return &step, nil
}

// stepBindValues returns the bind values matching stepColumns.
func stepBindValues(s *types.ArgumentStep) []any {
	return []any{
		s.StepID,
		bindString(s.Name),
		bindString(s.ArgumentName),
		bindString(s.ArgumentCategory),
		bindString(s.StepType),
		bindString(s.Statement),
		bindString(s.Formalization),
		bindString(s.RelatedCandidateName),
		bindString(s.RelatedCandidateID),
		bindString(s.Evidence),
		bindString(s.Notes),
	}
}

// Get retrieves an argument step by ID.
func (st *argumentStepsTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	st.backend.mu.RLock()
	defer st.backend.mu.RUnlock()
	if !st.backend.attached {
		return nil, types.ErrStoreDetached
	}

	row := st.backend.db.QueryRow(
		"SELECT "+stepColumns+" FROM argument_steps WHERE step_id = ?", id)
	step, err := hydrateStep(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting argument step %s: %w", id, err)
	}
	return step, nil
}

// Set creates or updates an argument step. When id is empty a UUID v7 is
// generated.
func (st *argumentStepsTable) Set(id string, data any) (string, error) {
	step, ok := data.(*types.ArgumentStep)
	if !ok {
		return "", types.ErrInvalidData
	}

	st.backend.mu.Lock()
	defer st.backend.mu.Unlock()
	if !st.backend.attached {
		return "", types.ErrStoreDetached
	}

	if id == "" {
		newID, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating UUID v7: %w", err)
		}
		id = newID.String()
	}
	step.StepID = id

	_, err := st.backend.db.Exec(
		"INSERT OR REPLACE INTO argument_steps ("+stepColumns+") VALUES "+
			"(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		stepBindValues(step)...)
	if err != nil {
		return "", fmt.Errorf("persisting argument step: %w", err)
	}

	if err := st.persist(); err != nil {
		return "", err
	}
	return id, nil
}

// Delete removes an argument step by ID.
func (st *argumentStepsTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	st.backend.mu.Lock()
	defer st.backend.mu.Unlock()
	if !st.backend.attached {
		return types.ErrStoreDetached
	}

	res, err := st.backend.db.Exec("DELETE FROM argument_steps WHERE step_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting argument step %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return st.persist()
}

// Fetch returns argument steps matching the filter. Filter keys are
// ArgumentStep struct field names; an empty filter matches all.
func (st *argumentStepsTable) Fetch(filter map[string]any) ([]any, error) {
	st.backend.mu.RLock()
	defer st.backend.mu.RUnlock()
	if !st.backend.attached {
		return nil, types.ErrStoreDetached
	}

	query := "SELECT " + stepColumns + " FROM argument_steps"
	var (
		clauses []string
		args    []any
	)
	for field, value := range filter {
		col, ok := stepFieldToColumn[field]
		if !ok {
			return nil, fmt.Errorf("%w: %s", types.ErrInvalidFilter, field)
		}
		clauses = append(clauses, col+" = ?")
		args = append(args, value)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY step_id"

	rows, err := st.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching argument steps: %w", err)
	}
	defer rows.Close()

	var out []any
	for rows.Next() {
		step, err := hydrateStep(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating argument step: %w", err)
		}
		out = append(out, step)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating argument steps: %w", err)
	}
	return out, nil
}

// persist rewrites argument_steps.jsonl from the current table contents.
// Callers must hold the backend write lock.
func (st *argumentStepsTable) persist() error {
	rows, err := st.backend.db.Query(
		"SELECT " + stepColumns + " FROM argument_steps ORDER BY step_id")
	if err != nil {
		return fmt.Errorf("reading argument steps for persist: %w", err)
	}
	defer rows.Close()

	var steps []types.ArgumentStep
	for rows.Next() {
		step, err := hydrateStep(rows)
		if err != nil {
			return fmt.Errorf("hydrating argument step for persist: %w", err)
		}
		steps = append(steps, *step)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating argument steps for persist: %w", err)
	}

	records, err := marshalJSONL(steps)
	if err != nil {
		return err
	}
	return writeJSONL(st.backend.dataPath(argumentStepsFile), records)
}
