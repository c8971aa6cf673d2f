// JSONL loading on Attach. The data files are the source of truth; the
// SQLite database is rebuilt from them every time the backend attaches.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mesh-intelligence/rulebook/pkg/types"
)

// loadAllJSONL reads the JSONL data files from dataDir and inserts their
// records into the SQLite tables. Loading is transactional: all records load
// or the database stays empty. Malformed lines were already skipped by
// readJSONL; records that fail to unmarshal are skipped here for the same
// reason (one bad record must not block the rest).
func loadAllJSONL(db *sql.DB, dataDir string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	if err := loadCandidates(tx, filepath.Join(dataDir, candidatesFile)); err != nil {
		return err
	}
	if err := loadArgumentSteps(tx, filepath.Join(dataDir, argumentStepsFile)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// loadCandidates inserts candidates.jsonl records into the candidates table.
func loadCandidates(tx *sql.Tx, path string) error {
	records, err := readJSONL(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	for _, rec := range records {
		var c types.Candidate
		if err := json.Unmarshal(rec, &c); err != nil {
			continue
		}
		if c.CandidateID == "" {
			continue
		}
		_, err := tx.Exec(
			"INSERT OR REPLACE INTO candidates ("+candidateColumns+") VALUES "+
				"(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			candidateBindValues(&c)...)
		if err != nil {
			return fmt.Errorf("loading candidate %s: %w", c.CandidateID, err)
		}
	}
	return nil
}

// loadArgumentSteps inserts argument_steps.jsonl records into the
// argument_steps table.
func loadArgumentSteps(tx *sql.Tx, path string) error {
	records, err := readJSONL(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	for _, rec := range records {
		var s types.ArgumentStep
		if err := json.Unmarshal(rec, &s); err != nil {
			continue
		}
		if s.StepID == "" {
			continue
		}
		_, err := tx.Exec(
			"INSERT OR REPLACE INTO argument_steps ("+stepColumns+") VALUES "+
				"(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			stepBindValues(&s)...)
		if err != nil {
			return fmt.Errorf("loading argument step %s: %w", s.StepID, err)
		}
	}
	return nil
}
