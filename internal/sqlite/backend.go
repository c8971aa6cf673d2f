// Package sqlite implements the SQLite storage backend for the ERB rulebook.
// SQLite is the query engine; JSONL files in the data directory are the
// source of truth and are rewritten atomically after every mutation.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/rulebook/pkg/types"
)

// dbFileName is the SQLite database file created inside the data directory.
const dbFileName = "rulebook.db"

// JSONL source-of-truth files inside the data directory.
const (
	candidatesFile    = "candidates.jsonl"
	argumentStepsFile = "argument_steps.jsonl"
)

// Backend implements the Store interface using SQLite as the query engine
// and JSONL files as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	tables   map[string]types.Table
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		tables: make(map[string]types.Table),
	}
}

// GetTable returns a Table interface for the specified table name.
// Returns ErrTableNotFound if the table name is not recognized.
// Returns ErrStoreDetached if the backend is not attached.
func (b *Backend) GetTable(name string) (types.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	table, ok := b.tables[name]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	return table, nil
}

// Attach initializes the backend with the given configuration. Creates the
// data directory if needed, builds a fresh SQLite schema, and loads the
// JSONL source-of-truth files. Returns ErrAlreadyAttached if already
// attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// The database is a disposable cache of the JSONL files; rebuild it from
	// scratch on every attach.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	if err := loadAllJSONL(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("loading data files: %w", err)
	}

	b.db = db
	b.config = config
	b.config.DataDir = dataDir
	b.tables = map[string]types.Table{
		types.TableCandidates:    &candidatesTable{backend: b},
		types.TableArgumentSteps: &argumentStepsTable{backend: b},
	}
	b.attached = true
	return nil
}

// Detach releases backend resources. Idempotent: detaching a detached
// backend succeeds.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	err := b.db.Close()
	b.db = nil
	b.attached = false
	b.tables = make(map[string]types.Table)
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// dataPath returns the path of a file inside the data directory.
func (b *Backend) dataPath(name string) string {
	return filepath.Join(b.config.DataDir, name)
}
