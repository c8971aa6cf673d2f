// Shared helpers for erb CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/rulebook/internal/sqlite"
	"github.com/mesh-intelligence/rulebook/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// fetchCandidates returns all candidates from the backend, in sort order.
func fetchCandidates(backend *sqlite.Backend) ([]types.Candidate, error) {
	table, err := backend.GetTable(types.TableCandidates)
	if err != nil {
		return nil, fmt.Errorf("get candidates table: %w", err)
	}

	entities, err := table.Fetch(nil)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	candidates := make([]types.Candidate, len(entities))
	for i, entity := range entities {
		candidates[i] = *entity.(*types.Candidate)
	}
	return candidates, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// dash renders an optional text field for tabular output.
func dash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// fail prints an error to stderr and exits with the given code.
func fail(code int, err error) {
	fmt.Fprintln(os.Stderr, "erb:", err)
	os.Exit(code)
}
