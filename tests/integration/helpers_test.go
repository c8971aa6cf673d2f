// Package integration provides shared test helpers for integration tests.
package integration

import (
	"testing"

	"github.com/mesh-intelligence/rulebook/internal/sqlite"
	"github.com/mesh-intelligence/rulebook/pkg/types"
)

// setupStore creates a backend attached to an isolated temp directory.
// Each test gets its own store instance for isolation.
func setupStore(t *testing.T) (*sqlite.Backend, string) {
	t.Helper()
	dir := t.TempDir()
	b := sqlite.NewBackend()
	if err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { b.Detach() })
	return b, dir
}

// mustGetTable retrieves a table by name or fails the test.
func mustGetTable(t *testing.T, b *sqlite.Backend, name string) types.Table {
	t.Helper()
	tbl, err := b.GetTable(name)
	if err != nil {
		t.Fatalf("GetTable(%q): %v", name, err)
	}
	return tbl
}

// mustSetCandidate stores a candidate and returns its ID.
func mustSetCandidate(t *testing.T, tbl types.Table, c *types.Candidate) string {
	t.Helper()
	id, err := tbl.Set(c.CandidateID, c)
	if err != nil {
		t.Fatalf("Set candidate: %v", err)
	}
	return id
}

// mustGetCandidate retrieves a candidate by ID.
func mustGetCandidate(t *testing.T, tbl types.Table, id string) *types.Candidate {
	t.Helper()
	raw, err := tbl.Get(id)
	if err != nil {
		t.Fatalf("Get candidate %q: %v", id, err)
	}
	c, ok := raw.(*types.Candidate)
	if !ok {
		t.Fatalf("expected *types.Candidate, got %T", raw)
	}
	return c
}

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }
func intp(i int) *int       { return &i }
