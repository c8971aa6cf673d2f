// Package sqlite provides the public API for the SQLite rulebook backend,
// exposing the factory function while keeping implementation details
// internal.
//
// Example:
//
//	store := sqlite.NewBackend()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".erb-db",
//	})
//	defer store.Detach()
package sqlite

import (
	"github.com/mesh-intelligence/rulebook/internal/sqlite"
	"github.com/mesh-intelligence/rulebook/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() types.Store {
	return sqlite.NewBackend()
}
