// Package sqlite provides the public factory for the SQLite storage
// backend, keeping the implementation internal.
package sqlite

import (
	"github.com/carbnb/carbnb/internal/sqlite"
	"github.com/carbnb/carbnb/pkg/types"
)

// NewStore creates a new SQLite store. The store is not attached; call
// Attach with a Config.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".carbnb",
//	})
//	defer store.Detach()
func NewStore() types.Store {
	return sqlite.NewStore()
}
