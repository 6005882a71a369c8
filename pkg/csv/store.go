// Package csv provides the public factory for the flat-file storage
// backend, keeping the implementation internal.
package csv

import (
	"github.com/carbnb/carbnb/internal/csv"
	"github.com/carbnb/carbnb/pkg/types"
)

// NewStore creates a new CSV-file store. The store is not attached; call
// Attach with a Config.
//
// Example:
//
//	store := csv.NewStore()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendCSV,
//	    DataDir: ".carbnb",
//	})
//	defer store.Detach()
func NewStore() types.Store {
	return csv.NewStore()
}
