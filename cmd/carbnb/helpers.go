// Shared helpers for carbnb CLI commands.
package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/carbnb/carbnb/internal/logging"
	"github.com/carbnb/carbnb/pkg/csv"
	"github.com/carbnb/carbnb/pkg/fleet"
	"github.com/carbnb/carbnb/pkg/sqlite"
	"github.com/carbnb/carbnb/pkg/types"
)

const auditLogName = "carbnb.log"

// attachService resolves the data directory, attaches the configured backend,
// and builds the fleet service over it. The caller must call the returned
// detach function when done.
func attachService() (*fleet.Service, func(), error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := resolveBackend()

	var store types.Store
	switch backend {
	case types.BackendCSV:
		store = csv.NewStore()
	case types.BackendSQLite:
		store = sqlite.NewStore()
	default:
		return nil, nil, fmt.Errorf("%w: %q (valid: csv, sqlite)", types.ErrBackendUnknown, backend)
	}

	cfg := types.Config{
		Backend: backend,
		DataDir: dataDir,
	}

	if err := store.Attach(cfg); err != nil {
		return nil, nil, fmt.Errorf("attach %s store: %w", backend, err)
	}

	detach := func() { _ = store.Detach() }

	log, err := logging.NewFileLogger(filepath.Join(dataDir, auditLogName))
	if err != nil {
		// The audit log is best-effort; commands still run without it.
		log = logging.Nop()
	}

	return fleet.NewService(store, fleet.WithLogger(log)), detach, nil
}

// exitCode maps a command error to a process exit code. Mistakes the user
// can correct exit 1; storage and environment failures exit 2.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	switch {
	case errors.Is(err, types.ErrValidation),
		errors.Is(err, types.ErrReferenceNotFound),
		errors.Is(err, types.ErrIntegrity),
		errors.Is(err, types.ErrAvailabilityConflict),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrBackendUnknown),
		errors.Is(err, types.ErrCollectionUnknown):
		return exitUserError
	default:
		return exitSysError
	}
}

// parseSetFlags turns repeated --set field=value flags into a field map.
func parseSetFlags(pairs []string) (map[string]string, error) {
	fields := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: --set expects field=value, got %q", types.ErrValidation, pair)
		}
		fields[name] = value
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: at least one --set field=value is required", types.ErrValidation)
	}
	return fields, nil
}
