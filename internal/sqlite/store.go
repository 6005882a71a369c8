// Package sqlite implements the relational storage backend over a SQLite
// database file. The schema is created at Attach from the embedded DDL;
// rows move through the same ordered-field representation the CSV backend
// uses, so the two backends are interchangeable behind types.Store.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/carbnb/carbnb/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFile is the database file name inside the data directory.
const dbFile = "carbnb.db"

// Store implements types.Store over a SQLite database.
type Store struct {
	mu       sync.RWMutex
	attached bool
	db       *sql.DB
}

// NewStore creates an unattached SQLite store; call Attach with a Config.
func NewStore() *Store {
	return &Store{}
}

// Attach opens the database file, creates the schema if needed, and seeds
// the counter row at zero.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
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
		return fmt.Errorf("%w: creating data dir: %v", types.ErrDataAccess, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFile))
	if err != nil {
		return fmt.Errorf("%w: opening database: %v", types.ErrDataAccess, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("%w: creating schema: %v", types.ErrDataAccess, err)
	}
	if _, err := db.Exec("INSERT OR IGNORE INTO counter (id, value) VALUES (0, 0)"); err != nil {
		db.Close()
		return fmt.Errorf("%w: seeding counter: %v", types.ErrDataAccess, err)
	}

	s.db = db
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%w: closing database: %v", types.ErrDataAccess, err)
	}
	s.db = nil
	s.attached = false
	return nil
}

// Load returns every row of the collection in insertion order.
func (s *Store) Load(collection string) ([]types.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	fields, err := types.FieldsFor(collection)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(fields, ", "), collection)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: loading %s: %v", types.ErrDataAccess, collection, err)
	}
	defer rows.Close()

	var out []types.Row
	for rows.Next() {
		row := make(types.Row, len(fields))
		dest := make([]any, len(fields))
		for i := range row {
			dest[i] = &row[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: scanning %s row: %v", types.ErrDataAccess, collection, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", types.ErrDataAccess, collection, err)
	}
	return out, nil
}

// Exists returns the row whose primary key equals key.
func (s *Store) Exists(collection, key string) (types.Row, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return nil, false, types.ErrStoreDetached
	}
	fields, err := types.FieldsFor(collection)
	if err != nil {
		return nil, false, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", strings.Join(fields, ", "), collection)
	row := make(types.Row, len(fields))
	dest := make([]any, len(fields))
	for i := range row {
		dest[i] = &row[i]
	}
	err = s.db.QueryRow(query, key).Scan(dest...)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: looking up %s %s: %v", types.ErrDataAccess, collection, key, err)
	}
	return row, true, nil
}

// Save writes the row, replacing any existing row with the same key.
func (s *Store) Save(collection string, row types.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return types.ErrStoreDetached
	}
	fields, err := types.FieldsFor(collection)
	if err != nil {
		return err
	}
	if len(row) != len(fields) {
		return fmt.Errorf("%w: %s row has %d fields, want %d", types.ErrDataAccess, collection, len(row), len(fields))
	}

	assignments := make([]string, 0, len(fields)-1)
	for _, f := range fields[1:] {
		assignments = append(assignments, fmt.Sprintf("%s = excluded.%s", f, f))
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s",
		collection,
		strings.Join(fields, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(fields)), ", "),
		strings.Join(assignments, ", "))

	args := make([]any, len(row))
	for i, v := range row {
		args[i] = v
	}
	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("%w: saving %s row: %v", types.ErrDataAccess, collection, err)
	}
	return nil
}

// Delete removes the row with the given key.
func (s *Store) Delete(collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return types.ErrStoreDetached
	}
	if _, err := types.FieldsFor(collection); err != nil {
		return err
	}

	res, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", collection), key)
	if err != nil {
		return fmt.Errorf("%w: deleting %s %s: %v", types.ErrDataAccess, collection, key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: deleting %s %s: %v", types.ErrDataAccess, collection, key, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %s", types.ErrNotFound, collection, key)
	}
	return nil
}

// Edit applies field changes to the row with the given key.
func (s *Store) Edit(collection, key string, changes map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return types.ErrStoreDetached
	}
	fields, err := types.FieldsFor(collection)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f] = true
	}

	var clauses []string
	var args []any
	// Iterate the declared order so the statement is deterministic.
	for _, f := range fields {
		v, ok := changes[f]
		if !ok {
			continue
		}
		clauses = append(clauses, f+" = ?")
		args = append(args, v)
	}
	for f := range changes {
		if !known[f] {
			return fmt.Errorf("%w: unknown field %q in %s", types.ErrDataAccess, f, collection)
		}
	}
	if len(clauses) == 0 {
		return nil
	}
	args = append(args, key)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", collection, strings.Join(clauses, ", "))
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("%w: editing %s %s: %v", types.ErrDataAccess, collection, key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: editing %s %s: %v", types.ErrDataAccess, collection, key, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %s", types.ErrNotFound, collection, key)
	}
	return nil
}

// LoadCounter reads the counter row. A missing row is corrupt state and
// fatal for order creation.
func (s *Store) LoadCounter() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return 0, types.ErrStoreDetached
	}
	var v int
	err := s.db.QueryRow("SELECT value FROM counter WHERE id = 0").Scan(&v)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: counter row is missing", types.ErrDataAccess)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: reading counter: %v", types.ErrDataAccess, err)
	}
	return v, nil
}

// SaveCounter writes the counter row.
func (s *Store) SaveCounter(value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return types.ErrStoreDetached
	}
	if _, err := s.db.Exec("UPDATE counter SET value = ? WHERE id = 0", value); err != nil {
		return fmt.Errorf("%w: writing counter: %v", types.ErrDataAccess, err)
	}
	return nil
}
