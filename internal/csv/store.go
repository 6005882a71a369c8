// Package csv implements the flat-file storage backend. Each collection is
// one CSV file with a header row; every mutation is a whole-file rewrite
// (read all, filter, append, write back). The rewrite is not atomic: a crash
// mid-write can truncate the collection.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/carbnb/carbnb/pkg/types"
)

// counterFile holds the rental-order ID counter as a single plain-text
// integer.
const counterFile = "id_counter.txt"

// Store implements types.Store over CSV files in a data directory.
type Store struct {
	mu       sync.RWMutex
	attached bool
	dataDir  string
}

// NewStore creates an unattached CSV store; call Attach with a Config.
func NewStore() *Store {
	return &Store{}
}

// Attach creates the data directory, an empty file per collection, and the
// counter file when they do not exist yet.
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
	s.dataDir = dataDir

	for _, collection := range types.StandardCollections {
		if err := s.initCollection(collection); err != nil {
			return err
		}
	}
	if err := s.initCounter(); err != nil {
		return err
	}

	s.attached = true
	return nil
}

// Detach marks the store detached. Idempotent; files need no closing since
// every operation opens and closes its own.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached = false
	return nil
}

// Load returns every row of the collection in file order.
func (s *Store) Load(collection string) ([]types.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	return s.readAll(collection)
}

// Exists returns the row whose primary key equals key.
func (s *Store) Exists(collection, key string) (types.Row, bool, error) {
	rows, err := s.Load(collection)
	if err != nil {
		return nil, false, err
	}
	for _, row := range rows {
		if row[0] == key {
			return row, true, nil
		}
	}
	return nil, false, nil
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

	rows, err := s.readAll(collection)
	if err != nil {
		return err
	}
	kept := rows[:0]
	for _, r := range rows {
		if r[0] != row[0] {
			kept = append(kept, r)
		}
	}
	kept = append(kept, row)
	return s.writeAll(collection, kept)
}

// Delete removes the row with the given key.
func (s *Store) Delete(collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return types.ErrStoreDetached
	}

	rows, err := s.readAll(collection)
	if err != nil {
		return err
	}
	kept := rows[:0]
	found := false
	for _, r := range rows {
		if r[0] == key {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return fmt.Errorf("%w: %s %s", types.ErrNotFound, collection, key)
	}
	return s.writeAll(collection, kept)
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
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f] = i
	}
	for f := range changes {
		if _, ok := index[f]; !ok {
			return fmt.Errorf("%w: unknown field %q in %s", types.ErrDataAccess, f, collection)
		}
	}

	rows, err := s.readAll(collection)
	if err != nil {
		return err
	}
	found := false
	for _, r := range rows {
		if r[0] != key {
			continue
		}
		found = true
		for f, v := range changes {
			r[index[f]] = v
		}
	}
	if !found {
		return fmt.Errorf("%w: %s %s", types.ErrNotFound, collection, key)
	}
	return s.writeAll(collection, rows)
}

// LoadCounter reads the counter file. Missing or non-numeric content is
// fatal for order creation.
func (s *Store) LoadCounter() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return 0, types.ErrStoreDetached
	}

	raw, err := os.ReadFile(filepath.Join(s.dataDir, counterFile))
	if err != nil {
		return 0, fmt.Errorf("%w: reading counter: %v", types.ErrDataAccess, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("%w: corrupt counter value %q", types.ErrDataAccess, strings.TrimSpace(string(raw)))
	}
	return v, nil
}

// SaveCounter writes the counter file.
func (s *Store) SaveCounter(value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return types.ErrStoreDetached
	}
	path := filepath.Join(s.dataDir, counterFile)
	if err := os.WriteFile(path, []byte(strconv.Itoa(value)), 0o644); err != nil {
		return fmt.Errorf("%w: writing counter: %v", types.ErrDataAccess, err)
	}
	return nil
}

func (s *Store) filePath(collection string) string {
	return filepath.Join(s.dataDir, collection+".csv")
}

// initCollection writes a header-only file when the collection file does
// not exist.
func (s *Store) initCollection(collection string) error {
	path := s.filePath(collection)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", types.ErrDataAccess, path, err)
	}
	fields, err := types.FieldsFor(collection)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", types.ErrDataAccess, path, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(fields); err != nil {
		return fmt.Errorf("%w: writing %s header: %v", types.ErrDataAccess, path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flushing %s: %v", types.ErrDataAccess, path, err)
	}
	return nil
}

func (s *Store) initCounter() error {
	path := filepath.Join(s.dataDir, counterFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", types.ErrDataAccess, path, err)
	}
	if err := os.WriteFile(path, []byte("0"), 0o644); err != nil {
		return fmt.Errorf("%w: initializing counter: %v", types.ErrDataAccess, err)
	}
	return nil
}

// readAll reads the collection file, skipping the header row. Rows with the
// wrong field count surface as ErrDataAccess from the csv reader.
func (s *Store) readAll(collection string) ([]types.Row, error) {
	fields, err := types.FieldsFor(collection)
	if err != nil {
		return nil, err
	}
	path := s.filePath(collection)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", types.ErrDataAccess, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(fields)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", types.ErrDataAccess, path, err)
	}
	var rows []types.Row
	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		rows = append(rows, types.Row(rec))
	}
	return rows, nil
}

// writeAll rewrites the collection file in place: header first, then every
// row. Deliberately not staged through a temp file.
func (s *Store) writeAll(collection string, rows []types.Row) error {
	fields, err := types.FieldsFor(collection)
	if err != nil {
		return err
	}
	path := s.filePath(collection)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: rewriting %s: %v", types.ErrDataAccess, path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(fields); err != nil {
		return fmt.Errorf("%w: writing %s header: %v", types.ErrDataAccess, path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("%w: writing %s row: %v", types.ErrDataAccess, path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flushing %s: %v", types.ErrDataAccess, path, err)
	}
	return nil
}
