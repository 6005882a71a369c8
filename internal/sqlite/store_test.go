// Unit tests for the SQLite backend.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbnb/carbnb/pkg/types"
)

func setupStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s := NewStore()
	require.NoError(t, s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	t.Cleanup(func() { s.Detach() })
	return s, dir
}

func personRow(id string) types.Row {
	return types.Row{id, "John", "Smith", "25", "john@mail.com", "0888123456"}
}

func TestAttachCreatesDatabase(t *testing.T) {
	s, dir := setupStore(t)

	_, err := os.Stat(filepath.Join(dir, dbFile))
	require.NoError(t, err)

	v, err := s.LoadCounter()
	require.NoError(t, err)
	assert.Equal(t, 0, v, "counter is seeded at zero")
}

func TestAttachTwice(t *testing.T) {
	s, _ := setupStore(t)
	err := s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrAlreadyAttached)
}

func TestDetachedOperationsFail(t *testing.T) {
	s, _ := setupStore(t)
	require.NoError(t, s.Detach())
	require.NoError(t, s.Detach(), "detach is idempotent")

	_, err := s.Load(types.PersonCollection)
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	assert.ErrorIs(t, s.SaveCounter(1), types.ErrStoreDetached)
}

func TestSaveAndLoadAcrossCollections(t *testing.T) {
	s, _ := setupStore(t)

	require.NoError(t, s.Save(types.PersonCollection, personRow("1234567")))
	require.NoError(t, s.Save(types.CarsCollection,
		types.Row{"7654321", "Toyota", "Corolla", "2019", "1800", "200", "54000", "1234567"}))
	require.NoError(t, s.Save(types.RentCollection,
		types.Row{"0", "2024-06-01 10:00:00", "2024-06-05 10:00:00", "1234567", "7654321"}))

	people, err := s.Load(types.PersonCollection)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, personRow("1234567"), people[0])

	cars, err := s.Load(types.CarsCollection)
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "200", cars[0][5], "integer columns come back in string form")

	rents, err := s.Load(types.RentCollection)
	require.NoError(t, err)
	require.Len(t, rents, 1)
	assert.Equal(t, "2024-06-01 10:00:00", rents[0][1])

	_, err = s.Load("bicycles")
	assert.ErrorIs(t, err, types.ErrCollectionUnknown)
}

func TestSaveUpserts(t *testing.T) {
	s, _ := setupStore(t)
	require.NoError(t, s.Save(types.PersonCollection, personRow("1234567")))

	edited := personRow("1234567")
	edited[1] = "Jane"
	require.NoError(t, s.Save(types.PersonCollection, edited))

	rows, err := s.Load(types.PersonCollection)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Jane", rows[0][1])
}

func TestExists(t *testing.T) {
	s, _ := setupStore(t)
	require.NoError(t, s.Save(types.PersonCollection, personRow("1234567")))

	row, ok, err := s.Exists(types.PersonCollection, "1234567")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, personRow("1234567"), row)

	_, ok, err = s.Exists(types.PersonCollection, "9999999")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	s, _ := setupStore(t)
	require.NoError(t, s.Save(types.PersonCollection, personRow("1234567")))

	require.NoError(t, s.Delete(types.PersonCollection, "1234567"))
	assert.ErrorIs(t, s.Delete(types.PersonCollection, "1234567"), types.ErrNotFound)
}

func TestEdit(t *testing.T) {
	s, _ := setupStore(t)
	require.NoError(t, s.Save(types.PersonCollection, personRow("1234567")))

	require.NoError(t, s.Edit(types.PersonCollection, "1234567", map[string]string{
		"first_name": "Jane",
		"age":        "31",
	}))

	row, ok, err := s.Exists(types.PersonCollection, "1234567")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Jane", row[1])
	assert.Equal(t, "31", row[3])

	assert.ErrorIs(t, s.Edit(types.PersonCollection, "9999999", map[string]string{"age": "30"}), types.ErrNotFound)
	assert.ErrorIs(t, s.Edit(types.PersonCollection, "1234567", map[string]string{"nickname": "jj"}), types.ErrDataAccess)
}

func TestCounterPersistsAcrossReopen(t *testing.T) {
	s, dir := setupStore(t)

	require.NoError(t, s.SaveCounter(7))
	require.NoError(t, s.Detach())

	reopened := NewStore()
	require.NoError(t, reopened.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	defer reopened.Detach()

	v, err := reopened.LoadCounter()
	require.NoError(t, err)
	assert.Equal(t, 7, v, "reattach must not reseed an existing counter")
}

func TestDataSurvivesReopen(t *testing.T) {
	s, dir := setupStore(t)
	require.NoError(t, s.Save(types.PersonCollection, personRow("1234567")))
	require.NoError(t, s.Detach())

	reopened := NewStore()
	require.NoError(t, reopened.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	defer reopened.Detach()

	rows, err := reopened.Load(types.PersonCollection)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, personRow("1234567"), rows[0])
}
