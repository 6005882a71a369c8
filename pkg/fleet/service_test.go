// Test doubles and setup helpers shared by the fleet tests.
package fleet

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carbnb/carbnb/pkg/types"
)

// memStore is an in-memory types.Store for unit tests. It mirrors the
// backend semantics: rows keyed by field 0, upsert on Save, ErrNotFound on
// missing keys, and a durable-enough counter in a plain field.
type memStore struct {
	rows    map[string][]types.Row
	counter int
}

func newMemStore() *memStore {
	return &memStore{rows: map[string][]types.Row{}}
}

func (m *memStore) Attach(config types.Config) error { return nil }
func (m *memStore) Detach() error                    { return nil }

func (m *memStore) Load(collection string) ([]types.Row, error) {
	if _, err := types.FieldsFor(collection); err != nil {
		return nil, err
	}
	return m.rows[collection], nil
}

func (m *memStore) Exists(collection, key string) (types.Row, bool, error) {
	rows, err := m.Load(collection)
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

func (m *memStore) Save(collection string, row types.Row) error {
	rows, err := m.Load(collection)
	if err != nil {
		return err
	}
	kept := make([]types.Row, 0, len(rows)+1)
	for _, r := range rows {
		if r[0] != row[0] {
			kept = append(kept, r)
		}
	}
	m.rows[collection] = append(kept, row)
	return nil
}

func (m *memStore) Delete(collection, key string) error {
	rows, err := m.Load(collection)
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
	m.rows[collection] = kept
	return nil
}

func (m *memStore) Edit(collection, key string, changes map[string]string) error {
	fields, err := types.FieldsFor(collection)
	if err != nil {
		return err
	}
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f] = i
	}
	for _, row := range m.rows[collection] {
		if row[0] != key {
			continue
		}
		for f, v := range changes {
			i, ok := index[f]
			if !ok {
				return fmt.Errorf("%w: unknown field %q", types.ErrDataAccess, f)
			}
			row[i] = v
		}
		return nil
	}
	return fmt.Errorf("%w: %s %s", types.ErrNotFound, collection, key)
}

func (m *memStore) LoadCounter() (int, error) { return m.counter, nil }
func (m *memStore) SaveCounter(v int) error   { m.counter = v; return nil }

// fakeClock pins now for the future-order guard.
type fakeClock struct{ now time.Time }

func (c fakeClock) Now() time.Time { return c.now }

func mustTime(t *testing.T, v string) time.Time {
	t.Helper()
	parsed, err := time.Parse(types.TimeLayout, v)
	require.NoError(t, err)
	return parsed
}

// newTestService builds a Service over a fresh memStore with the clock set
// to the given timestamp.
func newTestService(t *testing.T, now string) (*Service, *memStore) {
	t.Helper()
	store := newMemStore()
	svc := NewService(store, WithClock(fakeClock{now: mustTime(t, now)}))
	return svc, store
}

// seedClient saves one valid person and returns its ID.
func seedClient(t *testing.T, svc *Service, id string) string {
	t.Helper()
	_, err := svc.AddClient(types.PersonInput{
		ID:        id,
		FirstName: "john",
		LastName:  "smith",
		Age:       "25",
		Email:     "john@mail.com",
		Phone:     "0888123456",
	})
	require.NoError(t, err)
	return id
}

// seedCar saves one valid car owned by ownerID and returns its serial.
func seedCar(t *testing.T, svc *Service, serial, ownerID string) string {
	t.Helper()
	_, err := svc.AddCar(types.CarInput{
		Serial:  serial,
		Brand:   "toyota",
		Model:   "corolla",
		Year:    "2019",
		Engine:  "1800",
		DayCost: "200",
		KM:      "54000",
		Owner:   ownerID,
	})
	require.NoError(t, err)
	return serial
}

// seedOrder creates an order through the full validation path.
func seedOrder(t *testing.T, svc *Service, pickup, ret, clientID, carID string) *types.RentalOrder {
	t.Helper()
	order, err := svc.CreateOrder(OrderInput{
		PickupTime: pickup,
		ReturnTime: ret,
		Client:     clientID,
		Car:        carID,
	})
	require.NoError(t, err)
	return order
}
