// End-to-end lifecycle tests running the fleet service over each real
// backend: add a client and car, book the car, exercise the guards and
// aggregates, and verify a reopened store sees the same state.
package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbnb/carbnb/pkg/csv"
	"github.com/carbnb/carbnb/pkg/fleet"
	"github.com/carbnb/carbnb/pkg/sqlite"
	"github.com/carbnb/carbnb/pkg/types"
)

// pinnedClock keeps the guard deterministic across the whole run.
type pinnedClock struct{ now time.Time }

func (c pinnedClock) Now() time.Time { return c.now }

func backends() map[string]func() types.Store {
	return map[string]func() types.Store{
		types.BackendCSV:    csv.NewStore,
		types.BackendSQLite: sqlite.NewStore,
	}
}

func TestFleetLifecycle(t *testing.T) {
	for backend, newStore := range backends() {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			cfg := types.Config{Backend: backend, DataDir: dir}

			store := newStore()
			require.NoError(t, store.Attach(cfg))

			now, err := time.Parse(types.TimeLayout, "2024-06-15 00:00:00")
			require.NoError(t, err)
			svc := fleet.NewService(store, fleet.WithClock(pinnedClock{now: now}))

			client, err := svc.AddClient(types.PersonInput{
				ID:        "1234567",
				FirstName: "john",
				LastName:  "smith",
				Age:       "25",
				Email:     "john@mail.com",
				Phone:     "0888123456",
			})
			require.NoError(t, err)
			assert.Equal(t, "John", client.FirstName)

			car, err := svc.AddCar(types.CarInput{
				Serial:  "7654321",
				Brand:   "toyota",
				Model:   "corolla",
				Year:    "2019",
				Engine:  "1800",
				DayCost: "200",
				KM:      "54000",
				Owner:   client.ID,
			})
			require.NoError(t, err)
			assert.Equal(t, "John", car.Owner.FirstName)

			order, err := svc.CreateOrder(fleet.OrderInput{
				PickupTime: "2024-07-01 10:00:00",
				ReturnTime: "2024-07-05 10:00:00",
				Client:     client.ID,
				Car:        car.Serial,
			})
			require.NoError(t, err)
			assert.Equal(t, 0, order.ID)
			assert.Equal(t, 800, order.RentCost())

			// The booked interval is taken; adjacent free time is not.
			_, err = svc.CreateOrder(fleet.OrderInput{
				PickupTime: "2024-07-03 10:00:00",
				ReturnTime: "2024-07-06 10:00:00",
				Client:     client.ID,
				Car:        car.Serial,
			})
			assert.ErrorIs(t, err, types.ErrAvailabilityConflict)

			second, err := svc.CreateOrder(fleet.OrderInput{
				PickupTime: "2024-08-01 10:00:00",
				ReturnTime: "2024-08-03 10:00:00",
				Client:     client.ID,
				Car:        car.Serial,
			})
			require.NoError(t, err)
			assert.Equal(t, 1, second.ID, "IDs stay sequential past a refused booking")

			// Open future orders block deletion of both referenced entities.
			assert.ErrorIs(t, svc.DeleteClient(client.ID), types.ErrIntegrity)
			assert.ErrorIs(t, svc.DeleteCar(car.Serial), types.ErrIntegrity)

			total, err := svc.EarningsYear(2024)
			require.NoError(t, err)
			assert.Equal(t, 1200, total)

			// A fresh store over the same directory resumes where this one
			// left off: same records, same counter.
			require.NoError(t, store.Detach())
			reopened := newStore()
			require.NoError(t, reopened.Attach(cfg))
			defer reopened.Detach()

			svc2 := fleet.NewService(reopened, fleet.WithClock(pinnedClock{now: now}))
			orders, err := svc2.ListOrders()
			require.NoError(t, err)
			require.Len(t, orders, 2)

			third, err := svc2.CreateOrder(fleet.OrderInput{
				PickupTime: "2024-09-01 10:00:00",
				ReturnTime: "2024-09-02 10:00:00",
				Client:     client.ID,
				Car:        car.Serial,
			})
			require.NoError(t, err)
			assert.Equal(t, 2, third.ID, "the counter is durable across restarts")

			// Deleting the orders frees the entities.
			for _, o := range []int{0, 1, 2} {
				require.NoError(t, svc2.DeleteOrder(o))
			}
			require.NoError(t, svc2.DeleteCar(car.Serial))
			require.NoError(t, svc2.DeleteClient(client.ID))
		})
	}
}
