// Unit tests for the deletion guard over referencing orders.
package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbnb/carbnb/pkg/types"
)

func TestDeleteClientGuard(t *testing.T) {
	svc, _ := newTestService(t, "2024-06-15 00:00:00")
	client := seedClient(t, svc, "1234567")
	owner := seedClient(t, svc, "2234567")
	car := seedCar(t, svc, "7654321", owner)

	// Pickup is after the pinned clock, so the order counts as open.
	seedOrder(t, svc, "2024-07-01 10:00:00", "2024-07-05 10:00:00", client, car)

	err := svc.DeleteClient(client)
	assert.ErrorIs(t, err, types.ErrIntegrity)

	_, err = svc.GetClient(client)
	require.NoError(t, err, "a refused delete leaves the record in place")
}

func TestDeleteClientAfterPickupPassed(t *testing.T) {
	svc, _ := newTestService(t, "2024-06-15 00:00:00")
	client := seedClient(t, svc, "1234567")
	owner := seedClient(t, svc, "2234567")
	car := seedCar(t, svc, "7654321", owner)
	seedOrder(t, svc, "2024-06-01 10:00:00", "2024-06-05 10:00:00", client, car)

	require.NoError(t, svc.DeleteClient(client))

	_, err := svc.GetClient(client)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

// The same entity becomes deletable once the clock moves past the pickup.
func TestDeleteGuardFollowsClock(t *testing.T) {
	before, store := newTestService(t, "2024-06-15 00:00:00")
	client := seedClient(t, before, "1234567")
	owner := seedClient(t, before, "2234567")
	car := seedCar(t, before, "7654321", owner)
	seedOrder(t, before, "2024-07-01 10:00:00", "2024-07-05 10:00:00", client, car)

	assert.ErrorIs(t, before.DeleteCar(car), types.ErrIntegrity)

	after := NewService(store, WithClock(fakeClock{now: mustTime(t, "2024-07-02 00:00:00")}))
	assert.NoError(t, after.DeleteCar(car))
}

func TestDeleteCarGuard(t *testing.T) {
	svc, _ := newTestService(t, "2024-06-15 00:00:00")
	client := seedClient(t, svc, "1234567")
	car := seedCar(t, svc, "7654321", client)
	spare := seedCar(t, svc, "7654322", client)
	seedOrder(t, svc, "2024-07-01 10:00:00", "2024-07-05 10:00:00", client, car)

	assert.ErrorIs(t, svc.DeleteCar(car), types.ErrIntegrity)
	assert.NoError(t, svc.DeleteCar(spare), "only the referenced car is guarded")
}

func TestHasOpenOrders(t *testing.T) {
	svc, _ := newTestService(t, "2024-06-15 00:00:00")
	client := seedClient(t, svc, "1234567")
	car := seedCar(t, svc, "7654321", client)
	seedOrder(t, svc, "2024-06-01 10:00:00", "2024-06-05 10:00:00", client, car)

	open, err := svc.HasOpenOrders(types.PersonCollection, client, true)
	require.NoError(t, err)
	assert.False(t, open, "past pickups do not count with futureOnly")

	any, err := svc.HasOpenOrders(types.PersonCollection, client, false)
	require.NoError(t, err)
	assert.True(t, any, "without futureOnly every referencing order counts")

	_, err = svc.HasOpenOrders(types.RentCollection, "0", true)
	assert.ErrorIs(t, err, types.ErrCollectionUnknown)
}
