package fleet

import (
	"time"

	"github.com/carbnb/carbnb/pkg/types"
)

// IsAvailable reports whether the car is free for the candidate interval.
// Every existing order for the car is scanned linearly; an order overlaps
// when its interval contains the candidate pickup or the candidate return,
// boundaries inclusive.
func (s *Service) IsAvailable(carID string, pickup, ret time.Time) (bool, error) {
	rows, err := s.store.Load(types.RentCollection)
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if row[4] != carID {
			continue
		}
		existingPickup, existingReturn, err := orderInterval(row)
		if err != nil {
			return false, err
		}
		// existing.return >= pickup >= existing.pickup
		pickupInside := !existingReturn.Before(pickup) && !pickup.Before(existingPickup)
		// existing.pickup <= return <= existing.return
		returnInside := !existingPickup.After(ret) && !ret.After(existingReturn)
		if pickupInside || returnInside {
			return false, nil
		}
	}
	return true, nil
}

// orderInterval parses the stored pickup and return times of a rent row.
func orderInterval(row types.Row) (pickup, ret time.Time, err error) {
	pickup, err = time.Parse(types.TimeLayout, row[1])
	if err != nil {
		return time.Time{}, time.Time{}, rowTimeError(row[1], err)
	}
	ret, err = time.Parse(types.TimeLayout, row[2])
	if err != nil {
		return time.Time{}, time.Time{}, rowTimeError(row[2], err)
	}
	return pickup, ret, nil
}
