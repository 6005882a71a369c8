package fleet

import (
	"fmt"
	"time"

	"github.com/carbnb/carbnb/pkg/types"
)

// Rent row reference positions per types.RentFields.
const (
	rentClientIdx = 3
	rentCarIdx    = 4
)

// HasOpenOrders reports whether any rental order references the person or
// car with the given key. With futureOnly, only orders whose pickup time is
// strictly after the injected clock's now count.
func (s *Service) HasOpenOrders(collection, key string, futureOnly bool) (bool, error) {
	var refIdx int
	switch collection {
	case types.PersonCollection:
		refIdx = rentClientIdx
	case types.CarsCollection:
		refIdx = rentCarIdx
	default:
		return false, types.ErrCollectionUnknown
	}

	rows, err := s.store.Load(types.RentCollection)
	if err != nil {
		return false, err
	}
	now := s.clock.Now()
	for _, row := range rows {
		if row[refIdx] != key {
			continue
		}
		if !futureOnly {
			return true, nil
		}
		pickup, err := time.Parse(types.TimeLayout, row[1])
		if err != nil {
			return false, rowTimeError(row[1], err)
		}
		if pickup.After(now) {
			return true, nil
		}
	}
	return false, nil
}

// rowTimeError reports a stored timestamp that no longer parses.
func rowTimeError(value string, err error) error {
	return fmt.Errorf("%w: malformed rent row time %q: %v", types.ErrDataAccess, value, err)
}
