package fleet

import (
	"time"

	"github.com/carbnb/carbnb/pkg/types"
)

// EarningsYear sums the rent cost of every order whose pickup falls inside
// the calendar year, bounds inclusive (Jan 1 00:00:00 through Dec 31
// 00:00:00).
func (s *Service) EarningsYear(year int) (int, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return s.windowEarnings(start, end, true)
}

// EarningsRange sums the rent cost of every order whose pickup falls
// strictly inside the window.
func (s *Service) EarningsRange(start, end time.Time) (int, error) {
	return s.windowEarnings(start, end, false)
}

func (s *Service) windowEarnings(start, end time.Time, inclusive bool) (int, error) {
	rows, err := s.store.Load(types.RentCollection)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, row := range rows {
		pickup, ret, err := orderInterval(row)
		if err != nil {
			return 0, err
		}
		var inWindow bool
		if inclusive {
			inWindow = !pickup.Before(start) && !pickup.After(end)
		} else {
			inWindow = pickup.After(start) && pickup.Before(end)
		}
		if !inWindow {
			continue
		}
		car, err := s.ResolveCar(row[rentCarIdx])
		if err != nil {
			return 0, err
		}
		days := int(ret.Sub(pickup).Hours() / 24)
		total += days * car.DayCost
	}
	return total, nil
}
