package fleet

import (
	"fmt"
	"strconv"

	"github.com/carbnb/carbnb/pkg/types"
)

// AddCar validates a new car, resolves its owner into an embedded copy,
// and persists it.
func (s *Service) AddCar(in types.CarInput) (*types.Car, error) {
	c, err := types.NewCar(in, s)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(c.Collection(), c.Row()); err != nil {
		return nil, err
	}
	s.audit("car added", c.Serial)
	return c, nil
}

// GetCar returns the car with the given serial, or ErrNotFound.
func (s *Service) GetCar(serial string) (*types.Car, error) {
	row, ok, err := s.store.Exists(types.CarsCollection, serial)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: car %s", types.ErrNotFound, serial)
	}
	return types.CarFromRow(row, s)
}

// ListCars returns every car in storage order.
func (s *Service) ListCars() ([]*types.Car, error) {
	rows, err := s.store.Load(types.CarsCollection)
	if err != nil {
		return nil, err
	}
	cars := make([]*types.Car, 0, len(rows))
	for _, row := range rows {
		c, err := types.CarFromRow(row, s)
		if err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, nil
}

// ListCarsByOwner returns the cars owned by the given person.
func (s *Service) ListCarsByOwner(ownerID string) ([]*types.Car, error) {
	cars, err := s.ListCars()
	if err != nil {
		return nil, err
	}
	owned := cars[:0]
	for _, c := range cars {
		if c.Owner.ID == ownerID {
			owned = append(owned, c)
		}
	}
	return owned, nil
}

// EditCar validates the changed fields and applies them to the stored row.
// Changing the owner re-resolves the reference first.
func (s *Service) EditCar(serial string, changes map[string]string) error {
	canonical := make(map[string]string, len(changes))
	for field, value := range changes {
		v, err := s.validateCarField(field, value)
		if err != nil {
			return err
		}
		canonical[field] = v
	}
	if err := s.store.Edit(types.CarsCollection, serial, canonical); err != nil {
		return err
	}
	s.audit("car edited", serial)
	return nil
}

// DeleteCar removes the car unless a rental order with a future pickup
// still references it.
func (s *Service) DeleteCar(serial string) error {
	open, err := s.HasOpenOrders(types.CarsCollection, serial, true)
	if err != nil {
		return err
	}
	if open {
		return fmt.Errorf("%w: unable to delete car %s: open orders exist", types.ErrIntegrity, serial)
	}
	if err := s.store.Delete(types.CarsCollection, serial); err != nil {
		return err
	}
	s.audit("car deleted", serial)
	return nil
}

func (s *Service) validateCarField(field, value string) (string, error) {
	switch field {
	case "brand":
		return types.ValidateName("brand", value)
	case "model":
		return types.ValidateModel(value)
	case "year":
		n, err := types.ValidateYear(value)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	case "engine":
		n, err := types.ValidateEngine(value)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	case "day_cost":
		n, err := types.ValidateDayCost(value)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	case "km":
		n, err := types.ValidateKM(value)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	case "owner":
		id, err := types.ValidateID("owner ID", value)
		if err != nil {
			return "", err
		}
		if _, err := s.ResolvePerson(id); err != nil {
			return "", err
		}
		return id, nil
	default:
		return "", fmt.Errorf("%w: field %q cannot be edited", types.ErrValidation, field)
	}
}
