package fleet

import (
	"fmt"
	"strconv"

	"github.com/carbnb/carbnb/pkg/types"
)

// OrderInput carries the raw field values collected for a rental order.
// The ID is never supplied; it comes from the counter.
type OrderInput struct {
	PickupTime string
	ReturnTime string
	Client     string
	Car        string
}

// CreateOrder validates every field, resolves the client and car into
// embedded copies, runs the availability check, allocates the next
// sequential ID, and persists the order. The ID is allocated only after
// everything else has passed, so issued IDs are gap-free.
func (s *Service) CreateOrder(in OrderInput) (*types.RentalOrder, error) {
	pickup, err := types.ValidateTime("pickup time", in.PickupTime)
	if err != nil {
		return nil, err
	}
	ret, err := types.ValidateTime("return time", in.ReturnTime)
	if err != nil {
		return nil, err
	}
	clientID, err := types.ValidateID("client ID", in.Client)
	if err != nil {
		return nil, err
	}
	carID, err := types.ValidateID("car serial number", in.Car)
	if err != nil {
		return nil, err
	}

	client, err := s.ResolvePerson(clientID)
	if err != nil {
		return nil, err
	}
	car, err := s.ResolveCar(carID)
	if err != nil {
		return nil, err
	}

	available, err := s.IsAvailable(carID, pickup, ret)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, fmt.Errorf("%w: car %s between %s and %s",
			types.ErrAvailabilityConflict, carID, in.PickupTime, in.ReturnTime)
	}

	id, err := s.counter.Next()
	if err != nil {
		return nil, err
	}
	order := &types.RentalOrder{
		ID:         id,
		PickupTime: pickup,
		ReturnTime: ret,
		Client:     *client,
		Car:        *car,
	}
	if err := s.store.Save(order.Collection(), order.Row()); err != nil {
		return nil, err
	}
	s.audit("order added", order.Key())
	return order, nil
}

// GetOrder returns the order with the given ID, reconstructed with its
// stored ID and freshly resolved references.
func (s *Service) GetOrder(id int) (*types.RentalOrder, error) {
	key := strconv.Itoa(id)
	row, ok, err := s.store.Exists(types.RentCollection, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: order %s", types.ErrNotFound, key)
	}
	return types.OrderFromRow(row, s)
}

// ListOrders returns every rental order in storage order.
func (s *Service) ListOrders() ([]*types.RentalOrder, error) {
	rows, err := s.store.Load(types.RentCollection)
	if err != nil {
		return nil, err
	}
	orders := make([]*types.RentalOrder, 0, len(rows))
	for _, row := range rows {
		o, err := types.OrderFromRow(row, s)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// EditOrder validates the changed fields and applies them to the stored
// row. References are re-resolved; times are format-checked only, matching
// the historical behavior of not re-running the availability scan on edit.
func (s *Service) EditOrder(id int, changes map[string]string) error {
	canonical := make(map[string]string, len(changes))
	for field, value := range changes {
		v, err := s.validateOrderField(field, value)
		if err != nil {
			return err
		}
		canonical[field] = v
	}
	if err := s.store.Edit(types.RentCollection, strconv.Itoa(id), canonical); err != nil {
		return err
	}
	s.audit("order edited", strconv.Itoa(id))
	return nil
}

// DeleteOrder removes the order. Orders have no dependents, so deletion is
// unguarded.
func (s *Service) DeleteOrder(id int) error {
	if err := s.store.Delete(types.RentCollection, strconv.Itoa(id)); err != nil {
		return err
	}
	s.audit("order deleted", strconv.Itoa(id))
	return nil
}

func (s *Service) validateOrderField(field, value string) (string, error) {
	switch field {
	case "pickup_time":
		t, err := types.ValidateTime("pickup time", value)
		if err != nil {
			return "", err
		}
		return t.Format(types.TimeLayout), nil
	case "return_time":
		t, err := types.ValidateTime("return time", value)
		if err != nil {
			return "", err
		}
		return t.Format(types.TimeLayout), nil
	case "client":
		id, err := types.ValidateID("client ID", value)
		if err != nil {
			return "", err
		}
		if _, err := s.ResolvePerson(id); err != nil {
			return "", err
		}
		return id, nil
	case "car":
		id, err := types.ValidateID("car serial number", value)
		if err != nil {
			return "", err
		}
		if _, err := s.ResolveCar(id); err != nil {
			return "", err
		}
		return id, nil
	default:
		return "", fmt.Errorf("%w: field %q cannot be edited", types.ErrValidation, field)
	}
}
