package fleet

import (
	"fmt"

	"github.com/carbnb/carbnb/pkg/types"
)

// AddClient validates and persists a new person.
func (s *Service) AddClient(in types.PersonInput) (*types.Person, error) {
	p, err := types.NewPerson(in)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(p.Collection(), p.Row()); err != nil {
		return nil, err
	}
	s.audit("client added", p.ID)
	return p, nil
}

// GetClient returns the person with the given ID, or ErrNotFound.
func (s *Service) GetClient(id string) (*types.Person, error) {
	row, ok, err := s.store.Exists(types.PersonCollection, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: person %s", types.ErrNotFound, id)
	}
	return types.PersonFromRow(row)
}

// ListClients returns every person in storage order.
func (s *Service) ListClients() ([]*types.Person, error) {
	rows, err := s.store.Load(types.PersonCollection)
	if err != nil {
		return nil, err
	}
	clients := make([]*types.Person, 0, len(rows))
	for _, row := range rows {
		p, err := types.PersonFromRow(row)
		if err != nil {
			return nil, err
		}
		clients = append(clients, p)
	}
	return clients, nil
}

// EditClient validates the changed fields and applies them to the stored
// row. The primary key cannot be changed.
func (s *Service) EditClient(id string, changes map[string]string) error {
	canonical := make(map[string]string, len(changes))
	for field, value := range changes {
		v, err := validatePersonField(field, value)
		if err != nil {
			return err
		}
		canonical[field] = v
	}
	if err := s.store.Edit(types.PersonCollection, id, canonical); err != nil {
		return err
	}
	s.audit("client edited", id)
	return nil
}

// DeleteClient removes the person unless a rental order with a future
// pickup still references them.
func (s *Service) DeleteClient(id string) error {
	open, err := s.HasOpenOrders(types.PersonCollection, id, true)
	if err != nil {
		return err
	}
	if open {
		return fmt.Errorf("%w: unable to delete client %s: open orders exist", types.ErrIntegrity, id)
	}
	if err := s.store.Delete(types.PersonCollection, id); err != nil {
		return err
	}
	s.audit("client deleted", id)
	return nil
}

// validatePersonField runs the field's rule and returns the canonical
// stored value.
func validatePersonField(field, value string) (string, error) {
	switch field {
	case "first_name":
		return types.ValidateName("first name", value)
	case "last_name":
		return types.ValidateName("last name", value)
	case "age":
		return types.ValidateAge(value)
	case "email":
		return types.ValidateEmail(value)
	case "phone":
		return types.ValidatePhone(value)
	default:
		return "", fmt.Errorf("%w: field %q cannot be edited", types.ErrValidation, field)
	}
}
