package fleet

import (
	"fmt"

	"github.com/carbnb/carbnb/pkg/types"
)

// ResolvePerson looks up a person by ID and materializes a disconnected
// copy. Missing IDs fail with ErrReferenceNotFound: the caller should
// create the person first.
func (s *Service) ResolvePerson(id string) (*types.Person, error) {
	row, ok, err := s.store.Exists(types.PersonCollection, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: person %s does not exist in our database", types.ErrReferenceNotFound, id)
	}
	return types.PersonFromRow(row)
}

// ResolveCar looks up a car by serial and materializes a disconnected copy,
// including its embedded owner.
func (s *Service) ResolveCar(serial string) (*types.Car, error) {
	row, ok, err := s.store.Exists(types.CarsCollection, serial)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: car %s does not exist in our database", types.ErrReferenceNotFound, serial)
	}
	return types.CarFromRow(row, s)
}
