package types

import (
	"strconv"
	"time"
)

// RentalOrder is one booking of a car by a client. Client and Car are
// embedded snapshots resolved at construction time. IDs are sequential
// integers issued by the fleet allocator, never user-supplied.
type RentalOrder struct {
	ID         int
	PickupTime time.Time
	ReturnTime time.Time
	Client     Person
	Car        Car
}

// RentCost returns the cost of the order: whole rental days times the
// car's daily cost.
func (o *RentalOrder) RentCost() int {
	days := int(o.ReturnTime.Sub(o.PickupTime).Hours() / 24)
	return days * o.Car.DayCost
}

// OrderFromRow reconstructs a RentalOrder from its stored row with its
// stored ID, re-parsing the times and re-resolving both references. No
// availability check runs on reload.
func OrderFromRow(row Row, res Resolver) (*RentalOrder, error) {
	if len(row) != len(RentFields) {
		return nil, rowLengthError(RentCollection, len(RentFields), len(row))
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return nil, rowFieldError(RentCollection, "id", row[0])
	}
	pickup, err := time.Parse(TimeLayout, row[1])
	if err != nil {
		return nil, rowFieldError(RentCollection, "pickup_time", row[1])
	}
	ret, err := time.Parse(TimeLayout, row[2])
	if err != nil {
		return nil, rowFieldError(RentCollection, "return_time", row[2])
	}
	client, err := res.ResolvePerson(row[3])
	if err != nil {
		return nil, err
	}
	car, err := res.ResolveCar(row[4])
	if err != nil {
		return nil, err
	}
	return &RentalOrder{
		ID:         id,
		PickupTime: pickup,
		ReturnTime: ret,
		Client:     *client,
		Car:        *car,
	}, nil
}

// Row returns the ordered field values per RentFields. References are
// stored by primary key only.
func (o *RentalOrder) Row() Row {
	return Row{
		strconv.Itoa(o.ID),
		o.PickupTime.Format(TimeLayout),
		o.ReturnTime.Format(TimeLayout),
		o.Client.ID,
		o.Car.Serial,
	}
}

// Collection returns the backing collection name.
func (o *RentalOrder) Collection() string { return RentCollection }

// Key returns the primary key.
func (o *RentalOrder) Key() string { return strconv.Itoa(o.ID) }
