package types

import "strconv"

// Car is a rentable vehicle. Owner is an embedded snapshot of the owning
// Person, taken at resolution time; later edits to the person do not
// propagate here.
type Car struct {
	Serial  string
	Brand   string
	Model   string
	Year    int
	Engine  int
	DayCost int
	KM      int
	Owner   Person
}

// CarInput carries the raw field values collected for a Car. Owner is the
// owning person's ID, resolved eagerly during construction.
type CarInput struct {
	Serial  string
	Brand   string
	Model   string
	Year    string
	Engine  string
	DayCost string
	KM      string
	Owner   string
}

// NewCar validates every field, resolves the owner reference, and returns
// the constructed Car. A missing owner fails with ErrReferenceNotFound.
func NewCar(in CarInput, res Resolver) (*Car, error) {
	serial, err := ValidateID("serial number", in.Serial)
	if err != nil {
		return nil, err
	}
	brand, err := ValidateName("brand", in.Brand)
	if err != nil {
		return nil, err
	}
	model, err := ValidateModel(in.Model)
	if err != nil {
		return nil, err
	}
	year, err := ValidateYear(in.Year)
	if err != nil {
		return nil, err
	}
	engine, err := ValidateEngine(in.Engine)
	if err != nil {
		return nil, err
	}
	dayCost, err := ValidateDayCost(in.DayCost)
	if err != nil {
		return nil, err
	}
	km, err := ValidateKM(in.KM)
	if err != nil {
		return nil, err
	}
	ownerID, err := ValidateID("owner ID", in.Owner)
	if err != nil {
		return nil, err
	}
	owner, err := res.ResolvePerson(ownerID)
	if err != nil {
		return nil, err
	}
	return &Car{
		Serial:  serial,
		Brand:   brand,
		Model:   model,
		Year:    year,
		Engine:  engine,
		DayCost: dayCost,
		KM:      km,
		Owner:   *owner,
	}, nil
}

// CarFromRow reconstructs a Car from its stored row, re-running validation
// and re-resolving the owner reference.
func CarFromRow(row Row, res Resolver) (*Car, error) {
	if len(row) != len(CarsFields) {
		return nil, rowLengthError(CarsCollection, len(CarsFields), len(row))
	}
	return NewCar(CarInput{
		Serial:  row[0],
		Brand:   row[1],
		Model:   row[2],
		Year:    row[3],
		Engine:  row[4],
		DayCost: row[5],
		KM:      row[6],
		Owner:   row[7],
	}, res)
}

// Row returns the ordered field values per CarsFields. The owner is stored
// by ID only.
func (c *Car) Row() Row {
	return Row{
		c.Serial,
		c.Brand,
		c.Model,
		strconv.Itoa(c.Year),
		strconv.Itoa(c.Engine),
		strconv.Itoa(c.DayCost),
		strconv.Itoa(c.KM),
		c.Owner.ID,
	}
}

// Collection returns the backing collection name.
func (c *Car) Collection() string { return CarsCollection }

// Key returns the primary key.
func (c *Car) Key() string { return c.Serial }
