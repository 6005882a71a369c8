package types

// Standard collection names for Store operations. The CSV backend maps a
// collection to a file of the same name; the SQLite backend maps it to a
// table.
const (
	PersonCollection = "person"
	CarsCollection   = "cars"
	RentCollection   = "rent"
)

// Fixed field orders per collection. Row values are stored in exactly this
// order; the primary key is always field 0.
var (
	PersonFields = []string{"id", "first_name", "last_name", "age", "email", "phone"}
	CarsFields   = []string{"id", "brand", "model", "year", "engine", "day_cost", "km", "owner"}
	RentFields   = []string{"id", "pickup_time", "return_time", "client", "car"}
)

// StandardCollections lists all collection names for enumeration.
var StandardCollections = []string{
	PersonCollection,
	CarsCollection,
	RentCollection,
}

// FieldsFor returns the declared field order for a collection.
func FieldsFor(collection string) ([]string, error) {
	switch collection {
	case PersonCollection:
		return PersonFields, nil
	case CarsCollection:
		return CarsFields, nil
	case RentCollection:
		return RentFields, nil
	default:
		return nil, ErrCollectionUnknown
	}
}
