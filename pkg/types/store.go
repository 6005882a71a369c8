package types

// Row is the ordered field values of one stored record. The order matches
// the collection's declared field list; every value is its string form.
type Row []string

// Store provides durable row access for the carbnb collections. Both the
// CSV file backend and the SQLite backend implement the same semantics:
// there are no transactions, every call blocks until I/O completes, and
// callers must re-Load after any mutation rather than cache results.
type Store interface {
	// Attach initializes the backend with the given configuration,
	// creating the data directory and empty collections if needed.
	// Returns ErrAlreadyAttached if called while attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach,
	// operations return ErrStoreDetached.
	Detach() error

	// Load returns every row of the collection in storage order.
	Load(collection string) ([]Row, error)

	// Exists returns the row whose primary key equals key, and whether
	// one was found.
	Exists(collection, key string) (Row, bool, error)

	// Save writes the row to the collection. An existing row with the
	// same primary key is replaced.
	Save(collection string, row Row) error

	// Delete removes the row with the given primary key.
	// Returns ErrNotFound if no such row exists.
	Delete(collection, key string) error

	// Edit applies changes (field name to new string value) to the row
	// with the given primary key. Returns ErrNotFound if no such row
	// exists and ErrDataAccess on an unknown field name.
	Edit(collection, key string, changes map[string]string) error

	// LoadCounter reads the rental-order ID counter. Missing or corrupt
	// counter state returns ErrDataAccess.
	LoadCounter() (int, error)

	// SaveCounter writes the rental-order ID counter.
	SaveCounter(value int) error
}

// Record is the codec capability every entity type carries: its fixed row
// representation, its backing collection, and its primary key.
type Record interface {
	Row() Row
	Collection() string
	Key() string
}

// Resolver looks up foreign keys and materializes the referenced entity as
// a disconnected copy. Later edits to the source do not propagate to the
// embedded copy.
type Resolver interface {
	ResolvePerson(id string) (*Person, error)
	ResolveCar(serial string) (*Car, error)
}
