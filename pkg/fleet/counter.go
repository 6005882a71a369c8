package fleet

// Counter issues sequential rental-order IDs from the durable counter state
// persisted by the store. It holds no in-memory value of its own, so a
// process restart resumes exactly where the stored value left off.
type Counter struct {
	store interface {
		LoadCounter() (int, error)
		SaveCounter(int) error
	}
}

// NewCounter creates a Counter over the store's persistence hooks.
func NewCounter(store interface {
	LoadCounter() (int, error)
	SaveCounter(int) error
}) *Counter {
	return &Counter{store: store}
}

// Next reads the current counter value, persists the incremented value, and
// returns the read value. Missing or corrupt counter state surfaces as
// ErrDataAccess and aborts order creation.
func (c *Counter) Next() (int, error) {
	v, err := c.store.LoadCounter()
	if err != nil {
		return 0, err
	}
	if err := c.store.SaveCounter(v + 1); err != nil {
		return 0, err
	}
	return v, nil
}
