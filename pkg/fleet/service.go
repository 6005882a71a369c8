package fleet

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/carbnb/carbnb/pkg/types"
)

// Service exposes the fleet operations over one attached Store. It holds
// the injected clock, the order-ID counter, and the audit logger. A Service
// is not safe for concurrent use; the system assumes one logical writer.
type Service struct {
	store   types.Store
	clock   types.Clock
	counter *Counter
	log     *zap.SugaredLogger
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the wall clock used for future-order filtering.
func WithClock(c types.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithLogger sets the audit logger. The default is a nop logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Service) { s.log = l }
}

// NewService creates a Service over an attached store.
func NewService(store types.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		clock: types.SystemClock{},
		log:   zap.NewNop().Sugar(),
	}
	s.counter = NewCounter(store)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the underlying store.
func (s *Service) Store() types.Store { return s.store }

// audit logs a successful mutation with a correlation ID.
func (s *Service) audit(msg, key string) {
	s.log.Infow(msg, "id", key, "op", uuid.NewString())
}
