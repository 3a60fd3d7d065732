package metrics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/saransh1220/artistly/internal/modules/storage/domain"
)

var storeOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "artistly_store_operations_total",
	Help: "Total number of record store operations.",
}, []string{"backend", "op", "result"})

// InstrumentedStore counts every call made to the wrapped backend.
type InstrumentedStore struct {
	next    domain.Store
	backend string
}

func NewInstrumentedStore(next domain.Store, backend string) *InstrumentedStore {
	return &InstrumentedStore{next: next, backend: backend}
}

func (s *InstrumentedStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.next.Get(ctx, key)
	s.observe("get", err)
	return value, err
}

func (s *InstrumentedStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.next.Set(ctx, key, value)
	s.observe("set", err)
	return err
}

func (s *InstrumentedStore) Delete(ctx context.Context, key string) error {
	err := s.next.Delete(ctx, key)
	s.observe("delete", err)
	return err
}

func (s *InstrumentedStore) Update(ctx context.Context, key string, fn func([]byte) ([]byte, error)) error {
	err := s.next.Update(ctx, key, fn)
	s.observe("update", err)
	return err
}

func (s *InstrumentedStore) observe(op string, err error) {
	storeOperations.WithLabelValues(s.backend, op, result(err)).Inc()
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrKeyNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
