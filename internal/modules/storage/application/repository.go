package application

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	busdomain "github.com/saransh1220/artistly/internal/modules/changebus/domain"
	"github.com/saransh1220/artistly/internal/modules/storage/domain"
	"go.uber.org/zap"
)

// Repository is one view's cached copy of a collection. The cache is loaded
// when the repository is created and reloaded on every change signal for its
// collection, so independently created repositories over the same store stay
// consistent.
type Repository[T domain.Record] struct {
	store  domain.Store
	bus    busdomain.Notifier
	key    string
	logger *zap.Logger

	// seq orders snapshots by when they were read from the store. A snapshot
	// older than the cached one is dropped, so a slow write cannot roll back
	// a newer reload.
	seq atomic.Uint64

	mu          sync.RWMutex
	cache       []T
	cacheSeq    uint64
	unsubscribe func()
	closeOnce   sync.Once
}

func NewRepository[T domain.Record](
	ctx context.Context,
	store domain.Store,
	bus busdomain.Notifier,
	key string,
	logger *zap.Logger,
) *Repository[T] {
	r := &Repository[T]{
		store:  store,
		bus:    bus,
		key:    key,
		logger: logger.With(zap.String("collection", key)),
	}
	r.Reload(ctx)
	r.unsubscribe = bus.Subscribe(key, func(ctx context.Context, _ busdomain.ChangeEvent) {
		r.Reload(ctx)
	})
	return r
}

// Key returns the collection key this repository reads.
func (r *Repository[T]) Key() string {
	return r.key
}

// List returns a copy of the cached collection.
func (r *Repository[T]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, len(r.cache))
	copy(out, r.cache)
	return out
}

// Get returns the cached record with the given id.
func (r *Repository[T]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.cache {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Stored reports whether the collection has ever been written.
func (r *Repository[T]) Stored(ctx context.Context) (bool, error) {
	_, err := r.store.Get(ctx, r.key)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Reload replaces the cache with the stored collection.
func (r *Repository[T]) Reload(ctx context.Context) {
	seq := r.seq.Add(1)
	r.setCache(seq, ReadCollection[T](ctx, r.store, r.key, r.logger))
}

// Add appends record to the freshly read collection. Callers assign a unique
// id; duplicates are not detected.
func (r *Repository[T]) Add(ctx context.Context, record T) error {
	var seq uint64
	next, err := MutateCollection(ctx, r.store, r.key, r.logger, func(records []T) ([]T, bool, error) {
		seq = r.seq.Add(1)
		return append(records, record), true, nil
	})
	if err != nil {
		return err
	}
	r.setCache(seq, next)
	r.bus.Publish(ctx, r.key)
	return nil
}

// Update applies changes to the record with the given id. A missing id leaves
// the collection untouched and reports found=false. An error from apply aborts
// the update with nothing persisted.
func (r *Repository[T]) Update(ctx context.Context, id string, apply func(*T) error) (bool, error) {
	var (
		found bool
		seq   uint64
	)
	next, err := MutateCollection(ctx, r.store, r.key, r.logger, func(records []T) ([]T, bool, error) {
		seq = r.seq.Add(1)
		found = false
		for i := range records {
			if records[i].RecordID() != id {
				continue
			}
			if err := apply(&records[i]); err != nil {
				return nil, false, err
			}
			found = true
		}
		return records, found, nil
	})
	if err != nil {
		return false, err
	}
	r.setCache(seq, next)
	if found {
		r.bus.Publish(ctx, r.key)
	}
	return found, nil
}

// Delete removes the record with the given id. A missing id is a no-op.
func (r *Repository[T]) Delete(ctx context.Context, id string) (bool, error) {
	var (
		found bool
		seq   uint64
	)
	next, err := MutateCollection(ctx, r.store, r.key, r.logger, func(records []T) ([]T, bool, error) {
		seq = r.seq.Add(1)
		found = false
		kept := make([]T, 0, len(records))
		for _, rec := range records {
			if rec.RecordID() == id {
				found = true
				continue
			}
			kept = append(kept, rec)
		}
		return kept, found, nil
	})
	if err != nil {
		return false, err
	}
	r.setCache(seq, next)
	if found {
		r.bus.Publish(ctx, r.key)
	}
	return found, nil
}

// Close stops reacting to change signals.
func (r *Repository[T]) Close() {
	r.closeOnce.Do(func() {
		if r.unsubscribe != nil {
			r.unsubscribe()
		}
	})
}

func (r *Repository[T]) setCache(seq uint64, records []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if seq < r.cacheSeq {
		return
	}
	r.cacheSeq = seq
	r.cache = records
}
