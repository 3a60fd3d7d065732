package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/saransh1220/artistly/internal/modules/storage/domain"
	"go.uber.org/zap"
)

var errUnchanged = errors.New("collection unchanged")

// ReadCollection returns the records stored under key. An absent key, a failing
// backend or content that does not parse as a JSON array all read as an empty
// collection; the cause is logged and never returned.
func ReadCollection[T any](ctx context.Context, store domain.Store, key string, logger *zap.Logger) []T {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			logger.Warn("collection read failed", zap.String("key", key), zap.Error(err))
		}
		return []T{}
	}
	return decodeCollection[T](raw, key, logger)
}

// WriteCollection serializes records as one JSON array and persists it.
func WriteCollection[T any](ctx context.Context, store domain.Store, key string, records []T) error {
	raw, err := encodeCollection(records)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw)
}

// MutateCollection runs fn against the freshly stored collection and writes the
// result back in one atomic step. fn reports whether it changed anything; an
// unchanged collection is not written. The returned slice is the collection as
// it stands after the call.
func MutateCollection[T any](
	ctx context.Context,
	store domain.Store,
	key string,
	logger *zap.Logger,
	fn func(records []T) ([]T, bool, error),
) ([]T, error) {
	var result []T
	err := store.Update(ctx, key, func(current []byte) ([]byte, error) {
		records := decodeCollection[T](current, key, logger)
		next, changed, err := fn(records)
		if err != nil {
			return nil, err
		}
		if next == nil {
			next = []T{}
		}
		result = next
		if !changed {
			return nil, errUnchanged
		}
		return encodeCollection(next)
	})
	if err != nil && !errors.Is(err, errUnchanged) {
		return nil, err
	}
	return result, nil
}

// ReadDocument loads a single JSON object. ok is false when the key is absent or
// the content does not parse.
func ReadDocument[T any](ctx context.Context, store domain.Store, key string, logger *zap.Logger) (doc T, ok bool) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			logger.Warn("document read failed", zap.String("key", key), zap.Error(err))
		}
		return doc, false
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Warn("malformed document treated as absent", zap.String("key", key), zap.Error(err))
		var zero T
		return zero, false
	}
	return doc, true
}

// WriteDocument persists a single JSON object under key.
func WriteDocument[T any](ctx context.Context, store domain.Store, key string, doc T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Set(ctx, key, raw)
}

func decodeCollection[T any](raw []byte, key string, logger *zap.Logger) []T {
	if len(raw) == 0 {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.Warn("malformed collection treated as empty", zap.String("key", key), zap.Error(err))
		return []T{}
	}
	if records == nil {
		return []T{}
	}
	return records
}

func encodeCollection[T any](records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode collection: %w", err)
	}
	return raw, nil
}

// DeleteDocument removes the document stored under key.
func DeleteDocument(ctx context.Context, store domain.Store, key string) error {
	return store.Delete(ctx, key)
}
