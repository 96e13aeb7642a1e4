// Package storage is the durable key-value bridge the material list is
// persisted through. Backends store raw bytes under string keys; the typed
// Load/Save helpers add JSON encoding and the recovery rules callers rely
// on: a failed load falls back to a default, a failed save never takes the
// caller down.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/svaldez/stockwise/internal/infra/metrics"
)

// MaterialsKey is the single key the inventory lives under.
const MaterialsKey = "stockwise_materials"

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("storage: key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Load reads and decodes the value under key. A missing key, a backend
// failure or undecodable data all yield def; Load never fails.
func Load[T any](ctx context.Context, s Store, log *slog.Logger, key string, def T) T {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Warn("state load failed, using default", "key", key, "err", err)
			metrics.StoreFailures.WithLabelValues("load").Inc()
		}
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn("state is corrupt, using default", "key", key, "err", err)
		metrics.StoreFailures.WithLabelValues("load").Inc()
		return def
	}
	return v
}

// Save encodes v and writes it under key. The error is reported so callers
// can warn the user, but the in-memory state stays authoritative either way.
func Save[T any](ctx context.Context, s Store, log *slog.Logger, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.Put(ctx, key, raw); err != nil {
		log.Error("state save failed", "key", key, "err", err)
		metrics.StoreFailures.WithLabelValues("save").Inc()
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
