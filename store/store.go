// Package store provides the key-value snapshot persistence used by the
// entity repository. Each collection is serialized as one JSON value
// under a fixed string key; durability is whole-value, never per-record.
package store

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("store: key not found")

// Store is a durable string-keyed slot for collection snapshots.
// Implementations must treat Set as an atomic replace of the whole value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
