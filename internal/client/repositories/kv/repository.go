package kv

import "context"

// Repository is a flat key/value store holding serialized records.
//
// Get returns (nil, nil) when the key is absent. Delete of an absent key is
// not an error. Clear removes every key this repository owns.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error

	// Update runs a read-modify-write of one key. fn receives the current
	// value (nil when absent) and returns the value to store. Backends apply
	// it as atomically as they can; returning an error from fn aborts the write.
	Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error
}
