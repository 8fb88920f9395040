package kv

import (
	"bytes"
	"context"
	"sync"
)

// MemoryRepository keeps everything in process memory. It backs the
// "memory" storage backend and doubles as a fake in service tests.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return bytes.Clone(v), nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = bytes.Clone(value)
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.data)
	return nil
}

func (r *MemoryRepository) Update(_ context.Context, key string, fn func(old []byte) ([]byte, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var old []byte
	if v, ok := r.data[key]; ok {
		old = bytes.Clone(v)
	}
	value, err := fn(old)
	if err != nil {
		return err
	}
	r.data[key] = bytes.Clone(value)
	return nil
}
