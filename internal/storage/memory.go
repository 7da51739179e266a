package storage

import (
	"context"
	"sync"
)

// MemoryKV is an in-process KV.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (s *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	val, ok := s.data[key]
	s.mu.RUnlock()
	return val, ok, nil
}

func (s *MemoryKV) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
	return nil
}
