package cache

import (
	"context"
	"sync"
)

type memoryKey struct {
	hash   int64
	player int
}

// MemoryStore is a process-local Store used in tests and cache-less
// development setups. It loses everything on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[memoryKey]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[memoryKey]Record)}
}

func (s *MemoryStore) Get(_ context.Context, hash int64, player int) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[memoryKey{hash: hash, player: player}]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *MemoryStore) Put(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[memoryKey{hash: rec.Hash, player: rec.Player}] = rec
	return nil
}

// Len reports the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
