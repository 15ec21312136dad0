package storage

import "strings"

// MemoryStore is the in-memory fallback used by tests and by sessions that
// run without any persistence at all.
type MemoryStore struct {
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return value, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.values[key] = cp
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	delete(s.values, key)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// Open selects a backend from the store path: a .db path opens the SQLite
// store, anything else a diskv directory store.
func Open(path string) (KV, error) {
	if strings.HasSuffix(path, ".db") {
		return NewSQLiteStore(path)
	}
	return NewDiskvStore(path)
}
