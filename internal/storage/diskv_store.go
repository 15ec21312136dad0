package storage

import (
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvStore persists each key as one small file under a base directory.
// This is the default backend.
type DiskvStore struct {
	d *diskv.Diskv
}

func NewDiskvStore(basePath string) (*DiskvStore, error) {
	if err := os.MkdirAll(basePath, 0700); err != nil {
		return nil, fmt.Errorf("failed to create override store directory: %w", err)
	}
	return &DiskvStore{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
	}, nil
}

func (s *DiskvStore) Get(key string) ([]byte, error) {
	data, err := s.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *DiskvStore) Set(key string, value []byte) error {
	return s.d.Write(key, value)
}

func (s *DiskvStore) Remove(key string) error {
	if err := s.d.Erase(key); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *DiskvStore) Close() error {
	return nil
}
