package storage

import "errors"

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("key not found")

// KV is the persisted key-value port used to remember override state across
// restarts. It is a best-effort cache, not a source of truth: the in-memory
// override maps stay authoritative during a session, and callers treat every
// write failure as non-fatal.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
	Close() error
}
