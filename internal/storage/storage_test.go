package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func testKV(t *testing.T, kv KV) {
	t.Helper()

	if _, err := kv.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) err = %v, want ErrNotFound", err)
	}

	if err := kv.Set("k", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := kv.Get("k")
	if err != nil || string(got) != "v1" {
		t.Errorf("Get = (%q, %v), want (v1, nil)", got, err)
	}

	// Overwrite
	if err := kv.Set("k", []byte("v2")); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, _ = kv.Get("k")
	if string(got) != "v2" {
		t.Errorf("Get after overwrite = %q, want v2", got)
	}

	if err := kv.Remove("k"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := kv.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Remove err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore(t *testing.T) {
	testKV(t, NewMemoryStore())
}

func TestDiskvStore(t *testing.T) {
	kv, err := NewDiskvStore(filepath.Join(t.TempDir(), "state"))
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()
	testKV(t, kv)
}

func TestSQLiteStore(t *testing.T) {
	kv, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()
	testKV(t, kv)
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	kv, err := Open(filepath.Join(dir, "state.db"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := kv.(*SQLiteStore); !ok {
		t.Errorf("Open(.db) = %T, want *SQLiteStore", kv)
	}
	kv.Close()

	kv, err = Open(filepath.Join(dir, "state"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := kv.(*DiskvStore); !ok {
		t.Errorf("Open(dir) = %T, want *DiskvStore", kv)
	}
	kv.Close()
}
