package cache

import "testing"

func TestPutGetRoundTrip(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	key := Sum([]byte("module contents"))
	want := &Entry{Path: "pkg/main", ContentHash: key, ImportPaths: []string{"pkg/util"}, ImportHashes: []Digest{Sum([]byte("util"))}}

	if err := c.Put(key, want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := c.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.Path != want.Path || got.ContentHash != want.ContentHash {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestGetMissReturnsFalse(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	_, ok, err := c.Get(Sum([]byte("never written")))
	if err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
}

func TestDropAllClearsEntries(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	key := Sum([]byte("x"))
	if err := c.Put(key, &Entry{Path: "x"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if _, ok, _ := c.Get(key); ok {
		t.Fatalf("expected entry to be gone after DropAll")
	}
}
