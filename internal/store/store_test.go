package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "state.db"))
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetMissingKey(t *testing.T) {
	s := testStore(t)
	_, ok, err := s.Get("nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected missing key to report ok=false")
	}
}

func TestSetAndGet(t *testing.T) {
	s := testStore(t)
	if err := s.Set("theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("theme", "light"); err != nil {
		t.Fatalf("second Set: %v", err)
	}
	got, ok, err := s.Get("theme")
	if err != nil || !ok {
		t.Fatalf("Get: %v, ok=%v", err, ok)
	}
	if got != "light" {
		t.Errorf("expected upserted value light, got %q", got)
	}
}

func TestIDsRoundTrip(t *testing.T) {
	s := testStore(t)
	want := []string{"b", "a", "c"}
	if err := s.SaveIDs("savedIds", want); err != nil {
		t.Fatalf("SaveIDs: %v", err)
	}
	got := s.LoadIDs("savedIds")
	if len(got) != len(want) {
		t.Fatalf("expected %d ids, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %s, want %s (order must be preserved)", i, got[i], want[i])
		}
	}
}

func TestLoadIDsMissingKey(t *testing.T) {
	s := testStore(t)
	got := s.LoadIDs("readIds")
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestLoadIDsMalformed(t *testing.T) {
	s := testStore(t)
	for _, bad := range []string{"not json", `{"a":1}`, `[1,2,3]`, "null"} {
		if err := s.Set("savedIds", bad); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got := s.LoadIDs("savedIds")
		if len(got) != 0 {
			t.Errorf("LoadIDs with value %q = %v, want empty", bad, got)
		}
	}
}

func TestSaveNilIDs(t *testing.T) {
	s := testStore(t)
	if err := s.SaveIDs("readIds", nil); err != nil {
		t.Fatalf("SaveIDs: %v", err)
	}
	raw, _, _ := s.Get("readIds")
	if raw != "[]" {
		t.Errorf("expected nil ids stored as [], got %q", raw)
	}
}

func TestPersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SaveIDs("readIds", []string{"x"}); err != nil {
		t.Fatalf("SaveIDs: %v", err)
	}
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	if got := s2.LoadIDs("readIds"); len(got) != 1 || got[0] != "x" {
		t.Errorf("expected [x] after reopen, got %v", got)
	}
}

func TestNeedsCollect(t *testing.T) {
	s := testStore(t)

	if !s.NeedsCollect(time.Hour) {
		t.Error("expected NeedsCollect=true when nothing recorded")
	}
	if !s.LastCollect().IsZero() {
		t.Error("expected zero LastCollect before first run")
	}

	if err := s.SetLastCollect(); err != nil {
		t.Fatalf("SetLastCollect: %v", err)
	}
	if s.NeedsCollect(time.Hour) {
		t.Error("expected NeedsCollect=false right after SetLastCollect")
	}
	if !s.NeedsCollect(0) {
		t.Error("expected NeedsCollect=true with zero interval")
	}
	if time.Since(s.LastCollect()) > 2*time.Second {
		t.Errorf("LastCollect too old: %v", s.LastCollect())
	}
}

func TestOpenCreatesDir(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sub", "deep", "state.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("opening store in nested dir: %v", err)
	}
	s.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Error("expected directory to be created")
	}
	size, err := Size(dbPath)
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size == 0 {
		t.Error("expected non-zero db size")
	}
}
