package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/graph-benchmarks/graph-benchmarks/internal/buildconfig"
)

func TestLoad_missingIsNil(t *testing.T) {
	s := NewStore(t.TempDir())
	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("cfg = %+v, want nil", cfg)
	}
}

func TestLoad_invalid(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := os.WriteFile(s.Path, []byte("providers = ["), 0600); err != nil {
		t.Fatal(err)
	}
	_, err := s.Load()
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestCommitAndLoad(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	cfg := &buildconfig.Config{Providers: []string{"pg"}, Drivers: []string{"neo4j", "arango"}}

	if err := s.Commit(cfg); err != nil {
		t.Fatalf("commit: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded.Equal(cfg) {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}

	data, err := os.ReadFile(filepath.Join(dir, DefaultDriverListPath))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "neo4j\narango" {
		t.Errorf("driver list = %q", data)
	}
	if _, err := os.Stat(s.Path + ".tmp"); err == nil {
		t.Error("temp file should not remain")
	}
}

func TestCommit_overwrites(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Commit(&buildconfig.Config{Providers: []string{"pg"}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Commit(&buildconfig.Config{}); err != nil {
		t.Fatal(err)
	}
	loaded, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Providers) != 0 || len(loaded.Drivers) != 0 {
		t.Errorf("loaded = %+v, want empty", loaded)
	}
}

func TestFormatDriverList(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"neo4j"}, "neo4j"},
		{[]string{"neo4j", "graphscope"}, "neo4j\ngraphscope"},
	}
	for _, tt := range tests {
		if got := string(FormatDriverList(tt.in)); got != tt.want {
			t.Errorf("FormatDriverList(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
