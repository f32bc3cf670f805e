package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Fixture describes a plugin workspace laid out on disk by CreateWorkspace.
// Empty manifest fields get a minimal default document.
type Fixture struct {
	Config    string // build.config.toml content; omitted when empty
	Workspace string // root Cargo.toml
	Providers string // providers/base-provider/Cargo.toml
	Drivers   string // drivers/base-driver/Cargo.toml
	Snapshot  string // .build.config.snapshot.toml; omitted when empty
}

const (
	defaultWorkspace = `[workspace]
members = ["providers/base-provider", "drivers/base-driver"]
`
	defaultProviders = `[package]
name = "base-provider"
version = "0.1.0"

[dependencies]
`
	defaultDrivers = `[package]
name = "base-driver"
version = "0.1.0"

[dependencies]
`
)

// CreateWorkspace writes the fixture into a temp directory and returns its path.
func CreateWorkspace(t *testing.T, f Fixture) string {
	t.Helper()
	dir := t.TempDir()

	write(t, dir, "Cargo.toml", orDefault(f.Workspace, defaultWorkspace))
	write(t, dir, "providers/base-provider/Cargo.toml", orDefault(f.Providers, defaultProviders))
	write(t, dir, "drivers/base-driver/Cargo.toml", orDefault(f.Drivers, defaultDrivers))
	if f.Config != "" {
		write(t, dir, "build.config.toml", f.Config)
	}
	if f.Snapshot != "" {
		write(t, dir, ".build.config.snapshot.toml", f.Snapshot)
	}
	return dir
}

// ReadFile returns the content of a workspace-relative file.
func ReadFile(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel))) //nolint:gosec // test file
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

// WriteFile writes a workspace-relative file, creating parent directories.
func WriteFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	write(t, dir, rel, content)
}

func write(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // test dir
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(strings.TrimLeft(content, "\n")), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
