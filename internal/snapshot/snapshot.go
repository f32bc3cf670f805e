package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/graph-benchmarks/graph-benchmarks/internal/buildconfig"
)

const (
	// DefaultPath is the snapshot file name relative to the workspace root.
	DefaultPath = ".build.config.snapshot.toml"
	// DefaultDriverListPath is the driver list file name relative to the
	// workspace root.
	DefaultDriverListPath = ".build-drivers"
)

// ErrParse is returned when an existing snapshot cannot be decoded.
var ErrParse = errors.New("snapshot invalid")

// Store locates the snapshot and driver list files.
type Store struct {
	Path           string
	DriverListPath string
}

// NewStore returns a Store using the default file names under root.
func NewStore(root string) Store {
	return Store{
		Path:           filepath.Join(root, DefaultPath),
		DriverListPath: filepath.Join(root, DefaultDriverListPath),
	}
}

// Load reads the previous snapshot. A missing file returns (nil, nil): the
// caller treats that as nothing having been applied yet.
func (s Store) Load() (*buildconfig.Config, error) {
	data, err := os.ReadFile(s.Path) //nolint:gosec // path is the workspace snapshot path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	cfg, err := buildconfig.Parse(data, buildconfig.FormatTOML)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, s.Path, err)
	}
	return cfg, nil
}

// Commit records cfg as the applied configuration and rewrites the driver
// list. It must only be called once every manifest write has succeeded.
func (s Store) Commit(cfg *buildconfig.Config) error {
	data, err := buildconfig.Encode(cfg, buildconfig.FormatTOML)
	if err != nil {
		return err
	}
	if err := writeAtomic(s.Path, data); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := writeAtomic(s.DriverListPath, FormatDriverList(cfg.Drivers)); err != nil {
		return fmt.Errorf("writing driver list: %w", err)
	}
	return nil
}

// FormatDriverList renders one driver name per line with no trailing newline;
// the consumer splits on "\n" and would otherwise see an empty name.
func FormatDriverList(drivers []string) []byte {
	return []byte(strings.Join(drivers, "\n"))
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil { //nolint:gosec // snapshot needs to be readable
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
