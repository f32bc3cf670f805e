package buildconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the document encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFor picks the format from the file extension; anything that is not
// .yaml or .yml is TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Validate checks the configuration for invalid or duplicate names.
func Validate(cfg *Config) error { return validate(cfg) }

// Load reads and validates a build configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the configured build config
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading build config: %w", err)
	}
	cfg, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates build configuration content.
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: parsing YAML: %w", ErrParse, err)
		}
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("%w: parsing TOML: %w", ErrParse, err)
		}
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return normalize(&cfg), nil
}

// Encode renders the configuration in the given format.
func Encode(cfg *Config, format Format) ([]byte, error) {
	cfg = normalize(cfg)
	if format == FormatYAML {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshaling build config: %w", err)
		}
		return data, nil
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("marshaling build config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save validates and writes a build configuration to disk.
func Save(path string, cfg *Config) error {
	if err := validate(cfg); err != nil {
		return err
	}
	data, err := Encode(cfg, FormatFor(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // build config needs to be readable
		return fmt.Errorf("writing build config: %w", err)
	}
	return nil
}

// normalize returns a copy with nil lists replaced by empty ones so encoded
// documents always carry both keys.
func normalize(cfg *Config) *Config {
	return cfg.Clone()
}

func validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: empty document", ErrParse)
	}
	for _, cat := range []Category{CategoryProviders, CategoryDrivers} {
		seen := make(map[string]bool)
		for i, name := range cfg.Names(cat) {
			if err := validateName(name); err != nil {
				return fmt.Errorf("%w: %s[%d]: %w", ErrParse, cat, i, err)
			}
			if seen[name] {
				return &DuplicateNameError{Category: cat, Name: name}
			}
			seen[name] = true
		}
	}
	return nil
}

// validateName ensures a name can be used verbatim as a single path segment.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid name %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("name must be a single path segment: %q", name)
	}
	return nil
}
