package buildconfig

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestParse_validTOML(t *testing.T) {
	data := []byte(`
providers = ["pg", "vagrant"]
drivers = ["neo4j"]
`)
	cfg, err := Parse(data, FormatTOML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(cfg.Providers, []string{"pg", "vagrant"}) {
		t.Errorf("providers = %v", cfg.Providers)
	}
	if !slices.Equal(cfg.Drivers, []string{"neo4j"}) {
		t.Errorf("drivers = %v", cfg.Drivers)
	}
}

func TestParse_validYAML(t *testing.T) {
	data := []byte(`
providers: [terraform]
drivers:
  - graphscope
  - neo4j
`)
	cfg, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(cfg.Drivers, []string{"graphscope", "neo4j"}) {
		t.Errorf("drivers = %v", cfg.Drivers)
	}
}

func TestParse_missingKeysAreEmpty(t *testing.T) {
	cfg, err := Parse([]byte(`providers = ["pg"]`), FormatTOML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Drivers == nil || len(cfg.Drivers) != 0 {
		t.Errorf("drivers = %#v, want empty non-nil slice", cfg.Drivers)
	}
}

func TestParse_duplicateName(t *testing.T) {
	_, err := Parse([]byte(`providers = ["pg", "pg"]`), FormatTOML)
	var dup *DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateNameError, got %v", err)
	}
	if dup.Category != CategoryProviders || dup.Name != "pg" {
		t.Errorf("dup = %+v", dup)
	}
}

func TestParse_sameNameAcrossCategories(t *testing.T) {
	if _, err := Parse([]byte("providers = [\"x\"]\ndrivers = [\"x\"]\n"), FormatTOML); err != nil {
		t.Fatalf("a name may appear once per category: %v", err)
	}
}

func TestParse_invalid(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"not a list", `providers = "pg"`},
		{"syntax", `providers = [`},
		{"empty name", `providers = [""]`},
		{"separator", `drivers = ["neo4j/x"]`},
		{"dotdot", `drivers = [".."]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml), FormatTOML)
			if !errors.Is(err, ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestLoad_notFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "build.config.toml"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	for _, name := range []string{"build.config.toml", "build.config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			cfg := &Config{Providers: []string{"pg"}, Drivers: []string{"neo4j", "arango"}}
			if err := Save(path, cfg); err != nil {
				t.Fatalf("save: %v", err)
			}
			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !loaded.Equal(cfg) {
				t.Errorf("loaded = %+v, want %+v", loaded, cfg)
			}
		})
	}
}

func TestSave_rejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.config.toml")
	err := Save(path, &Config{Drivers: []string{"neo4j", "neo4j"}})
	var dup *DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateNameError, got %v", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("file should not be written when validation fails")
	}
}

func TestEncode_emptyListsPresent(t *testing.T) {
	data, err := Encode(&Config{}, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Parse(data, FormatTOML)
	if err != nil {
		t.Fatalf("re-parse: %v\n%s", err, data)
	}
	if len(cfg.Providers) != 0 || len(cfg.Drivers) != 0 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		err   bool
	}{
		{"provider", CategoryProviders, false},
		{"providers", CategoryProviders, false},
		{"driver", CategoryDrivers, false},
		{"drivers", CategoryDrivers, false},
		{"plugin", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfig_nilSafe(t *testing.T) {
	var cfg *Config
	if len(cfg.Names(CategoryDrivers)) != 0 {
		t.Error("nil config should have no names")
	}
	if !cfg.Equal(&Config{}) {
		t.Error("nil config should equal an empty one")
	}
	clone := cfg.Clone()
	if clone == nil || clone.Providers == nil {
		t.Error("clone of nil should be an empty config")
	}
}
