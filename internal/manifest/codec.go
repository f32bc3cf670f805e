package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

var (
	// ErrNotFound is returned when a required manifest file does not exist.
	ErrNotFound = errors.New("manifest not found")
	// ErrParse is returned when a manifest is not valid TOML or lacks the
	// structure the reconciler relies on.
	ErrParse = errors.New("manifest invalid")
)

// LoadWorkspace reads and parses a workspace manifest.
func LoadWorkspace(path string) (*Workspace, error) {
	data, err := readManifest(path)
	if err != nil {
		return nil, err
	}
	ws, err := ParseWorkspace(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ws, nil
}

// LoadAggregator reads and parses an aggregator manifest.
func LoadAggregator(path string) (*Aggregator, error) {
	data, err := readManifest(path)
	if err != nil {
		return nil, err
	}
	agg, err := ParseAggregator(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return agg, nil
}

func readManifest(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a workspace manifest path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return data, nil
}

func decode(data []byte) (map[string]any, error) {
	doc := make(map[string]any)
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return doc, nil
}

func encode(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// table returns doc[key] as a table. A missing key yields (nil, nil); a key
// holding anything other than a table is an error.
func table(doc map[string]any, key string) (map[string]any, error) {
	v, ok := doc[key]
	if !ok {
		return nil, nil
	}
	t, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a table", ErrParse, key)
	}
	return t, nil
}

// ensureTable returns doc[key] as a table, creating it when missing. Callers
// only use it on documents that passed parsing, so a non-table value is
// replaced.
func ensureTable(doc map[string]any, key string) map[string]any {
	if t, ok := doc[key].(map[string]any); ok {
		return t
	}
	t := make(map[string]any)
	doc[key] = t
	return t
}

// stringList converts a decoded TOML array to strings.
func stringList(v any, label string) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return append([]string{}, list...), nil
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] must be a string", ErrParse, label, i)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be an array of strings", ErrParse, label)
	}
}
