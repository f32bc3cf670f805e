package buildconfig

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the configuration file does not exist.
	ErrNotFound = errors.New("build config not found")
	// ErrParse is returned when the configuration is structurally invalid.
	ErrParse = errors.New("build config invalid")
)

// DuplicateNameError reports a plugin name listed twice in one category.
type DuplicateNameError struct {
	Category Category
	Name     string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("build config: duplicate %s name %q", e.Category, e.Name)
}

// CategoryError reports an unknown plugin category.
type CategoryError struct {
	Value string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("unknown plugin category %q (must be provider or driver)", e.Value)
}
