package buildconfig

import "slices"

// Config is the declarative build configuration: which providers and drivers
// the workspace should carry. Order is significant and names are unique within
// each list.
type Config struct {
	Providers []string `toml:"providers" yaml:"providers"`
	Drivers   []string `toml:"drivers" yaml:"drivers"`
}

// Category names one of the two plugin lists.
type Category string

const (
	CategoryProviders Category = "providers"
	CategoryDrivers   Category = "drivers"
)

// ParseCategory accepts the singular or plural category name.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "provider", "providers":
		return CategoryProviders, nil
	case "driver", "drivers":
		return CategoryDrivers, nil
	default:
		return "", &CategoryError{Value: s}
	}
}

// Names returns the list for the given category.
func (c *Config) Names(cat Category) []string {
	if c == nil {
		return nil
	}
	if cat == CategoryDrivers {
		return c.Drivers
	}
	return c.Providers
}

// SetNames replaces the list for the given category.
func (c *Config) SetNames(cat Category, names []string) {
	if cat == CategoryDrivers {
		c.Drivers = names
		return
	}
	c.Providers = names
}

// Clone returns a deep copy. A nil config clones to an empty one.
func (c *Config) Clone() *Config {
	if c == nil {
		return &Config{Providers: []string{}, Drivers: []string{}}
	}
	return &Config{
		Providers: append([]string{}, c.Providers...),
		Drivers:   append([]string{}, c.Drivers...),
	}
}

// Equal reports whether both configs list the same names in the same order.
// A nil config equals an empty one.
func (c *Config) Equal(other *Config) bool {
	return slices.Equal(c.Names(CategoryProviders), other.Names(CategoryProviders)) &&
		slices.Equal(c.Names(CategoryDrivers), other.Names(CategoryDrivers))
}
