package reconcile

import (
	"regexp"
	"strings"

	"github.com/graph-benchmarks/graph-benchmarks/internal/buildconfig"
	"github.com/graph-benchmarks/graph-benchmarks/internal/manifest"
)

// Fixed base members. They live under the plugin directories but are never
// plugin-owned.
const (
	BaseProvider = "providers/base-provider"
	BaseDriver   = "drivers/base-driver"
)

// legacyOwnedPath matches a locator into a sibling plugin directory ("../pg")
// but not one that climbs further ("../../common").
var legacyOwnedPath = regexp.MustCompile(`^\.\./\w`)

// MemberPath returns the workspace member path for a plugin.
func MemberPath(cat buildconfig.Category, name string) string {
	if cat == buildconfig.CategoryDrivers {
		return "drivers/" + name + "/" + name + "-config"
	}
	return "providers/" + name
}

// DependencyFor returns the aggregator entry for a plugin.
func DependencyFor(cat buildconfig.Category, name string) manifest.Dependency {
	if cat == buildconfig.CategoryDrivers {
		return manifest.Dependency{Name: name + "-config", Path: "../" + name + "/" + name + "-config"}
	}
	return manifest.Dependency{Name: name, Path: "../" + name}
}

// IsPluginMember reports whether a workspace member is plugin-owned.
func IsPluginMember(path string) bool {
	if path == BaseProvider || path == BaseDriver {
		return false
	}
	return strings.HasPrefix(path, "providers/") || strings.HasPrefix(path, "drivers/")
}

// PluginMembers returns the plugin-owned members in document order. The result
// is a fresh slice, independent of the manifest it was read from.
func PluginMembers(ws *manifest.Workspace) []string {
	var owned []string
	for _, m := range ws.Members() {
		if IsPluginMember(m) {
			owned = append(owned, m)
		}
	}
	return owned
}

// OwnedDependencies returns the names of the plugin-owned aggregator entries.
// The ownership ledger is authoritative when present; manifests that predate
// it fall back to classifying entries by locator shape.
func OwnedDependencies(agg *manifest.Aggregator) []string {
	if owned, ok := agg.Owned(); ok {
		return owned
	}
	return legacyOwned(agg)
}

func legacyOwned(agg *manifest.Aggregator) []string {
	owned := []string{}
	for _, name := range agg.Names() {
		if p, ok := agg.Path(name); ok && legacyOwnedPath.MatchString(p) {
			owned = append(owned, name)
		}
	}
	return owned
}
