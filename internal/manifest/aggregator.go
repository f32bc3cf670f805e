package manifest

import (
	"fmt"
	"sort"
)

// LedgerTool is the package.metadata key under which the reconciler records
// the dependencies it owns.
const LedgerTool = "pluginsync"

// Dependency is one aggregator entry: a dependency name and its relative path
// locator.
type Dependency struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Aggregator is a base package manifest whose [dependencies] table re-exports
// the active plugins of one category.
type Aggregator struct {
	doc map[string]any
}

// ParseAggregator parses aggregator manifest content.
func ParseAggregator(data []byte) (*Aggregator, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, err
	}
	if _, err := table(doc, "dependencies"); err != nil {
		return nil, err
	}
	agg := &Aggregator{doc: doc}
	if _, _, err := agg.ledger(); err != nil {
		return nil, err
	}
	return agg, nil
}

// NewAggregator builds an aggregator manifest for the named package.
func NewAggregator(pkg string, deps ...Dependency) *Aggregator {
	agg := &Aggregator{doc: map[string]any{
		"package":      map[string]any{"name": pkg, "version": "0.1.0", "edition": "2021"},
		"dependencies": map[string]any{},
	}}
	for _, d := range deps {
		agg.set(d)
	}
	return agg
}

// Names returns every dependency name, sorted.
func (a *Aggregator) Names() []string {
	deps, _ := a.doc["dependencies"].(map[string]any)
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a dependency with the given name exists.
func (a *Aggregator) Has(name string) bool {
	deps, _ := a.doc["dependencies"].(map[string]any)
	_, ok := deps[name]
	return ok
}

// Path returns the path locator of a dependency. Entries given as a bare
// version string, or tables without a string path, report false.
func (a *Aggregator) Path(name string) (string, bool) {
	deps, _ := a.doc["dependencies"].(map[string]any)
	entry, ok := deps[name].(map[string]any)
	if !ok {
		return "", false
	}
	p, ok := entry["path"].(string)
	return p, ok
}

// Owned returns the names recorded in the ownership ledger and whether the
// ledger exists at all. An existing empty ledger is distinct from none.
func (a *Aggregator) Owned() ([]string, bool) {
	owned, ok, _ := a.ledger()
	return owned, ok
}

// SetOwned replaces the ownership ledger, creating it if needed.
func (a *Aggregator) SetOwned(names []string) {
	pkg := ensureTable(a.doc, "package")
	meta := ensureTable(pkg, "metadata")
	tool := ensureTable(meta, LedgerTool)
	tool["owned"] = append([]string{}, names...)
}

// Encode renders the manifest as TOML.
func (a *Aggregator) Encode() ([]byte, error) {
	return encode(a.doc)
}

func (a *Aggregator) ledger() ([]string, bool, error) {
	pkg, err := table(a.doc, "package")
	if err != nil || pkg == nil {
		return nil, false, err
	}
	meta, err := table(pkg, "metadata")
	if err != nil || meta == nil {
		return nil, false, err
	}
	tool, err := table(meta, LedgerTool)
	if err != nil || tool == nil {
		return nil, false, err
	}
	v, ok := tool["owned"]
	if !ok {
		return []string{}, true, nil
	}
	owned, err := stringList(v, fmt.Sprintf("package.metadata.%s.owned", LedgerTool))
	if err != nil {
		return nil, false, err
	}
	return owned, true, nil
}

// set writes d, keeping any extra fields an existing table entry carries.
func (a *Aggregator) set(d Dependency) {
	deps := ensureTable(a.doc, "dependencies")
	if entry, ok := deps[d.Name].(map[string]any); ok {
		entry["path"] = d.Path
		return
	}
	deps[d.Name] = map[string]any{"path": d.Path}
}

func (a *Aggregator) remove(name string) {
	deps, _ := a.doc["dependencies"].(map[string]any)
	delete(deps, name)
}
