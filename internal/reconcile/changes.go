package reconcile

import "github.com/graph-benchmarks/graph-benchmarks/internal/buildconfig"

// Action describes what a Change does to one manifest entry.
type Action string

const (
	ActionAdd     Action = "add"
	ActionRemove  Action = "remove"
	ActionReplace Action = "replace" // removed and written again
)

// Manifest labels used in Change.
const (
	ManifestWorkspace = "workspace"
	ManifestProviders = "providers"
	ManifestDrivers   = "drivers"
)

// Change is one row of a plan, flattened for display.
type Change struct {
	Action   Action `json:"action"`
	Manifest string `json:"manifest"`
	Entry    string `json:"entry"`
	Path     string `json:"path,omitempty"`
}

// Changes flattens the plan. An entry that is both removed and added is
// reported once as a replacement, which is what the full strategy does to
// every plugin that stays active.
func (p *Plan) Changes() []Change {
	var out []Change

	added := toSet(p.Members.Add)
	removed := toSet(p.Members.Remove)
	for _, m := range p.Members.Remove {
		if !added[m] {
			out = append(out, Change{Action: ActionRemove, Manifest: ManifestWorkspace, Entry: m})
		}
	}
	for _, m := range p.Members.Add {
		action := ActionAdd
		if removed[m] {
			action = ActionReplace
		}
		out = append(out, Change{Action: action, Manifest: ManifestWorkspace, Entry: m})
	}

	for _, cat := range []buildconfig.Category{buildconfig.CategoryProviders, buildconfig.CategoryDrivers} {
		label := ManifestProviders
		if cat == buildconfig.CategoryDrivers {
			label = ManifestDrivers
		}
		delta := p.Dependencies(cat)
		removed := toSet(delta.Remove)
		added := make(map[string]bool, len(delta.Add))
		for _, d := range delta.Add {
			added[d.Name] = true
		}
		for _, name := range delta.Remove {
			if !added[name] {
				out = append(out, Change{Action: ActionRemove, Manifest: label, Entry: name})
			}
		}
		for _, d := range delta.Add {
			action := ActionAdd
			if removed[d.Name] {
				action = ActionReplace
			}
			out = append(out, Change{Action: action, Manifest: label, Entry: d.Name, Path: d.Path})
		}
	}
	return out
}

func toSet(ss []string) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s] = true
	}
	return m
}
