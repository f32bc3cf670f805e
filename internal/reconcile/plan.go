package reconcile

import (
	"fmt"

	"github.com/graph-benchmarks/graph-benchmarks/internal/buildconfig"
	"github.com/graph-benchmarks/graph-benchmarks/internal/manifest"
)

// State is the set of loaded manifests a Plan is computed from and applied to.
type State struct {
	Workspace *manifest.Workspace
	Providers *manifest.Aggregator
	Drivers   *manifest.Aggregator
}

// Aggregator returns the aggregator manifest for a category.
func (s State) Aggregator(cat buildconfig.Category) *manifest.Aggregator {
	if cat == buildconfig.CategoryDrivers {
		return s.Drivers
	}
	return s.Providers
}

// MemberDelta lists workspace member paths to remove and to append.
type MemberDelta struct {
	Add    []string `json:"add"`
	Remove []string `json:"remove"`
}

// DependencyDelta lists aggregator entries to remove and to write.
type DependencyDelta struct {
	Add    []manifest.Dependency `json:"add"`
	Remove []string              `json:"remove"`
}

// Plan is the full set of edits for one reconciliation run.
type Plan struct {
	Strategy  Strategy            `json:"strategy"`
	Desired   *buildconfig.Config `json:"desired"`
	Members   MemberDelta         `json:"members"`
	Providers DependencyDelta     `json:"providers"`
	Drivers   DependencyDelta     `json:"drivers"`
}

// Dependencies returns the aggregator delta for a category.
func (p *Plan) Dependencies(cat buildconfig.Category) DependencyDelta {
	if cat == buildconfig.CategoryDrivers {
		return p.Drivers
	}
	return p.Providers
}

// Empty reports whether the plan would not touch any manifest.
func (p *Plan) Empty() bool {
	return len(p.Members.Add) == 0 && len(p.Members.Remove) == 0 &&
		len(p.Providers.Add) == 0 && len(p.Providers.Remove) == 0 &&
		len(p.Drivers.Add) == 0 && len(p.Drivers.Remove) == 0
}

// Compute builds the plan that moves st to desired. previous is the last
// applied configuration; it is only consulted by StrategyIncremental, and nil
// means nothing was active.
func Compute(strategy Strategy, desired, previous *buildconfig.Config, st State) (*Plan, error) {
	if err := buildconfig.Validate(desired); err != nil {
		return nil, err
	}
	plan := &Plan{Strategy: strategy, Desired: desired.Clone()}
	switch strategy {
	case StrategyFull:
		computeFull(plan, st)
	case StrategyIncremental:
		computeIncremental(plan, previous)
	default:
		return nil, fmt.Errorf("unknown strategy: %q", strategy)
	}
	return plan, nil
}

func computeFull(plan *Plan, st State) {
	plan.Members.Remove = PluginMembers(st.Workspace)
	plan.Providers.Remove = OwnedDependencies(st.Providers)
	plan.Drivers.Remove = OwnedDependencies(st.Drivers)
	addAll(plan, plan.Desired.Providers, plan.Desired.Drivers)
}

func computeIncremental(plan *Plan, previous *buildconfig.Config) {
	for _, cat := range []buildconfig.Category{buildconfig.CategoryProviders, buildconfig.CategoryDrivers} {
		for _, name := range difference(previous.Names(cat), plan.Desired.Names(cat)) {
			plan.Members.Remove = append(plan.Members.Remove, MemberPath(cat, name))
			delta := plan.dependencies(cat)
			delta.Remove = append(delta.Remove, DependencyFor(cat, name).Name)
		}
	}
	addAll(plan,
		difference(plan.Desired.Providers, previous.Names(buildconfig.CategoryProviders)),
		difference(plan.Desired.Drivers, previous.Names(buildconfig.CategoryDrivers)),
	)
}

// addAll appends additions in configuration order, providers first.
func addAll(plan *Plan, providers, drivers []string) {
	for _, name := range providers {
		plan.Members.Add = append(plan.Members.Add, MemberPath(buildconfig.CategoryProviders, name))
		plan.Providers.Add = append(plan.Providers.Add, DependencyFor(buildconfig.CategoryProviders, name))
	}
	for _, name := range drivers {
		plan.Members.Add = append(plan.Members.Add, MemberPath(buildconfig.CategoryDrivers, name))
		plan.Drivers.Add = append(plan.Drivers.Add, DependencyFor(buildconfig.CategoryDrivers, name))
	}
}

func (p *Plan) dependencies(cat buildconfig.Category) *DependencyDelta {
	if cat == buildconfig.CategoryDrivers {
		return &p.Drivers
	}
	return &p.Providers
}

// Apply patches the manifests in st according to plan. Aggregators without an
// ownership ledger get one seeded from the legacy classification first, so
// entries the plan leaves alone stay recognised as plugin-owned.
func Apply(plan *Plan, st State) {
	manifest.ApplyToWorkspace(st.Workspace, plan.Members.Add, plan.Members.Remove)
	for _, cat := range []buildconfig.Category{buildconfig.CategoryProviders, buildconfig.CategoryDrivers} {
		agg := st.Aggregator(cat)
		if _, ok := agg.Owned(); !ok {
			agg.SetOwned(legacyOwned(agg))
		}
		delta := plan.Dependencies(cat)
		manifest.ApplyToAggregator(agg, delta.Add, delta.Remove)
	}
}

// difference returns the elements of a not in b, in the order of a.
func difference(a, b []string) []string {
	exclude := make(map[string]bool, len(b))
	for _, s := range b {
		exclude[s] = true
	}
	var out []string
	for _, s := range a {
		if !exclude[s] {
			out = append(out, s)
		}
	}
	return out
}
