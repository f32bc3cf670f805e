package manifest

// ApplyToWorkspace removes every member equal to a path in remove, then appends
// each path in add that is not already a member. Removing an absent member is
// a no-op. Untouched members keep their relative order and are never
// deduplicated.
func ApplyToWorkspace(ws *Workspace, add, remove []string) {
	drop := toSet(remove)
	current := ws.Members()
	members := make([]string, 0, len(current)+len(add))
	present := make(map[string]bool, len(current)+len(add))
	for _, m := range current {
		if !drop[m] {
			members = append(members, m)
			present[m] = true
		}
	}
	for _, p := range add {
		if present[p] {
			continue
		}
		members = append(members, p)
		present[p] = true
	}
	ws.setMembers(members)
}

// ApplyToAggregator deletes the named dependencies, then writes each added
// dependency. An added name that already exists has its path overwritten and
// keeps its other fields. The ownership ledger follows the same delta: removed
// names leave it and added names join it.
func ApplyToAggregator(agg *Aggregator, add []Dependency, remove []string) {
	for _, name := range remove {
		agg.remove(name)
	}
	for _, d := range add {
		agg.set(d)
	}

	owned, _ := agg.Owned()
	drop := toSet(remove)
	ledger := make([]string, 0, len(owned)+len(add))
	seen := make(map[string]bool, len(owned)+len(add))
	for _, name := range owned {
		if drop[name] || seen[name] {
			continue
		}
		ledger = append(ledger, name)
		seen[name] = true
	}
	for _, d := range add {
		if seen[d.Name] {
			continue
		}
		ledger = append(ledger, d.Name)
		seen[d.Name] = true
	}
	agg.SetOwned(ledger)
}

func toSet(ss []string) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s] = true
	}
	return m
}
