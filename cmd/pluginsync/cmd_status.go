package main

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graph-benchmarks/graph-benchmarks/internal/buildconfig"
	"github.com/graph-benchmarks/graph-benchmarks/internal/reconcile"
	"github.com/graph-benchmarks/graph-benchmarks/internal/ui"
	"github.com/graph-benchmarks/graph-benchmarks/internal/workspace"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show drift between the build config, the snapshot, and the manifests",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type pluginStatus struct {
	Category   buildconfig.Category `json:"category"`
	Name       string               `json:"name"`
	Configured bool                 `json:"configured"`
	Snapshot   bool                 `json:"snapshot"`
	Member     bool                 `json:"member"`
	Dependency bool                 `json:"dependency"`
	State      string               `json:"state"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, err := loadContext(cmd, false)
	if err != nil {
		return err
	}

	statuses := collectStatus(ctx)
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	tbl := ui.NewTable(out, "CATEGORY", "NAME", "CONFIG", "SNAPSHOT", "MEMBER", "DEPENDENCY", "STATE").
		EmptyMessage("No plugins configured.")
	for _, s := range statuses {
		tbl.Row(s.Category, s.Name, s.Configured, s.Snapshot, s.Member, s.Dependency, s.State)
	}
	return tbl.Flush()
}

// collectStatus lists every plugin named by the config, the snapshot, or an
// aggregator's owned entries, in that order of first appearance.
func collectStatus(ctx *workspace.Context) []pluginStatus {
	statuses := []pluginStatus{}
	for _, cat := range []buildconfig.Category{buildconfig.CategoryProviders, buildconfig.CategoryDrivers} {
		configured := ctx.Config.Names(cat)
		snapshotted := ctx.Previous.Names(cat)
		agg := ctx.State().Aggregator(cat)

		names := slices.Clone(configured)
		names = appendMissing(names, snapshotted...)
		for _, dep := range reconcile.OwnedDependencies(agg) {
			names = appendMissing(names, pluginName(cat, dep))
		}

		for _, name := range names {
			s := pluginStatus{
				Category:   cat,
				Name:       name,
				Configured: slices.Contains(configured, name),
				Snapshot:   slices.Contains(snapshotted, name),
				Member:     ctx.Workspace.HasMember(reconcile.MemberPath(cat, name)),
				Dependency: agg.Has(reconcile.DependencyFor(cat, name).Name),
			}
			s.State = driftState(s)
			statuses = append(statuses, s)
		}
	}
	return statuses
}

func driftState(s pluginStatus) string {
	present := s.Member && s.Dependency
	switch {
	case s.Configured && present:
		return "ok"
	case s.Configured:
		return "pending"
	case s.Member || s.Dependency:
		return "stale"
	default:
		return "removed"
	}
}

// pluginName maps an aggregator dependency name back to its plugin name.
func pluginName(cat buildconfig.Category, dep string) string {
	if cat == buildconfig.CategoryDrivers {
		if name, ok := strings.CutSuffix(dep, "-config"); ok && name != "" {
			return name
		}
	}
	return dep
}

func appendMissing(list []string, names ...string) []string {
	for _, n := range names {
		if !slices.Contains(list, n) {
			list = append(list, n)
		}
	}
	return list
}
