package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/graph-benchmarks/graph-benchmarks/internal/buildconfig"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <provider|driver> <name>...",
		Aliases: []string{"rm"},
		Short:   "Remove plugins from the build config",
		Args:    cobra.MinimumNArgs(2),
		RunE:    runRemove,
	}
	cmd.Flags().Bool("sync", false, "Reconcile the workspace afterwards")
	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	cat, err := buildconfig.ParseCategory(args[0])
	if err != nil {
		return err
	}
	path := configPath(cmd)
	cfg, err := buildconfig.Load(path)
	if err != nil {
		return err
	}

	names := cfg.Names(cat)
	removed := 0
	for _, name := range args[1:] {
		i := slices.Index(names, name)
		if i < 0 {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s %q is not in the build config\n", cat, name)
			continue
		}
		names = slices.Delete(names, i, i+1)
		removed++
	}
	cfg.SetNames(cat, names)

	if removed > 0 {
		if err := buildconfig.Save(path, cfg); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d %s from %s\n", removed, cat, path)
	return maybeSync(cmd)
}
