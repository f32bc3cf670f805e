package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/graph-benchmarks/graph-benchmarks/internal/buildconfig"
	"github.com/graph-benchmarks/graph-benchmarks/internal/reconcile"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <provider|driver> <name>...",
		Short: "Add plugins to the build config",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runAdd,
	}
	cmd.Flags().Bool("sync", false, "Reconcile the workspace afterwards")
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
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
	for _, name := range args[1:] {
		if slices.Contains(names, name) {
			return &buildconfig.DuplicateNameError{Category: cat, Name: name}
		}
		names = append(names, name)
	}
	cfg.SetNames(cat, names)

	if err := buildconfig.Save(path, cfg); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %d %s to %s\n", len(args)-1, cat, path)
	return maybeSync(cmd)
}

// maybeSync reconciles the workspace when --sync was given, using the
// strategy from the environment.
func maybeSync(cmd *cobra.Command) error {
	doSync, _ := cmd.Flags().GetBool("sync")
	if !doSync {
		return nil
	}
	strategy, err := reconcile.ParseStrategy(defaultsFromEnv().Strategy)
	if err != nil {
		return err
	}
	ctx, err := loadContext(cmd, false)
	if err != nil {
		return err
	}
	return syncContext(cmd, ctx, strategy)
}
