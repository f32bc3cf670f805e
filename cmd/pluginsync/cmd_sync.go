package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graph-benchmarks/graph-benchmarks/internal/reconcile"
	"github.com/graph-benchmarks/graph-benchmarks/internal/ui"
	"github.com/graph-benchmarks/graph-benchmarks/internal/workspace"
)

// syncSteps is the number of files a sync writes: three manifests, the
// snapshot, and the driver list.
const syncSteps = 5

func newSyncCmd(defaults envConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile workspace members and aggregator dependencies with the build config",
		Args:  cobra.NoArgs,
		RunE:  runSync,
	}
	cmd.Flags().String("strategy", defaults.Strategy, "Reconcile strategy: full, incremental")
	cmd.Flags().Bool("require-snapshot", false, "Fail when no snapshot of a previous run exists")
	cmd.Flags().Bool("dry-run", false, "Print the plan without writing anything")
	return cmd
}

func runSync(cmd *cobra.Command, _ []string) error {
	strategyStr, _ := cmd.Flags().GetString("strategy")
	requireSnapshot, _ := cmd.Flags().GetBool("require-snapshot")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	strategy, err := reconcile.ParseStrategy(strategyStr)
	if err != nil {
		return err
	}

	ctx, err := loadContext(cmd, requireSnapshot)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dryRun {
		plan, err := ctx.Plan(strategy)
		if err != nil {
			return err
		}
		return printPlanTable(out, plan)
	}

	return syncContext(cmd, ctx, strategy)
}

// syncContext runs a reconciliation on a loaded workspace and reports each
// written file.
func syncContext(cmd *cobra.Command, ctx *workspace.Context, strategy reconcile.Strategy) error {
	stderr := cmd.ErrOrStderr()
	progress := ui.NewProgress(stderr, syncSteps, ctx.Root).WithColor(isTerminal(stderr))

	if _, err := ctx.Sync(strategy, progress.Wrote); err != nil {
		var pw *workspace.PartialWriteError
		if errors.As(err, &pw) {
			progress.Warn("Warning: %d of 3 manifests were written; re-run sync to converge", len(pw.Written))
		}
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Sync complete (%s): %d providers, %d drivers.\n",
		strategy, len(ctx.Config.Providers), len(ctx.Config.Drivers))
	return nil
}
