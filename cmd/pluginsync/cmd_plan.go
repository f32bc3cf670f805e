package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/graph-benchmarks/graph-benchmarks/internal/reconcile"
	"github.com/graph-benchmarks/graph-benchmarks/internal/ui"
)

func newPlanCmd(defaults envConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the changes a sync would make",
		Args:  cobra.NoArgs,
		RunE:  runPlan,
	}
	cmd.Flags().String("strategy", defaults.Strategy, "Reconcile strategy: full, incremental")
	cmd.Flags().Bool("require-snapshot", false, "Fail when no snapshot of a previous run exists")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type planOutput struct {
	Strategy reconcile.Strategy `json:"strategy"`
	Changes  []reconcile.Change `json:"changes"`
}

func runPlan(cmd *cobra.Command, _ []string) error {
	strategyStr, _ := cmd.Flags().GetString("strategy")
	requireSnapshot, _ := cmd.Flags().GetBool("require-snapshot")
	asJSON, _ := cmd.Flags().GetBool("json")

	strategy, err := reconcile.ParseStrategy(strategyStr)
	if err != nil {
		return err
	}
	ctx, err := loadContext(cmd, requireSnapshot)
	if err != nil {
		return err
	}
	plan, err := ctx.Plan(strategy)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		changes := plan.Changes()
		if changes == nil {
			changes = []reconcile.Change{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(planOutput{Strategy: plan.Strategy, Changes: changes})
	}
	return printPlanTable(out, plan)
}

func printPlanTable(out io.Writer, plan *reconcile.Plan) error {
	tbl := ui.NewTable(out, "ACTION", "MANIFEST", "ENTRY", "PATH").EmptyMessage("No changes.")
	for _, c := range plan.Changes() {
		tbl.Row(c.Action, c.Manifest, c.Entry, c.Path)
	}
	return tbl.Flush()
}
