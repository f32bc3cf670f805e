package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/graph-benchmarks/graph-benchmarks/internal/buildconfig"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the build config interactively or from flags",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
	cmd.Flags().StringSlice("providers", nil, "Active providers")
	cmd.Flags().StringSlice("drivers", nil, "Active drivers")
	cmd.Flags().Bool("force", false, "Overwrite an existing build config")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	providers, _ := cmd.Flags().GetStringSlice("providers")
	drivers, _ := cmd.Flags().GetStringSlice("drivers")
	force, _ := cmd.Flags().GetBool("force")

	path := configPath(cmd)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("build config %s already exists (use --force to overwrite)", path)
	}

	// Build the config before touching the filesystem so an aborted prompt
	// leaves nothing behind.
	var cfg *buildconfig.Config
	flagsSet := cmd.Flags().Changed("providers") || cmd.Flags().Changed("drivers")
	switch {
	case flagsSet:
		cfg = &buildconfig.Config{Providers: providers, Drivers: drivers}
	case term.IsTerminal(int(os.Stdin.Fd())):
		var err error
		cfg, err = interactiveConfig()
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
	default:
		cfg = &buildconfig.Config{}
	}

	if err := buildconfig.Save(path, cfg); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Build config written to %s\n", path)
	return nil
}
