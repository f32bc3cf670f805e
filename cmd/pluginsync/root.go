package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/graph-benchmarks/graph-benchmarks/internal/logging"
	"github.com/graph-benchmarks/graph-benchmarks/internal/workspace"
)

func newRootCmd() *cobra.Command {
	defaults := defaultsFromEnv()

	cmd := &cobra.Command{
		Use:           "pluginsync",
		Short:         "Keep Cargo workspace plugin members in sync with the build config",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("root", defaults.Root, "Workspace root directory")
	cmd.PersistentFlags().String("config", defaults.Config, "Build config path, relative to --root")
	cmd.PersistentFlags().String("log-level", defaults.LogLevel, "Log level: debug, info, warn, error, off")

	cmd.AddCommand(
		newSyncCmd(defaults),
		newPlanCmd(defaults),
		newStatusCmd(),
		newInitCmd(),
		newAddCmd(),
		newRemoveCmd(),
	)

	return cmd
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:   level,
		NoColor: !isTerminal(cmd.ErrOrStderr()),
	})
}

// loadContext loads the workspace selected by the persistent flags.
func loadContext(cmd *cobra.Command, requireSnapshot bool) (*workspace.Context, error) {
	root, _ := cmd.Flags().GetString("root")
	config, _ := cmd.Flags().GetString("config")
	return workspace.Load(root, workspace.Options{
		ConfigPath:      config,
		RequireSnapshot: requireSnapshot,
		Logger:          newLogger(cmd),
	})
}

// configPath resolves the build config path without loading the workspace.
func configPath(cmd *cobra.Command) string {
	root, _ := cmd.Flags().GetString("root")
	config, _ := cmd.Flags().GetString("config")
	return workspace.ResolvePaths(root, config).Config
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
