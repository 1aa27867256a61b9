package cmd

import (
	"github.com/learnloop/learnloop/internal/memory"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "learnloop",
	Short: "Adaptive learning path agent",
	Long:  "Learnloop — assesses what a learner already knows and builds a video-backed learning path toward their goal.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNLOOP_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEARNLOOP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, memory.EnsureDir(p)
	}
	return memory.DefaultDBPath()
}
