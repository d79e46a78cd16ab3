package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zaeon-io/zaeon-core/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "zaeon-core",
	Short: "Backend service for the Zaeon learning platform",
	Long:  "Zaeon Core — agent-mediated chat, schedule and workspace API for the Zaeon learning platform.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ZAEON_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(llmCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ZAEON_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
