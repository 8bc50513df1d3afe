package cmd

import (
	"github.com/abhisek/ganitguru/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ganitguru",
	Short: "Interactive math question practice",
	Long:  "Ganit Guru — a terminal platform for solving math questions interactively from an uploaded question bank.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GANITGURU_DB env var)")
	rootCmd.PersistentFlags().String("user", "user1", "User identity recorded with solved questions")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then GANITGURU_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
