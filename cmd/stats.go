package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/ganitguru/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show durable progress per user",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo := st.ProgressRepo()
		counts, err := repo.CountByUser(cmd.Context())
		if err != nil {
			return err
		}
		if len(counts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No progress recorded yet.")
			return nil
		}

		users := make([]string, 0, len(counts))
		for u := range counts {
			users = append(users, u)
		}
		sort.Strings(users)

		out := cmd.OutOrStdout()
		for _, u := range users {
			solved, err := repo.Solved(cmd.Context(), u)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\t%d distinct solved\t%d log entries\n", u, len(solved), counts[u])
		}
		return nil
	},
}
