package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/ganitguru/internal/app"
	"github.com/abhisek/ganitguru/internal/bank"
	"github.com/abhisek/ganitguru/internal/session"
	"github.com/abhisek/ganitguru/internal/store"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start an interactive practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		file, _ := cmd.Flags().GetString("file")
		exportDir, _ := cmd.Flags().GetString("export-dir")
		user, _ := cmd.Flags().GetString("user")

		kind, err := bank.KindForPath(file)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read question bank: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		state := session.NewState(user, st.ProgressRepo())
		state.ExportDir = exportDir
		if err := session.HandleEvent(ctx, state, session.LoadDatasetEvent{Data: data, Kind: kind}); err != nil {
			return err
		}

		return app.Run(state)
	},
}

func init() {
	practiceCmd.Flags().String("file", "", "Question bank file (.csv or .xlsx)")
	practiceCmd.Flags().String("export-dir", "", "Directory for export artifacts (default: current directory)")
	practiceCmd.MarkFlagRequired("file")
}
