package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/ganitguru/internal/bank"
	"github.com/abhisek/ganitguru/internal/export"
	"github.com/abhisek/ganitguru/internal/filter"
	"github.com/abhisek/ganitguru/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export progress without starting a session",
	Long: `Export writes either the durable solved-question list as progress.csv
or a PDF report of the filtered question view.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		dir, _ := cmd.Flags().GetString("dir")
		user, _ := cmd.Flags().GetString("user")

		switch format {
		case "csv":
			return exportSolvedCSV(cmd, dir, user)
		case "pdf":
			return exportReportPDF(cmd, dir, user)
		default:
			return fmt.Errorf("unknown format %q (want csv or pdf)", format)
		}
	},
}

func exportSolvedCSV(cmd *cobra.Command, dir, user string) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	solved, err := st.ProgressRepo().Solved(cmd.Context(), user)
	if err != nil {
		return err
	}
	path, err := export.ExportCSV(dir, solved)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Progress exported to", path)
	return nil
}

func exportReportPDF(cmd *cobra.Command, dir, user string) error {
	file, _ := cmd.Flags().GetString("file")
	if file == "" {
		return export.ErrNoActiveSubset
	}

	ds, err := bank.LoadFile(file)
	if err != nil {
		return err
	}

	sel := filter.Selection{}
	sel.Language, _ = cmd.Flags().GetString("language")
	sel.Chapter, _ = cmd.Flags().GetString("chapter")
	sel.Exercise, _ = cmd.Flags().GetString("exercise")
	sel.Difficulty, _ = cmd.Flags().GetString("difficulty")

	path, err := export.ExportPDF(dir, user, filter.Apply(ds, sel))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Report exported to", path)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "csv", "Export format: csv or pdf")
	exportCmd.Flags().String("dir", ".", "Directory for the export artifact")
	exportCmd.Flags().String("file", "", "Question bank file, required for pdf reports")
	exportCmd.Flags().String("language", "", "Language filter for the report")
	exportCmd.Flags().String("chapter", "", "Chapter filter for the report")
	exportCmd.Flags().String("exercise", "", "Exercise filter for the report")
	exportCmd.Flags().String("difficulty", "", "Difficulty filter for the report")
}
