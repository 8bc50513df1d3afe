// Package export renders the session's progress to portable artifacts: a
// CSV of solved row indices and a PDF report of the filtered view. Both are
// read-only over session state.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/abhisek/ganitguru/internal/filter"
)

// ErrNoActiveSubset is returned when a report export is requested before a
// question bank has been loaded and filtered. An empty active subset is not
// an error; having none at all is.
var ErrNoActiveSubset = errors.New("no active subset: load a question bank and apply filters first")

// CSVFileName is the fixed name of the solved-progress CSV artifact.
const CSVFileName = "progress.csv"

// csvHeader matches the single-column layout of the exported file.
const csvHeader = "Solved Questions"

// WriteCSV serializes the solved row indices as a single-column CSV table.
func WriteCSV(w io.Writer, solved []int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{csvHeader}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, idx := range solved {
		if err := cw.Write([]string{strconv.Itoa(idx)}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes progress.csv under dir, overwriting any prior export of
// the same name, and returns the written path.
func ExportCSV(dir string, solved []int) (string, error) {
	path := filepath.Join(dir, CSVFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", CSVFileName, err)
	}
	defer f.Close()

	if err := WriteCSV(f, solved); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", CSVFileName, err)
	}
	return path, nil
}

// ReportFileName returns the per-user PDF report filename.
func ReportFileName(user string) string {
	return user + "_progress.pdf"
}

// ExportPDF renders the current active subset as a one-page report: a
// centered "User Progress Report" title, then one block per record with its
// 1-based display position, question text, and answer text. Solved state
// does not matter: the report is the filtered view, not the solved set.
// An empty subset produces a title-only report.
func ExportPDF(dir, user string, subset []filter.Match) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(200, 10, "User Progress Report", "", 1, "C", false, 0, "")

	for i, m := range subset {
		block := fmt.Sprintf("Q%d: %s\nAnswer: %s", i+1, m.Question.Question, m.Question.Answer)
		pdf.MultiCell(0, 10, block, "", "L", false)
	}

	path := filepath.Join(dir, ReportFileName(user))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf report: %w", err)
	}
	return path, nil
}
