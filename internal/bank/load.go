package bank

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Kind identifies the container format of an uploaded question bank.
type Kind int

const (
	KindCSV Kind = iota
	KindXLSX
)

func (k Kind) String() string {
	if k == KindXLSX {
		return "xlsx"
	}
	return "csv"
}

// Required header fields, in canonical order. Matching is exact and
// case-sensitive.
var requiredColumns = []string{"Question", "Answer", "Chapter", "Exercise", "Language", "Difficulty"}

const (
	colLatexEquation = "LatexEquation"
	colImage         = "Image"
)

// Load parses raw bytes into a Dataset. It returns a *ParseError when the
// bytes cannot be read as the declared kind and a *ValidationError when the
// header lacks any required column. No partial dataset is ever returned.
func Load(data []byte, kind Kind) (*Dataset, error) {
	var (
		rows [][]string
		err  error
	)
	switch kind {
	case KindCSV:
		rows, err = readCSV(data)
	case KindXLSX:
		rows, err = readXLSX(data)
	default:
		return nil, fmt.Errorf("unknown bank kind %d", kind)
	}
	if err != nil {
		return nil, &ParseError{Kind: kind, Err: err}
	}
	return buildDataset(rows)
}

// KindForPath picks the bank kind from a file extension (.csv or .xlsx).
func KindForPath(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return KindCSV, nil
	case ".xlsx":
		return KindXLSX, nil
	default:
		return 0, fmt.Errorf("unsupported question bank file %q (want .csv or .xlsx)", path)
	}
}

// LoadFile reads and parses a question bank file, picking the kind from the
// file extension.
func LoadFile(path string) (*Dataset, error) {
	kind, err := KindForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return Load(data, kind)
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // ragged rows handled during mapping

	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

// buildDataset maps a header row plus data rows into a Dataset, validating
// that every required column is present.
func buildDataset(rows [][]string) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, &ValidationError{MissingColumns: requiredColumns}
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{MissingColumns: missing}
	}

	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	questions := make([]Question, 0, len(rows)-1)
	for _, row := range rows[1:] {
		questions = append(questions, Question{
			Question:      cell(row, "Question"),
			Answer:        cell(row, "Answer"),
			Chapter:       cell(row, "Chapter"),
			Exercise:      cell(row, "Exercise"),
			Language:      cell(row, "Language"),
			Difficulty:    cell(row, "Difficulty"),
			LatexEquation: cell(row, colLatexEquation),
			Image:         cell(row, colImage),
		})
	}
	return newDataset(questions), nil
}
