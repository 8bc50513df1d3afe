package bank

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

const sampleCSV = `Question,Answer,Chapter,Exercise,Language,Difficulty,LatexEquation,Image
What is 2+2?,4,1,1.1,English,Easy,2+2=x,
What is 3*3?,9,1,1.2,English,Medium,,fig1.png
दो और दो कितने?,4,1,1.1,Hindi,Easy,,
`

func TestLoadCSV(t *testing.T) {
	ds, err := Load([]byte(sampleCSV), KindCSV)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ds.Len() != 3 {
		t.Fatalf("len = %d, want 3", ds.Len())
	}

	q := ds.Question(0)
	if q.Question != "What is 2+2?" || q.Answer != "4" {
		t.Errorf("row 0 = %+v", q)
	}
	if !q.HasEquation() {
		t.Error("row 0 should have an equation")
	}
	if q.HasImage() {
		t.Error("row 0 should not have an image")
	}
	if !ds.Question(1).HasImage() {
		t.Error("row 1 should have an image")
	}
}

func TestLoadCSVDistinctValues(t *testing.T) {
	ds, err := Load([]byte(sampleCSV), KindCSV)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"languages", ds.Languages(), []string{"English", "Hindi"}},
		{"chapters", ds.Chapters(), []string{"1"}},
		{"exercises", ds.Exercises(), []string{"1.1", "1.2"}},
		{"difficulties", ds.Difficulties(), []string{"Easy", "Medium"}},
	}
	for _, tt := range tests {
		if len(tt.got) != len(tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			continue
		}
		for i := range tt.want {
			if tt.got[i] != tt.want[i] {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
				break
			}
		}
	}
}

func TestLoadMissingColumns(t *testing.T) {
	// "Answer" and "Difficulty" absent.
	csv := "Question,Chapter,Exercise,Language\nq,1,1.1,English\n"
	_, err := Load([]byte(csv), KindCSV)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	want := []string{"Answer", "Difficulty"}
	if len(verr.MissingColumns) != len(want) {
		t.Fatalf("missing = %v, want %v", verr.MissingColumns, want)
	}
	for i := range want {
		if verr.MissingColumns[i] != want[i] {
			t.Fatalf("missing = %v, want %v", verr.MissingColumns, want)
		}
	}
}

func TestLoadCorruptCSV(t *testing.T) {
	// Unclosed quote inside a record.
	_, err := Load([]byte("Question,Answer\n\"broken,4\nextra,5\n"), KindCSV)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Kind != KindCSV {
		t.Errorf("kind = %v, want csv", perr.Kind)
	}
}

func TestLoadCorruptXLSX(t *testing.T) {
	_, err := Load([]byte("this is not a zip archive"), KindXLSX)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]any{
		{"Question", "Answer", "Chapter", "Exercise", "Language", "Difficulty"},
		{"What is 5-3?", "2", "2", "2.1", "English", "Easy"},
		{"What is 7+1?", "8", "2", "2.2", "English", "Hard"},
	}
	sheet := f.GetSheetList()[0]
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	ds, err := Load(buf.Bytes(), KindXLSX)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("len = %d, want 2", ds.Len())
	}
	if got := ds.Question(1).Answer; got != "8" {
		t.Errorf("row 1 answer = %q, want 8", got)
	}
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	if _, err := LoadFile("bank.txt"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestLoadEmptyBytes(t *testing.T) {
	_, err := Load(nil, KindCSV)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError listing all columns", err)
	}
	if len(verr.MissingColumns) != 6 {
		t.Errorf("missing = %v, want all 6 required columns", verr.MissingColumns)
	}
}
