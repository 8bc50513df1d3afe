package filter

import (
	"testing"

	"github.com/abhisek/ganitguru/internal/bank"
)

const testCSV = `Question,Answer,Chapter,Exercise,Language,Difficulty
q0,a0,1,1.1,English,Easy
q1,a1,1,1.1,Hindi,Easy
q2,a2,1,1.2,English,Easy
q3,a3,1,1.1,English,Hard
q4,a4,1,1.1,English,Easy
`

func loadTestBank(t *testing.T) *bank.Dataset {
	t.Helper()
	ds, err := bank.Load([]byte(testCSV), bank.KindCSV)
	if err != nil {
		t.Fatalf("load test bank: %v", err)
	}
	return ds
}

func TestApplyMatchesAllFourFields(t *testing.T) {
	ds := loadTestBank(t)
	sel := Selection{Language: "English", Chapter: "1", Exercise: "1.1", Difficulty: "Easy"}

	got := Apply(ds, sel)

	// Soundness: every match satisfies all four constraints.
	for _, m := range got {
		q := m.Question
		if q.Language != sel.Language || q.Chapter != sel.Chapter ||
			q.Exercise != sel.Exercise || q.Difficulty != sel.Difficulty {
			t.Errorf("row %d = %+v does not satisfy %+v", m.RowIndex, q, sel)
		}
	}

	// Completeness and order: rows 0 and 4, original order, original indices.
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
	if got[0].RowIndex != 0 || got[1].RowIndex != 4 {
		t.Errorf("indices = [%d %d], want [0 4]", got[0].RowIndex, got[1].RowIndex)
	}
	if got[0].Question.Question != "q0" || got[1].Question.Question != "q4" {
		t.Errorf("questions out of order: %q, %q", got[0].Question.Question, got[1].Question.Question)
	}
}

func TestApplyCaseSensitive(t *testing.T) {
	ds := loadTestBank(t)
	sel := Selection{Language: "english", Chapter: "1", Exercise: "1.1", Difficulty: "Easy"}

	if got := Apply(ds, sel); len(got) != 0 {
		t.Errorf("lowercased language matched %d rows, want 0", len(got))
	}
}

func TestApplyNoMatchesIsNotAnError(t *testing.T) {
	ds := loadTestBank(t)
	sel := Selection{Language: "French", Chapter: "9", Exercise: "9.9", Difficulty: "Hard"}

	if got := Apply(ds, sel); len(got) != 0 {
		t.Errorf("got %d matches, want 0", len(got))
	}
}

func TestApplyNilDataset(t *testing.T) {
	if got := Apply(nil, Selection{Language: "English"}); got != nil {
		t.Errorf("nil dataset produced %v, want empty subset", got)
	}
}

func TestApplyZeroSelection(t *testing.T) {
	ds := loadTestBank(t)
	// No row has all-empty fields, so a cleared selection yields no matches.
	if got := Apply(ds, Selection{}); len(got) != 0 {
		t.Errorf("zero selection matched %d rows, want 0", len(got))
	}
}

func TestSelectionIsZero(t *testing.T) {
	if !(Selection{}).IsZero() {
		t.Error("empty selection should be zero")
	}
	if (Selection{Language: "English"}).IsZero() {
		t.Error("non-empty selection should not be zero")
	}
}
