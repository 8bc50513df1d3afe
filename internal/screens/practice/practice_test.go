package practice

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ganitguru/internal/bank"
	"github.com/abhisek/ganitguru/internal/session"
)

const testCSV = `Question,Answer,Chapter,Exercise,Language,Difficulty
What is 2+2?,4,1,1.1,English,Easy
What is 3+3?,6,1,1.1,English,Easy
`

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestScreen(t *testing.T) Model {
	t.Helper()
	st := session.NewState("u1", nil)
	st.ExportDir = t.TempDir()
	err := session.HandleEvent(context.Background(), st, session.LoadDatasetEvent{
		Data: []byte(testCSV),
		Kind: bank.KindCSV,
	})
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	return New(st)
}

// selectFirst walks one picker phase by accepting its first choice.
func selectFirst(scr Model) Model {
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	return scr
}

func TestFilterFlowReachesQuestionPhase(t *testing.T) {
	scr := newTestScreen(t)
	if scr.phase != phasePickLanguage {
		t.Fatalf("initial phase = %v, want language picker", scr.phase)
	}

	for _, want := range []phase{phasePickChapter, phasePickExercise, phasePickDifficulty, phaseQuestion} {
		scr = selectFirst(scr)
		if scr.phase != want {
			t.Fatalf("phase = %v, want %v", scr.phase, want)
		}
	}

	if scr.vm.TotalCount != 2 {
		t.Errorf("total = %d, want 2", scr.vm.TotalCount)
	}
	if len(scr.vm.Pending) != 2 {
		t.Errorf("pending = %d, want 2", len(scr.vm.Pending))
	}
}

func TestCorrectAnswerAdvances(t *testing.T) {
	scr := newTestScreen(t)
	for i := 0; i < 4; i++ {
		scr = selectFirst(scr)
	}

	scr, _ = scr.Update(keyPress('4'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	if scr.vm.SolvedCount != 1 {
		t.Fatalf("solved = %d, want 1", scr.vm.SolvedCount)
	}
	if len(scr.vm.Pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(scr.vm.Pending))
	}
	if scr.vm.Pending[0].RowIndex != 1 {
		t.Errorf("next pending row = %d, want 1", scr.vm.Pending[0].RowIndex)
	}
}

func TestEmptyAnswerIsPromptedNotWrong(t *testing.T) {
	scr := newTestScreen(t)
	for i := 0; i < 4; i++ {
		scr = selectFirst(scr)
	}

	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	if scr.vm.SolvedCount != 0 {
		t.Errorf("solved = %d, want 0", scr.vm.SolvedCount)
	}
	if scr.status != "Answer cannot be empty." {
		t.Errorf("status = %q, want empty-answer prompt", scr.status)
	}
}

func TestTimerBlocksSubmission(t *testing.T) {
	scr := newTestScreen(t)
	for i := 0; i < 4; i++ {
		scr = selectFirst(scr)
	}
	scr.timerLeft = 5

	scr, _ = scr.Update(keyPress('4'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	if scr.vm.SolvedCount != 0 {
		t.Errorf("solved = %d while timer running, want 0", scr.vm.SolvedCount)
	}
}

func TestTimerCountsDown(t *testing.T) {
	scr := newTestScreen(t)
	scr.timerLeft = 2

	scr, cmd := scr.Update(tickMsg(time.Now()))
	if scr.timerLeft != 1 {
		t.Fatalf("timerLeft = %d, want 1", scr.timerLeft)
	}
	if cmd == nil {
		t.Fatal("expected another tick to be scheduled")
	}

	scr, _ = scr.Update(tickMsg(time.Now()))
	if scr.timerLeft != 0 {
		t.Fatalf("timerLeft = %d, want 0", scr.timerLeft)
	}
	if scr.status != "Time's up!" {
		t.Errorf("status = %q, want time's up message", scr.status)
	}
}

func TestAllSolvedPhase(t *testing.T) {
	scr := newTestScreen(t)
	for i := 0; i < 4; i++ {
		scr = selectFirst(scr)
	}

	for _, answer := range []rune{'4', '6'} {
		scr, _ = scr.Update(keyPress(answer))
		scr, _ = scr.Update(specialKey(tea.KeyEnter))
	}

	if scr.phase != phaseAllSolved {
		t.Errorf("phase = %v after solving everything, want all-solved", scr.phase)
	}
}
