package session

import (
	"context"
	"fmt"

	"github.com/abhisek/ganitguru/internal/bank"
	"github.com/abhisek/ganitguru/internal/evaluate"
	"github.com/abhisek/ganitguru/internal/export"
	"github.com/abhisek/ganitguru/internal/filter"
)

// Event is a user-triggered interaction the session reacts to.
type Event interface {
	isEvent()
}

// LoadDatasetEvent replaces the question bank with a newly uploaded one.
type LoadDatasetEvent struct {
	Data []byte
	Kind bank.Kind
}

// SetFilterEvent updates the filter selection and recomputes the active
// subset. A zero selection clears the view without touching the dataset.
type SetFilterEvent struct {
	Selection filter.Selection
}

// SubmitAnswerEvent evaluates answer text against the question at RowIndex.
type SubmitAnswerEvent struct {
	RowIndex int
	Text     string
}

// ResetEvent clears the in-session solved set. Durable entries persist.
type ResetEvent struct{}

// ExportCSVEvent writes the solved set to progress.csv.
type ExportCSVEvent struct{}

// ExportReportEvent writes the filtered view to the per-user PDF report.
type ExportReportEvent struct{}

func (LoadDatasetEvent) isEvent()  {}
func (SetFilterEvent) isEvent()    {}
func (SubmitAnswerEvent) isEvent() {}
func (ResetEvent) isEvent()        {}
func (ExportCSVEvent) isEvent()    {}
func (ExportReportEvent) isEvent() {}

// HandleEvent applies one event to the session state. Every failure is
// recoverable: the state is left consistent and the error carries the
// message for the user. No event handler terminates the process.
func HandleEvent(ctx context.Context, st *State, ev Event) error {
	switch ev := ev.(type) {
	case LoadDatasetEvent:
		return handleLoad(st, ev)
	case SetFilterEvent:
		return handleSetFilter(st, ev)
	case SubmitAnswerEvent:
		return handleSubmit(ctx, st, ev)
	case ResetEvent:
		st.Tracker.Reset()
		st.HasVerdict = false
		return nil
	case ExportCSVEvent:
		path, err := export.ExportCSV(st.exportDir(), st.Tracker.Solved())
		if err != nil {
			return err
		}
		st.LastExportPath = path
		return nil
	case ExportReportEvent:
		if st.Dataset == nil || !st.FilterApplied {
			return export.ErrNoActiveSubset
		}
		path, err := export.ExportPDF(st.exportDir(), st.UserID, st.ActiveSubset)
		if err != nil {
			return err
		}
		st.LastExportPath = path
		return nil
	default:
		return fmt.Errorf("unknown session event %T", ev)
	}
}

// handleLoad replaces the dataset and, in the same step, invalidates the
// selection and active subset derived from the old one. On failure the
// prior dataset (and everything derived from it) is retained untouched.
func handleLoad(st *State, ev LoadDatasetEvent) error {
	ds, err := bank.Load(ev.Data, ev.Kind)
	if err != nil {
		return err
	}

	st.Dataset = ds
	st.Selection = filter.Selection{}
	st.ActiveSubset = nil
	st.FilterApplied = false
	return nil
}

func handleSetFilter(st *State, ev SetFilterEvent) error {
	st.Selection = ev.Selection
	st.ActiveSubset = filter.Apply(st.Dataset, ev.Selection)
	st.FilterApplied = st.Dataset != nil
	return nil
}

// handleSubmit evaluates the submitted text against the question at the
// event's row index. A correct answer marks the row solved in the session
// and appends a durable progress entry; the in-memory mark survives a
// failed append, with the failure surfaced to the caller.
func handleSubmit(ctx context.Context, st *State, ev SubmitAnswerEvent) error {
	var expected string
	found := false
	for _, m := range st.ActiveSubset {
		if m.RowIndex == ev.RowIndex {
			expected = m.Question.Answer
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("question %d is not in the active subset", ev.RowIndex)
	}

	st.LastVerdict = evaluate.Evaluate(ev.Text, expected)
	st.HasVerdict = true

	if st.LastVerdict != evaluate.VerdictCorrect {
		return nil
	}
	return st.Tracker.MarkSolved(ctx, ev.RowIndex, st.UserID)
}
