// Package session holds the explicit per-session context object and the
// event-driven update loop over it. Nothing in here is global: a State is
// created at session start, threaded through every operation, and discarded
// at session end. The presentation layer drives the session exclusively
// through HandleEvent and reads it exclusively through Render.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/ganitguru/internal/bank"
	"github.com/abhisek/ganitguru/internal/evaluate"
	"github.com/abhisek/ganitguru/internal/filter"
	"github.com/abhisek/ganitguru/internal/progress"
	"github.com/abhisek/ganitguru/internal/store"
)

// State is the mutable context of one practice session.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	// UserID keys every durable progress append. The single-user default
	// ("user1") is a caller decision, not baked in here.
	UserID string

	// StartTime is when the session began.
	StartTime time.Time

	// Dataset is the currently loaded question bank, nil before the first
	// successful load. Replaced wholesale; never partially mutated.
	Dataset *bank.Dataset

	// Selection is the current filter choices, only valid against Dataset.
	Selection filter.Selection

	// ActiveSubset is the filtered view derived from Dataset and Selection.
	// It is recomputed on every dataset or filter change, never cached
	// across them.
	ActiveSubset []filter.Match

	// FilterApplied distinguishes "filter produced no matches" from "no
	// filter applied yet". Report export needs the distinction.
	FilterApplied bool

	// Tracker is the session-scoped solved set.
	Tracker *progress.Tracker

	// ExportDir is where export artifacts are written. Empty means the
	// current working directory.
	ExportDir string

	// LastVerdict is the outcome of the most recent answer submission.
	LastVerdict evaluate.Verdict

	// HasVerdict is false until the first submission (and after a reset).
	HasVerdict bool

	// LastExportPath is the artifact written by the most recent export.
	LastExportPath string
}

// NewState creates the session context. repo may be nil to run without a
// durable store.
func NewState(userID string, repo store.ProgressRepo) *State {
	return &State{
		SessionID: uuid.NewString(),
		UserID:    userID,
		StartTime: time.Now(),
		Tracker:   progress.NewTracker(repo),
	}
}

func (s *State) exportDir() string {
	if s.ExportDir == "" {
		return "."
	}
	return s.ExportDir
}
