// Package progress tracks which questions the user has solved within one
// practice session and mirrors every solve into the durable progress log.
package progress

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/ganitguru/internal/store"
)

// Tracker is the session-scoped solved set. It grows monotonically within a
// session (no un-solving) and starts empty at session start. The in-memory
// set is authoritative for display; the durable log behind it tolerates
// duplicate entries.
type Tracker struct {
	solved map[int]struct{}
	repo   store.ProgressRepo
}

// NewTracker creates an empty tracker. repo may be nil, in which case
// solves are tracked in memory only (useful for tests and dry runs).
func NewTracker(repo store.ProgressRepo) *Tracker {
	return &Tracker{
		solved: make(map[int]struct{}),
		repo:   repo,
	}
}

// IsSolved reports whether the question at rowIndex has been solved in this
// session.
func (t *Tracker) IsSolved(rowIndex int) bool {
	_, ok := t.solved[rowIndex]
	return ok
}

// MarkSolved records a correct answer. The in-session set deduplicates, so
// repeat calls for the same row never inflate Count, but each call appends
// one durable entry regardless. The in-memory mark is applied even when the
// durable append fails; the failure is returned for the caller to surface.
func (t *Tracker) MarkSolved(ctx context.Context, rowIndex int, userID string) error {
	t.solved[rowIndex] = struct{}{}

	if t.repo == nil {
		return nil
	}
	if err := t.repo.Append(ctx, userID, rowIndex); err != nil {
		return fmt.Errorf("record progress for question %d: %w", rowIndex, err)
	}
	return nil
}

// Reset clears the in-session solved set. Durable entries are never
// deleted.
func (t *Tracker) Reset() {
	t.solved = make(map[int]struct{})
}

// Count returns the number of distinct questions solved this session.
func (t *Tracker) Count() int {
	return len(t.solved)
}

// Solved returns the solved row indices in ascending order.
func (t *Tracker) Solved() []int {
	ids := make([]int, 0, len(t.solved))
	for id := range t.solved {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Ratio returns the solved fraction of total in [0, 1]. A zero total yields
// zero rather than dividing by it.
func (t *Tracker) Ratio(total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(len(t.solved)) / float64(total)
}
