package session

import (
	"github.com/abhisek/ganitguru/internal/evaluate"
	"github.com/abhisek/ganitguru/internal/filter"
)

// badgeThreshold is the session solved count that earns the Bronze Badge.
const badgeThreshold = 5

// ViewModel is everything a render pass needs: the pending questions, the
// progress counts, the filter choices, and the latest verdict. It is a
// value snapshot; mutating it does not touch session state.
type ViewModel struct {
	// Pending is the active subset minus already-solved rows, in original
	// order with original row indices. These are the questions still
	// offered for interaction.
	Pending []filter.Match

	// SolvedCount and TotalCount feed the "solved/total" progress display.
	// TotalCount is the full active subset size: solved questions leave
	// Pending but keep counting toward the total.
	SolvedCount int
	TotalCount  int

	// Ratio is SolvedCount/TotalCount in [0, 1], zero when the subset is
	// empty.
	Ratio float64

	// Filter choices, drawn from the loaded dataset's distinct values.
	Languages    []string
	Chapters     []string
	Exercises    []string
	Difficulties []string

	// HasDataset reports whether a bank has been loaded at all.
	HasDataset bool

	// FilterApplied reports whether the active subset is defined.
	FilterApplied bool

	// Verdict of the latest submission; meaningful only when HasVerdict.
	Verdict    evaluate.Verdict
	HasVerdict bool

	// BadgeEarned is set once the session solved count reaches the Bronze
	// Badge threshold.
	BadgeEarned bool
}

// Render projects the session state into a view model. Pure: calling it
// any number of times changes nothing.
func Render(st *State) ViewModel {
	vm := ViewModel{
		SolvedCount:   st.Tracker.Count(),
		TotalCount:    len(st.ActiveSubset),
		Languages:     st.Dataset.Languages(),
		Chapters:      st.Dataset.Chapters(),
		Exercises:     st.Dataset.Exercises(),
		Difficulties:  st.Dataset.Difficulties(),
		HasDataset:    st.Dataset != nil,
		FilterApplied: st.FilterApplied,
		Verdict:       st.LastVerdict,
		HasVerdict:    st.HasVerdict,
	}

	for _, m := range st.ActiveSubset {
		if !st.Tracker.IsSolved(m.RowIndex) {
			vm.Pending = append(vm.Pending, m)
		}
	}

	vm.Ratio = st.Tracker.Ratio(vm.TotalCount)
	vm.BadgeEarned = vm.SolvedCount >= badgeThreshold
	return vm
}
