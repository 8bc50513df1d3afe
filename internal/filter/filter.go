// Package filter derives the active subset of a question bank matching the
// user's four filter choices.
package filter

import "github.com/abhisek/ganitguru/internal/bank"

// Selection holds the four independent filter choices. Each value is drawn
// from the current dataset's distinct values for that field; a Selection is
// only meaningful against the dataset it was derived from.
type Selection struct {
	Language   string
	Chapter    string
	Exercise   string
	Difficulty string
}

// IsZero reports whether no choice has been made for any field.
func (s Selection) IsZero() bool {
	return s == Selection{}
}

// Match pairs a question with its stable row index in the full dataset.
// Filtering never renumbers: RowIndex is the record's position in the
// dataset the subset was derived from.
type Match struct {
	RowIndex int
	Question bank.Question
}

// Apply returns the ordered subsequence of ds whose four fields exactly
// equal sel. Equality is case-sensitive on the stored textual form.
// Original relative order and row indices are preserved. A nil dataset
// yields an empty subset; an empty result is a valid "no matches" state.
func Apply(ds *bank.Dataset, sel Selection) []Match {
	if ds == nil {
		return nil
	}

	var matches []Match
	for i := 0; i < ds.Len(); i++ {
		q := ds.Question(i)
		if q.Language == sel.Language &&
			q.Chapter == sel.Chapter &&
			q.Exercise == sel.Exercise &&
			q.Difficulty == sel.Difficulty {
			matches = append(matches, Match{RowIndex: i, Question: q})
		}
	}
	return matches
}
