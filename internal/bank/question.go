package bank

// Question is a single practice question loaded from an uploaded bank.
// Records are immutable once loaded and are identified by their ordinal
// position (row index) within the full dataset.
type Question struct {
	Question   string
	Answer     string
	Chapter    string
	Exercise   string
	Language   string
	Difficulty string

	// LatexEquation and Image are optional pass-through attributes for the
	// presentation layer. Empty means absent.
	LatexEquation string
	Image         string
}

// HasEquation reports whether the record carries displayable equation markup.
func (q Question) HasEquation() bool {
	return q.LatexEquation != ""
}

// HasImage reports whether the record carries an image reference.
func (q Question) HasImage() bool {
	return q.Image != ""
}
