// Package evaluate grades submitted answers against the expected answer
// text. Grading is deliberately simple: exact, case-sensitive comparison of
// the trimmed texts. Numeric-looking answers are compared as text, never
// parsed, so "4.0" does not equal "4".
package evaluate

import "strings"

// Verdict is the outcome of evaluating a submitted answer.
type Verdict int

const (
	// VerdictEmpty means the submission was blank after trimming. The user
	// is asked to provide an answer, not told they are wrong.
	VerdictEmpty Verdict = iota
	VerdictCorrect
	VerdictIncorrect
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	default:
		return "empty"
	}
}

// Evaluate compares submitted answer text to the expected answer. Leading
// and trailing whitespace is ignored on both sides; internal whitespace and
// case are significant.
func Evaluate(submitted, expected string) Verdict {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return VerdictEmpty
	}
	if submitted == strings.TrimSpace(expected) {
		return VerdictCorrect
	}
	return VerdictIncorrect
}
