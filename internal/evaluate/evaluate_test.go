package evaluate

import "testing"

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		expected  string
		want      Verdict
	}{
		{"blank", "", "42", VerdictEmpty},
		{"whitespace only", "   \t", "42", VerdictEmpty},
		{"trimmed match", "  42  ", "42", VerdictCorrect},
		{"exact match", "42", "42", VerdictCorrect},
		{"wrong number", "42", "43", VerdictIncorrect},
		{"case sensitive", "Paris", "paris", VerdictIncorrect},
		{"expected trimmed too", "x=2", " x=2 ", VerdictCorrect},
		{"internal whitespace significant", "x = 2", "x=2", VerdictIncorrect},
		{"numbers compared as text", "4.0", "4", VerdictIncorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.submitted, tt.expected); got != tt.want {
				t.Errorf("Evaluate(%q, %q) = %v, want %v", tt.submitted, tt.expected, got, tt.want)
			}
		})
	}
}

func TestVerdictString(t *testing.T) {
	if VerdictCorrect.String() != "correct" || VerdictIncorrect.String() != "incorrect" || VerdictEmpty.String() != "empty" {
		t.Error("verdict strings do not match their verdicts")
	}
}
