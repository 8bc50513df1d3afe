package bank

import (
	"fmt"
	"strings"
)

// ValidationError reports required columns missing from an uploaded bank's
// header. The previously loaded dataset, if any, is left untouched.
type ValidationError struct {
	MissingColumns []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question bank missing required columns: %s",
		strings.Join(e.MissingColumns, ", "))
}

// ParseError reports bytes that could not be parsed as the declared kind.
type ParseError struct {
	Kind Kind
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s question bank: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
