package jsoncompare

import (
	"fmt"

	"github.com/joynutrics/json-assertions/jsonvalue"
)

// Side identifies which of the two compared inputs something refers to.
type Side int

const (
	// Expected is the first input to Compare.
	Expected Side = iota
	// Actual is the second input to Compare.
	Actual
)

func (s Side) String() string {
	if s == Actual {
		return "actual"
	}
	return "expected"
}

// InputError means that one of the inputs to Compare was not well-formed JSON.
type InputError struct {
	Side Side
	Err  *jsonvalue.ParseError
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid JSON in %s value: %s", e.Side, e.Err)
}

// Unwrap returns the underlying *jsonvalue.ParseError.
func (e *InputError) Unwrap() error {
	return e.Err
}

// MismatchError means that both inputs were well-formed but not semantically equal.
type MismatchError struct {
	Diffs []Diff
}

func (e *MismatchError) Error() string {
	if len(e.Diffs) == 1 {
		return "JSON values are not equal: " + e.Diffs[0].String()
	}
	return fmt.Sprintf("JSON values are not equal (%d differences):\n%s", len(e.Diffs), Result{Diffs: e.Diffs})
}
