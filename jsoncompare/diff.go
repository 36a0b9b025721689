package jsoncompare

import (
	"fmt"
	"strings"

	"github.com/joynutrics/json-assertions/jsonvalue"
)

// DiffKind describes how two values at the same path differ.
type DiffKind int

const (
	// TypeMismatch means the values have different JSON types, such as a number and a string.
	TypeMismatch DiffKind = iota
	// ValueMismatch means two scalars of the same type have different values.
	ValueMismatch
	// MissingKey means an object key in the expected document is absent from the actual document.
	MissingKey
	// ExtraKey means an object key in the actual document is absent from the expected document.
	ExtraKey
	// LengthMismatch means two arrays have different numbers of elements.
	LengthMismatch
	// MissingElement means an element of an expected array has no equal counterpart in the actual array.
	MissingElement
	// ExtraElement means an element of an actual array has no equal counterpart in the expected array.
	ExtraElement
)

// String returns the name of the kind, as used in diagnostics and in the comparison service.
func (k DiffKind) String() string {
	switch k {
	case TypeMismatch:
		return "typeMismatch"
	case ValueMismatch:
		return "valueMismatch"
	case MissingKey:
		return "missingKey"
	case ExtraKey:
		return "extraKey"
	case LengthMismatch:
		return "lengthMismatch"
	case MissingElement:
		return "missingElement"
	case ExtraElement:
		return "extraElement"
	default:
		return "unknown"
	}
}

// Diff is a single difference between two documents.
//
// Expected and Actual are the values found at Path in each document; one of them is nil when the
// difference is a missing or extra key or element. For a MissingElement, Path ends with the element's
// index in the expected array; for an ExtraElement, with its index in the actual array.
//
// When an array element is paired with an element at a different index in the actual array, the
// actual value is not at Path in the actual document. ActualPath then locates it there; otherwise
// ActualPath is nil.
type Diff struct {
	Path       Path
	ActualPath Path
	Kind       DiffKind
	Expected   *jsonvalue.Value
	Actual     *jsonvalue.Value
}

// String describes the difference on a single line.
func (d Diff) String() string {
	if d.ActualPath != nil {
		return d.describe() + " at " + d.ActualPath.String()
	}
	return d.describe()
}

func (d Diff) describe() string {
	switch d.Kind {
	case TypeMismatch:
		return fmt.Sprintf("%s: expected %s %s, got %s %s",
			d.Path, d.Expected.Kind(), d.Expected, d.Actual.Kind(), d.Actual)
	case ValueMismatch:
		return fmt.Sprintf("%s: expected %s, got %s", d.Path, d.Expected, d.Actual)
	case MissingKey:
		return fmt.Sprintf("%s: missing key, expected %s", d.Path, d.Expected)
	case ExtraKey:
		return fmt.Sprintf("%s: unexpected key with value %s", d.Path, d.Actual)
	case LengthMismatch:
		return fmt.Sprintf("%s: expected array of %d elements, got %d", d.Path, d.Expected.Count(), d.Actual.Count())
	case MissingElement:
		return fmt.Sprintf("%s: expected element %s not found in actual array", d.Path, d.Expected)
	case ExtraElement:
		return fmt.Sprintf("%s: unexpected element %s in actual array", d.Path, d.Actual)
	default:
		return fmt.Sprintf("%s: %s", d.Path, d.Kind)
	}
}

// Result is the outcome of comparing two values.
type Result struct {
	Diffs []Diff
}

// IsEqual returns true if no differences were found.
func (r Result) IsEqual() bool {
	return len(r.Diffs) == 0
}

// String returns one line per difference, or "equal".
func (r Result) String() string {
	if r.IsEqual() {
		return "equal"
	}
	lines := make([]string, 0, len(r.Diffs))
	for _, d := range r.Diffs {
		lines = append(lines, d.String())
	}
	return strings.Join(lines, "\n")
}
