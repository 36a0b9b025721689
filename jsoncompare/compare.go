package jsoncompare

import (
	"errors"

	"github.com/joynutrics/json-assertions/jsonvalue"
)

// VerdictKind is the overall outcome of Compare.
type VerdictKind int

const (
	// VerdictEqual means both inputs were valid JSON and semantically equal.
	VerdictEqual VerdictKind = iota
	// VerdictNotEqual means both inputs were valid JSON but differ; Verdict.Diffs says how.
	VerdictNotEqual
	// VerdictParseFailure means one of the inputs was not valid JSON; Verdict.InputErr says which.
	VerdictParseFailure
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictEqual:
		return "equal"
	case VerdictNotEqual:
		return "notEqual"
	default:
		return "parseError"
	}
}

// Verdict is the result of comparing two JSON texts.
type Verdict struct {
	Kind     VerdictKind
	Diffs    []Diff
	InputErr *InputError
}

// IsEqual returns true if the texts were semantically equal.
func (v Verdict) IsEqual() bool {
	return v.Kind == VerdictEqual
}

// Err returns nil if the texts were equal, an *InputError if either was malformed, or a *MismatchError
// describing the differences.
func (v Verdict) Err() error {
	switch v.Kind {
	case VerdictEqual:
		return nil
	case VerdictParseFailure:
		return v.InputErr
	default:
		return &MismatchError{Diffs: v.Diffs}
	}
}

// String summarizes the verdict: "equal", the list of differences, or the parse error.
func (v Verdict) String() string {
	if err := v.Err(); err != nil {
		return err.Error()
	}
	return v.Kind.String()
}

// Compare parses two JSON texts and compares them with Equal.
//
// The expected text is parsed first, so if both are malformed the verdict refers to the expected side.
// Two malformed inputs are never considered equal.
func Compare(expected, actual string) Verdict {
	return CompareWithOptions(expected, actual, Options{})
}

// CompareWithOptions is the same as Compare, with nonstandard options.
func CompareWithOptions(expected, actual string, options Options) Verdict {
	parseOptions := jsonvalue.ParseOptions{MaxDepth: options.MaxDepth}
	ev, err := jsonvalue.ParseWithOptions(expected, parseOptions)
	if err != nil {
		return parseFailure(Expected, err)
	}
	av, err := jsonvalue.ParseWithOptions(actual, parseOptions)
	if err != nil {
		return parseFailure(Actual, err)
	}
	return VerdictFromResult(EqualWithOptions(ev, av, options))
}

// VerdictFromResult converts the Result of comparing two already-parsed values into a Verdict.
func VerdictFromResult(r Result) Verdict {
	if r.IsEqual() {
		return Verdict{Kind: VerdictEqual}
	}
	return Verdict{Kind: VerdictNotEqual, Diffs: r.Diffs}
}

func parseFailure(side Side, err error) Verdict {
	var pe *jsonvalue.ParseError
	if !errors.As(err, &pe) {
		pe = &jsonvalue.ParseError{Message: err.Error(), Line: 1, Column: 1}
	}
	return Verdict{Kind: VerdictParseFailure, InputErr: &InputError{Side: side, Err: pe}}
}
