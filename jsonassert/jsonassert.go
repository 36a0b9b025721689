package jsonassert

import (
	"fmt"
	"strings"

	"github.com/joynutrics/json-assertions/jsoncompare"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tHelper interface {
	Helper()
}

// AssertEqual fails the test, without stopping it, if expected and actual are not semantically equal
// JSON texts or if either of them is malformed. It returns true if they were equal.
func AssertEqual(t assert.TestingT, expected, actual string, msgAndArgs ...interface{}) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	v := jsoncompare.Compare(expected, actual)
	if v.IsEqual() {
		return true
	}
	return assert.Fail(t, FailureMessage(v, expected, actual), msgAndArgs...)
}

// RequireEqual is the same as AssertEqual, except that it stops the test with t.FailNow.
func RequireEqual(t require.TestingT, expected, actual string, msgAndArgs ...interface{}) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !AssertEqual(t, expected, actual, msgAndArgs...) {
		t.FailNow()
	}
}

// AssertNotEqual fails the test if expected and actual are semantically equal. Malformed input also
// fails the test, since it cannot be meaningfully compared.
func AssertNotEqual(t assert.TestingT, expected, actual string, msgAndArgs ...interface{}) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	v := jsoncompare.Compare(expected, actual)
	switch v.Kind {
	case jsoncompare.VerdictNotEqual:
		return true
	case jsoncompare.VerdictEqual:
		return assert.Fail(t, fmt.Sprintf("JSON values should not be equal\nexpected: %s\nactual:   %s",
			expected, actual), msgAndArgs...)
	default:
		return assert.Fail(t, FailureMessage(v, expected, actual), msgAndArgs...)
	}
}

// FailureMessage formats a non-equal verdict for a test log: the parse error or every difference,
// followed by both inputs.
func FailureMessage(v jsoncompare.Verdict, expected, actual string) string {
	var b strings.Builder
	switch v.Kind {
	case jsoncompare.VerdictEqual:
		return ""
	case jsoncompare.VerdictParseFailure:
		b.WriteString(v.InputErr.Error())
	default:
		fmt.Fprintf(&b, "JSON values are not equal (%d differences):", len(v.Diffs))
		for _, d := range v.Diffs {
			b.WriteString("\n  ")
			b.WriteString(d.String())
		}
	}
	fmt.Fprintf(&b, "\nexpected: %s\nactual:   %s", expected, actual)
	return b.String()
}
