package jsoncompare

import (
	"bytes"
	"sort"

	"github.com/joynutrics/json-assertions/jsonvalue"
)

// Options customizes the behavior of comparisons. The zero value gives the default behavior.
type Options struct {
	// MaxDepth is the nesting limit used when parsing input text. Zero means jsonvalue.DefaultMaxDepth.
	MaxDepth int
	// MaxDiffs stops the comparison once this many differences have been found. Zero means no limit.
	MaxDiffs int
}

// Equal compares two values under order-insensitive semantic equality and reports every difference.
func Equal(expected, actual jsonvalue.Value) Result {
	return EqualWithOptions(expected, actual, Options{})
}

// EqualWithOptions is the same as Equal, with nonstandard options.
func EqualWithOptions(expected, actual jsonvalue.Value, options Options) Result {
	c := comparer{maxDiffs: options.MaxDiffs}
	c.compare(nil, nil, expected, actual)
	return Result{Diffs: c.diffs}
}

type comparer struct {
	maxDiffs int
	diffs    []Diff
}

func (c *comparer) full() bool {
	return c.maxDiffs > 0 && len(c.diffs) >= c.maxDiffs
}

// add records a difference. actualPath is where d.Actual was found in the actual document.
func (c *comparer) add(d Diff, actualPath Path) {
	if c.full() {
		return
	}
	if d.Actual != nil && !actualPath.equal(d.Path) {
		d.ActualPath = actualPath
	}
	c.diffs = append(c.diffs, d)
}

func valuePtr(v jsonvalue.Value) *jsonvalue.Value {
	return &v
}

func (c *comparer) compare(path, actualPath Path, expected, actual jsonvalue.Value) {
	if c.full() {
		return
	}
	if expected.Kind() != actual.Kind() {
		c.add(Diff{Path: path, Kind: TypeMismatch, Expected: valuePtr(expected), Actual: valuePtr(actual)}, actualPath)
		return
	}
	var same bool
	switch expected.Kind() {
	case jsonvalue.NullKind:
		same = true
	case jsonvalue.BoolKind:
		same = expected.BoolValue() == actual.BoolValue()
	case jsonvalue.NumberKind:
		same = expected.NumberValue().Equal(actual.NumberValue())
	case jsonvalue.StringKind:
		same = expected.StringValue() == actual.StringValue()
	case jsonvalue.ArrayKind:
		c.compareArrays(path, actualPath, expected, actual)
		return
	case jsonvalue.ObjectKind:
		c.compareObjects(path, actualPath, expected, actual)
		return
	}
	if !same {
		c.add(Diff{Path: path, Kind: ValueMismatch, Expected: valuePtr(expected), Actual: valuePtr(actual)}, actualPath)
	}
}

func (c *comparer) compareObjects(path, actualPath Path, expected, actual jsonvalue.Value) {
	keys := expected.Keys()
	for _, k := range actual.Keys() {
		if _, ok := expected.Get(k); !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if c.full() {
			return
		}
		ev, inExpected := expected.Get(k)
		av, inActual := actual.Get(k)
		switch {
		case !inActual:
			c.add(Diff{Path: path.Key(k), Kind: MissingKey, Expected: valuePtr(ev)}, nil)
		case !inExpected:
			c.add(Diff{Path: path.Key(k), Kind: ExtraKey, Actual: valuePtr(av)}, actualPath.Key(k))
		default:
			c.compare(path.Key(k), actualPath.Key(k), ev, av)
		}
	}
}

// compareArrays checks multiset equality by sorting the canonical forms of each side's elements and
// merging them. Elements left over on either side have no equal counterpart.
func (c *comparer) compareArrays(path, actualPath Path, expected, actual jsonvalue.Value) {
	expectedForms := jsonvalue.CanonicalElements(expected)
	actualForms := jsonvalue.CanonicalElements(actual)

	if len(expectedForms) != len(actualForms) {
		c.add(Diff{Path: path, Kind: LengthMismatch, Expected: valuePtr(expected), Actual: valuePtr(actual)}, actualPath)
	}

	expectedOrder := sortedIndexes(expectedForms)
	actualOrder := sortedIndexes(actualForms)
	var missing, extra []int
	i, j := 0, 0
	for i < len(expectedOrder) && j < len(actualOrder) {
		switch cmp := bytes.Compare(expectedForms[expectedOrder[i]], actualForms[actualOrder[j]]); {
		case cmp == 0:
			i++
			j++
		case cmp < 0:
			missing = append(missing, expectedOrder[i])
			i++
		default:
			extra = append(extra, actualOrder[j])
			j++
		}
	}
	missing = append(missing, expectedOrder[i:]...)
	extra = append(extra, actualOrder[j:]...)

	if len(missing) == 1 && len(extra) == 1 {
		// The pairing is unambiguous, so describe what differs inside the element.
		c.compare(path.Index(missing[0]), actualPath.Index(extra[0]), expected.Index(missing[0]), actual.Index(extra[0]))
		return
	}
	sort.Ints(missing)
	sort.Ints(extra)
	for _, index := range missing {
		c.add(Diff{Path: path.Index(index), Kind: MissingElement, Expected: valuePtr(expected.Index(index))}, nil)
	}
	for _, index := range extra {
		c.add(Diff{Path: path.Index(index), Kind: ExtraElement, Actual: valuePtr(actual.Index(index))},
			actualPath.Index(index))
	}
}

func sortedIndexes(forms [][]byte) []int {
	order := make([]int, len(forms))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return bytes.Compare(forms[order[a]], forms[order[b]]) < 0
	})
	return order
}
