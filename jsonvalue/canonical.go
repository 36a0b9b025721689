package jsonvalue

import (
	"bytes"
	"sort"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// CanonicalJSON returns the canonical serialization of the value.
//
// In the canonical form, object keys are sorted by byte order, array elements are sorted by their own
// canonical forms, and numbers are written as Number.Canonical. Two values have byte-identical canonical
// forms if and only if they are semantically equal: equal up to formatting, key order and array order.
func (v Value) CanonicalJSON() []byte {
	w := jwriter.NewWriter()
	v.writeCanonical(&w)
	return w.Bytes()
}

func (v Value) writeCanonical(w *jwriter.Writer) {
	switch v.kind {
	case BoolKind:
		w.Bool(v.boolValue)
	case NumberKind:
		w.Raw([]byte(v.numberValue.Canonical()))
	case StringKind:
		w.String(v.stringValue)
	case ArrayKind:
		elements := CanonicalElements(v)
		sort.Slice(elements, func(i, j int) bool { return bytes.Compare(elements[i], elements[j]) < 0 })
		arr := w.Array()
		for _, e := range elements {
			w.Raw(e)
		}
		arr.End()
	case ObjectKind:
		keys := v.Keys()
		sort.Strings(keys)
		obj := w.Object()
		for _, k := range keys {
			v.objectValue.values[k].writeCanonical(obj.Name(k))
		}
		obj.End()
	default:
		w.Null()
	}
}

// CanonicalElements returns the canonical form of each element of an array, in the array's order, or nil
// if the value is not an array.
func CanonicalElements(v Value) [][]byte {
	if v.kind != ArrayKind {
		return nil
	}
	ret := make([][]byte, len(v.arrayValue))
	for i, e := range v.arrayValue {
		ret[i] = e.CanonicalJSON()
	}
	return ret
}
