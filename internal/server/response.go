package server

import (
	"github.com/joynutrics/json-assertions/jsoncompare"
	"github.com/joynutrics/json-assertions/jsonvalue"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

const (
	statusHealthy = "healthy"
)

func statusRep(version string) []byte {
	w := jwriter.NewWriter()
	obj := w.Object()
	obj.Name("status").String(statusHealthy)
	obj.Name("version").String(version)
	obj.End()
	return w.Bytes()
}

// verdictRep serializes a verdict. Values inside diffs are written as JSON, not as strings, and
// a value that is absent on one side is written as null.
func verdictRep(v jsoncompare.Verdict) []byte {
	w := jwriter.NewWriter()
	obj := w.Object()
	obj.Name("verdict").String(v.Kind.String())
	switch v.Kind {
	case jsoncompare.VerdictNotEqual:
		arr := obj.Name("diffs").Array()
		for _, d := range v.Diffs {
			writeDiff(&w, d)
		}
		arr.End()
	case jsoncompare.VerdictParseFailure:
		obj.Name("side").String(v.InputErr.Side.String())
		obj.Name("offset").Int(v.InputErr.Err.Offset)
		obj.Name("line").Int(v.InputErr.Err.Line)
		obj.Name("column").Int(v.InputErr.Err.Column)
		obj.Name("message").String(v.InputErr.Err.Message)
	}
	obj.End()
	return w.Bytes()
}

func writeDiff(w *jwriter.Writer, d jsoncompare.Diff) {
	obj := w.Object()
	obj.Name("path").String(d.Path.String())
	if d.ActualPath != nil {
		obj.Name("actualPath").String(d.ActualPath.String())
	}
	obj.Name("kind").String(d.Kind.String())
	writeOptValue(obj.Name("expected"), d.Expected)
	writeOptValue(obj.Name("actual"), d.Actual)
	obj.End()
}

func writeOptValue(w *jwriter.Writer, v *jsonvalue.Value) {
	if v == nil {
		w.Null()
		return
	}
	v.WriteToJSONWriter(w)
}
