package main

import (
	"fmt"
	"io"

	"github.com/joynutrics/json-assertions/jsoncompare"

	"github.com/fatih/color"
)

var (
	equalColor    = color.New(color.FgGreen, color.Bold).SprintfFunc()  //nolint:gochecknoglobals
	notEqualColor = color.New(color.FgRed, color.Bold).SprintfFunc()    //nolint:gochecknoglobals
	invalidColor  = color.New(color.FgYellow, color.Bold).SprintfFunc() //nolint:gochecknoglobals
	pathColor     = color.New(color.FgCyan).SprintfFunc()               //nolint:gochecknoglobals
)

// printVerdict writes a verdict as a headline, optionally prefixed by the pair's name, followed by one
// indented line per difference.
func printVerdict(w io.Writer, name string, v jsoncompare.Verdict) {
	prefix := ""
	if name != "" {
		prefix = name + ": "
	}
	switch v.Kind {
	case jsoncompare.VerdictEqual:
		fmt.Fprintf(w, "%s%s\n", prefix, equalColor("EQUAL")) //nolint:errcheck
	case jsoncompare.VerdictNotEqual:
		fmt.Fprintf(w, "%s%s (%d differences)\n", prefix, notEqualColor("NOT EQUAL"), len(v.Diffs)) //nolint:errcheck
		for _, d := range v.Diffs {
			fmt.Fprintf(w, "  %s %s\n", pathColor("%s", d.Path), diffDetail(d)) //nolint:errcheck
		}
	default:
		fmt.Fprintf(w, "%s%s %s\n", prefix, invalidColor("INVALID"), v.InputErr) //nolint:errcheck
	}
}

// diffDetail is Diff.String without the leading path.
func diffDetail(d jsoncompare.Diff) string {
	s := d.String()
	return s[len(d.Path.String())+2:]
}
