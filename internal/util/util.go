// Package util contains small HTTP helpers used by the comparison service.
package util

import (
	"fmt"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// ErrorJSONMsg returns a JSON-encoded error message of the form {"message": msg}.
func ErrorJSONMsg(msg string) []byte {
	w := jwriter.NewWriter()
	obj := w.Object()
	obj.Name("message").String(msg)
	obj.End()
	return w.Bytes()
}

// ErrorJSONMsgf returns a JSON-encoded error message using the printf formatter
func ErrorJSONMsgf(fmtStr string, args ...interface{}) []byte {
	return ErrorJSONMsg(fmt.Sprintf(fmtStr, args...))
}
