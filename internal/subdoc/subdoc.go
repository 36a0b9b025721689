// Package subdoc selects part of a JSON document, using GJSON path syntax, so that only that part is
// compared.
package subdoc

import (
	"errors"
	"fmt"

	"github.com/joynutrics/json-assertions/jsoncompare"
	"github.com/joynutrics/json-assertions/jsonvalue"

	"github.com/tidwall/gjson"
)

var (
	// ErrPathNotFound means the selection path does not match anything in the document.
	ErrPathNotFound = errors.New("path not found in document")

	// ErrInvalidDocument means the document is not valid JSON, so nothing can be selected from it.
	ErrInvalidDocument = errors.New("document is not valid JSON")
)

// Select returns the JSON text of the part of doc matched by path. An empty path selects the whole
// document unchanged.
//
// The document is parsed with the same rules as a comparison before the path is applied, so a
// malformed document is never narrowed to a well-formed fragment. Selection runs against the parsed
// document's compact form, in which a duplicated key has only its last value.
func Select(doc, path string, options jsonvalue.ParseOptions) (string, error) {
	if path == "" {
		return doc, nil
	}
	value, err := jsonvalue.ParseWithOptions(doc, options)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidDocument, err)
	}
	result := gjson.Get(value.String(), path)
	if !result.Exists() {
		return "", fmt.Errorf("%w: %q", ErrPathNotFound, path)
	}
	return result.Raw, nil
}

// SelectPair applies the same path to both sides of a comparison.
//
// A side that is not valid JSON is returned unchanged, so that the comparison reports the parse
// error with its position in the original text.
func SelectPair(expected, actual, path string, options jsonvalue.ParseOptions) (string, string, error) {
	selected := [2]string{expected, actual}
	for i, side := range []jsoncompare.Side{jsoncompare.Expected, jsoncompare.Actual} {
		s, err := Select(selected[i], path, options)
		switch {
		case errors.Is(err, ErrInvalidDocument):
			continue
		case err != nil:
			return "", "", fmt.Errorf("%s value: %w", side, err)
		}
		selected[i] = s
	}
	return selected[0], selected[1], nil
}
