// Package jsoncompare decides whether two JSON documents are semantically equal.
//
// Semantic equality ignores whitespace, the order of object keys, and the order of array elements. Arrays
// are compared as multisets: [1,1,2] and [1,2,1] are equal, but [1,1,2] and [1,2,2] are not. Numbers are
// compared by mathematical value, so 1, 1.0 and 1e0 are equal. Values of different JSON types are never
// equal.
//
// Compare is the usual entry point: it parses both texts and returns a Verdict, which is either Equal,
// NotEqual with a list of path-qualified differences, or ParseFailure identifying which input was
// malformed and where. Nothing in this package panics or logs on bad input; failures are returned as
// values and it is up to the caller to decide whether they are fatal.
//
// All functions are safe for concurrent use.
package jsoncompare
