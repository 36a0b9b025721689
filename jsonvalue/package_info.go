// Package jsonvalue contains an immutable representation of JSON values and a parser that produces it.
//
// Unlike the generic map[string]interface{} form produced by encoding/json, a Value keeps numbers in a
// decimal-preserving form, so that 1, 1.0 and 1e0 are recognized as the same number while values that
// differ only past the precision of a float64 are not confused with each other. Object keys are unique
// (a repeated key in the source text replaces the earlier value) and array elements keep the order in
// which they appeared.
//
// Values can be serialized in a canonical form with CanonicalJSON. The canonical form sorts object keys
// and array elements, so two values have identical canonical forms if and only if they are equal under
// the order-insensitive rules used by the jsoncompare package.
package jsonvalue
