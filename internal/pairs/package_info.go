// Package pairs runs a batch of comparisons described by a manifest file.
//
// A manifest is a JSON array of objects, each naming one pair of files:
//
//     [
//       {"name": "user response", "expected": "golden/user.json", "actual": "out/user.json"},
//       {"name": "empty list", "expected": "golden/empty.json", "actual": "out/empty.json"}
//     ]
//
// File paths are relative to a root directory, and may not refer to anything outside of it.
package pairs
