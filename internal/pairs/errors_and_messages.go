package pairs

import (
	"errors"
	"fmt"
)

// All log messages, error singletons, and error constructors for this package should be collected here,
// except for debug logging.

const (
	logMsgPairFailed  = "Pair %q: %s"
	logMsgRunFinished = "Compared %d pairs: %d equal, %d not equal, %d invalid"
)

var errManifestNotArray = errors.New("manifest must be a JSON array")

func errManifestEntry(index int, err error) error {
	return fmt.Errorf("manifest entry %d: %w", index, err)
}

func errMissingField(name string) error {
	return fmt.Errorf("missing or non-string %q property", name)
}

func errEntryNotObject() error {
	return errors.New("entry is not a JSON object")
}

func errDuplicateName(name string) error {
	return fmt.Errorf("duplicate name %q", name)
}

func errCannotReadManifest(path string, err error) error {
	return fmt.Errorf("unable to read manifest %s: %w", path, err)
}

func errCannotReadPairFile(name, path string, err error) error {
	return fmt.Errorf("pair %q: unable to read %s: %w", name, path, err)
}

func errCannotSelect(name string, err error) error {
	return fmt.Errorf("pair %q: %w", name, err)
}
