package server

import (
	"errors"
	"fmt"
)

const (
	logMsgBadRequest  = "Rejected comparison request: %s"
	logMsgBodyTooLong = "Rejected comparison request: body is larger than %d bytes"
	logMsgBodyRead    = "Read comparison request: %d bytes (%d uncompressed)"
	logMsgVerdict     = "Comparison verdict: %s (%d differences)"
)

var errRequestNotObject = errors.New("request body must be a JSON object")

func errRequestNotJSON(err error) error {
	return fmt.Errorf("request body is not valid JSON: %w", err)
}

func errMissingRequestField(name string) error {
	return fmt.Errorf("request body must have a string property %q", name)
}

func errRequestFieldNotString(name string) error {
	return fmt.Errorf("request property %q must be a string", name)
}

func errCannotSelect(err error) error {
	return fmt.Errorf("cannot select sub-document: %w", err)
}
