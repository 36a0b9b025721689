package jsonvalue

import (
	"fmt"
	"strings"
)

// ParseError describes why a JSON text could not be parsed.
type ParseError struct {
	// Offset is the byte offset in the input where the problem was detected.
	Offset int
	// Line is the 1-based line number of Offset.
	Line int
	// Column is the 1-based column of Offset, counted in bytes from the start of the line.
	Column int
	// Message is a human-readable description of the problem.
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d (offset %d)", e.Message, e.Line, e.Column, e.Offset)
}

func newParseError(src string, offset int, message string) *ParseError {
	if offset > len(src) {
		offset = len(src)
	}
	consumed := src[:offset]
	line := strings.Count(consumed, "\n") + 1
	column := offset - strings.LastIndexByte(consumed, '\n')
	return &ParseError{Offset: offset, Line: line, Column: column, Message: message}
}
