// Package compiler provides the compilation pipeline for blip programs.
// This file defines the CompileError type for structured error reporting.
package compiler

import "fmt"

// CompileError represents a compilation error with location information.
// It implements the error interface.
//
// All errors found in a program are collected and returned together rather
// than failing on the first one, so a user fixing a program sees every bad
// line at once.
type CompileError struct {
	// Line is the 1-indexed source line where the error occurred.
	Line int

	// Message is the human-readable error description.
	Message string
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// SourceLine returns the 1-indexed line the error refers to.
func (e *CompileError) SourceLine() int {
	return e.Line
}

func newError(line int, format string, args ...any) *CompileError {
	return &CompileError{Line: line, Message: fmt.Sprintf(format, args...)}
}
