package program

import "fmt"

// DuplicateLabelError reports a label defined on more than one line.
type DuplicateLabelError struct {
	Name  string
	Line  int // line of the second definition
	First int // line of the first definition
}

// Error implements the error interface.
func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("line %d: duplicate label %q (first defined on line %d)", e.Line, e.Name, e.First)
}

// SourceLine returns the 1-indexed line the error refers to.
func (e *DuplicateLabelError) SourceLine() int {
	return e.Line
}

// UnresolvedLabelError reports a jump or fork target with no matching label.
type UnresolvedLabelError struct {
	Name string
	Line int
}

// Error implements the error interface.
func (e *UnresolvedLabelError) Error() string {
	return fmt.Sprintf("line %d: unknown label %q", e.Line, e.Name)
}

// SourceLine returns the 1-indexed line the error refers to.
func (e *UnresolvedLabelError) SourceLine() int {
	return e.Line
}
