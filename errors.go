package iniconf

import (
	"errors"
	"fmt"

	"gopkg.in/warnings.v0"
)

// ErrNoMem is returned, wrapped in a *ParseError, when an entry does not
// fit into the parser's buffer (see Parser.MaxEntrySize).
var ErrNoMem = errors.New("out of memory")

// ParseError reports a failure of the parser itself, as opposed to an error
// returned by a Handler, which is passed through unchanged.
type ParseError struct {
	File string // file name, or "" when not parsing a named file
	Line int    // line number, starting at 1
	Err  error  // ErrNoMem, a read error, or a value error from ReadInto
}

// Error prints ParseError as
//
//	iniconf: File:Line: Err
//
// leaving out the file name when there is none.
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("iniconf: %s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("iniconf: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FatalOnly filters the warnings collected by the ReadInto functions out of
// err, returning nil if nothing but warnings remain.
func FatalOnly(err error) error {
	return warnings.FatalOnly(err)
}

func isFatal(err error) bool {
	var ed extraData
	return !errors.As(err, &ed)
}

// extraData is the warning for a section or variable that has no
// corresponding field in the config struct.
type extraData struct {
	section    string
	subsection *string
	variable   *string
}

func (e extraData) Error() string {
	s := "can't store data at section \"" + e.section + "\""
	if e.subsection != nil {
		s += ", subsection \"" + *e.subsection + "\""
	}
	if e.variable != nil {
		s += ", variable \"" + *e.variable + "\""
	}
	return s
}

var _ error = extraData{}
