package cfgattrs

import (
	"fmt"

	"github.com/attrkit/cfgattrs/lexer"
)

// Error represents an error while expanding.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() lexer.Position
}

// SyntaxError is returned when the cfg_attrs or configure grammar is
// malformed: unbalanced delimiters, a missing predicate or comma separator, or
// an entry that is neither an attribute nor a configure block.
//
// No output is produced when a SyntaxError occurs; expansion is fail-fast.
type SyntaxError struct {
	Msg string
	Pos lexer.Position
}

func (s *SyntaxError) Error() string { return lexer.FormatError(s.Pos, s.Msg) }

func (s *SyntaxError) Message() string { return s.Msg }

func (s *SyntaxError) Position() lexer.Position { return s.Pos }

// UnsupportedNestingError is returned when a configure block contains another
// configure block, which the grammar does not permit.
type UnsupportedNestingError struct {
	Pos lexer.Position
}

func (u *UnsupportedNestingError) Error() string {
	return lexer.FormatError(u.Pos, u.Message())
}

func (u *UnsupportedNestingError) Message() string {
	return "configure blocks cannot be nested"
}

func (u *UnsupportedNestingError) Position() lexer.Position { return u.Pos }

// Errorf creates a new SyntaxError at the given position.
func Errorf(pos lexer.Position, format string, args ...interface{}) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// AnnotateError wraps an existing error with a position.
//
// If the existing error is already an Error it will be returned unmodified.
func AnnotateError(pos lexer.Position, err error) error {
	if perr, ok := err.(Error); ok {
		return perr
	}
	return &SyntaxError{Msg: err.Error(), Pos: pos}
}
