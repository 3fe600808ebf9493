package lexer

import "fmt"

// Error represents an error while lexing, annotated with a position.
type Error struct {
	Message string
	Pos     Position
}

// Errorf creates a new Error at the given position.
func Errorf(pos Position, format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

func (e *Error) Error() string {
	return FormatError(e.Pos, e.Message)
}

// FormatError formats a message with positional information, omitting the
// filename when it is not known.
func FormatError(pos Position, message string) string {
	if pos.Filename == "" {
		return fmt.Sprintf("%d:%d: %s", pos.Line, pos.Column, message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", pos.Filename, pos.Line, pos.Column, message)
}
