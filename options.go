package cfgattrs

import "io"

// An Option to modify the behaviour of the Expander.
type Option func(e *Expander) error

// Filename sets the filename reported in error positions.
func Filename(name string) Option {
	return func(e *Expander) error {
		e.filename = name
		return nil
	}
}

// Trace dumps each recognized entry to "w" before rewriting.
func Trace(w io.Writer) Option {
	return func(e *Expander) error {
		e.trace = w
		return nil
	}
}
