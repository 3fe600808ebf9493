package cfgattrs

import "io"

// An Expander rewrites cfg_attrs attribute syntax into standard cfg_attr
// attributes. Expanders hold no state across calls beyond their options;
// every expansion is an independent pure function of its input.
type Expander struct {
	filename string
	trace    io.Writer
}

// New creates an Expander with the given options.
func New(options ...Option) (*Expander, error) {
	e := &Expander{}
	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Parse recognizes the entry sequence of one cfg_attrs attribute without
// rewriting it. attr is the token stream following the cfg_attrs path:
// "{ Entries }" or "(Predicate, Entries)".
func (e *Expander) Parse(attr string) ([]Entry, error) {
	return parseAttr(e.filename, attr)
}

// Expand performs one expansion: attr is the cfg_attrs attribute source and
// item is the annotated item's remaining token stream. The result is the
// rewritten attribute list followed by the item, unchanged.
//
// On error no output is produced.
func (e *Expander) Expand(attr, item string) (string, error) {
	entries, err := parseAttr(e.filename, attr)
	if err != nil {
		return "", err
	}
	if e.trace != nil {
		e.traceEntries(entries)
	}
	return emit(rewrite(entries), item), nil
}

// Expand is a convenience for a one-off expansion with a default Expander.
func Expand(attr, item string) (string, error) {
	e, err := New()
	if err != nil {
		return "", err
	}
	return e.Expand(attr, item)
}
