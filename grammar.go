package cfgattrs

import (
	"fmt"

	"github.com/attrkit/cfgattrs/lexer"
)

// An Entry is one element of a cfg_attrs body: either an attribute passed
// through unchanged, or a configure block to be rewritten into a cfg_attr
// attribute. Entry order is emission order.
type Entry interface {
	// Position of the entry in the attribute source.
	Position() lexer.Position
	String() string
	entry()
}

// PlainAttribute is a passthrough entry: a single #[...] attribute, or a
// single doc-comment line (one line of a multi-line doc comment is one
// PlainAttribute).
type PlainAttribute struct {
	// Doc is true if this is a doc-comment line.
	Doc bool
	// Raw is the exact source text of the attribute, including the #[...] or
	// /// delimiters.
	Raw string
	Pos lexer.Position
}

func (*PlainAttribute) entry() {}

func (p *PlainAttribute) Position() lexer.Position { return p.Pos }

func (p *PlainAttribute) String() string { return p.Raw }

// ConfigureBlock is a configure(predicate, attrs...) entry. The predicate is
// an opaque token sequence, copied verbatim into the rewritten attribute and
// never interpreted. Body order is preserved in the rewritten argument list.
type ConfigureBlock struct {
	Predicate string
	Body      []*PlainAttribute
	Pos       lexer.Position
}

func (*ConfigureBlock) entry() {}

func (c *ConfigureBlock) Position() lexer.Position { return c.Pos }

func (c *ConfigureBlock) String() string {
	out := fmt.Sprintf("#[configure(%s", c.Predicate)
	for _, attr := range c.Body {
		out += ", " + attr.Raw
	}
	return out + ")]"
}
