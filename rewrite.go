package cfgattrs

import (
	"strconv"
	"strings"
)

// rewrite maps the recognized entries onto the final attribute list, in
// entry order. Plain entries pass through verbatim; configure blocks become
// cfg_attr attributes.
func rewrite(entries []Entry) []string {
	attrs := make([]string, 0, len(entries))
	for _, entry := range entries {
		switch entry := entry.(type) {
		case *PlainAttribute:
			attrs = append(attrs, entry.Raw)
		case *ConfigureBlock:
			attrs = append(attrs, entry.cfgAttr())
		}
	}
	return attrs
}

// cfgAttr renders the block as a standard cfg_attr attribute. The comma
// always follows the predicate, so an empty body yields #[cfg_attr(P,)],
// matching the shape the original syntax expanded to by hand.
func (c *ConfigureBlock) cfgAttr() string {
	var out strings.Builder
	out.WriteString("#[cfg_attr(")
	out.WriteString(c.Predicate)
	out.WriteString(",")
	for i, attr := range c.Body {
		if i > 0 {
			out.WriteString(",")
		}
		out.WriteString(" ")
		out.WriteString(attr.Inner())
	}
	out.WriteString(")]")
	return out.String()
}

// Inner returns the attribute in the bare argument form cfg_attr expects:
// the #[...] brackets are stripped, and a doc-comment line becomes a single
// doc = "<line>" argument. A blank doc line yields doc = "", never nothing,
// preserving vertical spacing in rendered documentation.
func (p *PlainAttribute) Inner() string {
	if p.Doc {
		return "doc = " + strconv.Quote(p.DocText())
	}
	inner := strings.TrimPrefix(p.Raw, "#")
	inner = strings.TrimSpace(inner)
	inner = strings.TrimPrefix(inner, "[")
	inner = strings.TrimSuffix(inner, "]")
	return strings.TrimSpace(inner)
}

// DocText returns the text of a doc-comment line with the leading "///"
// removed. The convention's leading space is part of the text.
func (p *PlainAttribute) DocText() string {
	return strings.TrimPrefix(p.Raw, "///")
}
