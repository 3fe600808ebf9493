package cfgattrs

import (
	"strings"

	"github.com/attrkit/cfgattrs/lexer"
)

// parser recognizes the token stream following cfg_attrs. It is single-pass
// and fail-fast: the first malformed construct aborts the parse and no
// entries are returned.
type parser struct {
	lex *lexer.PeekingLexer
	src string
}

// parseAttr parses raw attribute source into its Entry sequence. src is the
// token stream following the cfg_attrs path: either "{ Entries }" (the
// wrapped form) or "(Predicate, Entries)" (the legacy call form).
func parseAttr(filename, src string) ([]Entry, error) {
	lx, err := lexer.LexString(filename, src)
	if err != nil {
		return nil, err
	}
	peeker, err := lexer.Upgrade(lx, lexer.WhitespaceType)
	if err != nil {
		if lerr, ok := err.(*lexer.Error); ok {
			return nil, &SyntaxError{Msg: lerr.Message, Pos: lerr.Pos}
		}
		return nil, err
	}
	p := &parser{lex: peeker, src: src}

	t := p.peek()
	switch {
	case t.EOF():
		return nil, Errorf(t.Pos, "empty cfg_attrs attribute")
	case t.Value == "{":
		p.next()
		entries, err := p.parseEntries("}", true)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect("}"); err != nil {
			return nil, err
		}
		if err := p.expectEOF(); err != nil {
			return nil, err
		}
		return entries, nil
	case t.Value == "(":
		return p.parseCallForm()
	}
	return nil, Errorf(t.Pos, `expected "{" or "(" after cfg_attrs, not %q`, t.Value)
}

// parseEntries parses entries until the stop token or EOF, leaving the stop
// token unconsumed. Commas between entries are optional and trailing commas
// are accepted.
func (p *parser) parseEntries(stop string, allowConfigure bool) ([]Entry, error) {
	entries := []Entry{}
	for {
		t := p.peek()
		switch {
		case t.EOF() || t.Value == stop:
			return entries, nil
		case t.Value == ",":
			p.next()
		case t.Type == lexer.DocCommentType:
			p.next()
			entries = append(entries, &PlainAttribute{Doc: true, Raw: t.Value, Pos: t.Pos})
		case t.Value == "#":
			entry, err := p.parseAttribute(allowConfigure)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		default:
			return nil, Errorf(t.Pos, "expected an attribute, doc comment or configure block, not %q", t.Value)
		}
	}
}

// parseAttribute parses one #[...] attribute, returning a ConfigureBlock for
// #[configure(...)] and a PlainAttribute for anything else.
func (p *parser) parseAttribute(allowConfigure bool) (Entry, error) {
	hash := p.next()
	if _, err := p.expect("["); err != nil {
		return nil, err
	}
	name := p.peek()
	if name.Type == lexer.IdentType && name.Value == "configure" {
		if !allowConfigure {
			return nil, &UnsupportedNestingError{Pos: hash.Pos}
		}
		return p.parseConfigure(hash)
	}
	return p.parsePlain(hash)
}

// parsePlain captures a balanced #[...] attribute verbatim. The token stream
// is never interpreted beyond bracket matching; strings lex as single tokens
// so brackets inside them cannot unbalance the capture.
func (p *parser) parsePlain(hash lexer.Token) (*PlainAttribute, error) {
	depth := 1
	var last lexer.Token
	for depth > 0 {
		t := p.next()
		if t.EOF() {
			return nil, Errorf(hash.Pos, `unbalanced "[" in attribute`)
		}
		switch t.Value {
		case "[":
			depth++
		case "]":
			depth--
		}
		last = t
	}
	return &PlainAttribute{
		Raw: p.src[hash.Pos.Offset:last.EndOffset()],
		Pos: hash.Pos,
	}, nil
}

// parseConfigure parses #[configure(predicate, attrs...)] with the leading
// "#[" already consumed.
func (p *parser) parseConfigure(hash lexer.Token) (Entry, error) {
	p.next() // "configure"
	if t := p.peek(); t.Value != "(" {
		return nil, Errorf(t.Pos, "configure requires a parenthesised predicate")
	}
	p.next()
	predicate, err := p.parsePredicate(")")
	if err != nil {
		return nil, err
	}
	body := []*PlainAttribute{}
loop:
	for {
		t := p.peek()
		switch {
		case t.EOF():
			return nil, Errorf(hash.Pos, `unbalanced "(" in configure block`)
		case t.Value == ")":
			p.next()
			break loop
		case t.Value == ",":
			p.next()
		case t.Type == lexer.DocCommentType:
			p.next()
			body = append(body, &PlainAttribute{Doc: true, Raw: t.Value, Pos: t.Pos})
		case t.Value == "#":
			entry, err := p.parseAttribute(false)
			if err != nil {
				return nil, err
			}
			body = append(body, entry.(*PlainAttribute))
		default:
			return nil, Errorf(t.Pos, "expected an attribute or doc comment in configure body, not %q", t.Value)
		}
	}
	if _, err := p.expect("]"); err != nil {
		return nil, err
	}
	return &ConfigureBlock{Predicate: predicate, Body: body, Pos: hash.Pos}, nil
}

// parsePredicate captures the opaque predicate token sequence up to the comma
// separating it from the attribute list. Commas nested inside delimiters
// belong to the predicate.
func (p *parser) parsePredicate(stop string) (string, error) {
	var first, last lexer.Token
	seen := false
	depth := 0
	for {
		t := p.peek()
		if t.EOF() {
			return "", Errorf(t.Pos, "unbalanced delimiters in configure predicate")
		}
		if depth == 0 {
			if t.Value == "," {
				if !seen {
					return "", Errorf(t.Pos, "missing configure predicate")
				}
				p.next()
				return strings.TrimSpace(p.src[first.Pos.Offset:last.EndOffset()]), nil
			}
			if t.Value == stop {
				if !seen {
					return "", Errorf(t.Pos, "missing configure predicate")
				}
				return "", Errorf(t.Pos, `expected "," after configure predicate`)
			}
		}
		switch t.Value {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		}
		if depth < 0 {
			return "", Errorf(t.Pos, "unbalanced %q in configure predicate", t.Value)
		}
		p.next()
		if !seen {
			first = t
			seen = true
		}
		last = t
	}
}

// parseCallForm parses the legacy cfg_attrs(predicate, attrs) and
// cfg_attrs(predicate, { attrs }) forms. The whole body becomes a single
// implicit configure block under the outer predicate, so a #[configure(...)]
// inside it would nest predicates and is rejected.
func (p *parser) parseCallForm() ([]Entry, error) {
	open := p.next() // "("
	predicate, err := p.parsePredicate(")")
	if err != nil {
		return nil, err
	}
	braced := false
	stop := ")"
	if t := p.peek(); t.Value == "{" {
		braced = true
		stop = "}"
		p.next()
	}
	entries, err := p.parseEntries(stop, false)
	if err != nil {
		return nil, err
	}
	if braced {
		if _, err := p.expect("}"); err != nil {
			return nil, err
		}
		if t := p.peek(); t.Value == "," {
			p.next()
		}
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	body := make([]*PlainAttribute, len(entries))
	for i, entry := range entries {
		body[i] = entry.(*PlainAttribute)
	}
	return []Entry{&ConfigureBlock{Predicate: predicate, Body: body, Pos: open.Pos}}, nil
}

func (p *parser) peek() lexer.Token {
	t, _ := p.lex.Peek(0)
	return t
}

func (p *parser) next() lexer.Token {
	t, _ := p.lex.Next()
	return t
}

func (p *parser) expect(value string) (lexer.Token, error) {
	t := p.next()
	if t.EOF() {
		return t, Errorf(t.Pos, "unexpected end of input, expected %q", value)
	}
	if t.Value != value {
		return t, Errorf(t.Pos, "expected %q, not %q", value, t.Value)
	}
	return t, nil
}

func (p *parser) expectEOF() error {
	if t := p.peek(); !t.EOF() {
		return Errorf(t.Pos, "unexpected %q after cfg_attrs body", t.Value)
	}
	return nil
}
