package lexer

import (
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// EBNF creates a lexer Definition from an EBNF grammar.
//
// The EBNF grammar syntax is as defined by "golang.org/x/exp/ebnf". Each name in
// "roots" must be a capitalised production; these are exported as token symbols
// and are tried in the given order when lexing, so earlier roots win when two
// productions share a prefix (eg. a "///" doc comment versus a "/" punctuation
// character). Lower-case productions are helpers and produce no tokens.
//
// The lexer buffers its input and backtracks on a failed match, so productions
// do not need to be distinguishable by their first rune.
//
// Here's an example grammar for lexing whitespace and identifiers:
//
// 		Identifier = alpha { alpha | number } .
//		Whitespace = "\n" | "\r" | "\t" | " " .
//		alpha = "a"…"z" | "A"…"Z" | "_" .
//		number = "0"…"9" .
func EBNF(grammar string, roots ...string) (Definition, error) {
	ast, err := ebnf.Parse("<grammar>", strings.NewReader(grammar))
	if err != nil {
		return nil, err
	}
	for _, production := range ast {
		if err = validate(ast, production); err != nil {
			return nil, err
		}
	}
	symbols := map[string]rune{
		"EOF": EOF,
	}
	rn := EOF - 1
	for _, root := range roots {
		production, ok := ast[root]
		if !ok {
			return nil, Errorf(Position{}, "unknown root production %q", root)
		}
		ch := root[0:1]
		if strings.ToUpper(ch) != ch {
			return nil, Errorf(Position(production.Pos()), "root production %q must be capitalised", root)
		}
		symbols[root] = rn
		rn--
	}
	return &ebnfDefinition{
		grammar: ast,
		roots:   roots,
		symbols: symbols,
	}, nil
}

type ebnfDefinition struct {
	grammar ebnf.Grammar
	roots   []string
	symbols map[string]rune
}

func (d *ebnfDefinition) Symbols() map[string]rune {
	return d.symbols
}

func (d *ebnfDefinition) Lex(filename string, r io.Reader) (Lexer, error) {
	input, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, input)
}

func (d *ebnfDefinition) LexString(filename string, input string) (Lexer, error) {
	return &ebnfLexer{
		def:   d,
		runes: []rune(input),
		pos: Position{
			Filename: filename,
			Line:     1,
			Column:   1,
		},
	}, nil
}

type ebnfLexer struct {
	def    *ebnfDefinition
	runes  []rune
	cursor int
	pos    Position
}

// checkpoint captures the lexer state so a failed match can rewind.
type checkpoint struct {
	cursor int
	pos    Position
}

func (e *ebnfLexer) Next() (Token, error) {
	if e.peek() == EOF {
		return EOFToken(e.pos), nil
	}
	pos := e.pos
	start := e.cursor
	for _, root := range e.def.roots {
		if e.match(e.def.grammar[root].Expr) && e.cursor > start {
			return Token{
				Type:  e.def.symbols[root],
				Value: string(e.runes[start:e.cursor]),
				Pos:   pos,
			}, nil
		}
		// Zero-width matches count as failures.
		e.restore(checkpoint{cursor: start, pos: pos})
	}
	return Token{}, Errorf(pos, "no lexical rule matches %q", e.peek())
}

func (e *ebnfLexer) match(expr ebnf.Expression) bool {
	switch n := expr.(type) {
	case ebnf.Alternative:
		for _, an := range n {
			if e.match(an) {
				return true
			}
		}
		return false

	case *ebnf.Group:
		return e.match(n.Body)

	case *ebnf.Name:
		return e.match(e.def.grammar[n.String].Expr)

	case *ebnf.Option:
		e.match(n.Body)
		return true

	case *ebnf.Range:
		start, _ := utf8.DecodeRuneInString(n.Begin.String)
		end, _ := utf8.DecodeRuneInString(n.End.String)
		rn := e.peek()
		if rn == EOF || rn < start || rn > end {
			return false
		}
		e.read()
		return true

	case *ebnf.Repetition:
		for {
			mark := e.cursor
			if !e.match(n.Body) || e.cursor == mark {
				return true
			}
		}

	case ebnf.Sequence:
		save := e.save()
		for _, sn := range n {
			if !e.match(sn) {
				e.restore(save)
				return false
			}
		}
		return true

	case *ebnf.Token:
		save := e.save()
		for _, rn := range n.String {
			if e.read() != rn {
				e.restore(save)
				return false
			}
		}
		return true

	case nil:
		return e.peek() == EOF
	}
	return false
}

func (e *ebnfLexer) save() checkpoint {
	return checkpoint{cursor: e.cursor, pos: e.pos}
}

func (e *ebnfLexer) restore(c checkpoint) {
	e.cursor = c.cursor
	e.pos = c.pos
}

func (e *ebnfLexer) peek() rune {
	if e.cursor >= len(e.runes) {
		return EOF
	}
	return e.runes[e.cursor]
}

func (e *ebnfLexer) read() rune {
	if e.cursor >= len(e.runes) {
		return EOF
	}
	rn := e.runes[e.cursor]
	e.cursor++
	e.pos.Offset += utf8.RuneLen(rn)
	if rn == '\n' {
		e.pos.Line++
		e.pos.Column = 1
	} else {
		e.pos.Column++
	}
	return rn
}

// Validate the grammar against the lexer rules.
func validate(grammar ebnf.Grammar, expr ebnf.Expression) error { // nolint: gocyclo
	switch n := expr.(type) {
	case *ebnf.Production:
		return validate(grammar, n.Expr)

	case ebnf.Alternative:
		for _, e := range n {
			if err := validate(grammar, e); err != nil {
				return err
			}
		}
		return nil

	case *ebnf.Group:
		return validate(grammar, n.Body)

	case *ebnf.Name:
		if grammar[n.String] == nil {
			return Errorf(Position(n.Pos()), "unknown production %q", n.String)
		}
		return nil

	case *ebnf.Option:
		return validate(grammar, n.Body)

	case *ebnf.Range:
		if utf8.RuneCountInString(n.Begin.String) != 1 {
			return Errorf(Position(n.Pos()), "start of range must be a single rune")
		}
		if utf8.RuneCountInString(n.End.String) != 1 {
			return Errorf(Position(n.Pos()), "end of range must be a single rune")
		}
		return nil

	case *ebnf.Repetition:
		return validate(grammar, n.Body)

	case ebnf.Sequence:
		for _, e := range n {
			if err := validate(grammar, e); err != nil {
				return err
			}
		}
		return nil

	case *ebnf.Token:
		return nil

	case nil:
		return nil
	}
	return Errorf(Position(expr.Pos()), "unknown EBNF expression %T", expr)
}
