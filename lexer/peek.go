package lexer

// PeekingLexer supports arbitrary lookahead as well as cloning.
type PeekingLexer struct {
	cursor int
	eof    Token
	tokens []Token
	elide  map[rune]bool
}

var _ Lexer = &PeekingLexer{}

// Upgrade a Lexer to a PeekingLexer with arbitrary lookahead.
//
// "elide" is a slice of token types to elide from processing.
func Upgrade(lex Lexer, elide ...rune) (*PeekingLexer, error) {
	p := &PeekingLexer{
		elide: make(map[rune]bool, len(elide)),
	}
	for _, rn := range elide {
		p.elide[rn] = true
	}
	for {
		t, err := lex.Next()
		if err != nil {
			return p, err
		}
		if t.EOF() {
			p.eof = t
			break
		}
		p.tokens = append(p.tokens, t)
	}
	return p, nil
}

// Cursor position in tokens, including elided tokens.
func (p *PeekingLexer) Cursor() int {
	return p.cursor
}

// Next consumes and returns the next token.
func (p *PeekingLexer) Next() (Token, error) {
	for p.cursor < len(p.tokens) {
		t := p.tokens[p.cursor]
		p.cursor++
		if p.elide[t.Type] {
			continue
		}
		return t, nil
	}
	return p.eof, nil
}

// Peek ahead at the n+1 token. eg. Peek(0) will peek at the next token.
func (p *PeekingLexer) Peek(n int) (Token, error) {
	for i := p.cursor; i < len(p.tokens); i++ {
		t := p.tokens[i]
		if p.elide[t.Type] {
			continue
		}
		if n == 0 {
			return t, nil
		}
		n--
	}
	return p.eof, nil
}

// Clone creates a clone of this PeekingLexer at its current token.
//
// The parent and clone are completely independent.
func (p *PeekingLexer) Clone() *PeekingLexer {
	clone := *p
	return &clone
}
