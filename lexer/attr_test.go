package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexAttribute(t *testing.T) {
	lex, err := LexString("", `#[foo] /// doc`)
	require.NoError(t, err)
	actual, err := ConsumeAll(lex)
	require.NoError(t, err)
	expected := []Token{
		{Type: PunctType, Value: "#", Pos: Position{Offset: 0, Line: 1, Column: 1}},
		{Type: PunctType, Value: "[", Pos: Position{Offset: 1, Line: 1, Column: 2}},
		{Type: IdentType, Value: "foo", Pos: Position{Offset: 2, Line: 1, Column: 3}},
		{Type: PunctType, Value: "]", Pos: Position{Offset: 5, Line: 1, Column: 6}},
		{Type: WhitespaceType, Value: " ", Pos: Position{Offset: 6, Line: 1, Column: 7}},
		{Type: DocCommentType, Value: "/// doc", Pos: Position{Offset: 7, Line: 1, Column: 8}},
		EOFToken(Position{Offset: 14, Line: 1, Column: 15}),
	}
	require.Equal(t, expected, actual)
}

func TestLexDocCommentStopsAtNewline(t *testing.T) {
	lex, err := LexString("", "/// a\n/// b")
	require.NoError(t, err)
	actual, err := ConsumeAll(lex)
	require.NoError(t, err)
	expected := []Token{
		{Type: DocCommentType, Value: "/// a", Pos: Position{Offset: 0, Line: 1, Column: 1}},
		{Type: WhitespaceType, Value: "\n", Pos: Position{Offset: 5, Line: 1, Column: 6}},
		{Type: DocCommentType, Value: "/// b", Pos: Position{Offset: 6, Line: 2, Column: 1}},
		EOFToken(Position{Offset: 11, Line: 2, Column: 6}),
	}
	require.Equal(t, expected, actual)
}

func TestLexBlankDocComment(t *testing.T) {
	lex, err := LexString("", "///")
	require.NoError(t, err)
	tok, err := lex.Next()
	require.NoError(t, err)
	require.Equal(t, DocCommentType, tok.Type)
	require.Equal(t, "///", tok.Value)
}

func TestLexStringEscapes(t *testing.T) {
	lex, err := LexString("", `"a\"b"`)
	require.NoError(t, err)
	tok, err := lex.Next()
	require.NoError(t, err)
	require.Equal(t, StringType, tok.Type)
	require.Equal(t, `"a\"b"`, tok.Value)
}

func TestLexSlashIsPunct(t *testing.T) {
	// A lone "/" must not be mistaken for the start of a doc comment.
	lex, err := LexString("", "a/b")
	require.NoError(t, err)
	actual, err := ConsumeAll(lex)
	require.NoError(t, err)
	require.Equal(t, []rune{IdentType, PunctType, IdentType, EOF},
		[]rune{actual[0].Type, actual[1].Type, actual[2].Type, actual[3].Type})
	require.Equal(t, "/", actual[1].Value)
}

func TestLexPredicateTokens(t *testing.T) {
	lex, err := LexString("", `all(unix, feature = "magic")`)
	require.NoError(t, err)
	actual, err := ConsumeAll(lex)
	require.NoError(t, err)
	values := []string{}
	for _, tok := range actual {
		if tok.Type != WhitespaceType && !tok.EOF() {
			values = append(values, tok.Value)
		}
	}
	require.Equal(t, []string{"all", "(", "unix", ",", "feature", "=", `"magic"`, ")"}, values)
}

func TestLexUnsupportedRune(t *testing.T) {
	lex, err := LexString("", "`")
	require.NoError(t, err)
	_, err = lex.Next()
	require.Error(t, err)
	require.Contains(t, err.Error(), "no lexical rule matches")
}

func TestLexUnterminatedString(t *testing.T) {
	lex, err := LexString("", "\"oops\n")
	require.NoError(t, err)
	_, err = lex.Next()
	require.Error(t, err)
}

func TestAttributeSymbols(t *testing.T) {
	names := SymbolsByRune(Attribute)
	require.Equal(t, "DocComment", names[DocCommentType])
	require.Equal(t, "Ident", names[IdentType])
	require.Equal(t, "Punct", names[PunctType])
	require.Equal(t, "EOF", names[EOF])
}
