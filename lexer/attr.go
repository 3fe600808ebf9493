package lexer

// attrGrammar is the lexical grammar of the cfg_attrs attribute language.
//
// Doc comments lex as one token per source line, which is what lets the
// rewriter emit one doc argument per line. Predicates, attribute paths and
// arguments all decompose into Ident/Number/String/Punct tokens; their meaning
// is never interpreted here.
const attrGrammar = `
DocComment = "///" { linechar } .
Ident = alpha { alpha | digit } .
Number = digit { digit } .
String = "\"" { strchar | escape } "\"" .
Whitespace = space { space } .
Punct = "#" | "[" | "]" | "(" | ")" | "{" | "}" | "," | "=" | ":" | ";" | "." | "-" | "!" | "&" | "|" | "<" | ">" | "*" | "/" | "?" | "'" | "@" | "+" | "%" | "^" | "~" | "$" .

alpha = "a"…"z" | "A"…"Z" | "_" .
digit = "0"…"9" .
space = " " | "\t" | "\n" | "\r" .
linechar = "\t" | " "…"\U0010FFFF" .
strchar = "\t" | " " | "!" | "#"…"[" | "]"…"\U0010FFFF" .
escape = "\\" linechar .
`

// Attribute is the lexical Definition for the cfg_attrs attribute language.
//
// DocComment is listed ahead of Punct so that "///" is never lexed as three
// slashes.
var Attribute = Must(EBNF(attrGrammar,
	"DocComment", "Ident", "Number", "String", "Whitespace", "Punct"))

// Token types produced by Attribute.
var (
	attrSymbols = Attribute.Symbols()

	DocCommentType = attrSymbols["DocComment"]
	IdentType      = attrSymbols["Ident"]
	NumberType     = attrSymbols["Number"]
	StringType     = attrSymbols["String"]
	WhitespaceType = attrSymbols["Whitespace"]
	PunctType      = attrSymbols["Punct"]
)

// LexString lexes attribute source with the Attribute definition.
func LexString(filename, input string) (Lexer, error) {
	return Attribute.(StringDefinition).LexString(filename, input)
}
