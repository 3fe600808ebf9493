package cfgattrs

import (
	"strings"
	"unicode/utf8"

	"github.com/attrkit/cfgattrs/lexer"
)

// ExpandSource rewrites every #[cfg_attrs ...] attribute in src, leaving all
// other text byte-identical. This is what a compiler host does per annotated
// item; here every annotated item in the text is expanded in one pass, each
// independently. A free-standing #[configure(...)] outside a cfg_attrs
// wrapper is a syntax error.
//
// On error no output is produced.
func (e *Expander) ExpandSource(src string) (string, error) {
	var out strings.Builder
	i := 0
	for i < len(src) {
		switch {
		case strings.HasPrefix(src[i:], "//"):
			j := strings.IndexByte(src[i:], '\n')
			if j < 0 {
				j = len(src) - i
			} else {
				j++
			}
			out.WriteString(src[i : i+j])
			i += j
		case strings.HasPrefix(src[i:], "/*"):
			j := strings.Index(src[i+2:], "*/")
			if j < 0 {
				j = len(src) - i
			} else {
				j += 4
			}
			out.WriteString(src[i : i+j])
			i += j
		case src[i] == '"':
			j := skipString(src, i)
			out.WriteString(src[i:j])
			i = j
		case src[i] == '\'':
			j := skipCharLiteral(src, i)
			out.WriteString(src[i:j])
			i = j
		case src[i] == '#':
			name, attrStart, attrEnd, ok := matchAttribute(src, i)
			switch {
			case ok && name == "cfg_attrs":
				expanded, err := e.expandAt(src, attrStart, attrEnd)
				if err != nil {
					return "", err
				}
				out.WriteString(expanded)
				i = attrEnd + 1
			case ok && name == "configure":
				return "", Errorf(positionAt(e.filename, src, i),
					"configure is only valid inside a cfg_attrs wrapper")
			default:
				// Not ours. Copy the "#" and let the scan continue into the
				// attribute's contents.
				out.WriteByte(src[i])
				i++
			}
		default:
			out.WriteByte(src[i])
			i++
		}
	}
	return out.String(), nil
}

// ExpandSource is a convenience for expanding a whole source text with a
// default Expander.
func ExpandSource(filename, src string) (string, error) {
	e, err := New(Filename(filename))
	if err != nil {
		return "", err
	}
	return e.ExpandSource(src)
}

// expandAt expands the cfg_attrs attribute whose argument tokens span
// src[attrStart:attrEnd], returning the replacement text for the whole
// #[cfg_attrs ...] span.
func (e *Expander) expandAt(src string, attrStart, attrEnd int) (string, error) {
	base := positionAt(e.filename, src, attrStart)
	entries, err := parseAttr(e.filename, src[attrStart:attrEnd])
	if err != nil {
		return "", adjustError(err, base)
	}
	if e.trace != nil {
		e.traceEntries(entries)
	}
	return strings.Join(rewrite(entries), "\n"), nil
}

// matchAttribute reports whether src[i:] starts an attribute, returning its
// path name and the span of its argument tokens (everything between the name
// and the closing "]"). The balanced scan is comment- and string-aware so a
// "]" inside a doc comment or string cannot end the attribute early.
func matchAttribute(src string, i int) (name string, attrStart, attrEnd int, ok bool) {
	j := skipSpace(src, i+1)
	if j >= len(src) || src[j] != '[' {
		return "", 0, 0, false
	}
	j = skipSpace(src, j+1)
	start := j
	for j < len(src) && isIdentChar(src[j]) {
		j++
	}
	if j == start {
		return "", 0, 0, false
	}
	name = src[start:j]
	attrStart = j
	depth := 1
	for k := j; k < len(src); {
		switch {
		case strings.HasPrefix(src[k:], "//"):
			n := strings.IndexByte(src[k:], '\n')
			if n < 0 {
				k = len(src)
			} else {
				k += n + 1
			}
		case strings.HasPrefix(src[k:], "/*"):
			n := strings.Index(src[k+2:], "*/")
			if n < 0 {
				k = len(src)
			} else {
				k += n + 4
			}
		case src[k] == '"':
			k = skipString(src, k)
		case src[k] == '\'':
			k = skipCharLiteral(src, k)
		case src[k] == '[':
			depth++
			k++
		case src[k] == ']':
			depth--
			if depth == 0 {
				return name, attrStart, k, true
			}
			k++
		default:
			k++
		}
	}
	return "", 0, 0, false
}

func skipSpace(src string, i int) int {
	for i < len(src) {
		switch src[i] {
		case ' ', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

func skipString(src string, i int) int {
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case '"':
			return j + 1
		}
	}
	return len(src)
}

// skipCharLiteral skips a character literal. A lone "'" (eg. a lifetime)
// advances one byte so the quote cannot start a bogus literal.
func skipCharLiteral(src string, i int) int {
	j := i + 1
	if j >= len(src) {
		return j
	}
	if src[j] == '\\' {
		for j++; j < len(src); j++ {
			if src[j] == '\'' {
				return j + 1
			}
			if src[j] == '\n' {
				return j
			}
		}
		return j
	}
	_, n := utf8.DecodeRuneInString(src[j:])
	j += n
	if j < len(src) && src[j] == '\'' {
		return j + 1
	}
	return i + 1
}

func isIdentChar(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// positionAt computes the line/column position of a byte offset in src.
func positionAt(filename, src string, offset int) lexer.Position {
	pos := lexer.Position{Filename: filename, Offset: offset, Line: 1, Column: 1}
	for _, rn := range src[:offset] {
		if rn == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// adjustError rebases an error's position, reported relative to an attribute
// substring, onto the enclosing source text.
func adjustError(err error, base lexer.Position) error {
	switch err := err.(type) {
	case *SyntaxError:
		return &SyntaxError{Msg: err.Msg, Pos: rebase(base, err.Pos)}
	case *UnsupportedNestingError:
		return &UnsupportedNestingError{Pos: rebase(base, err.Pos)}
	}
	return err
}

func rebase(base, pos lexer.Position) lexer.Position {
	out := pos
	out.Filename = base.Filename
	out.Offset += base.Offset
	out.Line += base.Line - 1
	if pos.Line == 1 {
		out.Column += base.Column - 1
	}
	return out
}
