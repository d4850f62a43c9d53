package regex

import (
	"unicode/utf8"
)

type tokenType int

const (
	tEOF      tokenType = iota
	tChar               // literal rune (possibly escaped)
	tLParen             // (
	tRParen             // )
	tStar               // *
	tPlus               // +
	tQMark              // ?
	tPipe               // |
	tDot                // . wildcard
	tLBracket           // [ opens a character class
	tRBracket           // ] closes a character class
	tDash               // - inside a class
	tCaret              // ^ right after [
	tErr                // lexical error (dangling escape)
)

type token struct {
	typ tokenType
	ch  rune // for tChar
	pos int  // byte offset of the token start
}

type lexer struct {
	input string
	pos   int
}

func newLexer(s string) *lexer { return &lexer{input: s} }

// next scans the next token outside of a character class.
func (l *lexer) next() token {
	start := l.pos
	if l.pos >= len(l.input) {
		return token{typ: tEOF, pos: start}
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	switch r {
	case '(':
		return token{typ: tLParen, pos: start}
	case ')':
		return token{typ: tRParen, pos: start}
	case '*':
		return token{typ: tStar, pos: start}
	case '+':
		return token{typ: tPlus, pos: start}
	case '?':
		return token{typ: tQMark, pos: start}
	case '|':
		return token{typ: tPipe, pos: start}
	case '.':
		return token{typ: tDot, pos: start}
	case '[':
		return token{typ: tLBracket, pos: start}
	case '\\':
		return l.escaped(start)
	default:
		return token{typ: tChar, ch: r, pos: start}
	}
}

// nextInClass scans the next token inside '[...]', where most
// metacharacters lose their meaning.
func (l *lexer) nextInClass(first bool) token {
	start := l.pos
	if l.pos >= len(l.input) {
		return token{typ: tEOF, pos: start}
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	switch r {
	case ']':
		return token{typ: tRBracket, pos: start}
	case '-':
		return token{typ: tDash, pos: start}
	case '^':
		if first {
			return token{typ: tCaret, pos: start}
		}
		return token{typ: tChar, ch: r, pos: start}
	case '\\':
		return l.escaped(start)
	default:
		return token{typ: tChar, ch: r, pos: start}
	}
}

// escaped consumes the rune after a backslash and yields it as a literal.
// A backslash at the end of the input is a lexical error.
func (l *lexer) escaped(start int) token {
	if l.pos >= len(l.input) {
		return token{typ: tErr, pos: start}
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	return token{typ: tChar, ch: r, pos: start}
}
