package regex

import (
	"fmt"
	"sort"

	"github.com/finitary/regular"
)

// SyntaxError reports a malformed pattern, with the byte offset of the
// offending position.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Pos, e.Msg)
}

// Parse parses a regular-expression pattern into an AST. The empty
// pattern denotes ε. Parsing is a single left-to-right pass; precedence
// is union < concatenation < postfix repetition.
func Parse(pattern string) (*Tree, error) {
	if pattern == "" {
		return &Tree{nodes: []node{{op: OpEpsilon}}, root: 0}, nil
	}
	p := newParser(pattern)
	root, err := p.parseExpr(1)
	if err != nil {
		tracer().Debugf("parse %q failed: %v", pattern, err)
		return nil, err
	}
	if p.look.typ != tEOF {
		if p.look.typ == tRParen {
			return nil, &SyntaxError{Pos: p.look.pos, Msg: "unmatched ')'"}
		}
		return nil, &SyntaxError{Pos: p.look.pos, Msg: "unexpected input"}
	}
	tracer().Debugf("parsed %q into %d nodes", pattern, len(p.nodes))
	return &Tree{nodes: p.nodes, root: root}, nil
}

type parser struct {
	lex   *lexer
	look  token
	nodes []node
}

func newParser(pattern string) *parser {
	p := &parser{lex: newLexer(pattern)}
	p.look = p.lex.next()
	return p
}

func (p *parser) scan() { p.look = p.lex.next() }

func (p *parser) add(n node) NodeID {
	p.nodes = append(p.nodes, n)
	return NodeID(len(p.nodes) - 1)
}

// Binding strength of the token when seen in infix position. Tokens that
// can start an atom bind as implicit concatenation.
func precedence(t tokenType) int {
	switch t {
	case tPipe:
		return 1
	case tChar, tDot, tLParen, tLBracket:
		return 2 // implicit concatenation
	default:
		return 0
	}
}

func (p *parser) parseExpr(minPrec int) (NodeID, error) {
	// ---------- prefix: one atom ----------
	var left NodeID
	switch p.look.typ {
	case tChar:
		left = p.add(node{op: OpLiteral, sym: regular.Symbol(p.look.ch)})
		p.scan()
	case tDot:
		// wildcard = complement of the empty class wrt the alphabet
		left = p.add(node{op: OpClass, negated: true})
		p.scan()
	case tLParen:
		open := p.look.pos
		p.scan()
		inner, err := p.parseExpr(1)
		if err != nil {
			return NoNode, err
		}
		if p.look.typ != tRParen {
			return NoNode, &SyntaxError{Pos: open, Msg: "unmatched '('"}
		}
		left = inner
		p.scan()
	case tLBracket:
		var err error
		left, err = p.parseClass(p.look.pos)
		if err != nil {
			return NoNode, err
		}
	case tStar, tPlus, tQMark:
		return NoNode, &SyntaxError{Pos: p.look.pos, Msg: "repetition operator with nothing to repeat"}
	case tPipe:
		return NoNode, &SyntaxError{Pos: p.look.pos, Msg: "union operator with no operand"}
	case tErr:
		return NoNode, &SyntaxError{Pos: p.look.pos, Msg: "dangling escape"}
	case tEOF:
		return NoNode, &SyntaxError{Pos: p.look.pos, Msg: "unexpected end of pattern"}
	default:
		return NoNode, &SyntaxError{Pos: p.look.pos, Msg: "unexpected input"}
	}

	// ---------- postfix repetition (* + ?) ----------
	// Repetition of repetition ('a**') is legal and composes.
	for {
		switch p.look.typ {
		case tStar:
			left = p.add(node{op: OpStar, left: left})
		case tPlus:
			left = p.add(node{op: OpPlus, left: left})
		case tQMark:
			left = p.add(node{op: OpOptional, left: left})
		default:
			goto infix
		}
		p.scan()
	}
infix:

	// ---------- infix (concatenation, '|') ----------
	for precedence(p.look.typ) >= minPrec {
		var op Op
		var prec int
		if p.look.typ == tPipe {
			op, prec = OpUnion, 1
			p.scan() // eat '|'
		} else {
			// implicit concatenation: current token already starts the RHS
			op, prec = OpConcat, 2
		}
		right, err := p.parseExpr(prec + 1) // left-associative
		if err != nil {
			return NoNode, err
		}
		left = p.add(node{op: op, left: left, right: right})
	}

	return left, nil
}

// parseClass scans a '[...]' character class. The opening bracket has
// already been consumed; lbPos is its position, used for diagnostics.
func (p *parser) parseClass(lbPos int) (NodeID, error) {
	negated := false
	var symbols []rune

	tok := p.lex.nextInClass(true)
	if tok.typ == tCaret {
		negated = true
		tok = p.lex.nextInClass(false)
	}
	for tok.typ != tRBracket {
		switch tok.typ {
		case tEOF:
			return NoNode, &SyntaxError{Pos: lbPos, Msg: "unmatched '['"}
		case tErr:
			return NoNode, &SyntaxError{Pos: tok.pos, Msg: "dangling escape"}
		case tDash:
			// leading '-' is a literal
			symbols = append(symbols, '-')
			tok = p.lex.nextInClass(false)
		case tChar:
			lo := tok.ch
			tok = p.lex.nextInClass(false)
			if tok.typ != tDash {
				symbols = append(symbols, lo)
				continue
			}
			// range, or a trailing literal '-'
			tok = p.lex.nextInClass(false)
			switch tok.typ {
			case tChar:
				if tok.ch < lo {
					return NoNode, &SyntaxError{Pos: tok.pos, Msg: "invalid range in character class"}
				}
				for r := lo; r <= tok.ch; r++ {
					symbols = append(symbols, r)
				}
				tok = p.lex.nextInClass(false)
			case tRBracket:
				symbols = append(symbols, lo, '-')
			case tEOF:
				return NoNode, &SyntaxError{Pos: lbPos, Msg: "unmatched '['"}
			default:
				return NoNode, &SyntaxError{Pos: tok.pos, Msg: "incomplete range in character class"}
			}
		}
	}
	if len(symbols) == 0 {
		return NoNode, &SyntaxError{Pos: lbPos, Msg: "empty character class"}
	}

	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	class := make([]regular.Symbol, 0, len(symbols))
	for i, r := range symbols {
		if i > 0 && symbols[i-1] == r {
			continue
		}
		class = append(class, regular.Symbol(r))
	}
	id := p.add(node{op: OpClass, class: class, negated: negated})
	p.scan() // refill the normal-mode lookahead
	return id, nil
}
