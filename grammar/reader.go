package grammar

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/finitary/regular"
)

// Token types of the grammar notation.
const (
	tokNonterminal = iota
	tokTerminal
	tokArrow
	tokPipe
	tokEpsilon
	tokNewline
)

var (
	lexOnce sync.Once
	lex     *lexmachine.Lexer
)

// notationLexer compiles the lexmachine DFA for the grammar notation.
// The patterns are fixed, so a compile failure is a programming error.
func notationLexer() *lexmachine.Lexer {
	lexOnce.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte(`->`), makeToken(tokArrow))
		l.Add([]byte(`\|`), makeToken(tokPipe))
		l.Add([]byte(`ε|eps`), makeToken(tokEpsilon))
		l.Add([]byte(`[A-Z][a-zA-Z0-9_]*`), makeToken(tokNonterminal))
		l.Add([]byte(`[a-z0-9]`), makeToken(tokTerminal))
		l.Add([]byte(`\n`), makeToken(tokNewline))
		l.Add([]byte(`[ \t\r]+`), skip)
		l.Add([]byte(`#[^\n]*`), skip)
		if err := l.Compile(); err != nil {
			panic(fmt.Sprintf("cannot compile grammar notation lexer: %v", err))
		}
		lex = l
	})
	return lex
}

// skip is a scanner action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a scanner action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// Read parses a grammar from its textual notation. Rules are written
// one per line, alternatives separated by '|':
//
//	S -> a S | b T | ε
//	T -> b
//
// Nonterminals start with an uppercase letter, terminals are single
// lowercase letters or digits, and 'ε' (or the keyword 'eps') denotes
// the empty word. Text from '#' to the end of the line is a comment.
// The first left-hand side becomes the start nonterminal. Whether the
// grammar is right- or left-linear is inferred from the first
// two-symbol alternative; mixing both forms is an error.
func Read(name, src string) (*Grammar, error) {
	s, err := notationLexer().Scanner([]byte(src))
	if err != nil {
		return nil, err
	}
	var toks []*lexmachine.Token
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			lo, hi := ui.StartTC, ui.FailTC
			if lo > hi { // the scanner may report a failure offset before the token start
				lo, hi = hi, lo
			}
			span := regular.Span{uint64(lo), uint64(hi)}
			return nil, formErrorf("line %d: unexpected input %q at %v",
				ui.StartLine, string(ui.Text[lo:hi]), span)
		} else if err != nil {
			return nil, err
		}
		toks = append(toks, tok.(*lexmachine.Token))
	}
	tracer().Debugf("grammar notation: scanned %d tokens", len(toks))
	return parseRules(name, toks)
}

// parseRules turns the token stream into productions, line by line.
func parseRules(name string, toks []*lexmachine.Token) (*Grammar, error) {
	b := NewBuilder(name)
	kindKnown := false
	i := 0
	for i < len(toks) {
		if toks[i].Type == tokNewline { // blank line
			i++
			continue
		}
		if toks[i].Type != tokNonterminal {
			return nil, formErrorf("line %d: rule must start with a nonterminal, have %q",
				toks[i].StartLine, string(toks[i].Lexeme))
		}
		lhs := string(toks[i].Lexeme)
		i++
		if i >= len(toks) || toks[i].Type != tokArrow {
			return nil, formErrorf("line %d: expected '->' after %q", toks[i-1].StartLine, lhs)
		}
		i++
		for { // alternatives of this rule
			var alt []*lexmachine.Token
			for i < len(toks) && toks[i].Type != tokPipe && toks[i].Type != tokNewline {
				alt = append(alt, toks[i])
				i++
			}
			if err := buildAlternative(b, lhs, alt, &kindKnown); err != nil {
				return nil, err
			}
			if i < len(toks) && toks[i].Type == tokPipe {
				i++
				continue
			}
			break
		}
		if i < len(toks) { // consume the newline
			i++
		}
	}
	return b.Grammar()
}

// buildAlternative feeds one alternative of a rule into the builder.
// The first two-symbol alternative fixes the grammar's linear form.
func buildAlternative(b *Builder, lhs string, alt []*lexmachine.Token, kindKnown *bool) error {
	r := b.LHS(lhs)
	switch {
	case len(alt) == 1 && alt[0].Type == tokEpsilon:
		r.Epsilon()
	case len(alt) == 1 && alt[0].Type == tokTerminal:
		r.T(terminalOf(alt[0])).End()
	case len(alt) == 2 && alt[0].Type == tokTerminal && alt[1].Type == tokNonterminal:
		if err := fixKind(b, RightLinear, kindKnown, alt[0].StartLine); err != nil {
			return err
		}
		r.T(terminalOf(alt[0])).N(string(alt[1].Lexeme)).End()
	case len(alt) == 2 && alt[0].Type == tokNonterminal && alt[1].Type == tokTerminal:
		if err := fixKind(b, LeftLinear, kindKnown, alt[0].StartLine); err != nil {
			return err
		}
		r.N(string(alt[0].Lexeme)).T(terminalOf(alt[1])).End()
	default:
		line := 0
		if len(alt) > 0 {
			line = alt[0].StartLine
		}
		return formErrorf("line %d: alternative for %q is not a linear form", line, lhs)
	}
	return nil
}

func fixKind(b *Builder, kind Kind, kindKnown *bool, line int) error {
	if !*kindKnown {
		*kindKnown = true
		if kind == LeftLinear {
			b.LeftLinear()
		}
		return nil
	}
	if b.kind != kind {
		return formErrorf("line %d: grammar mixes right- and left-linear productions", line)
	}
	return nil
}

func terminalOf(tok *lexmachine.Token) regular.Symbol {
	return regular.Symbol([]rune(string(tok.Lexeme))[0])
}
