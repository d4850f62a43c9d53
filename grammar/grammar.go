package grammar

import (
	"fmt"
	"strings"

	"github.com/finitary/regular"
)

// Kind distinguishes the two linear grammar forms.
type Kind int

const (
	RightLinear Kind = iota // A → aB, A → a, A → ε
	LeftLinear              // A → Ba, A → a, A → ε
)

func (k Kind) String() string {
	if k == LeftLinear {
		return "left-linear"
	}
	return "right-linear"
}

// FormError reports a grammar violating the regular (linear) form, or
// referencing undeclared symbols.
type FormError struct {
	Msg string
}

func (e *FormError) Error() string {
	return "grammar form error: " + e.Msg
}

func formErrorf(format string, args ...interface{}) *FormError {
	return &FormError{Msg: fmt.Sprintf(format, args...)}
}

// Production is a single rule of a regular grammar. Terminal is
// regular.Epsilon and RHS is empty for an ε-production; RHS is empty
// for a terminal production A → a.
type Production struct {
	LHS      string
	Terminal regular.Symbol
	RHS      string
}

// IsEpsilon reports whether the production is A → ε.
func (p Production) IsEpsilon() bool {
	return p.Terminal == regular.Epsilon && p.RHS == ""
}

// HasNonterminal reports whether the production carries a successor
// nonterminal.
func (p Production) HasNonterminal() bool {
	return p.RHS != ""
}

// Grammar is a validated regular grammar: a finite set of nonterminals,
// a start nonterminal, a terminal alphabet, and linear productions.
// Grammars are immutable once built.
type Grammar struct {
	name         string
	kind         Kind
	nonterminals []string // insertion order
	declared     map[string]bool
	terminals    regular.Alphabet
	prods        []Production
	start        string
}

// newGrammar validates the raw parts into a grammar.
func newGrammar(name string, kind Kind, nonterminals []string, terminals regular.Alphabet,
	prods []Production, start string) (*Grammar, error) {
	//
	declared := make(map[string]bool, len(nonterminals))
	for _, nt := range nonterminals {
		declared[nt] = true
	}
	if !declared[start] {
		return nil, formErrorf("start nonterminal %q is undeclared", start)
	}
	for _, nt := range nonterminals {
		r := []rune(nt)
		if len(r) == 1 && terminals.Contains(regular.Symbol(r[0])) {
			return nil, formErrorf("nonterminal %q collides with a terminal", nt)
		}
	}
	for _, p := range prods {
		if !declared[p.LHS] {
			return nil, formErrorf("left side %q is not a declared nonterminal", p.LHS)
		}
		if p.RHS != "" && !declared[p.RHS] {
			return nil, formErrorf("nonterminal %q on the right side is undeclared", p.RHS)
		}
		if p.Terminal == regular.Epsilon && p.RHS != "" {
			return nil, formErrorf("%s-linear production %q → %q lacks a terminal", kind, p.LHS, p.RHS)
		}
		if p.Terminal != regular.Epsilon && !terminals.Contains(p.Terminal) {
			return nil, formErrorf("terminal %q is not in the terminal alphabet", p.Terminal.String())
		}
	}
	g := &Grammar{
		name:         name,
		kind:         kind,
		nonterminals: nonterminals,
		declared:     declared,
		terminals:    terminals,
		prods:        prods,
		start:        start,
	}
	tracer().Debugf("grammar %q: %d nonterminals, %d productions", name, len(nonterminals), len(prods))
	return g, nil
}

// Name returns the grammar's name.
func (g *Grammar) Name() string {
	return g.name
}

// Kind returns the linearity kind of the grammar.
func (g *Grammar) Kind() Kind {
	return g.kind
}

// Start returns the start nonterminal.
func (g *Grammar) Start() string {
	return g.start
}

// Terminals returns the terminal alphabet Σ.
func (g *Grammar) Terminals() regular.Alphabet {
	return g.terminals
}

// Nonterminals returns the nonterminals in declaration order.
func (g *Grammar) Nonterminals() []string {
	return append([]string(nil), g.nonterminals...)
}

// Productions returns all productions.
func (g *Grammar) Productions() []Production {
	return append([]Production(nil), g.prods...)
}

// ProductionsFor returns all productions with nt on the left side.
func (g *Grammar) ProductionsFor(nt string) []Production {
	var out []Production
	for _, p := range g.prods {
		if p.LHS == nt {
			out = append(out, p)
		}
	}
	return out
}

// Nullable returns the nonterminals that derive ε directly.
func (g *Grammar) Nullable() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range g.prods {
		if p.IsEpsilon() && !seen[p.LHS] {
			seen[p.LHS] = true
			out = append(out, p.LHS)
		}
	}
	return out
}

// DerivesEpsilon reports whether the grammar generates the empty word.
func (g *Grammar) DerivesEpsilon() bool {
	for _, p := range g.prods {
		if p.IsEpsilon() && p.LHS == g.start {
			return true
		}
	}
	return false
}

// productionString renders a production in the grammar's kind.
func (g *Grammar) productionString(p Production) string {
	switch {
	case p.IsEpsilon():
		return fmt.Sprintf("%s → ε", p.LHS)
	case p.RHS == "":
		return fmt.Sprintf("%s → %s", p.LHS, p.Terminal.String())
	case g.kind == LeftLinear:
		return fmt.Sprintf("%s → %s%s", p.LHS, p.RHS, p.Terminal.String())
	default:
		return fmt.Sprintf("%s → %s%s", p.LHS, p.Terminal.String(), p.RHS)
	}
}

func (g *Grammar) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s grammar %q, start %s\n", g.kind, g.name, g.start)
	fmt.Fprintf(&sb, "nonterminals: %s\n", strings.Join(g.nonterminals, ","))
	fmt.Fprintf(&sb, "terminals:    %v\n", g.terminals)
	for _, p := range g.prods {
		sb.WriteString("  " + g.productionString(p) + "\n")
	}
	return sb.String()
}
