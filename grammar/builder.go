package grammar

import (
	"github.com/finitary/regular"
)

// Builder is a grammar builder object. Clients add rules through the
// fluent rule interface; the first LHS becomes the start nonterminal,
// and a nonterminal counts as declared once it appears on a left-hand
// side. Terminals are collected from the T() calls.
//
// Attempts to build a non-linear production (two terminals, or two
// nonterminals, in one rule) surface as a FormError from Grammar().
type Builder struct {
	name    string
	kind    Kind
	ntOrder []string
	ntSeen  map[string]bool
	terms   []regular.Symbol
	prods   []Production
	start   string
	err     error
}

// NewBuilder creates a builder for a right-linear grammar.
func NewBuilder(name string) *Builder {
	return &Builder{name: name, ntSeen: make(map[string]bool)}
}

// LeftLinear switches the builder to left-linear form: rules read
// A → Ba instead of A → aB.
func (b *Builder) LeftLinear() *Builder {
	b.kind = LeftLinear
	return b
}

func (b *Builder) fail(e *FormError) {
	if b.err == nil {
		b.err = e
	}
}

// Rule is the fluent builder for a single production.
type Rule struct {
	b    *Builder
	prod Production
	hasT bool
	hasN bool
}

// LHS starts a new rule for the given nonterminal, declaring it. The
// first LHS of the grammar becomes the start nonterminal.
func (b *Builder) LHS(name string) *Rule {
	if !b.ntSeen[name] {
		b.ntSeen[name] = true
		b.ntOrder = append(b.ntOrder, name)
	}
	if b.start == "" {
		b.start = name
	}
	return &Rule{b: b, prod: Production{LHS: name, Terminal: regular.Epsilon}}
}

// T sets the terminal symbol of the rule.
func (r *Rule) T(sym regular.Symbol) *Rule {
	if sym == regular.Epsilon {
		r.b.fail(formErrorf("ε cannot be used as a terminal; use Epsilon()"))
		return r
	}
	if r.hasT {
		r.b.fail(formErrorf("production for %q has more than one terminal; not a linear form", r.prod.LHS))
		return r
	}
	r.hasT = true
	r.prod.Terminal = sym
	r.b.terms = append(r.b.terms, sym)
	return r
}

// N sets the successor nonterminal of the rule.
func (r *Rule) N(name string) *Rule {
	if r.hasN {
		r.b.fail(formErrorf("production for %q has more than one nonterminal; not a linear form", r.prod.LHS))
		return r
	}
	r.hasN = true
	r.prod.RHS = name
	return r
}

// End finishes the rule (A → aB or A → a).
func (r *Rule) End() {
	r.b.prods = append(r.b.prods, r.prod)
}

// Epsilon finishes the rule as an ε-production (A → ε).
func (r *Rule) Epsilon() {
	if r.hasT || r.hasN {
		r.b.fail(formErrorf("ε-production for %q may not carry other symbols", r.prod.LHS))
		return
	}
	r.b.prods = append(r.b.prods, r.prod)
}

// Grammar validates the collected rules and returns the grammar. The
// first error encountered during building wins.
func (b *Builder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.start == "" {
		return nil, formErrorf("grammar %q has no productions", b.name)
	}
	return newGrammar(b.name, b.kind, b.ntOrder, regular.NewAlphabet(b.terms...), b.prods, b.start)
}
