/*
Package grammar implements regular grammars and their correspondence
with finite automata.

Grammars are right-linear by default — productions of the form A → aB,
A → a or A → ε — with left-linear grammars (A → Ba, A → a, A → ε)
supported as the mirror image. Non-linear productions are rejected with
a FormError; this package does not generalize beyond the regular
languages.

Grammars are specified using a grammar builder object. Clients add
rules, consisting of a left-hand side nonterminal, an optional terminal
symbol and an optional successor nonterminal:

	b := grammar.NewBuilder("G")
	b.LHS("S").T('a').N("S").End() // S → aS
	b.LHS("S").T('b').End()        // S → b
	b.LHS("S").Epsilon()           // S → ε
	g, err := b.Grammar()

Alternatively, Read parses the textual notation

	S -> a S | b
	S -> ε

Conversions: (*Grammar).Automaton yields an NFA for the grammar's
language, and FromDFA derives a right-linear grammar from a DFA. The
round trip need not reproduce identical productions, but it preserves
the language (verify with automata.Equivalent).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'regular.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("regular.grammar")
}
