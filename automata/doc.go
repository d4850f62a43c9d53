/*
Package automata implements nondeterministic and deterministic finite
automata over an explicit alphabet.

The package covers the classic constructions of regular-language theory:

▪ Thompson construction, compiling a regex AST into an NFA of linear
size (automata.Thompson).

▪ Subset construction, determinizing an NFA by treating reachable sets
of NFA states as single DFA states (automata.Determinize).

▪ Minimization by partition refinement, computing the Myhill–Nerode
equivalence classes (automata.Minimize).

▪ Product constructions for language union, intersection and
difference, plus complement and a decision procedure for language
equivalence.

▪ Moore and Mealy transducers.

Automata are value-like artifacts: every construction returns a fresh
automaton and never mutates its inputs. States are dense integer indices
into an arena owned by their automaton; no automaton aliases another's
state indices. DFAs keep a partial transition function — a missing entry
rejects — and Complete materializes the explicit sink state where a
total function is needed (complement does this internally).

Automata hand-built from explicit transition tables go through builder
objects:

	b := automata.NewDFABuilder(regular.NewAlphabet('a', 'b'))
	q0, q1 := b.NewState(), b.NewState()
	b.SetStart(q0).MarkAccepting(q1)
	b.SetTransition(q0, 'a', q1)
	b.SetTransition(q1, 'a', q0)
	d, err := b.DFA()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package automata

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'regular.automata'.
func tracer() tracing.Trace {
	return tracing.Select("regular.automata")
}
