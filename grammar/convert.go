package grammar

import (
	"fmt"

	"github.com/finitary/regular"
	"github.com/finitary/regular/automata"
)

// Automaton converts the grammar into an NFA accepting exactly the
// language the grammar generates.
//
// For a right-linear grammar, every nonterminal becomes a state, the
// start nonterminal the start state; A → aB becomes a transition a from
// A to B, A → a a transition into a shared fresh accepting state, and
// A → ε marks A accepting.
//
// For a left-linear grammar the construction is mirrored: a fresh
// initial state feeds the terminal productions, A → Ba becomes a
// transition a from B to A, and the start nonterminal's state accepts.
func (g *Grammar) Automaton() (*automata.NFA, error) {
	b := automata.NewNFABuilder(g.terminals)
	states := make(map[string]automata.StateID, len(g.nonterminals))
	for _, nt := range g.nonterminals {
		states[nt] = b.NewState()
	}

	if g.kind == RightLinear {
		b.SetStart(states[g.start])
		var final automata.StateID
		haveFinal := false
		for _, p := range g.prods {
			switch {
			case p.IsEpsilon():
				b.MarkAccepting(states[p.LHS])
			case p.HasNonterminal():
				b.AddEdge(states[p.LHS], p.Terminal, states[p.RHS])
			default:
				if !haveFinal {
					final = b.NewState()
					b.MarkAccepting(final)
					haveFinal = true
				}
				b.AddEdge(states[p.LHS], p.Terminal, final)
			}
		}
	} else {
		initial := b.NewState()
		b.SetStart(initial)
		b.MarkAccepting(states[g.start])
		for _, p := range g.prods {
			switch {
			case p.IsEpsilon():
				b.AddEdge(initial, regular.Epsilon, states[p.LHS])
			case p.HasNonterminal():
				b.AddEdge(states[p.RHS], p.Terminal, states[p.LHS])
			default:
				b.AddEdge(initial, p.Terminal, states[p.LHS])
			}
		}
	}

	nfa, err := b.NFA()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("grammar %q converted to NFA with %d states", g.name, nfa.NumStates())
	return nfa, nil
}

// FromDFA derives a right-linear grammar from a DFA: each state becomes
// a nonterminal, each transition (p, a, q) the production P → aQ, and
// each accepting state the production Q → ε. The grammar generates
// exactly the DFA's language.
func FromDFA(name string, d *automata.DFA) *Grammar {
	ntName := func(s automata.StateID) string { return fmt.Sprintf("Q%d", s) }

	nonterminals := make([]string, d.NumStates())
	for i := range nonterminals {
		nonterminals[i] = ntName(automata.StateID(i))
	}
	var prods []Production
	d.EachTransition(func(from automata.StateID, sym regular.Symbol, to automata.StateID) {
		prods = append(prods, Production{LHS: ntName(from), Terminal: sym, RHS: ntName(to)})
	})
	for i := 0; i < d.NumStates(); i++ {
		if d.Accepting(automata.StateID(i)) {
			prods = append(prods, Production{LHS: ntName(automata.StateID(i)), Terminal: regular.Epsilon})
		}
	}

	g, err := newGrammar(name, RightLinear, nonterminals, d.Alphabet(), prods, ntName(d.Start()))
	if err != nil {
		panic(fmt.Sprintf("DFA produced invalid grammar: %v", err))
	}
	return g
}
