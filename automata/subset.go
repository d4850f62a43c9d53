package automata

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Determinize converts an NFA into an equivalent DFA via epsilon-closure
// and subset construction. Every reachable set of NFA states becomes one
// DFA state; a DFA state accepts iff its underlying set contains an NFA
// accepting state. Subsets with no move on a symbol simply get no
// transition there (the DFA rejects implicitly; see DFA.Complete).
//
// Termination is bounded by the number of distinct subsets; in practice
// far fewer are reachable.
func Determinize(n *NFA) *DFA {
	b := NewDFABuilder(n.Alphabet())
	symbols := n.Alphabet().Symbols()

	// Subsets are deduplicated by their sorted-id key.
	key := func(set []StateID) string { return fmt.Sprint(set) }
	ids := make(map[string]StateID)

	startSet := n.EpsilonClosure([]StateID{n.start})
	start := b.NewState()
	b.SetStart(start)
	if containsAccepting(n, startSet) {
		b.MarkAccepting(start)
	}
	ids[key(startSet)] = start

	worklist := arraylist.New()
	worklist.Add(startSet)
	for worklist.Size() > 0 {
		v, _ := worklist.Get(0)
		worklist.Remove(0)
		set := v.([]StateID)
		from := ids[key(set)]
		for _, sym := range symbols {
			next := n.EpsilonClosure(n.Move(set, sym))
			if len(next) == 0 {
				continue
			}
			k := key(next)
			to, seen := ids[k]
			if !seen {
				to = b.NewState()
				if containsAccepting(n, next) {
					b.MarkAccepting(to)
				}
				ids[k] = to
				worklist.Add(next)
				tracer().Debugf("subset %v becomes DFA state %d", next, to)
			}
			b.SetTransition(from, sym, to)
		}
	}

	d, err := b.DFA()
	if err != nil {
		panic(fmt.Sprintf("subset construction produced invalid DFA: %v", err))
	}
	tracer().Debugf("determinized %d NFA states into %d DFA states", n.NumStates(), d.NumStates())
	return d
}

func containsAccepting(n *NFA, set []StateID) bool {
	for _, s := range set {
		if n.states[s].accept {
			return true
		}
	}
	return false
}
