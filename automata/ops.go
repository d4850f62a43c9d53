package automata

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Language operations over DFAs, built on product construction. Two
// automata may be defined over different alphabets: the alphabets are
// unioned transparently, and a symbol absent from one automaton's
// transitions routes to that automaton's sink. This policy is applied
// uniformly by all the operations here.

// Union returns a DFA accepting L(a) ∪ L(b).
func Union(a, b *DFA) *DFA {
	return product(a, b, func(x, y bool) bool { return x || y })
}

// Intersect returns a DFA accepting L(a) ∩ L(b).
func Intersect(a, b *DFA) *DFA {
	return product(a, b, func(x, y bool) bool { return x && y })
}

// Difference returns a DFA accepting L(a) − L(b).
func Difference(a, b *DFA) *DFA {
	return product(a, b, func(x, y bool) bool { return x && !y })
}

// Complement returns a DFA accepting Σ* − L(d). The automaton is
// completed first, then every state's accepting status is flipped.
func Complement(d *DFA) *DFA {
	c, _ := d.completeOver(d.alpha)
	flipped := *c
	flipped.accept = make([]bool, len(c.accept))
	for i, acc := range c.accept {
		flipped.accept[i] = !acc
	}
	return &flipped
}

// product builds the automaton over pairs of states of the completed
// operands, remapping each reachable pair to a fresh state ID. The
// accepting predicate decides acceptance from the two components.
func product(a, b *DFA, accepting func(bool, bool) bool) *DFA {
	alpha := a.alpha.Union(b.alpha)
	ca, _ := a.completeOver(alpha)
	cb, _ := b.completeOver(alpha)
	symbols := alpha.Symbols()

	type pair struct{ i, j StateID }
	builder := NewDFABuilder(alpha)
	ids := make(map[pair]StateID)

	mkState := func(p pair) StateID {
		s := builder.NewState()
		if accepting(ca.accept[p.i], cb.accept[p.j]) {
			builder.MarkAccepting(s)
		}
		ids[p] = s
		return s
	}

	startPair := pair{ca.start, cb.start}
	builder.SetStart(mkState(startPair))
	worklist := arraylist.New()
	worklist.Add(startPair)
	for worklist.Size() > 0 {
		v, _ := worklist.Get(0)
		worklist.Remove(0)
		p := v.(pair)
		from := ids[p]
		for _, sym := range symbols {
			ti, oki := ca.Step(p.i, sym)
			tj, okj := cb.Step(p.j, sym)
			if !oki || !okj {
				panic(fmt.Sprintf("completed automaton lacks a transition on %q", sym.String()))
			}
			np := pair{ti, tj}
			to, seen := ids[np]
			if !seen {
				to = mkState(np)
				worklist.Add(np)
			}
			builder.SetTransition(from, sym, to)
		}
	}

	d, err := builder.DFA()
	if err != nil {
		panic(fmt.Sprintf("product construction produced invalid DFA: %v", err))
	}
	tracer().Debugf("product of %d x %d states has %d reachable states",
		a.NumStates(), b.NumStates(), d.NumStates())
	return d
}
