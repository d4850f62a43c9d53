package automata

import (
	"fmt"
	"sort"

	"github.com/finitary/regular"
)

// StateID identifies a state within the arena of its owning automaton.
// IDs are dense indices; they carry no meaning outside that automaton.
type StateID int32

const noState StateID = -1

type nfaState struct {
	accept bool
	eps    []StateID
	edges  map[regular.Symbol][]StateID
}

// NFA is a nondeterministic finite automaton with epsilon moves. The
// transition relation maps (state, symbol) to a set of successor states.
// NFAs are immutable once built.
type NFA struct {
	alpha  regular.Alphabet
	states []nfaState
	start  StateID
}

// Alphabet returns the alphabet Σ of the automaton.
func (n *NFA) Alphabet() regular.Alphabet {
	return n.alpha
}

// Start returns the start state.
func (n *NFA) Start() StateID {
	return n.start
}

// NumStates returns the number of states.
func (n *NFA) NumStates() int {
	return len(n.states)
}

// Accepting reports whether s is an accepting state.
func (n *NFA) Accepting(s StateID) bool {
	return n.states[s].accept
}

// AcceptingStates returns all accepting states, sorted.
func (n *NFA) AcceptingStates() []StateID {
	var acc []StateID
	for i := range n.states {
		if n.states[i].accept {
			acc = append(acc, StateID(i))
		}
	}
	return acc
}

// Move returns the set of states reachable from any state in set by one
// transition on sym, without applying epsilon closure. The result is
// sorted and duplicate-free.
func (n *NFA) Move(set []StateID, sym regular.Symbol) []StateID {
	var out []StateID
	for _, s := range set {
		out = append(out, n.states[s].edges[sym]...)
	}
	return normalize(out)
}

// EpsilonClosure returns the set of states reachable from set using only
// epsilon transitions, including set itself. The result is sorted.
func (n *NFA) EpsilonClosure(set []StateID) []StateID {
	closure := make(map[StateID]bool, len(set))
	stack := append([]StateID(nil), set...)
	for _, s := range set {
		closure[s] = true
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.states[s].eps {
			if closure[t] {
				continue
			}
			closure[t] = true
			stack = append(stack, t)
		}
	}
	out := make([]StateID, 0, len(closure))
	for s := range closure {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Accepts runs the NFA over the input and reports whether it ends in a
// configuration containing an accepting state. A symbol outside the
// alphabet yields an AlphabetError.
func (n *NFA) Accepts(input string) (bool, error) {
	current := n.EpsilonClosure([]StateID{n.start})
	for i, r := range input {
		sym := regular.Symbol(r)
		if !n.alpha.Contains(sym) {
			return false, &AlphabetError{Sym: sym, Pos: i, Alphabet: n.alpha}
		}
		current = n.EpsilonClosure(n.Move(current, sym))
	}
	for _, s := range current {
		if n.states[s].accept {
			return true, nil
		}
	}
	return false, nil
}

func normalize(set []StateID) []StateID {
	if len(set) == 0 {
		return nil
	}
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	out := set[:1]
	for _, s := range set[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}

// --- Builder ---------------------------------------------------------------

// NFABuilder assembles an NFA state by state. Misuse (an edge on a
// symbol outside the alphabet, a missing start state) is reported by
// NFA(); the first error wins.
type NFABuilder struct {
	nfa *NFA
	err error
}

// NewNFABuilder creates a builder for an NFA over the given alphabet.
func NewNFABuilder(alpha regular.Alphabet) *NFABuilder {
	return &NFABuilder{nfa: &NFA{alpha: alpha, start: noState}}
}

// NewState appends a fresh state to the arena and returns its ID.
func (b *NFABuilder) NewState() StateID {
	b.nfa.states = append(b.nfa.states, nfaState{edges: make(map[regular.Symbol][]StateID)})
	return StateID(len(b.nfa.states) - 1)
}

// SetStart marks s as the start state.
func (b *NFABuilder) SetStart(s StateID) *NFABuilder {
	b.nfa.start = s
	return b
}

// MarkAccepting marks s as an accepting state.
func (b *NFABuilder) MarkAccepting(s StateID) *NFABuilder {
	b.nfa.states[s].accept = true
	return b
}

// AddEdge adds a transition from -> to labeled sym. Passing
// regular.Epsilon adds an epsilon transition.
func (b *NFABuilder) AddEdge(from StateID, sym regular.Symbol, to StateID) *NFABuilder {
	if sym == regular.Epsilon {
		b.nfa.states[from].eps = append(b.nfa.states[from].eps, to)
		return b
	}
	if !b.nfa.alpha.Contains(sym) && b.err == nil {
		b.err = fmt.Errorf("transition symbol %q not in alphabet %v", sym.String(), b.nfa.alpha)
	}
	b.nfa.states[from].edges[sym] = append(b.nfa.states[from].edges[sym], to)
	return b
}

// NFA validates and freezes the automaton. The builder must not be used
// afterwards.
func (b *NFABuilder) NFA() (*NFA, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.nfa.start == noState {
		return nil, fmt.Errorf("NFA has no start state")
	}
	for i := range b.nfa.states {
		b.nfa.states[i].eps = normalize(b.nfa.states[i].eps)
		for sym, targets := range b.nfa.states[i].edges {
			b.nfa.states[i].edges[sym] = normalize(targets)
		}
	}
	tracer().Debugf("built NFA with %d states over %v", len(b.nfa.states), b.nfa.alpha)
	return b.nfa, nil
}
