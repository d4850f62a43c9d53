package automata

import (
	"fmt"
	"sort"

	"github.com/finitary/regular"
	"github.com/finitary/regular/automata/sparse"
)

// DFA is a deterministic finite automaton. The transition function is
// stored as a sparse matrix of state rows and alphabet columns; a null
// entry is a missing transition, which rejects. DFAs are therefore
// partial by default — Complete materializes the explicit sink state
// where a total function is needed. DFAs are immutable once built.
type DFA struct {
	alpha  regular.Alphabet
	syms   []regular.Symbol // sorted column order, = alpha.Symbols()
	delta  *sparse.Matrix   // rows: states, cols: symbol index
	accept []bool
	start  StateID
}

// Alphabet returns the alphabet Σ of the automaton.
func (d *DFA) Alphabet() regular.Alphabet {
	return d.alpha
}

// Start returns the start state.
func (d *DFA) Start() StateID {
	return d.start
}

// NumStates returns the number of states.
func (d *DFA) NumStates() int {
	return len(d.accept)
}

// Accepting reports whether s is an accepting state.
func (d *DFA) Accepting(s StateID) bool {
	return d.accept[s]
}

func (d *DFA) symIndex(sym regular.Symbol) int {
	i := sort.Search(len(d.syms), func(i int) bool { return d.syms[i] >= sym })
	if i < len(d.syms) && d.syms[i] == sym {
		return i
	}
	return -1
}

// Step returns the successor of s on sym. ok is false if the automaton
// has no transition there (implicit reject), or if sym is not in Σ.
func (d *DFA) Step(s StateID, sym regular.Symbol) (StateID, bool) {
	j := d.symIndex(sym)
	if j < 0 {
		return noState, false
	}
	t := d.delta.Value(int(s), j)
	if t == int32(d.delta.NullValue()) {
		return noState, false
	}
	return StateID(t), true
}

// EachTransition calls f for every transition (from, sym, to), ordered
// by state and symbol.
func (d *DFA) EachTransition(f func(from StateID, sym regular.Symbol, to StateID)) {
	d.delta.Each(func(i, j int, v int32) {
		f(StateID(i), d.syms[j], StateID(v))
	})
}

// IsTotal reports whether the transition function is defined for every
// (state, symbol) pair.
func (d *DFA) IsTotal() bool {
	return d.delta.ValueCount() == d.NumStates()*len(d.syms)
}

// Accepts runs the DFA over the input from the start state and reports
// whether it ends in an accepting state. Running into a missing
// transition rejects; a symbol outside the alphabet yields an
// AlphabetError. Time is linear in the input length.
func (d *DFA) Accepts(input string) (bool, error) {
	state := d.start
	dead := false
	for i, r := range input {
		sym := regular.Symbol(r)
		if !d.alpha.Contains(sym) {
			return false, &AlphabetError{Sym: sym, Pos: i, Alphabet: d.alpha}
		}
		if dead {
			continue // keep validating the remaining input
		}
		next, ok := d.Step(state, sym)
		if !ok {
			dead = true
			continue
		}
		state = next
	}
	return !dead && d.accept[state], nil
}

// Complete returns an equivalent total DFA: every missing transition is
// routed to an explicit self-looping, non-accepting sink state. If the
// automaton is already total it is returned unchanged.
func (d *DFA) Complete() *DFA {
	if d.IsTotal() {
		return d
	}
	c, _ := d.completeOver(d.alpha)
	return c
}

// completeOver totalizes the automaton over a superset alphabet and
// returns the sink ID. Symbols the automaton never mentioned route to
// the sink. The receiver is not modified.
func (d *DFA) completeOver(alpha regular.Alphabet) (*DFA, StateID) {
	syms := alpha.Symbols()
	n := d.NumStates()
	sink := StateID(n)
	delta := sparse.New(n+1, len(syms), -1)
	for i := 0; i <= n; i++ {
		for j, sym := range syms {
			t := sink
			if i < n {
				if next, ok := d.Step(StateID(i), sym); ok {
					t = next
				}
			}
			delta.Set(i, j, int32(t))
		}
	}
	accept := make([]bool, n+1)
	copy(accept, d.accept)
	return &DFA{
		alpha:  alpha,
		syms:   syms,
		delta:  delta,
		accept: accept,
		start:  d.start,
	}, sink
}

// --- Builder ---------------------------------------------------------------

// DFABuilder assembles a DFA from explicit transitions. Determinism is
// structural: setting a transition twice overwrites. Errors (symbol
// outside the alphabet, missing start state) are reported by DFA().
type DFABuilder struct {
	alpha  regular.Alphabet
	trans  []map[regular.Symbol]StateID
	accept []bool
	start  StateID
	err    error
}

// NewDFABuilder creates a builder for a DFA over the given alphabet.
func NewDFABuilder(alpha regular.Alphabet) *DFABuilder {
	return &DFABuilder{alpha: alpha, start: noState}
}

// NewState appends a fresh state to the arena and returns its ID.
func (b *DFABuilder) NewState() StateID {
	b.trans = append(b.trans, make(map[regular.Symbol]StateID))
	b.accept = append(b.accept, false)
	return StateID(len(b.trans) - 1)
}

// SetStart marks s as the start state.
func (b *DFABuilder) SetStart(s StateID) *DFABuilder {
	b.start = s
	return b
}

// MarkAccepting marks s as an accepting state.
func (b *DFABuilder) MarkAccepting(s StateID) *DFABuilder {
	b.accept[s] = true
	return b
}

// SetTransition defines δ(from, sym) = to.
func (b *DFABuilder) SetTransition(from StateID, sym regular.Symbol, to StateID) *DFABuilder {
	if !b.alpha.Contains(sym) && b.err == nil {
		b.err = fmt.Errorf("transition symbol %q not in alphabet %v", sym.String(), b.alpha)
		return b
	}
	b.trans[from][sym] = to
	return b
}

// DFA validates and freezes the automaton into its sparse transition
// table. The builder must not be used afterwards.
func (b *DFABuilder) DFA() (*DFA, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.start == noState {
		return nil, fmt.Errorf("DFA has no start state")
	}
	syms := b.alpha.Symbols()
	cols := make(map[regular.Symbol]int, len(syms))
	for j, sym := range syms {
		cols[sym] = j
	}
	delta := sparse.New(len(b.trans), len(syms), -1)
	for i, edges := range b.trans {
		for sym, to := range edges {
			delta.Set(i, cols[sym], int32(to))
		}
	}
	tracer().Debugf("built DFA with %d states over %v", len(b.trans), b.alpha)
	return &DFA{
		alpha:  b.alpha,
		syms:   syms,
		delta:  delta,
		accept: b.accept,
		start:  b.start,
	}, nil
}
