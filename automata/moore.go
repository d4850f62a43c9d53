package automata

import (
	"fmt"

	"github.com/finitary/regular"
	"github.com/finitary/regular/automata/sparse"
)

// MooreMachine is a deterministic transducer emitting one output per
// state. Processing an input of length n yields n+1 outputs: the start
// state's output followed by one output per consumed symbol. A Moore
// machine may also act as an acceptor through its final states.
type MooreMachine struct {
	alpha  regular.Alphabet
	syms   []regular.Symbol
	delta  *sparse.Matrix
	accept []bool
	output []string
	start  StateID
}

// Output returns the output attached to state s.
func (m *MooreMachine) Output(s StateID) string {
	return m.output[s]
}

// Step returns the successor of s on sym. Unlike a DFA, a missing
// transition is an error: a transducer cannot silently reject.
func (m *MooreMachine) Step(s StateID, sym regular.Symbol) (StateID, error) {
	j := -1
	for i, cand := range m.syms {
		if cand == sym {
			j = i
			break
		}
	}
	if j < 0 {
		return noState, &AlphabetError{Sym: sym, Alphabet: m.alpha}
	}
	t := m.delta.Value(int(s), j)
	if t == m.delta.NullValue() {
		return noState, fmt.Errorf("no transition from state %d on %q", s, sym.String())
	}
	return StateID(t), nil
}

// Process runs the machine over the input and returns the sequence of
// state outputs, starting with the start state's output.
func (m *MooreMachine) Process(input string) ([]string, error) {
	outputs := []string{m.output[m.start]}
	state := m.start
	for i, r := range input {
		sym := regular.Symbol(r)
		if !m.alpha.Contains(sym) {
			return nil, &AlphabetError{Sym: sym, Pos: i, Alphabet: m.alpha}
		}
		next, err := m.Step(state, sym)
		if err != nil {
			return nil, err
		}
		state = next
		outputs = append(outputs, m.output[state])
	}
	return outputs, nil
}

// Accepts reports whether the machine ends in a final state after
// consuming the input.
func (m *MooreMachine) Accepts(input string) (bool, error) {
	state := m.start
	for i, r := range input {
		sym := regular.Symbol(r)
		if !m.alpha.Contains(sym) {
			return false, &AlphabetError{Sym: sym, Pos: i, Alphabet: m.alpha}
		}
		next, err := m.Step(state, sym)
		if err != nil {
			return false, err
		}
		state = next
	}
	return m.accept[state], nil
}

// --- Builder ---------------------------------------------------------------

// MooreBuilder assembles a Moore machine.
type MooreBuilder struct {
	alpha  regular.Alphabet
	trans  []map[regular.Symbol]StateID
	accept []bool
	output []string
	start  StateID
	err    error
}

// NewMooreBuilder creates a builder for a Moore machine over the given
// alphabet.
func NewMooreBuilder(alpha regular.Alphabet) *MooreBuilder {
	return &MooreBuilder{alpha: alpha, start: noState}
}

// NewState appends a fresh state emitting output and returns its ID.
func (b *MooreBuilder) NewState(output string) StateID {
	b.trans = append(b.trans, make(map[regular.Symbol]StateID))
	b.accept = append(b.accept, false)
	b.output = append(b.output, output)
	return StateID(len(b.trans) - 1)
}

// SetStart marks s as the start state.
func (b *MooreBuilder) SetStart(s StateID) *MooreBuilder {
	b.start = s
	return b
}

// MarkFinal marks s as a final state for acceptance.
func (b *MooreBuilder) MarkFinal(s StateID) *MooreBuilder {
	b.accept[s] = true
	return b
}

// SetTransition defines δ(from, sym) = to.
func (b *MooreBuilder) SetTransition(from StateID, sym regular.Symbol, to StateID) *MooreBuilder {
	if !b.alpha.Contains(sym) && b.err == nil {
		b.err = fmt.Errorf("transition symbol %q not in alphabet %v", sym.String(), b.alpha)
		return b
	}
	b.trans[from][sym] = to
	return b
}

// Machine validates and freezes the Moore machine.
func (b *MooreBuilder) Machine() (*MooreMachine, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.start == noState {
		return nil, fmt.Errorf("Moore machine has no start state")
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
	return &MooreMachine{
		alpha:  b.alpha,
		syms:   syms,
		delta:  delta,
		accept: b.accept,
		output: b.output,
		start:  b.start,
	}, nil
}
