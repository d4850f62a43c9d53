package automata

import (
	"fmt"

	"github.com/finitary/regular"
)

// MealyMachine is a deterministic transducer emitting one output per
// transition. Processing an input of length n yields exactly n outputs.
// Mealy machines are not acceptors; they have no final states.
type MealyMachine struct {
	alpha regular.Alphabet
	next  []map[regular.Symbol]StateID
	out   []map[regular.Symbol]string
	start StateID
}

// Step returns the successor of s on sym together with the emitted
// output. A missing transition is an error.
func (m *MealyMachine) Step(s StateID, sym regular.Symbol) (StateID, string, error) {
	if !m.alpha.Contains(sym) {
		return noState, "", &AlphabetError{Sym: sym, Alphabet: m.alpha}
	}
	to, ok := m.next[s][sym]
	if !ok {
		return noState, "", fmt.Errorf("no transition from state %d on %q", s, sym.String())
	}
	return to, m.out[s][sym], nil
}

// Process runs the machine over the input and returns the sequence of
// transition outputs, one per consumed symbol.
func (m *MealyMachine) Process(input string) ([]string, error) {
	outputs := make([]string, 0, len(input))
	state := m.start
	for i, r := range input {
		sym := regular.Symbol(r)
		if !m.alpha.Contains(sym) {
			return nil, &AlphabetError{Sym: sym, Pos: i, Alphabet: m.alpha}
		}
		next, out, err := m.Step(state, sym)
		if err != nil {
			return nil, err
		}
		state = next
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// --- Builder ---------------------------------------------------------------

// MealyBuilder assembles a Mealy machine.
type MealyBuilder struct {
	machine *MealyMachine
	err     error
}

// NewMealyBuilder creates a builder for a Mealy machine over the given
// alphabet.
func NewMealyBuilder(alpha regular.Alphabet) *MealyBuilder {
	return &MealyBuilder{machine: &MealyMachine{alpha: alpha, start: noState}}
}

// NewState appends a fresh state and returns its ID.
func (b *MealyBuilder) NewState() StateID {
	m := b.machine
	m.next = append(m.next, make(map[regular.Symbol]StateID))
	m.out = append(m.out, make(map[regular.Symbol]string))
	return StateID(len(m.next) - 1)
}

// SetStart marks s as the start state.
func (b *MealyBuilder) SetStart(s StateID) *MealyBuilder {
	b.machine.start = s
	return b
}

// SetTransition defines δ(from, sym) = to, emitting output.
func (b *MealyBuilder) SetTransition(from StateID, sym regular.Symbol, to StateID, output string) *MealyBuilder {
	m := b.machine
	if !m.alpha.Contains(sym) && b.err == nil {
		b.err = fmt.Errorf("transition symbol %q not in alphabet %v", sym.String(), m.alpha)
		return b
	}
	m.next[from][sym] = to
	m.out[from][sym] = output
	return b
}

// Machine validates and freezes the Mealy machine.
func (b *MealyBuilder) Machine() (*MealyMachine, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.machine.start == noState {
		return nil, fmt.Errorf("Mealy machine has no start state")
	}
	return b.machine, nil
}
