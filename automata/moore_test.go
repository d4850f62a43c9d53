package automata

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/finitary/regular"
)

// parity counter: output flips between "even" and "odd" on every '1'
func parityMachine(t *testing.T) *MooreMachine {
	t.Helper()
	b := NewMooreBuilder(regular.NewAlphabet('0', '1'))
	even := b.NewState("even")
	odd := b.NewState("odd")
	b.SetStart(even)
	b.MarkFinal(even)
	b.SetTransition(even, '0', even)
	b.SetTransition(even, '1', odd)
	b.SetTransition(odd, '0', odd)
	b.SetTransition(odd, '1', even)
	m, err := b.Machine()
	if err != nil {
		t.Fatalf("building Moore machine failed: %v", err)
	}
	return m
}

func TestMooreProcess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	m := parityMachine(t)
	outputs, err := m.Process("1101")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	want := "even odd even even odd"
	if got := strings.Join(outputs, " "); got != want {
		t.Errorf("outputs are %q, want %q", got, want)
	}
	if len(outputs) != len("1101")+1 {
		t.Errorf("%d outputs for 4 symbols, want 5", len(outputs))
	}
}

func TestMooreAccepts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	m := parityMachine(t)
	checkLanguage(t, m, []string{"", "0", "11", "1010"}, []string{"1", "10", "111"})
}

func TestMooreMissingTransition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	b := NewMooreBuilder(regular.NewAlphabet('a', 'b'))
	q := b.NewState("q")
	b.SetStart(q)
	b.SetTransition(q, 'a', q)
	m, err := b.Machine()
	if err != nil {
		t.Fatalf("building Moore machine failed: %v", err)
	}
	if _, err := m.Process("ab"); err == nil {
		t.Error("processing over a missing transition did not fail")
	}
}

func TestMealyProcess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	// edge-detector: emits "rise" when the input switches from 0 to 1,
	// "fall" for the opposite switch, and "hold" otherwise
	b := NewMealyBuilder(regular.NewAlphabet('0', '1'))
	low := b.NewState()
	high := b.NewState()
	b.SetStart(low)
	b.SetTransition(low, '0', low, "hold")
	b.SetTransition(low, '1', high, "rise")
	b.SetTransition(high, '1', high, "hold")
	b.SetTransition(high, '0', low, "fall")
	m, err := b.Machine()
	if err != nil {
		t.Fatalf("building Mealy machine failed: %v", err)
	}
	outputs, err := m.Process("01100")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	want := "hold rise hold fall hold"
	if got := strings.Join(outputs, " "); got != want {
		t.Errorf("outputs are %q, want %q", got, want)
	}
	if len(outputs) != len("01100") {
		t.Errorf("%d outputs for 5 symbols, want 5", len(outputs))
	}
}

func TestMealyStep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	b := NewMealyBuilder(regular.NewAlphabet('a'))
	q := b.NewState()
	b.SetStart(q)
	b.SetTransition(q, 'a', q, "tick")
	m, err := b.Machine()
	if err != nil {
		t.Fatalf("building Mealy machine failed: %v", err)
	}
	next, out, err := m.Step(q, 'a')
	if err != nil || next != q || out != "tick" {
		t.Errorf("Step = (%d, %q, %v), want (%d, \"tick\", nil)", next, out, err, q)
	}
	if _, _, err := m.Step(q, 'z'); err == nil {
		t.Error("stepping on a symbol outside the alphabet did not fail")
	}
}
