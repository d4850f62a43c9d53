package automata

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/finitary/regular"
)

func TestEquivalent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	alpha := regular.NewAlphabet('a', 'b')
	tests := []struct {
		x, y string
		want bool
	}{
		{"a+", "aa*", true},
		{"(a|b)*", "(a*b*)*", true},
		{"(ab)*a", "a(ba)*", true},
		{"a", "aa", false},
		{"a*", "a+", false},
		{"(a|b)*abb", "(a|b)*bb", false},
	}
	for _, tc := range tests {
		x := mustCompile(t, tc.x, alpha)
		y := mustCompile(t, tc.y, alpha)
		if got := Equivalent(x, y); got != tc.want {
			t.Errorf("Equivalent(%q, %q) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
		// symmetry
		if got := Equivalent(y, x); got != tc.want {
			t.Errorf("Equivalent(%q, %q) = %v, want %v", tc.y, tc.x, got, tc.want)
		}
	}
}

func TestEquivalenceIgnoresRepresentation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	// the raw subset automaton and its minimal form are the same language
	tree := mustParse(t, "(a|b)*abb")
	raw := Determinize(Thompson(tree, tree.Alphabet()))
	if !Equivalent(raw, Minimize(raw)) {
		t.Error("a DFA is not equivalent to its own minimization")
	}
}

func TestEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	alpha := regular.NewAlphabet('a', 'b')
	a := mustCompile(t, "ab", alpha)
	if Empty(a) {
		t.Error("automaton for {ab} reported empty")
	}
	if !Empty(Difference(a, a)) {
		t.Error("X \\ X is not empty")
	}
	if !Empty(Intersect(a, mustCompile(t, "ba", alpha))) {
		t.Error("intersection of disjoint languages is not empty")
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	alpha := regular.NewAlphabet('a', 'b')
	x := Fingerprint(mustCompile(t, "a+", alpha))
	y := Fingerprint(mustCompile(t, "aa*", alpha))
	z := Fingerprint(mustCompile(t, "a*", alpha))
	if x != y {
		t.Errorf("equivalent automata fingerprint differently: %s vs %s", x, y)
	}
	if x == z {
		t.Errorf("distinct languages share fingerprint %s", x)
	}
}
