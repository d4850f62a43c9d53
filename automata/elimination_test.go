package automata

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/finitary/regular"
)

func TestToRegexRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	alpha := regular.NewAlphabet('a', 'b')
	for _, pattern := range []string{"", "a", "a|b", "(ab)*", "a+b?", "(a|b)*abb"} {
		d := mustCompile(t, pattern, alpha)
		tree := ToRegex(d)
		t.Logf("DFA for %q eliminates to %q", pattern, tree.String())
		back := Minimize(Determinize(Thompson(tree, alpha)))
		if !Equivalent(d, back) {
			t.Errorf("round trip of %q via %q changed the language", pattern, tree.String())
		}
	}
}

func TestToRegexEmptyLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	alpha := regular.NewAlphabet('a', 'b')
	a := mustCompile(t, "ab", alpha)
	empty := Minimize(Difference(a, a))
	tree := ToRegex(empty)
	back := Determinize(Thompson(tree, alpha))
	if !Empty(back) {
		t.Errorf("elimination of the empty language yields %q, which is nonempty", tree.String())
	}
}

func TestToRegexSingleState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	// one accepting state with a self loop: language a*
	b := NewDFABuilder(regular.NewAlphabet('a'))
	q := b.NewState()
	b.SetStart(q)
	b.MarkAccepting(q)
	b.SetTransition(q, 'a', q)
	d, err := b.DFA()
	if err != nil {
		t.Fatalf("building DFA failed: %v", err)
	}
	tree := ToRegex(d)
	back := Minimize(Determinize(Thompson(tree, d.Alphabet())))
	if !Equivalent(d, back) {
		t.Errorf("elimination of a* gave %q", tree.String())
	}
}
