package automata

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/finitary/regular"
	"github.com/finitary/regular/regex"
)

// acceptor is what NFAs, DFAs and Moore machines have in common.
type acceptor interface {
	Accepts(string) (bool, error)
}

func mustParse(t *testing.T, pattern string) *regex.Tree {
	t.Helper()
	tree, err := regex.Parse(pattern)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", pattern, err)
	}
	return tree
}

func mustCompile(t *testing.T, pattern string, alpha regular.Alphabet) *DFA {
	t.Helper()
	d, err := Compile(pattern, alpha)
	if err != nil {
		t.Fatalf("cannot compile %q: %v", pattern, err)
	}
	return d
}

func checkLanguage(t *testing.T, a acceptor, accept, reject []string) {
	t.Helper()
	for _, input := range accept {
		ok, err := a.Accepts(input)
		if err != nil {
			t.Errorf("Accepts(%q) failed: %v", input, err)
		} else if !ok {
			t.Errorf("%q rejected, want accepted", input)
		}
	}
	for _, input := range reject {
		ok, err := a.Accepts(input)
		if err != nil {
			t.Errorf("Accepts(%q) failed: %v", input, err)
		} else if ok {
			t.Errorf("%q accepted, want rejected", input)
		}
	}
}

func TestThompsonLanguages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	tests := []struct {
		pattern string
		alpha   string
		accept  []string
		reject  []string
	}{
		{"a|b", "ab", []string{"a", "b"}, []string{"", "ab", "aa"}},
		{"(ab)*", "ab", []string{"", "ab", "abab"}, []string{"a", "b", "aba", "ba"}},
		{"a+", "a", []string{"a", "aa", "aaa"}, []string{""}},
		{"a?b", "ab", []string{"b", "ab"}, []string{"", "a", "aab"}},
		{"", "a", []string{""}, []string{"a"}},
		{"[a-c]*", "abcd", []string{"", "abc", "cab"}, []string{"d", "ad"}},
		{".", "ab", []string{"a", "b"}, []string{"", "ab"}},
		{"[^a]", "abc", []string{"b", "c"}, []string{"", "a", "bc"}},
	}
	for _, tc := range tests {
		tree := mustParse(t, tc.pattern)
		nfa := Thompson(tree, regular.NewAlphabet([]regular.Symbol(tc.alpha)...))
		checkLanguage(t, nfa, tc.accept, tc.reject)
	}
}

func TestThompsonStateCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	for _, pattern := range []string{"a", "a|b", "(ab)*c", "a+b?[ab]*"} {
		tree := mustParse(t, pattern)
		nfa := Thompson(tree, tree.Alphabet())
		if max := 2 * tree.Len(); nfa.NumStates() > max {
			t.Errorf("%q: %d states for %d nodes, want at most %d",
				pattern, nfa.NumStates(), tree.Len(), max)
		}
	}
}

func TestThompsonAlphabetError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	tree := mustParse(t, "ab")
	nfa := Thompson(tree, regular.NewAlphabet('a', 'b'))
	_, err := nfa.Accepts("axb")
	aerr, ok := err.(*AlphabetError)
	if !ok {
		t.Fatalf("error is %v, want an AlphabetError", err)
	}
	if aerr.Sym != 'x' || aerr.Pos != 1 {
		t.Errorf("error reports %q at %d, want 'x' at 1", aerr.Sym.String(), aerr.Pos)
	}
}

func TestThompsonWidensAlphabet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	// symbols of the pattern are added to the requested alphabet
	tree := mustParse(t, "ab")
	nfa := Thompson(tree, regular.NewAlphabet('a'))
	if !nfa.Alphabet().Equal(regular.NewAlphabet('a', 'b')) {
		t.Errorf("alphabet is %v, want {a, b}", nfa.Alphabet())
	}
	checkLanguage(t, nfa, []string{"ab"}, []string{"", "a", "b"})
}
