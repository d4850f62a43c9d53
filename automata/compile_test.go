package automata

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/finitary/regular"
	"github.com/finitary/regular/regex"
)

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	d, err := Compile("(ab)*", regular.NewAlphabet('a', 'b'))
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	checkLanguage(t, d, []string{"", "ab", "abab"}, []string{"a", "ba"})
	// Compile minimizes: (ab)* needs exactly two live states
	if d.NumStates() != 2 {
		t.Errorf("compiled DFA has %d states, want 2", d.NumStates())
	}
}

func TestCompileSyntaxError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.automata")
	defer teardown()
	//
	_, err := Compile("(a", regular.NewAlphabet('a'))
	if _, ok := err.(*regex.SyntaxError); !ok {
		t.Errorf("error is %v (%T), want a *regex.SyntaxError", err, err)
	}
}
