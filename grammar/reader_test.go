package grammar

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.grammar")
	defer teardown()
	//
	src := `
# a* followed by an optional bb
S -> a S | b T | ε
T -> b
`
	g, err := Read("example", src)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if g.Kind() != RightLinear || g.Start() != "S" {
		t.Errorf("grammar is %s with start %q, want right-linear with start S", g.Kind(), g.Start())
	}
	if nts := g.Nonterminals(); len(nts) != 2 || nts[0] != "S" || nts[1] != "T" {
		t.Errorf("nonterminals are %v, want [S T]", nts)
	}
	if len(g.Productions()) != 4 {
		t.Errorf("%d productions, want 4", len(g.Productions()))
	}
	nfa, err := g.Automaton()
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	checkAccepts(t, nfa,
		[]string{"", "a", "aa", "bb", "abb", "aabb"},
		[]string{"b", "ab", "ba", "bbb"})
}

func TestReadLeftLinear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.grammar")
	defer teardown()
	//
	g, err := Read("bastar", "S -> S a | b\n")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if g.Kind() != LeftLinear {
		t.Errorf("grammar is %s, want left-linear", g.Kind())
	}
	nfa, err := g.Automaton()
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	checkAccepts(t, nfa, []string{"b", "ba", "baa"}, []string{"", "a", "ab"})
}

func TestReadEpsKeyword(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.grammar")
	defer teardown()
	//
	g, err := Read("g", "S -> a S | eps")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !g.DerivesEpsilon() {
		t.Error("'eps' alternative was not read as an ε-production")
	}
}

func TestReadMultilineNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.grammar")
	defer teardown()
	//
	g, err := Read("g", "Start -> a Loop\nLoop -> a Loop | ε\n")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if g.Start() != "Start" {
		t.Errorf("start is %q, want Start", g.Start())
	}
	nfa, err := g.Automaton()
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	checkAccepts(t, nfa, []string{"a", "aa"}, []string{""})
}

func TestReadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.grammar")
	defer teardown()
	//
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"lexical garbage", "S => a", "unexpected input"},
		{"missing lhs", "-> a", "must start with a nonterminal"},
		{"missing arrow", "S a b", "expected '->'"},
		{"not linear", "S -> a S b", "not a linear form"},
		{"lone nonterminal", "S -> T", "not a linear form"},
		{"mixed forms", "S -> a S | S a", "mixes right- and left-linear"},
		{"undeclared successor", "S -> a T", "undeclared"},
	}
	for _, tc := range tests {
		_, err := Read(tc.name, tc.src)
		if err == nil {
			t.Errorf("%s: Read succeeded, want an error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error is %q, want it to mention %q", tc.name, err, tc.want)
		}
	}
}
