package grammar

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/finitary/regular"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.grammar")
	defer teardown()
	//
	b := NewBuilder("astar")
	b.LHS("S").T('a').N("S").End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("building grammar failed: %v", err)
	}
	if g.Start() != "S" || g.Kind() != RightLinear {
		t.Errorf("grammar is %s with start %q, want right-linear with start S", g.Kind(), g.Start())
	}
	if !g.Terminals().Equal(regular.NewAlphabet('a')) {
		t.Errorf("terminals are %v, want {a}", g.Terminals())
	}
	if len(g.Productions()) != 2 {
		t.Errorf("%d productions, want 2", len(g.Productions()))
	}
	if !g.DerivesEpsilon() {
		t.Error("grammar with S → ε does not derive ε")
	}
	if n := g.Nullable(); len(n) != 1 || n[0] != "S" {
		t.Errorf("nullable set is %v, want [S]", n)
	}
}

func TestBuilderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.grammar")
	defer teardown()
	//
	tests := []struct {
		name  string
		build func(b *Builder)
	}{
		{"two terminals", func(b *Builder) {
			b.LHS("S").T('a').T('b').End()
		}},
		{"two nonterminals", func(b *Builder) {
			b.LHS("S").N("S").N("S").End()
		}},
		{"epsilon with symbols", func(b *Builder) {
			r := b.LHS("S")
			r.T('a')
			r.Epsilon()
		}},
		{"epsilon as terminal", func(b *Builder) {
			b.LHS("S").T(regular.Epsilon).End()
		}},
		{"undeclared successor", func(b *Builder) {
			b.LHS("S").T('a').N("T").End()
		}},
		{"no productions", func(b *Builder) {}},
		{"terminal collides with nonterminal", func(b *Builder) {
			b.LHS("S").T('a').End()
			b.LHS("a").T('a').End()
		}},
	}
	for _, tc := range tests {
		b := NewBuilder(tc.name)
		tc.build(b)
		if _, err := b.Grammar(); err == nil {
			t.Errorf("%s: building succeeded, want an error", tc.name)
		} else if _, ok := err.(*FormError); !ok {
			t.Errorf("%s: error is %T, want *FormError", tc.name, err)
		}
	}
}

func TestProductionsFor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.grammar")
	defer teardown()
	//
	b := NewBuilder("g")
	b.LHS("S").T('a').N("T").End()
	b.LHS("T").T('b').End()
	b.LHS("S").T('b').End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("building grammar failed: %v", err)
	}
	if ps := g.ProductionsFor("S"); len(ps) != 2 {
		t.Errorf("%d productions for S, want 2", len(ps))
	}
	if ps := g.ProductionsFor("T"); len(ps) != 1 || ps[0].Terminal != 'b' {
		t.Errorf("productions for T are %v", ps)
	}
}

func TestGrammarString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regular.grammar")
	defer teardown()
	//
	b := NewBuilder("right")
	b.LHS("S").T('a').N("T").End()
	b.LHS("T").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("building grammar failed: %v", err)
	}
	s := g.String()
	if !strings.Contains(s, "S → aT") || !strings.Contains(s, "T → ε") {
		t.Errorf("rendering misses productions:\n%s", s)
	}

	lb := NewBuilder("left").LeftLinear()
	lb.LHS("S").N("S").T('a').End()
	lb.LHS("S").T('a').End()
	lg, err := lb.Grammar()
	if err != nil {
		t.Fatalf("building left-linear grammar failed: %v", err)
	}
	if !strings.Contains(lg.String(), "S → Sa") {
		t.Errorf("left-linear rendering is wrong:\n%s", lg.String())
	}
}
