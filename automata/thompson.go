package automata

import (
	"fmt"

	"github.com/finitary/regular"
	"github.com/finitary/regular/regex"
)

// A fragment is a sub-automaton with exactly one entry and one exit
// state, wired together by epsilon transitions.
type frag struct {
	in, out StateID
}

// Thompson compiles a regex AST into an NFA recognizing exactly the
// language denoted by the tree, via structural (Thompson-style)
// construction. The resulting NFA has O(n) states and transitions in
// the size of the tree.
//
// The effective alphabet is alpha unioned with every symbol the tree
// mentions; wildcards and negated character classes resolve against it.
func Thompson(t *regex.Tree, alpha regular.Alphabet) *NFA {
	effective := alpha.Union(t.Alphabet())
	b := NewNFABuilder(effective)

	// Mark the nodes reachable from the root; arenas may carry nodes a
	// simplifying builder has abandoned, and those must not contribute
	// states.
	live := make([]bool, t.Len())
	stack := []regex.NodeID{t.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if live[id] {
			continue
		}
		live[id] = true
		switch t.OpAt(id) {
		case regex.OpConcat, regex.OpUnion:
			stack = append(stack, t.Left(id), t.Right(id))
		case regex.OpStar, regex.OpPlus, regex.OpOptional:
			stack = append(stack, t.Left(id))
		}
	}

	// Children precede parents in the arena, so one pass over the arena
	// builds fragments bottom-up without recursion.
	frags := make([]frag, t.Len())
	for i := 0; i < t.Len(); i++ {
		if !live[i] {
			continue
		}
		id := regex.NodeID(i)
		switch t.OpAt(id) {
		case regex.OpEmptySet:
			// unreachable exit
			frags[i] = frag{in: b.NewState(), out: b.NewState()}
		case regex.OpEpsilon:
			f := frag{in: b.NewState(), out: b.NewState()}
			b.AddEdge(f.in, regular.Epsilon, f.out)
			frags[i] = f
		case regex.OpLiteral:
			f := frag{in: b.NewState(), out: b.NewState()}
			b.AddEdge(f.in, t.SymbolAt(id), f.out)
			frags[i] = f
		case regex.OpClass:
			f := frag{in: b.NewState(), out: b.NewState()}
			for _, sym := range resolveClass(t, id, effective) {
				b.AddEdge(f.in, sym, f.out)
			}
			frags[i] = f
		case regex.OpConcat:
			l, r := frags[t.Left(id)], frags[t.Right(id)]
			b.AddEdge(l.out, regular.Epsilon, r.in)
			frags[i] = frag{in: l.in, out: r.out}
		case regex.OpUnion:
			l, r := frags[t.Left(id)], frags[t.Right(id)]
			f := frag{in: b.NewState(), out: b.NewState()}
			b.AddEdge(f.in, regular.Epsilon, l.in)
			b.AddEdge(f.in, regular.Epsilon, r.in)
			b.AddEdge(l.out, regular.Epsilon, f.out)
			b.AddEdge(r.out, regular.Epsilon, f.out)
			frags[i] = f
		case regex.OpStar:
			x := frags[t.Left(id)]
			f := frag{in: b.NewState(), out: b.NewState()}
			b.AddEdge(f.in, regular.Epsilon, x.in)
			b.AddEdge(f.in, regular.Epsilon, f.out)
			b.AddEdge(x.out, regular.Epsilon, x.in)
			b.AddEdge(x.out, regular.Epsilon, f.out)
			frags[i] = f
		case regex.OpPlus:
			// one mandatory pass, then loop back: X · X* without
			// building X twice
			x := frags[t.Left(id)]
			f := frag{in: b.NewState(), out: b.NewState()}
			b.AddEdge(f.in, regular.Epsilon, x.in)
			b.AddEdge(x.out, regular.Epsilon, x.in)
			b.AddEdge(x.out, regular.Epsilon, f.out)
			frags[i] = f
		case regex.OpOptional:
			x := frags[t.Left(id)]
			f := frag{in: b.NewState(), out: b.NewState()}
			b.AddEdge(f.in, regular.Epsilon, x.in)
			b.AddEdge(f.in, regular.Epsilon, f.out)
			b.AddEdge(x.out, regular.Epsilon, f.out)
			frags[i] = f
		}
	}

	root := frags[t.Root()]
	b.SetStart(root.in)
	b.MarkAccepting(root.out)
	nfa, err := b.NFA()
	if err != nil {
		panic(fmt.Sprintf("thompson construction produced invalid NFA: %v", err))
	}
	return nfa
}

// resolveClass expands a class node against the effective alphabet.
func resolveClass(t *regex.Tree, id regex.NodeID, alpha regular.Alphabet) []regular.Symbol {
	class, negated := t.ClassAt(id)
	if !negated {
		return class
	}
	member := make(map[regular.Symbol]bool, len(class))
	for _, sym := range class {
		member[sym] = true
	}
	var out []regular.Symbol
	for _, sym := range alpha.Symbols() {
		if !member[sym] {
			out = append(out, sym)
		}
	}
	return out
}
