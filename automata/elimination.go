package automata

import (
	"github.com/finitary/regular"
	"github.com/finitary/regular/regex"
)

// ToRegex converts a DFA into a regular expression denoting the same
// language, using state elimination: a matrix R[i][j] holds a regex for
// the direct paths from i to j, and eliminating a state k rewrites every
// remaining entry to
//
//	R[i][j] = R[i][j] | R[i][k] R[k][k]* R[k][j]
//
// A fresh initial and a fresh final state are added up front, connected
// by epsilon entries, so elimination can remove every original state
// regardless of loops through the start or multiple accepting states.
// The simplifying TreeBuilder constructors keep ∅ and ε entries from
// accumulating.
//
// The output is generally not the shortest expression for the language,
// but it is exact: compiling it back yields an equivalent automaton.
func ToRegex(d *DFA) *regex.Tree {
	n := d.NumStates()
	initial, final := n, n+1
	b := regex.NewTreeBuilder()

	R := make([][]regex.NodeID, n+2)
	for i := range R {
		R[i] = make([]regex.NodeID, n+2)
		for j := range R[i] {
			R[i][j] = b.EmptySet()
		}
	}
	d.EachTransition(func(from StateID, sym regular.Symbol, to StateID) {
		R[from][to] = b.Union(R[from][to], b.Literal(sym))
	})
	R[initial][int(d.start)] = b.Epsilon()
	for s := 0; s < n; s++ {
		if d.accept[s] {
			R[s][final] = b.Union(R[s][final], b.Epsilon())
		}
	}

	eliminated := make([]bool, n+2)
	for k := 0; k < n; k++ {
		loop := b.Star(R[k][k])
		for i := 0; i < n+2; i++ {
			if eliminated[i] || i == k {
				continue
			}
			for j := 0; j < n+2; j++ {
				if eliminated[j] || j == k {
					continue
				}
				detour := b.Concat(b.Concat(R[i][k], loop), R[k][j])
				R[i][j] = b.Union(R[i][j], detour)
			}
		}
		eliminated[k] = true
	}

	tree := b.Build(R[initial][final])
	tracer().Debugf("eliminated %d states into regex %v", n, tree)
	return tree
}
