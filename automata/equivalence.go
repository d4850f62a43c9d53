package automata

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/finitary/regular"
)

// Equivalent reports whether two DFAs accept the same language. Both
// automata are minimized; by Myhill–Nerode, they are equivalent iff
// their minimal forms are isomorphic under a state renaming mapping
// start to start and preserving transitions and accepting flags.
func Equivalent(a, b *DFA) bool {
	return Isomorphic(Minimize(a), Minimize(b))
}

// Isomorphic reports whether a structural isomorphism exists between the
// two automata: a bijection on states mapping start to start and
// preserving every transition and accepting flag. The check walks both
// automata in lockstep over the union of their alphabets; it is a
// complete equivalence test only for minimal automata.
func Isomorphic(a, b *DFA) bool {
	if a.NumStates() != b.NumStates() {
		return false
	}
	symbols := a.alpha.Union(b.alpha).Symbols()

	type pair struct{ i, j StateID }
	ab := map[StateID]StateID{a.start: b.start}
	ba := map[StateID]StateID{b.start: a.start}
	worklist := []pair{{a.start, b.start}}
	for len(worklist) > 0 {
		p := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if a.accept[p.i] != b.accept[p.j] {
			return false
		}
		for _, sym := range symbols {
			ti, oki := a.Step(p.i, sym)
			tj, okj := b.Step(p.j, sym)
			if oki != okj {
				return false
			}
			if !oki {
				continue
			}
			mi, seenI := ab[ti]
			mj, seenJ := ba[tj]
			if seenI != seenJ || (seenI && (mi != tj || mj != ti)) {
				return false
			}
			if !seenI {
				ab[ti] = tj
				ba[tj] = ti
				worklist = append(worklist, pair{ti, tj})
			}
		}
	}
	return true
}

// Empty reports whether the automaton accepts no string at all, i.e.,
// whether no accepting state is reachable from the start.
func Empty(d *DFA) bool {
	for _, s := range reachable(d) {
		if d.accept[s] {
			return false
		}
	}
	return true
}

// canonical is the hashable shape of a minimal DFA. Minimize numbers
// states in breadth-first order over the sorted alphabet, so automata
// for the same language produce the same canonical value.
type canonical struct {
	Alphabet string
	States   int
	Start    int
	Accept   []int
	Edges    [][3]int
}

// Fingerprint returns a canonical digest of the automaton's language:
// two DFAs have equal fingerprints iff they accept the same language.
// The automaton is minimized, canonically renumbered, and hashed.
func Fingerprint(d *DFA) string {
	m := Minimize(d)
	c := canonical{
		Alphabet: m.alpha.String(),
		States:   m.NumStates(),
		Start:    int(m.start),
		Accept:   []int{},
		Edges:    [][3]int{},
	}
	for i, acc := range m.accept {
		if acc {
			c.Accept = append(c.Accept, i)
		}
	}
	m.EachTransition(func(from StateID, sym regular.Symbol, to StateID) {
		c.Edges = append(c.Edges, [3]int{int(from), m.alpha.Index(sym), int(to)})
	})
	return fmt.Sprintf("%x", structhash.Md5(c, 1))
}
