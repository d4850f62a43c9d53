package automata

import (
	"fmt"
)

// Minimize reduces a DFA to the unique minimal automaton accepting the
// same language (up to isomorphism). Unreachable states are pruned
// first, then partition refinement computes the Myhill–Nerode
// equivalence classes: two states stay in one block only if no symbol
// sends them into different blocks. Dead states — states from which no
// accepting state is reachable — are trimmed afterwards, so the result
// is again a partial DFA; the empty language minimizes to a single
// non-accepting start state.
//
// The result's states are numbered in breadth-first order from the
// start state over the sorted alphabet, which makes the numbering
// canonical: two minimal automata for the same language are identical.
func Minimize(d *DFA) *DFA {
	symbols := d.alpha.Symbols()

	// --- 1. prune states unreachable from the start -----------------------
	reach := reachable(d)
	compact := make([]StateID, d.NumStates()) // old id -> pruned id
	for i := range compact {
		compact[i] = noState
	}
	for i, old := range reach {
		compact[old] = StateID(i)
	}
	n := len(reach)

	// Pruned transition table, completed with a virtual sink so the
	// refinement sees a total function.
	sink := n
	total := n + 1
	trans := make([][]int, total)
	accept := make([]bool, total)
	for i, old := range reach {
		accept[i] = d.accept[old]
		trans[i] = make([]int, len(symbols))
		for j, sym := range symbols {
			if to, ok := d.Step(old, sym); ok {
				trans[i][j] = int(compact[to])
			} else {
				trans[i][j] = sink
			}
		}
	}
	trans[sink] = make([]int, len(symbols))
	for j := range symbols {
		trans[sink][j] = sink
	}

	// --- 2. partition refinement to a fixed point -------------------------
	block := make([]int, total)
	for s := 0; s < total; s++ {
		if accept[s] {
			block[s] = 1
		}
	}
	blocks := 2
	for {
		next := make([]int, total)
		index := make(map[string]int)
		for s := 0; s < total; s++ {
			sig := signature(block, trans[s], block[s])
			id, seen := index[sig]
			if !seen {
				id = len(index)
				index[sig] = id
			}
			next[s] = id
		}
		if len(index) == blocks {
			block = next
			break
		}
		blocks = len(index)
		block = next
	}
	tracer().Debugf("refinement stabilized at %d blocks for %d states", blocks, n)

	// --- 3. assemble the minimized automaton ------------------------------
	// Block-level transitions are well-defined: refinement guarantees all
	// members of a block agree on the successor block for every symbol.
	blockTrans := make([][]int, blocks)
	blockAccept := make([]bool, blocks)
	for s := 0; s < total; s++ {
		if blockTrans[block[s]] != nil {
			continue
		}
		succ := make([]int, len(symbols))
		for j := range symbols {
			succ[j] = block[trans[s][j]]
		}
		blockTrans[block[s]] = succ
		blockAccept[block[s]] = accept[s]
	}

	// Trim dead blocks: reverse reachability from the accepting blocks.
	useful := make([]bool, blocks)
	for b := 0; b < blocks; b++ {
		useful[b] = blockAccept[b]
	}
	for changed := true; changed; {
		changed = false
		for b := 0; b < blocks; b++ {
			if useful[b] {
				continue
			}
			for j := range symbols {
				if useful[blockTrans[b][j]] {
					useful[b] = true
					changed = true
					break
				}
			}
		}
	}

	// Canonical breadth-first renumbering from the start block.
	startBlock := block[int(compact[d.start])]
	order := []int{startBlock}
	seen := map[int]StateID{startBlock: 0}
	for at := 0; at < len(order); at++ {
		b := order[at]
		for j := range symbols {
			t := blockTrans[b][j]
			if !useful[t] {
				continue
			}
			if _, ok := seen[t]; !ok {
				seen[t] = StateID(len(order))
				order = append(order, t)
			}
		}
	}

	builder := NewDFABuilder(d.alpha)
	for range order {
		builder.NewState()
	}
	builder.SetStart(0)
	for at, b := range order {
		if blockAccept[b] {
			builder.MarkAccepting(StateID(at))
		}
		for j, sym := range symbols {
			t := blockTrans[b][j]
			if !useful[t] {
				continue
			}
			builder.SetTransition(StateID(at), sym, seen[t])
		}
	}
	m, err := builder.DFA()
	if err != nil {
		panic(fmt.Sprintf("minimization produced invalid DFA: %v", err))
	}
	tracer().Debugf("minimized %d states to %d", d.NumStates(), m.NumStates())
	return m
}

// reachable returns the states reachable from the start, in breadth-first
// order over the sorted alphabet.
func reachable(d *DFA) []StateID {
	symbols := d.alpha.Symbols()
	order := []StateID{d.start}
	seen := map[StateID]bool{d.start: true}
	for at := 0; at < len(order); at++ {
		for _, sym := range symbols {
			if to, ok := d.Step(order[at], sym); ok && !seen[to] {
				seen[to] = true
				order = append(order, to)
			}
		}
	}
	return order
}

// signature encodes which blocks a state's successors fall into, plus the
// state's own block (so refinement never merges across blocks).
func signature(block []int, succ []int, own int) string {
	sig := make([]int, 0, len(succ)+1)
	sig = append(sig, own)
	for _, t := range succ {
		sig = append(sig, block[t])
	}
	return fmt.Sprint(sig)
}
