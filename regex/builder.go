package regex

import (
	"sort"

	"github.com/finitary/regular"
)

// TreeBuilder constructs expression trees programmatically, node by node.
// Its constructors simplify on the fly, applying the usual identities of
// regular expressions:
//
//	∅|x = x|∅ = x      x|x = x
//	ε·x = x·ε = x      ∅·x = x·∅ = ∅
//	ε* = ∅* = ε
//
// Simplification keeps trees produced by state elimination from drowning
// in ∅ and ε leaves. The parser does not simplify; it preserves the
// written syntax.
type TreeBuilder struct {
	nodes []node
	empty NodeID // shared ∅ leaf, lazily created
	eps   NodeID // shared ε leaf, lazily created
}

// NewTreeBuilder creates an empty tree builder.
func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{empty: NoNode, eps: NoNode}
}

func (b *TreeBuilder) add(n node) NodeID {
	b.nodes = append(b.nodes, n)
	return NodeID(len(b.nodes) - 1)
}

// EmptySet returns the ∅ leaf.
func (b *TreeBuilder) EmptySet() NodeID {
	if b.empty == NoNode {
		b.empty = b.add(node{op: OpEmptySet})
	}
	return b.empty
}

// Epsilon returns the ε leaf.
func (b *TreeBuilder) Epsilon() NodeID {
	if b.eps == NoNode {
		b.eps = b.add(node{op: OpEpsilon})
	}
	return b.eps
}

// Literal creates a leaf for a terminal symbol. regular.Epsilon maps to
// the ε leaf.
func (b *TreeBuilder) Literal(s regular.Symbol) NodeID {
	if s == regular.Epsilon {
		return b.Epsilon()
	}
	return b.add(node{op: OpLiteral, sym: s})
}

// Class creates a character-class node over the given symbols.
func (b *TreeBuilder) Class(symbols []regular.Symbol, negated bool) NodeID {
	class := append([]regular.Symbol(nil), symbols...)
	sort.Slice(class, func(i, j int) bool { return class[i] < class[j] })
	return b.add(node{op: OpClass, class: class, negated: negated})
}

// Union creates l|r, simplifying ∅ operands and identical operands away.
func (b *TreeBuilder) Union(l, r NodeID) NodeID {
	if b.nodes[l].op == OpEmptySet {
		return r
	}
	if b.nodes[r].op == OpEmptySet {
		return l
	}
	if b.equal(l, r) {
		return l
	}
	return b.add(node{op: OpUnion, left: l, right: r})
}

// Concat creates l·r, simplifying ε and ∅ operands away.
func (b *TreeBuilder) Concat(l, r NodeID) NodeID {
	if b.nodes[l].op == OpEmptySet || b.nodes[r].op == OpEmptySet {
		return b.EmptySet()
	}
	if b.nodes[l].op == OpEpsilon {
		return r
	}
	if b.nodes[r].op == OpEpsilon {
		return l
	}
	return b.add(node{op: OpConcat, left: l, right: r})
}

// Star creates x*, collapsing ε* and ∅* to ε and x** to x*.
func (b *TreeBuilder) Star(x NodeID) NodeID {
	switch b.nodes[x].op {
	case OpEpsilon, OpEmptySet:
		return b.Epsilon()
	case OpStar:
		return x
	}
	return b.add(node{op: OpStar, left: x})
}

// Build freezes the builder into an immutable tree rooted at root.
func (b *TreeBuilder) Build(root NodeID) *Tree {
	return &Tree{nodes: b.nodes, root: root}
}

// equal is a cheap structural equality check, sufficient for the x|x = x
// simplification: shared node ids and equal leaves.
func (b *TreeBuilder) equal(l, r NodeID) bool {
	if l == r {
		return true
	}
	nl, nr := b.nodes[l], b.nodes[r]
	if nl.op != nr.op {
		return false
	}
	switch nl.op {
	case OpEmptySet, OpEpsilon:
		return true
	case OpLiteral:
		return nl.sym == nr.sym
	}
	return false
}
