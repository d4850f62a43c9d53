package regex

import (
	"strings"

	"github.com/finitary/regular"
)

// Op is the variant tag of an AST node.
type Op uint8

const (
	OpEmptySet Op = iota // ∅, accepts nothing
	OpEpsilon            // ε, accepts the empty word
	OpLiteral            // a single terminal symbol
	OpClass              // character class, possibly negated
	OpConcat             // juxtaposition
	OpUnion              // '|'
	OpStar               // '*'
	OpPlus               // '+'
	OpOptional           // '?'
)

func (op Op) String() string {
	switch op {
	case OpEmptySet:
		return "EmptySet"
	case OpEpsilon:
		return "Epsilon"
	case OpLiteral:
		return "Literal"
	case OpClass:
		return "Class"
	case OpConcat:
		return "Concat"
	case OpUnion:
		return "Union"
	case OpStar:
		return "Star"
	case OpPlus:
		return "Plus"
	case OpOptional:
		return "Optional"
	}
	return "Unknown"
}

// NodeID references a node within the arena of a Tree (or TreeBuilder).
type NodeID int32

// NoNode is the null node reference.
const NoNode NodeID = -1

// Nodes are stored in a flat arena. Children always precede their parent
// in the arena, so a single left-to-right pass over the arena visits the
// tree bottom-up without recursion.
type node struct {
	op          Op
	sym         regular.Symbol   // for OpLiteral
	left, right NodeID           // operands; right unused for unary ops
	class       []regular.Symbol // for OpClass, sorted
	negated     bool             // for OpClass: complement wrt the alphabet
}

// Tree is an immutable abstract syntax tree for a regular expression.
type Tree struct {
	nodes []node
	root  NodeID
}

// Root returns the root node of the tree.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of arena nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// OpAt returns the variant tag of a node.
func (t *Tree) OpAt(id NodeID) Op {
	return t.nodes[id].op
}

// SymbolAt returns the terminal symbol of a Literal node.
func (t *Tree) SymbolAt(id NodeID) regular.Symbol {
	return t.nodes[id].sym
}

// Left returns the left (or only) operand of a node.
func (t *Tree) Left(id NodeID) NodeID {
	return t.nodes[id].left
}

// Right returns the right operand of a binary node.
func (t *Tree) Right(id NodeID) NodeID {
	return t.nodes[id].right
}

// ClassAt returns the symbol set of a Class node, and whether the class
// is negated (i.e., denotes the complement wrt the alphabet).
func (t *Tree) ClassAt(id NodeID) ([]regular.Symbol, bool) {
	return t.nodes[id].class, t.nodes[id].negated
}

// Alphabet returns every symbol mentioned by the tree: literals and
// character-class members. Wildcards and negated classes do not add
// symbols of their own; they are resolved against an alphabet when the
// tree is compiled.
func (t *Tree) Alphabet() regular.Alphabet {
	var symbols []regular.Symbol
	for _, n := range t.nodes {
		switch n.op {
		case OpLiteral:
			symbols = append(symbols, n.sym)
		case OpClass:
			symbols = append(symbols, n.class...)
		}
	}
	return regular.NewAlphabet(symbols...)
}

// String renders the tree in the concrete syntax, parenthesizing where
// precedence requires it. ε and ∅ render as their usual glyphs.
func (t *Tree) String() string {
	var sb strings.Builder
	t.render(&sb, t.root, 0)
	return sb.String()
}

// precedence levels for rendering: 0 = union, 1 = concat, 2 = postfix
func (t *Tree) render(sb *strings.Builder, id NodeID, prec int) {
	n := t.nodes[id]
	switch n.op {
	case OpEmptySet:
		sb.WriteString("∅")
	case OpEpsilon:
		sb.WriteString("ε")
	case OpLiteral:
		sb.WriteString(n.sym.String())
	case OpClass:
		sb.WriteString("[")
		if n.negated {
			sb.WriteString("^")
		}
		for _, s := range n.class {
			sb.WriteString(s.String())
		}
		sb.WriteString("]")
	case OpConcat:
		if prec > 1 {
			sb.WriteString("(")
		}
		t.render(sb, n.left, 1)
		t.render(sb, n.right, 1)
		if prec > 1 {
			sb.WriteString(")")
		}
	case OpUnion:
		if prec > 0 {
			sb.WriteString("(")
		}
		t.render(sb, n.left, 0)
		sb.WriteString("|")
		t.render(sb, n.right, 0)
		if prec > 0 {
			sb.WriteString(")")
		}
	case OpStar, OpPlus, OpOptional:
		t.render(sb, n.left, 2)
		switch n.op {
		case OpStar:
			sb.WriteString("*")
		case OpPlus:
			sb.WriteString("+")
		case OpOptional:
			sb.WriteString("?")
		}
	}
}
