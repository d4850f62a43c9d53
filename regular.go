package regular

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// --- Symbols ---------------------------------------------------------------

// Symbol is an atomic terminal symbol from a finite alphabet. Symbols are
// runes; applications may use any rune except the reserved Epsilon value.
type Symbol rune

// Epsilon is the reserved empty-word pseudo-symbol. It is never a member of
// an alphabet, but automata use it to label no-input transitions.
const Epsilon Symbol = 0

func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}
	return string(rune(s))
}

// --- Alphabets -------------------------------------------------------------

// Alphabet is a finite set of symbols Σ. Alphabets are value-like and
// immutable once built; deriving operations return fresh alphabets.
// Iteration order is sorted, which keeps every construction over an
// alphabet deterministic.
type Alphabet struct {
	set *treeset.Set
}

func symbolComparator(a, b interface{}) int {
	return utils.RuneComparator(rune(a.(Symbol)), rune(b.(Symbol)))
}

// NewAlphabet creates an alphabet from the given symbols. Duplicates are
// collapsed, Epsilon is ignored.
func NewAlphabet(symbols ...Symbol) Alphabet {
	set := treeset.NewWith(symbolComparator)
	for _, s := range symbols {
		if s == Epsilon {
			continue
		}
		set.Add(s)
	}
	return Alphabet{set: set}
}

// Contains checks membership of a symbol in Σ.
func (a Alphabet) Contains(s Symbol) bool {
	if a.set == nil {
		return false
	}
	return a.set.Contains(s)
}

// Size returns |Σ|.
func (a Alphabet) Size() int {
	if a.set == nil {
		return 0
	}
	return a.set.Size()
}

// Symbols returns the symbols of Σ in sorted order.
func (a Alphabet) Symbols() []Symbol {
	if a.set == nil {
		return nil
	}
	symbols := make([]Symbol, 0, a.set.Size())
	it := a.set.Iterator()
	for it.Next() {
		symbols = append(symbols, it.Value().(Symbol))
	}
	return symbols
}

// Index returns the position of s in the sorted symbol order, or -1 if s
// is not a member. Automata use it to map symbols to transition-table
// columns.
func (a Alphabet) Index(s Symbol) int {
	if a.set == nil {
		return -1
	}
	i := 0
	it := a.set.Iterator()
	for it.Next() {
		if it.Value().(Symbol) == s {
			return i
		}
		i++
	}
	return -1
}

// Union returns Σ ∪ Σ' as a fresh alphabet.
func (a Alphabet) Union(b Alphabet) Alphabet {
	set := treeset.NewWith(symbolComparator)
	if a.set != nil {
		set.Add(a.set.Values()...)
	}
	if b.set != nil {
		set.Add(b.set.Values()...)
	}
	return Alphabet{set: set}
}

// Equal reports whether both alphabets contain exactly the same symbols.
func (a Alphabet) Equal(b Alphabet) bool {
	if a.Size() != b.Size() {
		return false
	}
	for _, s := range a.Symbols() {
		if !b.Contains(s) {
			return false
		}
	}
	return true
}

func (a Alphabet) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, s := range a.Symbols() {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(s.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a range of input positions. Scanners
// produce spans for tokens; syntax errors reference them for diagnostics.
// A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
