package automata

import (
	"fmt"

	"github.com/finitary/regular"
)

// AlphabetError reports an input symbol outside the alphabet of the
// automaton processing it. Pos is the byte offset within the input.
type AlphabetError struct {
	Sym      regular.Symbol
	Pos      int
	Alphabet regular.Alphabet
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("invalid input symbol at pos %d: %q not in alphabet %v",
		e.Pos, e.Sym.String(), e.Alphabet)
}
