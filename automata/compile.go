package automata

import (
	"github.com/finitary/regular"
	"github.com/finitary/regular/regex"
)

// Compile runs the full pipeline for a regex pattern: parse, Thompson
// construction, subset construction, minimization. The resulting DFA is
// the canonical minimal acceptor for the pattern's language over the
// given alphabet (unioned with the symbols the pattern mentions).
func Compile(pattern string, alpha regular.Alphabet) (*DFA, error) {
	tree, err := regex.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return Minimize(Determinize(Thompson(tree, alpha))), nil
}
