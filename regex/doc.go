/*
Package regex parses a concrete regular-expression syntax into an
abstract syntax tree (AST).

The surface syntax supports literal symbols, '.' as a wildcard over the
alphabet, union '|', implicit concatenation, the postfix repetition
operators '*', '+' and '?', grouping with parentheses, '\' to escape a
metacharacter, and character classes '[...]' / '[^...]'. Union binds
weakest, then concatenation, then postfix repetition. The empty pattern
denotes ε.

Trees are stored as a flat arena of nodes referenced by index; they are
immutable once built. Besides parsing, the package offers a TreeBuilder
with simplifying constructors (ε·x = x, ∅|x = x, ε* = ε, …), which the
automata package uses when it converts an automaton back into a regular
expression.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package regex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'regular.regex'.
func tracer() tracing.Trace {
	return tracing.Select("regular.regex")
}
