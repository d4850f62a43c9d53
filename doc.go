/*
Package regular is a toolbox for the theory of regular languages.

It covers the classic pipeline from regular expressions to minimal
deterministic finite automata, together with regular grammars and
language-level set operations. Package structure is as follows:

■ regex: Package regex parses a regular-expression syntax into an
abstract syntax tree, and pretty-prints/simplifies such trees.

■ automata: Package automata implements NFAs and DFAs, Thompson
construction, subset construction, DFA minimization, product
operations (union, intersection, difference, complement), language
equivalence, and Moore/Mealy transducers.

■ grammar: Package grammar implements right-linear (and left-linear)
regular grammars, with conversions to and from finite automata.

The base package contains the symbol and alphabet model which is used
throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package regular
