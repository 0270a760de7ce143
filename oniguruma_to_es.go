/*
Package onigurumatoes parses a flat token stream describing an
Oniguruma-style regular expression into an abstract syntax tree.

It is a thin public wrapper over the syntax package, keeping the
parsing internals behind a small facade and re-exporting only the
types callers need to build a token stream and walk the result.
*/
package onigurumatoes

import "github.com/vcschapp/oniguruma-to-es/syntax"

// Flags is the set of pattern-level flags carried by a RegExp node.
type Flags = syntax.Flags

// Options controls optional structural optimizations applied during
// parsing.
type Options = syntax.Options

// Node is a single node of the parsed AST.
type Node = syntax.Node

// Token is one element of the token stream a tokenizer must supply.
type Token = syntax.Token

// Error reports a parse failure, identifying which of the closed set
// of error kinds occurred and the raw token text responsible.
type Error = syntax.Error

// Parse converts a token stream into a RegExp AST. It is the package's
// single entry point; there is no "write" stage, since emitting to
// another regex dialect is out of scope here.
func Parse(tokens []Token, flags Flags, opts Options) (*Node, error) {
	return syntax.Parse(tokens, flags, opts)
}
