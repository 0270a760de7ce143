package syntax

import (
	"math"
	"strconv"
)

// Unbounded is the sentinel Quantifier.Max value meaning "no upper
// bound".
const Unbounded = math.MaxInt32

// NodeType is the closed AST node taxonomy. Every variant lives in one
// struct (Node) tagged by Type rather than as a family of interface
// implementations: the walker and the optimizer both need to reparent
// and mutate nodes in place, which a single concrete type makes
// trivial and a forest of small structs behind an interface would
// only complicate.
type NodeType int32

const (
	NtUnknown NodeType = iota
	NtRegExp
	NtPattern
	NtFlags
	NtAlternative
	NtGroup
	NtCapturingGroup
	NtAssertion
	NtCharacter
	NtCharacterSet
	NtVariableLengthCharacterSet
	NtCharacterClass
	NtCharacterClassIntersection
	NtCharacterClassRange
	NtQuantifier
	NtBackreference
	NtSubroutine
	NtDirective
)

var nodeTypeNames = [...]string{
	"Unknown", "RegExp", "Pattern", "Flags", "Alternative", "Group",
	"CapturingGroup", "Assertion", "Character", "CharacterSet",
	"VariableLengthCharacterSet", "CharacterClass",
	"CharacterClassIntersection", "CharacterClassRange", "Quantifier",
	"Backreference", "Subroutine", "Directive",
}

func (t NodeType) String() string {
	if int(t) < 0 || int(t) >= len(nodeTypeNames) {
		return "Unknown"
	}
	return nodeTypeNames[t]
}

// Assertion kinds.
const (
	AssertLineStart         = "line_start"
	AssertLineEnd           = "line_end"
	AssertStringStart       = "string_start"
	AssertStringEnd         = "string_end"
	AssertStringEndNewline  = "string_end_newline"
	AssertSearchStart       = "search_start"
	AssertWordBoundary      = "word_boundary"
	AssertLookahead         = "lookahead"
	AssertLookbehind        = "lookbehind"
)

// CharacterSet kinds.
const (
	SetKindAny      = "any"
	SetKindDigit    = "digit"
	SetKindHex      = "hex"
	SetKindPosix    = "posix"
	SetKindProperty = "property"
	SetKindSpace    = "space"
	SetKindWord     = "word"
)

// negatableSetKind reports whether a CharacterSet kind carries a
// meaningful Negate flag.
func negatableSetKind(kind string) bool {
	switch kind {
	case SetKindDigit, SetKindHex, SetKindPosix, SetKindProperty, SetKindSpace, SetKindWord:
		return true
	default:
		return false
	}
}

// VariableLengthCharacterSet kinds.
const (
	VLCSKindNewline  = "newline"
	VLCSKindGrapheme = "grapheme"
)

// Directive kinds.
const (
	DirectiveKindFlags = "flags"
	DirectiveKindKeep  = "keep"
)

// Flags are the pattern-level flags carried verbatim from the
// tokenizer into the tree, and reused for the enable/disable sets of
// scoped flag deltas on Group and Directive nodes.
type Flags struct {
	IgnoreCase bool
	DotAll     bool
	Extended   bool
}

// Node is the single concrete representation of every AST variant.
// Which fields are actually populated depends on Type.
type Node struct {
	Type   NodeType
	Parent *Node

	// RegExp
	Pattern *Node
	Flags   *Node

	// Pattern / Alternative(container) / Group / CapturingGroup /
	// Assertion (lookaround only)
	Alternatives []*Node

	// Alternative
	Elements []*Node

	// Flags node (Group/Directive deltas use EnableFlags/DisableFlags)
	IgnoreCase bool
	DotAll     bool
	Extended   bool

	// Group
	Atomic       bool
	EnableFlags  *Flags
	DisableFlags *Flags

	// CapturingGroup
	Number int
	Name   string

	// Assertion / CharacterSet / CharacterClass
	Kind   string
	Negate bool

	// Character
	Value rune

	// CharacterSet (posix, property)
	Property string

	// CharacterClassIntersection
	Classes []*Node

	// CharacterClassRange
	Min *Node
	Max *Node

	// Quantifier
	QMin       int
	QMax       int
	Greedy     bool
	Possessive bool
	Element    *Node

	// Backreference / Subroutine: either int (numbered) or string (named)
	Ref interface{}
}

// Dump renders a depth-first, indented description of the tree.
// Intended for debugging and tests, not for round-tripping.
func (n *Node) Dump() string {
	var b []byte
	n.dump(&b, 0)
	return string(b)
}

func (n *Node) dump(b *[]byte, depth int) {
	for i := 0; i < depth; i++ {
		*b = append(*b, ' ', ' ')
	}
	*b = append(*b, n.describe()...)
	*b = append(*b, '\n')
	for _, c := range n.children() {
		c.dump(b, depth+1)
	}
}

func (n *Node) describe() string {
	s := n.Type.String()
	switch n.Type {
	case NtCharacter:
		s += " value=" + string(n.Value)
	case NtCapturingGroup:
		s += " number=" + strconv.Itoa(n.Number)
		if n.Name != "" {
			s += " name=" + n.Name
		}
	case NtAssertion:
		s += " kind=" + n.Kind
	case NtCharacterSet, NtVariableLengthCharacterSet, NtDirective:
		s += " kind=" + n.Kind
	case NtQuantifier:
		s += " min=" + strconv.Itoa(n.QMin) + " max=" + strconv.Itoa(n.QMax)
	case NtBackreference, NtSubroutine:
		s += " ref=" + refString(n.Ref)
	}
	if n.Negate {
		s += " negate"
	}
	return s
}

func refString(ref interface{}) string {
	switch v := ref.(type) {
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return ""
	}
}

// children returns the node's owned children in traversal order,
// across whichever container field is populated for this variant.
func (n *Node) children() []*Node {
	switch n.Type {
	case NtRegExp:
		return []*Node{n.Pattern, n.Flags}
	case NtCharacterClassRange:
		return []*Node{n.Min, n.Max}
	case NtQuantifier:
		return []*Node{n.Element}
	case NtCharacterClassIntersection:
		return n.Classes
	}
	if len(n.Alternatives) > 0 {
		return n.Alternatives
	}
	return n.Elements
}
