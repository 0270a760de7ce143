package syntax

// This file holds the node constructors: pure factories that build
// one node of each variant, wire the parent back-link, and enforce
// the per-node invariants that must hold at construction time.
// Nothing here advances the token cursor; that's the walker's job.

func newRegExpNode() *Node {
	return &Node{Type: NtRegExp}
}

func newPatternNode() *Node {
	return &Node{Type: NtPattern}
}

func newFlagsNode(f Flags) *Node {
	return &Node{Type: NtFlags, IgnoreCase: f.IgnoreCase, DotAll: f.DotAll, Extended: f.Extended}
}

func newAlternativeNode() *Node {
	return &Node{Type: NtAlternative}
}

// appendAlternative adds alt to the owner's Alternatives list and
// wires alt.Parent atomically with the ownership change.
func appendAlternative(owner, alt *Node) {
	alt.Parent = owner
	owner.Alternatives = append(owner.Alternatives, alt)
}

// appendElement adds child to alt's Elements list and wires the
// back-link atomically with the ownership change.
func appendElement(alt, child *Node) {
	child.Parent = alt
	alt.Elements = append(alt.Elements, child)
}

func newGroupNode(atomic bool, enable, disable *Flags) *Node {
	return &Node{Type: NtGroup, Atomic: atomic, EnableFlags: enable, DisableFlags: disable}
}

// newCapturingGroupNode validates the group name before construction;
// number is assigned by the caller (the walker), which knows the
// running capture count.
func newCapturingGroupNode(number int, name string) (*Node, error) {
	if name != "" && !isValidGroupName(name) {
		return nil, newError(ErrInvalidGroupName, name, "capturing group name %q does not match the identifier grammar", name)
	}
	return &Node{Type: NtCapturingGroup, Number: number, Name: name}, nil
}

func newAssertionNode(kind string, negate bool) *Node {
	return &Node{Type: NtAssertion, Kind: kind, Negate: negate}
}

func newCharacterNode(value rune) *Node {
	return &Node{Type: NtCharacter, Value: value}
}

func newCharacterSetNode(kind string, negate bool, property string) *Node {
	n := &Node{Type: NtCharacterSet, Kind: kind}
	if negatableSetKind(kind) {
		n.Negate = negate
	}
	if kind == SetKindPosix || kind == SetKindProperty {
		n.Property = property
	}
	return n
}

func newVariableLengthCharacterSetNode(kind string) *Node {
	return &Node{Type: NtVariableLengthCharacterSet, Kind: kind}
}

func newCharacterClassNode(negate bool) *Node {
	return &Node{Type: NtCharacterClass, Negate: negate}
}

func newCharacterClassIntersectionNode() *Node {
	return &Node{Type: NtCharacterClassIntersection}
}

// newCharacterClassRangeNode enforces min.value <= max.value and
// reparents both children atomically.
func newCharacterClassRangeNode(min, max *Node) (*Node, error) {
	if min.Value > max.Value {
		return nil, newError(ErrInvalidRange, "", "character class range is out of order: %U-%U", min.Value, max.Value)
	}
	n := &Node{Type: NtCharacterClassRange, Min: min, Max: max}
	min.Parent = n
	max.Parent = n
	return n, nil
}

// newQuantifierNode enforces max >= min and reparents element
// atomically. The caller is responsible for the lookbehind
// variable-length guard, which depends on ancestry, not just the
// node's own fields.
func newQuantifierNode(element *Node, min, max int, greedy, possessive bool) (*Node, error) {
	if max < min {
		return nil, newError(ErrRangeOutOfOrder, "", "quantifier range {%d,%d} is out of order", min, max)
	}
	n := &Node{Type: NtQuantifier, QMin: min, QMax: max, Greedy: greedy, Possessive: possessive, Element: element}
	element.Parent = n
	return n, nil
}

func newBackreferenceNode(ref interface{}) *Node {
	return &Node{Type: NtBackreference, Ref: ref}
}

func newSubroutineNode(ref interface{}) *Node {
	return &Node{Type: NtSubroutine, Ref: ref}
}

func newDirectiveNode(kind string, enable, disable *Flags) *Node {
	return &Node{Type: NtDirective, Kind: kind, EnableFlags: enable, DisableFlags: disable}
}
