package syntax

// applyQuantifier pops the preceding sibling in elements, wraps it in
// a Quantifier, and pushes the quantifier back in its place. elements
// is the in-progress Elements slice of the alternative currently
// being built; the caller re-wires Parent links for whatever ends up
// at the tail after this returns.
func (ctx *context) applyQuantifier(elements *[]*Node, tok Token) error {
	if len(*elements) == 0 {
		return newError(ErrNothingToRepeat, tok.Raw, "nothing to repeat")
	}

	if tok.Min != tok.Max && ctx.lookbehindDepth > 0 {
		return newError(ErrVariableLookbehind, tok.Raw, "variable-length repetition is not allowed inside a lookbehind")
	}

	last := len(*elements) - 1
	prev := (*elements)[last]

	q, err := newQuantifierNode(prev, tok.Min, tok.Max, tok.Greedy, tok.Possessive)
	if err != nil {
		return err
	}

	(*elements)[last] = q
	return nil
}
