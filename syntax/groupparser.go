package syntax

// parseGroupOpen dispatches an opening-group token to the right node
// shape and recurses into the body via parseAlternatives (or, for
// lookarounds, the same body loop under NtAssertion).
func (ctx *context) parseGroupOpen(tok Token) (*Node, error) {
	switch tok.Kind {
	case GroupKindCapturing:
		return ctx.parseCapturingGroup(tok)
	case GroupKindGroup:
		return ctx.parseNonCapturingGroup(tok, false)
	case GroupKindAtomic:
		return ctx.parseAtomicGroup(tok)
	case GroupKindLookahead:
		return ctx.parseLookaround(tok, AssertLookahead)
	case GroupKindLookbehind:
		return ctx.parseLookaround(tok, AssertLookbehind)
	default:
		return nil, newError(ErrUnknownKind, tok.Raw, "unrecognized group-open kind %q", tok.Kind)
	}
}

func (ctx *context) parseCapturingGroup(tok Token) (*Node, error) {
	number := len(ctx.capturingGroups) + 1
	node, err := newCapturingGroupNode(number, tok.Name)
	if err != nil {
		return nil, err
	}
	ctx.registerCapturingGroup(node)

	alts, err := ctx.parseAlternatives(node, TokGroupClose, false)
	if err != nil {
		return nil, err
	}
	for _, alt := range alts {
		appendAlternative(node, alt)
	}

	return node, nil
}

func (ctx *context) parseNonCapturingGroup(tok Token, atomic bool) (*Node, error) {
	var enable, disable *Flags
	if tok.Flags != nil {
		enable, disable = &tok.Flags.Enable, &tok.Flags.Disable
	}
	node := newGroupNode(atomic, enable, disable)

	alts, err := ctx.parseAlternatives(node, TokGroupClose, false)
	if err != nil {
		return nil, err
	}
	for _, alt := range alts {
		appendAlternative(node, alt)
	}

	if ctx.optimize {
		node = collapseRedundantGroup(node)
	}
	return node, nil
}

func (ctx *context) parseAtomicGroup(tok Token) (*Node, error) {
	return ctx.parseNonCapturingGroup(tok, true)
}

func (ctx *context) parseLookaround(tok Token, kind string) (*Node, error) {
	node := newAssertionNode(kind, tok.Negate)

	if kind == AssertLookbehind {
		ctx.lookbehindDepth++
		defer func() { ctx.lookbehindDepth-- }()
	}

	alts, err := ctx.parseAlternatives(node, TokGroupClose, false)
	if err != nil {
		return nil, err
	}
	for _, alt := range alts {
		appendAlternative(node, alt)
	}

	return node, nil
}
