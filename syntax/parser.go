package syntax

// This file is the recursive-descent walker: the token-dispatched
// parser. It owns the main loop and the generic element dispatch;
// the specialized sub-parsers live elsewhere: character-class bodies
// and the character-class hyphen/range completion in classparser.go,
// group bodies in groupparser.go.

// Options controls optional structural optimizations applied during
// parsing.
type Options struct {
	Optimize bool
}

// Parse converts a flat token stream into a RegExp AST. It's the
// single entry point into this package; all other functions in it are
// implementation detail reachable only through here (or through tests
// in the same package).
func Parse(tokens []Token, flags Flags, opts Options) (*Node, error) {
	ctx := newContext(tokens, opts.Optimize)

	root := newRegExpNode()
	root.Flags = newFlagsNode(flags)
	root.Flags.Parent = root

	pattern := newPatternNode()
	pattern.Parent = root
	root.Pattern = pattern

	alts, err := ctx.parseAlternatives(pattern, TokUnknown, true)
	if err != nil {
		return nil, err
	}
	for _, alt := range alts {
		appendAlternative(pattern, alt)
	}

	if err := ctx.validate(); err != nil {
		return nil, err
	}

	return root, nil
}

// parseAlternatives runs the body loop shared by the pattern top
// level, group bodies, and lookaround bodies. closeTok is the token
// type that ends the body;
// when topLevel is true there is no closing token and only token
// exhaustion ends the loop (the unclosed error is never raised).
func (ctx *context) parseAlternatives(owner *Node, closeTok TokenType, topLevel bool) ([]*Node, error) {
	var alts []*Node
	cur := newAlternativeNode()
	alts = append(alts, cur)

	for {
		tok, ok := ctx.peek()
		if !ok {
			if topLevel {
				return alts, nil
			}
			return nil, ctx.unclosedError(owner, closeTok)
		}
		if tok.Type == closeTok && !topLevel {
			ctx.current++
			return alts, nil
		}
		if tok.Type == TokAlternator {
			ctx.current++
			cur = newAlternativeNode()
			alts = append(alts, cur)
			continue
		}
		if tok.Type == TokQuantifier {
			ctx.current++
			if err := ctx.applyQuantifier(&cur.Elements, tok); err != nil {
				return nil, err
			}
			// re-wire parents: applyQuantifier mutates cur.Elements in
			// place, so the owning Alternative's back-links for the
			// popped/replaced entries must be fixed here.
			for _, el := range cur.Elements {
				el.Parent = cur
			}
			continue
		}
		if tok.Type == TokCharacterClassHyphen {
			ctx.current++
			if err := ctx.parseClassHyphen(tok, &cur.Elements); err != nil {
				return nil, err
			}
			for _, el := range cur.Elements {
				el.Parent = cur
			}
			continue
		}

		ctx.current++
		node, err := ctx.parseElementSingle(tok, &cur.Elements)
		if err != nil {
			return nil, err
		}
		appendElement(cur, node)
	}
}

func (ctx *context) unclosedError(owner *Node, closeTok TokenType) error {
	if closeTok == TokCharacterClassClose {
		return newError(ErrUnclosedClass, "", "character class was never closed")
	}
	return newError(ErrUnclosedGroup, "", "group was never closed")
}

// parseElementSingle dispatches a single already-consumed token into
// one node, for every token type that yields exactly one node.
// Alternator, Quantifier, GroupClose,
// CharacterClassClose/Intersector, and CharacterClassHyphen are
// structural and handled by their enclosing loop instead (the hyphen
// can yield zero, one, or two nodes — see parseClassHyphen). elements
// is the in-progress sibling list this node is about to join; no case
// reads it, and a nested character class parses its own hyphens
// against its own element list.
func (ctx *context) parseElementSingle(tok Token, elements *[]*Node) (*Node, error) {
	switch tok.Type {
	case TokAssertion:
		return ctx.parseAssertion(tok)
	case TokBackreference:
		return ctx.parseBackreference(tok)
	case TokCharacter:
		return newCharacterNode(tok.Value), nil
	case TokCharacterClassOpen:
		return ctx.parseCharacterClass(tok)
	case TokCharacterSet:
		return ctx.parseCharacterSet(tok)
	case TokDirective:
		return ctx.parseDirective(tok)
	case TokGroupOpen:
		return ctx.parseGroupOpen(tok)
	case TokSubroutine:
		return ctx.parseSubroutine(tok)
	case TokVariableLengthCharacterSet:
		return newVariableLengthCharacterSetNode(tok.Kind), nil
	default:
		return nil, newError(ErrUnexpectedToken, tok.Raw, "unexpected token %s", tok.Type)
	}
}

// parseAssertion maps a raw assertion token to its AST kind.
// Lookaround tokens arrive as TokGroupOpen, not TokAssertion, and are
// handled in groupparser.go.
func (ctx *context) parseAssertion(tok Token) (*Node, error) {
	switch tok.Kind {
	case AssertLineStart, AssertLineEnd, AssertStringStart, AssertStringEnd,
		AssertStringEndNewline, AssertSearchStart:
		return newAssertionNode(tok.Kind, false), nil
	case AssertWordBoundary:
		return newAssertionNode(AssertWordBoundary, tok.Negate), nil
	default:
		return nil, newError(ErrUnknownKind, tok.Raw, "unrecognized assertion kind %q", tok.Kind)
	}
}

func (ctx *context) parseDirective(tok Token) (*Node, error) {
	switch tok.Kind {
	case DirectiveKindFlags:
		var enable, disable *Flags
		if tok.Flags != nil {
			enable, disable = &tok.Flags.Enable, &tok.Flags.Disable
		}
		return newDirectiveNode(DirectiveKindFlags, enable, disable), nil
	case DirectiveKindKeep:
		return newDirectiveNode(DirectiveKindKeep, nil, nil), nil
	default:
		return nil, newError(ErrUnknownKind, tok.Raw, "unrecognized directive kind %q", tok.Kind)
	}
}
