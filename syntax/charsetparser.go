package syntax

// This file is the CharacterSet parser. It is the one dispatch case
// that must consult the Unicode property normalizer (unicodeprop.go)
// before a node can be built, since a "property" kind token can turn
// out to name a POSIX class once normalized.
func (ctx *context) parseCharacterSet(tok Token) (*Node, error) {
	switch tok.Kind {
	case SetKindAny, SetKindDigit, SetKindHex, SetKindSpace, SetKindWord, SetKindPosix:
		return newCharacterSetNode(tok.Kind, tok.Negate, tok.Property), nil
	case SetKindProperty:
		isPosix, name := resolveProperty(tok.Property)
		if isPosix {
			return newCharacterSetNode(SetKindPosix, tok.Negate, name), nil
		}
		return newCharacterSetNode(SetKindProperty, tok.Negate, name), nil
	default:
		return nil, newError(ErrUnknownKind, tok.Raw, "unrecognized character-set kind %q", tok.Kind)
	}
}
