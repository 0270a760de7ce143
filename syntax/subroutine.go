package syntax

import "regexp"

// This file is the subroutine parser: \g<name>, \g<1>, \g<-1>, and
// friends.

var (
	subroutineForm    = regexp.MustCompile(`^\\g[<']([\s\S]*)[>']$`)
	subroutineNumeric = regexp.MustCompile(`^([-+]?)0*([1-9]\d*)$`)
)

func (ctx *context) parseSubroutine(tok Token) (*Node, error) {
	m := subroutineForm.FindStringSubmatch(tok.Raw)
	if m == nil {
		return nil, newError(ErrUnexpectedToken, tok.Raw, "malformed subroutine reference")
	}
	ref := m[1]

	var node *Node
	if num := subroutineNumeric.FindStringSubmatch(ref); num != nil {
		sign, digits := num[1], num[2]
		parsed := parseGroupNumber(digits)

		var abs int
		switch sign {
		case "+":
			abs = len(ctx.capturingGroups) + parsed
		case "-":
			abs = len(ctx.capturingGroups) + 1 - parsed
		default:
			abs = parsed
		}

		ctx.hasNumericRef = true
		node = newSubroutineNode(abs)
		ctx.subroutines = append(ctx.subroutines, pendingSubroutine{node: node, ref: abs})
	} else {
		node = newSubroutineNode(ref)
		ctx.subroutines = append(ctx.subroutines, pendingSubroutine{node: node, ref: ref})
	}

	return node, nil
}
