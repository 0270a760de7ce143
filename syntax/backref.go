package syntax

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// This file is the backreference parser: \1, \k<name>, \k<-1>, and
// friends.

var (
	backrefNamedForm = regexp.MustCompile(`^\\k[<']([\s\S]*)[>']$`)
	backrefNumeric   = regexp.MustCompile(`^(-?)0*([1-9]\d*)$`)
	backrefBareForm  = regexp.MustCompile(`^\\0*([1-9]\d*)$`)
)

func (ctx *context) parseBackreference(tok Token) (*Node, error) {
	if m := backrefNamedForm.FindStringSubmatch(tok.Raw); m != nil {
		ref := m[1]

		if num := backrefNumeric.FindStringSubmatch(ref); num != nil {
			sign, digits := num[1], num[2]
			parsed := parseGroupNumber(digits)

			if parsed > len(ctx.capturingGroups) {
				return nil, newError(ErrInsufficientGroups, tok.Raw, "backreference to group %d but only %d groups have opened", parsed, len(ctx.capturingGroups))
			}

			n := parsed
			if sign == "-" {
				n = len(ctx.capturingGroups) + 1 - parsed
			}
			ctx.hasNumericRef = true
			return newBackreferenceNode(n), nil
		}

		if strings.ContainsAny(ref, "-+") {
			return nil, newError(ErrInvalidBackrefName, tok.Raw, "%q is not a valid backreference name", ref)
		}

		if _, ok := ctx.namedGroups[ref]; !ok {
			return nil, newError(ErrUndefinedGroupName, tok.Raw, "group name %q is not defined", ref)
		}
		return newBackreferenceNode(ref), nil
	}

	if m := backrefBareForm.FindStringSubmatch(tok.Raw); m != nil {
		parsed := parseGroupNumber(m[1])
		if parsed > len(ctx.capturingGroups) {
			return nil, newError(ErrInsufficientGroups, tok.Raw, "backreference to group %d but only %d groups have opened", parsed, len(ctx.capturingGroups))
		}
		ctx.hasNumericRef = true
		return newBackreferenceNode(parsed), nil
	}

	return nil, newError(ErrUnexpectedToken, tok.Raw, "malformed backreference")
}

// parseGroupNumber reads an unsigned decimal literal already matched
// by a numeric regex, clamping to the largest int rather than
// overflowing on a pathologically long digit sequence.
func parseGroupNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return math.MaxInt
	}
	return n
}
