package syntax

// validate runs once, after the walk has finished and every group and
// subroutine reference has been collected into ctx, checking the
// cross-referential invariants that can't be enforced while a group
// or reference is still being parsed.
func (ctx *context) validate() error {
	if ctx.hasNumericRef && len(ctx.namedGroups) > 0 {
		return newError(ErrNumericRefWithNamedCapture, "", "numeric group references are not allowed when the pattern has named capturing groups")
	}

	for _, sub := range ctx.subroutines {
		switch ref := sub.ref.(type) {
		case int:
			if ref < 1 || ref > len(ctx.capturingGroups) {
				return newError(ErrSubroutineGroupUndefined, "", "subroutine refers to undefined group %d", ref)
			}
		case string:
			groups, ok := ctx.namedGroups[ref]
			if !ok || len(groups) == 0 {
				return newError(ErrSubroutineNameUndefined, "", "subroutine refers to undefined group name %q", ref)
			}
			if len(groups) > 1 {
				return newError(ErrSubroutineNameAmbiguous, "", "subroutine refers to ambiguous group name %q (%d groups share it)", ref, len(groups))
			}
		}
	}

	return nil
}
