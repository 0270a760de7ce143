package syntax

import "unicode"

// isValidGroupName checks a capturing group name against an
// identifier grammar:
//
//	^[$_\p{IDS}][$‌‍\p{IDC}]*$
//
// Oniguruma's own capture-name grammar is broader than this; the
// parser intentionally narrows it to names that are portable to the
// identifier-grammar downstream consumers expect.
func isValidGroupName(name string) bool {
	runes := []rune(name)
	if len(runes) == 0 {
		return false
	}
	if !isIDStart(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !isIDContinue(r) {
			return false
		}
	}
	return true
}

func isIDStart(r rune) bool {
	if r == '$' || r == '_' {
		return true
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_ID_Start, r)
}

func isIDContinue(r rune) bool {
	if r == '$' || r == '‌' || r == '‍' {
		return true
	}
	return isIDStart(r) || unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc) || unicode.Is(unicode.Other_ID_Continue, r)
}
