package syntax

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// This file normalizes Unicode property names for \p{...} character
// sets. It reads two read-only tables: posixProperties, a POSIX
// bracket-expression name membership test, and
// jsUnicodePropertiesMap, a normalized-name-to-canonical-name table.
// Both are small, representative subsets here; a production build
// would generate the full table from the Unicode Character Database.

var posixProperties = map[string]bool{
	"alpha": true, "alnum": true, "ascii": true, "blank": true,
	"cntrl": true, "digit": true, "graph": true, "lower": true,
	"print": true, "punct": true, "space": true, "upper": true,
	"word": true, "xdigit": true,
}

var jsUnicodePropertiesMap = map[string]string{
	// general categories and common aliases
	"letter": "L", "l": "L",
	"uppercaseletter": "Lu", "lu": "Lu",
	"lowercaseletter": "Ll", "ll": "Ll",
	"titlecaseletter": "Lt", "lt": "Lt",
	"modifierletter": "Lm", "lm": "Lm",
	"otherletter": "Lo", "lo": "Lo",
	"mark": "M", "m": "M",
	"nonspacingmark": "Mn", "mn": "Mn",
	"spacingmark": "Mc", "mc": "Mc",
	"enclosingmark": "Me", "me": "Me",
	"number": "N", "n": "N",
	"decimalnumber": "Nd", "nd": "Nd", "digit2": "Nd",
	"letternumber": "Nl", "nl": "Nl",
	"othernumber": "No", "no": "No",
	"punctuation": "P", "punct2": "P", "p": "P",
	"connectorpunctuation": "Pc", "pc": "Pc",
	"dashpunctuation": "Pd", "pd": "Pd",
	"openpunctuation": "Ps", "ps": "Ps",
	"closepunctuation": "Pe", "pe": "Pe",
	"initialpunctuation": "Pi", "pi": "Pi",
	"finalpunctuation": "Pf", "pf": "Pf",
	"otherpunctuation": "Po", "po": "Po",
	"symbol": "S", "s": "S",
	"mathsymbol": "Sm", "sm": "Sm",
	"currencysymbol": "Sc", "sc": "Sc",
	"modifiersymbol": "Sk", "sk": "Sk",
	"othersymbol": "So", "so": "So",
	"separator": "Z", "z": "Z",
	"spaceseparator": "Zs", "zs": "Zs",
	"lineseparator": "Zl", "zl": "Zl",
	"paragraphseparator": "Zp", "zp": "Zp",
	"other": "C", "c": "C",
	"control": "Cc", "cc": "Cc",
	"format": "Cf", "cf": "Cf",
	"surrogate": "Cs", "cs": "Cs",
	"privateuse": "Co", "co": "Co",
	"unassigned": "Cn", "cn": "Cn",

	// binary properties commonly normalized to their JS names
	"alphabetic": "Alphabetic",
	"anyletter":  "Alphabetic",
	"any":        "Any",
	"assigned":   "Assigned",
	"asciihex":   "ASCII_Hex_Digit", "asciihexdigit": "ASCII_Hex_Digit",
	"whitespace": "White_Space", "whitespace2": "White_Space",
	"uppercase": "Uppercase",
	"lowercase": "Lowercase",
	"emoji":     "Emoji",
}

// normalizePropertyKey case-folds (Unicode-correct, not ASCII-only —
// the reason this pulls in golang.org/x/text/cases rather than
// strings.ToLower) and strips whitespace and underscores, producing
// the lookup key used against both property tables.
func normalizePropertyKey(raw string) string {
	folded := cases.Fold().String(raw)
	var b strings.Builder
	for _, r := range folded {
		if unicode.IsSpace(r) || r == '_' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// resolveProperty tries the POSIX table, then the canonical-name map,
// and falls back to the script-name reformatting heuristic with no
// further validation.
func resolveProperty(raw string) (isPosix bool, name string) {
	key := normalizePropertyKey(raw)
	if posixProperties[key] {
		return true, key
	}
	if canonical, ok := jsUnicodePropertiesMap[key]; ok {
		return false, canonical
	}
	return false, reformatScriptName(raw)
}

var titleCaser = cases.Title(language.Und)

// reformatScriptName is the fallback for a name that matched neither
// table: trim, collapse whitespace to underscores, split camelCase
// boundaries with underscores, and Titlecase each resulting word.
// There is no negative-feedback path — a malformed or unknown name is
// returned as-is after reformatting.
func reformatScriptName(raw string) string {
	trimmed := strings.TrimSpace(raw)

	var collapsed strings.Builder
	lastWasSpace := false
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				collapsed.WriteRune('_')
			}
			lastWasSpace = true
			continue
		}
		lastWasSpace = false
		collapsed.WriteRune(r)
	}

	split := splitCamelCaseBoundaries(collapsed.String())

	var words []string
	for _, w := range strings.Split(split, "_") {
		if w == "" {
			continue
		}
		words = append(words, titleCaser.String(strings.ToLower(w)))
	}
	return strings.Join(words, "_")
}

// splitCamelCaseBoundaries inserts an underscore before an uppercase
// letter that immediately follows a lowercase letter or digit.
func splitCamelCaseBoundaries(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) &&
			(unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
			b.WriteRune('_')
		}
		b.WriteRune(r)
	}
	return b.String()
}
