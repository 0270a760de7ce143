package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// capturingOpen builds a capturing/named GroupOpen token the way the
// upstream tokenizer would; tests never run a real tokenizer, so
// token streams are hand-built here.
func capturingOpen(name string) Token {
	return Token{Type: TokGroupOpen, Kind: GroupKindCapturing, Name: name, Raw: "("}
}

func ch(r rune) Token {
	return Token{Type: TokCharacter, Value: r, Raw: string(r)}
}

var groupClose = Token{Type: TokGroupClose, Raw: ")"}

func TestParse_CapturingGroupThenSubroutine(t *testing.T) {
	tokens := []Token{
		capturingOpen(""),
		ch('a'),
		groupClose,
		{Type: TokSubroutine, Raw: `\g<1>`},
	}

	root, err := Parse(tokens, Flags{}, Options{})
	require.NoError(t, err)

	alt := root.Pattern.Alternatives[0]
	require.Len(t, alt.Elements, 2)

	cap := alt.Elements[0]
	require.Equal(t, NtCapturingGroup, cap.Type)
	require.Equal(t, 1, cap.Number)
	require.Same(t, alt, cap.Parent)

	sub := alt.Elements[1]
	require.Equal(t, NtSubroutine, sub.Type)
	require.Equal(t, 1, sub.Ref)
}

func TestParse_SubroutineForwardReference(t *testing.T) {
	tokens := []Token{
		{Type: TokSubroutine, Raw: `\g<1>`},
		capturingOpen(""),
		ch('a'),
		groupClose,
	}

	root, err := Parse(tokens, Flags{}, Options{})
	require.NoError(t, err)

	alt := root.Pattern.Alternatives[0]
	require.Equal(t, NtSubroutine, alt.Elements[0].Type)
	require.Equal(t, NtCapturingGroup, alt.Elements[1].Type)
}

func TestParse_SubroutineRelativeResolution(t *testing.T) {
	t.Run("minus-one-before-any-group-fails", func(t *testing.T) {
		tokens := []Token{
			{Type: TokSubroutine, Raw: `\g<-1>`},
			capturingOpen(""),
			ch('a'),
			groupClose,
		}
		_, err := Parse(tokens, Flags{}, Options{})
		require.Error(t, err)
		var pe *Error
		require.ErrorAs(t, err, &pe)
		require.Equal(t, ErrSubroutineGroupUndefined, pe.Kind)
	})

	t.Run("minus-one-after-one-group-succeeds", func(t *testing.T) {
		tokens := []Token{
			capturingOpen(""),
			ch('a'),
			groupClose,
			{Type: TokSubroutine, Raw: `\g<-1>`},
		}
		_, err := Parse(tokens, Flags{}, Options{})
		require.NoError(t, err)
	})
}

func TestParse_SubroutineAmbiguousName(t *testing.T) {
	tokens := []Token{
		capturingOpen("a"),
		groupClose,
		capturingOpen("a"),
		groupClose,
		{Type: TokSubroutine, Raw: `\g<a>`},
	}
	_, err := Parse(tokens, Flags{}, Options{})
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrSubroutineNameAmbiguous, pe.Kind)
}

func TestParse_CharacterClassIntersectionOptimize(t *testing.T) {
	tokens := []Token{
		{Type: TokCharacterClassOpen, Raw: "["},
		ch('a'),
		{Type: TokCharacterClassHyphen, Raw: "-"},
		ch('z'),
		{Type: TokCharacterClassIntersector, Raw: "&&"},
		{Type: TokCharacterClassOpen, Negate: true, Raw: "[^"},
		ch('a'), ch('e'), ch('i'), ch('o'), ch('u'),
		{Type: TokCharacterClassClose, Raw: "]"},
		{Type: TokCharacterClassClose, Raw: "]"},
	}

	root, err := Parse(tokens, Flags{}, Options{Optimize: true})
	require.NoError(t, err)

	outer := root.Pattern.Alternatives[0].Elements[0]
	require.Equal(t, NtCharacterClass, outer.Type)
	require.False(t, outer.Negate)

	intersection := outer.Elements[0]
	require.Equal(t, NtCharacterClassIntersection, intersection.Type)
	require.Len(t, intersection.Classes, 2)

	rangeBase := intersection.Classes[0]
	require.Len(t, rangeBase.Elements, 1)
	require.Equal(t, NtCharacterClassRange, rangeBase.Elements[0].Type)

	nested := intersection.Classes[1]
	require.Equal(t, NtCharacterClass, nested.Type)
	require.True(t, nested.Negate)
	require.Len(t, nested.Elements, 5)
}

func TestParse_RedundantGroupCollapse(t *testing.T) {
	tokens := []Token{
		{Type: TokGroupOpen, Kind: GroupKindGroup, Raw: "(?:"},
		capturingOpen(""),
		ch('a'),
		groupClose,
		groupClose,
	}

	root, err := Parse(tokens, Flags{}, Options{Optimize: true})
	require.NoError(t, err)

	alt := root.Pattern.Alternatives[0]
	require.Len(t, alt.Elements, 1)

	collapsed := alt.Elements[0]
	require.Equal(t, NtCapturingGroup, collapsed.Type)
	require.Equal(t, 1, collapsed.Number)
	require.Same(t, alt, collapsed.Parent)
}

// flagsOpen builds a non-capturing GroupOpen token carrying a flag
// delta, the way "(?i:" or "(?i-s:" would tokenize.
func flagsOpen(enable, disable Flags) Token {
	return Token{Type: TokGroupOpen, Kind: GroupKindGroup, Flags: &FlagDelta{Enable: enable, Disable: disable}, Raw: "(?i:"}
}

// TestParse_RedundantGroupCollapseRejected covers the two illegal
// merger combinations from the redundant-group table: an outer flag
// delta can't absorb an inner atomic group or an inner flag delta
// without risking a semantic change, so both must stay uncollapsed.
func TestParse_RedundantGroupCollapseRejected(t *testing.T) {
	tests := map[string]struct {
		inner Token
	}{
		// (?i:(?>a)) - outer flags, inner atomic.
		"outer-flags-inner-atomic": {
			inner: Token{Type: TokGroupOpen, Kind: GroupKindAtomic, Raw: "(?>"},
		},
		// (?i:(?i-s:a)) - outer flags, inner flags.
		"outer-flags-inner-flags": {
			inner: flagsOpen(Flags{IgnoreCase: true}, Flags{DotAll: true}),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tokens := []Token{
				flagsOpen(Flags{IgnoreCase: true}, Flags{}),
				tt.inner,
				ch('a'),
				groupClose,
				groupClose,
			}

			root, err := Parse(tokens, Flags{}, Options{Optimize: true})
			require.NoError(t, err)

			alt := root.Pattern.Alternatives[0]
			require.Len(t, alt.Elements, 1)

			outer := alt.Elements[0]
			require.Equal(t, NtGroup, outer.Type)
			require.NotNil(t, outer.EnableFlags)
			require.True(t, outer.EnableFlags.IgnoreCase)

			innerAlt := outer.Alternatives[0]
			require.Len(t, innerAlt.Elements, 1)
			require.Equal(t, NtGroup, innerAlt.Elements[0].Type)
		})
	}
}

func TestParse_VariableLookbehindRejected(t *testing.T) {
	tokens := []Token{
		{Type: TokGroupOpen, Kind: GroupKindLookbehind, Raw: "(?<="},
		ch('a'),
		{Type: TokQuantifier, Min: 2, Max: 3, Greedy: true, Raw: "{2,3}"},
		groupClose,
	}

	_, err := Parse(tokens, Flags{}, Options{})
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrVariableLookbehind, pe.Kind)
}

func TestParse_NumericRefWithNamedCapture(t *testing.T) {
	tokens := []Token{
		capturingOpen("a"),
		groupClose,
		{Type: TokBackreference, Raw: `\k<1>`},
	}

	_, err := Parse(tokens, Flags{}, Options{})
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrNumericRefWithNamedCapture, pe.Kind)
}

func TestParse_NothingToRepeat(t *testing.T) {
	tokens := []Token{
		{Type: TokQuantifier, Min: 0, Max: 1, Greedy: true, Raw: "?"},
	}
	_, err := Parse(tokens, Flags{}, Options{})
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrNothingToRepeat, pe.Kind)
}

func TestParse_UnclosedGroup(t *testing.T) {
	tokens := []Token{capturingOpen(""), ch('a')}
	_, err := Parse(tokens, Flags{}, Options{})
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrUnclosedGroup, pe.Kind)
}

func TestParse_UnclosedClass(t *testing.T) {
	tokens := []Token{{Type: TokCharacterClassOpen, Raw: "["}, ch('a')}
	_, err := Parse(tokens, Flags{}, Options{})
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrUnclosedClass, pe.Kind)
}

// TestParse_Idempotence checks that re-parsing the same token stream
// twice yields structurally identical trees, and that a second
// optimize pass over freshly re-constructed tokens is a no-op beyond
// the first.
func TestParse_Idempotence(t *testing.T) {
	newTokens := func() []Token {
		return []Token{
			{Type: TokCharacterClassOpen, Raw: "["},
			ch('a'),
			{Type: TokCharacterClassHyphen, Raw: "-"},
			ch('z'),
			{Type: TokCharacterClassClose, Raw: "]"},
		}
	}

	first, err := Parse(newTokens(), Flags{}, Options{Optimize: true})
	require.NoError(t, err)
	second, err := Parse(newTokens(), Flags{}, Options{Optimize: true})
	require.NoError(t, err)

	require.Equal(t, first.Dump(), second.Dump())
}

func TestParse_WithoutOptimizeAlwaysHasIntersection(t *testing.T) {
	tokens := []Token{
		{Type: TokCharacterClassOpen, Raw: "["},
		ch('a'),
		{Type: TokCharacterClassClose, Raw: "]"},
	}
	root, err := Parse(tokens, Flags{}, Options{Optimize: false})
	require.NoError(t, err)

	class := root.Pattern.Alternatives[0].Elements[0]
	require.Len(t, class.Elements, 1)
	require.Equal(t, NtCharacterClassIntersection, class.Elements[0].Type)
}
