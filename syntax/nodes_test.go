package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCapturingGroupNode(t *testing.T) {
	tests := map[string]struct {
		name    string
		wantErr bool
	}{
		"unnamed":     {name: ""},
		"valid":       {name: "foo"},
		"dollar":      {name: "$foo"},
		"leading-dig": {name: "1foo", wantErr: true},
		"hyphen":      {name: "foo-bar", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n, err := newCapturingGroupNode(1, tt.name)
			if tt.wantErr {
				require.Error(t, err)
				var pe *Error
				require.ErrorAs(t, err, &pe)
				require.Equal(t, ErrInvalidGroupName, pe.Kind)
				return
			}
			require.NoError(t, err)
			require.Equal(t, NtCapturingGroup, n.Type)
			require.Equal(t, tt.name, n.Name)
		})
	}
}

func TestNewCharacterClassRangeNode(t *testing.T) {
	lo := newCharacterNode('a')
	hi := newCharacterNode('z')

	n, err := newCharacterClassRangeNode(lo, hi)
	require.NoError(t, err)
	require.Equal(t, lo, n.Min)
	require.Equal(t, hi, n.Max)
	require.Same(t, n, lo.Parent)
	require.Same(t, n, hi.Parent)

	_, err = newCharacterClassRangeNode(hi, lo)
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrInvalidRange, pe.Kind)
}

func TestNewQuantifierNode(t *testing.T) {
	el := newCharacterNode('a')

	n, err := newQuantifierNode(el, 1, 3, true, false)
	require.NoError(t, err)
	require.Equal(t, 1, n.QMin)
	require.Equal(t, 3, n.QMax)
	require.Same(t, n, el.Parent)

	_, err = newQuantifierNode(el, 3, 1, true, false)
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrRangeOutOfOrder, pe.Kind)
}
