package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		label string
		want  Action
	}{
		{"u", Up},
		{"Down", Down},
		{" l ", Left},
		{"RIGHT", Right},
	}
	for _, tt := range tests {
		got, err := ParseAction(tt.label)
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseAction("x")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestParseActions(t *testing.T) {
	actions, err := ParseActions("r,r d  l,u")
	require.NoError(t, err)
	assert.Equal(t, []Action{Right, Right, Down, Left, Up}, actions)

	empty, err := ParseActions("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ParseActions("r,q")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestActionText(t *testing.T) {
	text, err := Left.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "l", string(text))

	var action Action
	require.NoError(t, action.UnmarshalText([]byte("up")))
	assert.Equal(t, Up, action)

	_, err = Action(7).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Equal(t, "Action(7)", Action(7).String())
}
