package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstruct(t *testing.T) {
	predecessors := Predecessors[string, string]{
		"a": {Root: true},
		"b": {State: "a", Action: "ab"},
		"c": {State: "b", Action: "bc"},
		"x": {State: "a", Action: "ax"},
	}

	steps, err := Reconstruct("c", predecessors)
	require.NoError(t, err)
	assert.Equal(t, []Step[string, string]{
		{State: "a", Action: "ab"},
		{State: "b", Action: "bc"},
	}, steps)
}

func TestReconstructFailures(t *testing.T) {
	tests := []struct {
		name         string
		predecessors Predecessors[string, string]
		goal         string
		want         error
	}{
		{
			name:         "goal never reached",
			predecessors: Predecessors[string, string]{"a": {Root: true}},
			goal:         "z",
			want:         ErrNoPathFound,
		},
		{
			name: "cycle",
			predecessors: Predecessors[string, string]{
				"a": {Root: true},
				"b": {State: "c"},
				"c": {State: "b"},
			},
			goal: "c",
			want: ErrCorruptPath,
		},
		{
			name:         "self loop",
			predecessors: Predecessors[string, string]{"b": {State: "b"}},
			goal:         "b",
			want:         ErrCorruptPath,
		},
		{
			name: "broken chain",
			predecessors: Predecessors[string, string]{
				"c": {State: "b"},
			},
			goal: "c",
			want: ErrCorruptPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, err := Reconstruct(tt.goal, tt.predecessors)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, steps)
		})
	}
}

func TestReconstructNoPathIsNotCorrupt(t *testing.T) {
	_, err := Reconstruct("z", Predecessors[string, string]{})
	assert.ErrorIs(t, err, ErrNoPathFound)
	assert.NotErrorIs(t, err, ErrCorruptPath)
}
