package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontierPopsInPriorityOrder(t *testing.T) {
	var f frontier[string]
	f.push(3, "c")
	f.push(1, "a")
	f.push(2, "b")

	for _, want := range []string{"a", "b", "c"} {
		state, _, ok := f.popMin()
		require.True(t, ok)
		assert.Equal(t, want, state)
	}
	_, _, ok := f.popMin()
	assert.False(t, ok)
}

func TestFrontierBreaksTiesByInsertionOrder(t *testing.T) {
	var f frontier[string]
	for _, s := range []string{"first", "second", "third"} {
		f.push(5, s)
	}
	f.push(4, "best")

	var got []string
	for f.Len() > 0 {
		state, _, _ := f.popMin()
		got = append(got, state)
	}
	assert.Equal(t, []string{"best", "first", "second", "third"}, got)
}

func TestFrontierKeepsDuplicates(t *testing.T) {
	var f frontier[int]
	f.push(7, 1)
	f.push(2, 1)
	require.Equal(t, 2, f.Len())

	state, priority, _ := f.popMin()
	assert.Equal(t, 1, state)
	assert.Equal(t, 2.0, priority)

	state, priority, _ = f.popMin()
	assert.Equal(t, 1, state)
	assert.Equal(t, 7.0, priority)
}
