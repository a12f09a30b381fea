package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternslab/patterns/adapter"
)

func TestTurkeyAdapter(t *testing.T) {
	var q adapter.Quacker = adapter.NewTurkeyAdapter(adapter.WildTurkey{})

	assert.Equal(t, "Gobble gobble", q.Quack(), "quacking must come out in turkey")
	assert.Equal(t, "Turkeys cannot fly!", q.Fly())
}

func TestDuckAdapter(t *testing.T) {
	var g adapter.Gobbler = adapter.NewDuckAdapter(adapter.MallardDuck{})

	assert.Equal(t, "Quack quack!", g.Gobble())
}

func TestRoundTripDisguise(t *testing.T) {
	// A duck disguised as a turkey disguised as a duck still quacks.
	q := adapter.NewTurkeyAdapter(adapter.NewDuckAdapter(adapter.MallardDuck{}))
	assert.Equal(t, "Quack quack!", q.Quack())
}

func TestAdapters_NilPanics(t *testing.T) {
	require.Panics(t, func() { adapter.NewTurkeyAdapter(nil) })
	require.Panics(t, func() { adapter.NewDuckAdapter(nil) })
}

func TestSliceEnumeration(t *testing.T) {
	e := adapter.NewSliceEnumeration([]string{"a", "b", "c"})

	var got []string
	for e.HasMore() {
		v, err := e.Next()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)

	// Past the end: the sentinel, not a panic.
	_, err := e.Next()
	assert.ErrorIs(t, err, adapter.ErrNoMoreElements)
	assert.False(t, e.HasMore())
}

func TestSliceEnumeration_Empty(t *testing.T) {
	e := adapter.NewSliceEnumeration[int](nil)
	assert.False(t, e.HasMore())
	_, err := e.Next()
	assert.ErrorIs(t, err, adapter.ErrNoMoreElements)
}

func TestSliceEnumeration_Remove(t *testing.T) {
	e := adapter.NewSliceEnumeration([]int{1, 2, 3})
	assert.ErrorIs(t, e.Remove(), adapter.ErrRemoveUnsupported)

	// Refusing to remove must not disturb the walk.
	v, err := e.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestIterate(t *testing.T) {
	e := adapter.NewSliceEnumeration([]int{1, 2, 3, 4})

	var got []int
	for v := range adapter.Iterate[int](e) {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestIterate_EarlyBreak(t *testing.T) {
	e := adapter.NewSliceEnumeration([]string{"a", "b", "c"})

	var got []string
	for v := range adapter.Iterate[string](e) {
		got = append(got, v)
		if v == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)

	// The cursor holds its place: breaking the range does not consume "c".
	v, err := e.Next()
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}

func TestIterate_SingleUse(t *testing.T) {
	e := adapter.NewSliceEnumeration([]int{1, 2})
	seq := adapter.Iterate[int](e)

	count := 0
	for range seq {
		count++
	}
	require.Equal(t, 2, count)

	// Second pass over the same spent cursor: nothing left.
	for range seq {
		count++
	}
	assert.Equal(t, 2, count)
}
