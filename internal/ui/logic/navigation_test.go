package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveClampsToList(t *testing.T) {
	n := NewNavigator()
	n.SetViewportHeight(10)
	n.Reset(3)

	n.Move("up")
	assert.Equal(t, 0, n.Cursor())

	n.Move("down")
	n.Move("down")
	n.Move("down")
	assert.Equal(t, 2, n.Cursor())

	n.Move("home")
	assert.Equal(t, 0, n.Cursor())
	n.Move("end")
	assert.Equal(t, 2, n.Cursor())
}

func TestViewportFollowsCursor(t *testing.T) {
	n := NewNavigator()
	n.SetViewportHeight(3)
	n.Reset(10)

	for i := 0; i < 4; i++ {
		n.Move("down")
	}
	assert.Equal(t, 4, n.Cursor())
	assert.Equal(t, 2, n.ViewportOffset())

	n.Move("end")
	assert.Equal(t, 9, n.Cursor())
	assert.Equal(t, 7, n.ViewportOffset())

	n.Move("pageup")
	assert.Equal(t, 7, n.Cursor())
	assert.Equal(t, 7, n.ViewportOffset())

	n.Move("home")
	assert.Equal(t, 0, n.ViewportOffset())
}

func TestResetShrinksList(t *testing.T) {
	n := NewNavigator()
	n.SetViewportHeight(3)
	n.Reset(10)
	n.Move("end")

	n.Reset(2)
	assert.Equal(t, 1, n.Cursor())
	assert.Equal(t, 0, n.ViewportOffset())

	n.Reset(0)
	assert.Equal(t, 0, n.Cursor())
}

func TestRowAt(t *testing.T) {
	n := NewNavigator()
	n.SetViewportHeight(3)
	n.Reset(5)
	n.Move("end")

	index, ok := n.RowAt(0)
	assert.True(t, ok)
	assert.Equal(t, 2, index)

	index, ok = n.RowAt(2)
	assert.True(t, ok)
	assert.Equal(t, 4, index)

	_, ok = n.RowAt(3)
	assert.False(t, ok)
	_, ok = n.RowAt(-1)
	assert.False(t, ok)

	n.Reset(1)
	_, ok = n.RowAt(1)
	assert.False(t, ok, "line past the last row")
}
