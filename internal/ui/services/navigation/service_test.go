package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newNav(count int, height int) (*Service, *int) {
	n := count
	s := NewService()
	s.SetCountFunction(func() int { return n })
	s.SetViewportHeight(height)
	return s, &n
}

func TestNavigateWithinBounds(t *testing.T) {
	s, _ := newNav(5, 2)

	s.Navigate(DirectionUp)
	assert.Equal(t, 0, s.Cursor())

	s.Navigate(DirectionDown)
	s.Navigate(DirectionDown)
	assert.Equal(t, 2, s.Cursor())
	assert.Equal(t, 1, s.ViewportOffset(), "cursor kept visible")

	s.Navigate(DirectionEnd)
	assert.Equal(t, 4, s.Cursor())
	assert.Equal(t, 3, s.ViewportOffset())

	s.Navigate(DirectionDown)
	assert.Equal(t, 4, s.Cursor())

	s.Navigate(DirectionHome)
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, 0, s.ViewportOffset())
}

func TestPaging(t *testing.T) {
	s, _ := newNav(10, 3)

	s.Navigate(DirectionPageDown)
	assert.Equal(t, 3, s.Cursor())
	s.Navigate(DirectionPageDown)
	s.Navigate(DirectionPageDown)
	s.Navigate(DirectionPageDown)
	assert.Equal(t, 9, s.Cursor())

	s.Navigate(DirectionPageUp)
	assert.Equal(t, 6, s.Cursor())
}

func TestCursorClampsWhenResultsShrink(t *testing.T) {
	s, n := newNav(8, 3)
	s.Navigate(DirectionEnd)
	assert.Equal(t, 7, s.Cursor())

	*n = 2
	assert.Equal(t, 1, s.Cursor())
	assert.LessOrEqual(t, s.ViewportOffset(), 1)

	*n = 0
	assert.Equal(t, 0, s.Cursor())
}

func TestReset(t *testing.T) {
	s, _ := newNav(6, 2)
	s.MoveToIndex(5)
	s.Reset()
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, 0, s.ViewportOffset())
}

func TestViewportHeightMinimum(t *testing.T) {
	s, _ := newNav(3, 0)
	assert.Equal(t, 1, s.ViewportHeight())
}
