package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestKeyboardLayout_HorizontalWraps(t *testing.T) {
	l := GeneralLayout()

	r, c := l.Move(1, 0, DirectionLeft)
	assert.Equal(t, 1, r)
	assert.Equal(t, 9, c)

	r, c = l.Move(1, 9, DirectionRight)
	assert.Equal(t, 1, r)
	assert.Equal(t, 0, c)
}

func TestKeyboardLayout_VerticalKeepsColumn(t *testing.T) {
	l := GeneralLayout()

	// "e" sits above "d".
	r, c := l.Move(1, 2, DirectionDown)
	assert.Equal(t, 2, r)
	assert.Equal(t, "d", l.Key(r, c).Lower)

	// "b" falls onto the space bar.
	r, c = l.Move(3, 4, DirectionDown)
	assert.Equal(t, 4, r)
	assert.Equal(t, KeySpace, l.Key(r, c).Kind)

	// Backspace falls onto enter.
	r, c = l.Move(3, 9, DirectionDown)
	assert.Equal(t, KeyEnter, l.Key(r, c).Kind)

	// Up from the top row wraps to the bottom.
	r, _ = l.Move(0, 0, DirectionUp)
	assert.Equal(t, 4, r)
}

func TestKeyboardLayout_Numeric(t *testing.T) {
	l := NumericLayout()

	r, c := l.Move(3, 0, DirectionDown)
	assert.Equal(t, KeyEnter, l.Key(r, c).Kind)

	r, c = l.Move(4, 0, DirectionUp)
	assert.Equal(t, "0", l.Key(r, c).Lower)

	assert.Equal(t, ".", l.Key(3, 0).Label(false))
	assert.Equal(t, "del", l.Key(3, 2).Label(true))
}

func TestKeyboardLayout_Rects(t *testing.T) {
	l := NumericLayout()
	rects := l.Rects(sdl.Rect{X: 10, Y: 20, W: 320, H: 500}, 10)

	require.Len(t, rects, 5)
	first := rects[0][0]
	assert.Equal(t, int32(10), first.X)
	assert.Equal(t, int32(20), first.Y)
	assert.Equal(t, int32(100), first.W)
	assert.Equal(t, int32(92), first.H)

	enter := rects[4][0]
	assert.Equal(t, int32(320), enter.W)
	assert.Equal(t, int32(20+4*(92+10)), enter.Y)
}

func TestKey_Label(t *testing.T) {
	k := Key{Lower: "q", Upper: "Q"}
	assert.Equal(t, "q", k.Label(false))
	assert.Equal(t, "Q", k.Label(true))
}
