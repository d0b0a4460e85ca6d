package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yiponline/shelf/internal/ui/constants"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestDirectional() (*DirectionalInput, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	d := NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
	d.now = clock.now
	d.lastRepeat = clock.now()
	return &d, clock
}

func TestDirectionalInput_RepeatTiming(t *testing.T) {
	d, clock := newTestDirectional()

	assert.True(t, d.SetHeld(constants.VirtualButtonDown, true))
	assert.Equal(t, DirectionNone, d.Update())

	clock.advance(299 * time.Millisecond)
	assert.Equal(t, DirectionNone, d.Update())

	clock.advance(time.Millisecond)
	assert.Equal(t, DirectionDown, d.Update())

	clock.advance(49 * time.Millisecond)
	assert.Equal(t, DirectionNone, d.Update())
	clock.advance(time.Millisecond)
	assert.Equal(t, DirectionDown, d.Update())
}

func TestDirectionalInput_ReleaseStopsRepeat(t *testing.T) {
	d, clock := newTestDirectional()

	d.SetHeld(constants.VirtualButtonUp, true)
	clock.advance(time.Second)
	assert.Equal(t, DirectionUp, d.Update())

	d.SetHeld(constants.VirtualButtonUp, false)
	assert.False(t, d.IsHeld())
	clock.advance(time.Second)
	assert.Equal(t, DirectionNone, d.Update())
}

func TestDirectionalInput_LatestPressWins(t *testing.T) {
	d, _ := newTestDirectional()

	d.SetHeld(constants.VirtualButtonUp, true)
	d.SetHeld(constants.VirtualButtonRight, true)
	assert.Equal(t, DirectionRight, d.HeldDirection())

	d.SetHeld(constants.VirtualButtonRight, false)
	assert.Equal(t, DirectionUp, d.HeldDirection())

	d.Reset()
	assert.Equal(t, DirectionNone, d.HeldDirection())
}

func TestDirectionalInput_IgnoresOtherButtons(t *testing.T) {
	d, _ := newTestDirectional()
	assert.False(t, d.SetHeld(constants.VirtualButtonA, true))
	assert.False(t, d.IsHeld())
}

func TestDirection_VirtualButton(t *testing.T) {
	assert.Equal(t, constants.VirtualButtonLeft, DirectionLeft.VirtualButton())
	assert.Equal(t, constants.VirtualButtonUnassigned, DirectionNone.VirtualButton())
	assert.Equal(t, "down", DirectionDown.String())
}
