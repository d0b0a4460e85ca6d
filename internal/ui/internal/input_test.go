package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/yiponline/shelf/internal/ui/constants"
)

func TestDefaultInputMapping_FaceButtons(t *testing.T) {
	nintendo := DefaultInputMapping(false)
	assert.Equal(t, constants.VirtualButtonB, nintendo.Controller[uint8(sdl.CONTROLLER_BUTTON_A)])
	assert.Equal(t, constants.VirtualButtonA, nintendo.Controller[uint8(sdl.CONTROLLER_BUTTON_B)])

	direct := DefaultInputMapping(true)
	assert.Equal(t, constants.VirtualButtonA, direct.Controller[uint8(sdl.CONTROLLER_BUTTON_A)])
	assert.Equal(t, constants.VirtualButtonY, direct.Controller[uint8(sdl.CONTROLLER_BUTTON_Y)])
}

func TestParseInputMapping(t *testing.T) {
	data := []byte(`
[keyboard]
q = "Select"

[controller]
a = "A"
`)
	base := DefaultInputMapping(false)
	m, err := ParseInputMapping(data, base)
	require.NoError(t, err)

	assert.Equal(t, constants.VirtualButtonSelect, m.Keyboard[sdl.Keycode(sdl.K_q)])
	assert.Equal(t, constants.VirtualButtonA, m.Controller[uint8(sdl.CONTROLLER_BUTTON_A)])
	// Untouched entries come from the base and the base is not modified.
	assert.Equal(t, constants.VirtualButtonStart, m.Keyboard[sdl.Keycode(sdl.K_RETURN)])
	assert.Equal(t, constants.VirtualButtonB, base.Controller[uint8(sdl.CONTROLLER_BUTTON_A)])
}

func TestParseInputMapping_Errors(t *testing.T) {
	base := DefaultInputMapping(false)

	_, err := ParseInputMapping([]byte(`[keyboard]
q = "Turbo"`), base)
	assert.ErrorContains(t, err, "unknown button")

	_, err = ParseInputMapping([]byte(`[controller]
paddle9 = "A"`), base)
	assert.ErrorContains(t, err, "unknown controller button")

	_, err = ParseInputMapping([]byte(`not toml = [`), base)
	assert.ErrorContains(t, err, "parse input mapping")
}

func TestProcessSDLEvent(t *testing.T) {
	p := &InputProcessor{
		mapping:  DefaultInputMapping(false),
		axisHeld: make(map[constants.VirtualButton]bool),
	}

	ev := p.ProcessSDLEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.Keycode(sdl.K_a)}})
	require.NotNil(t, ev)
	assert.Equal(t, Event{Button: constants.VirtualButtonA, Pressed: true}, *ev)

	ev = p.ProcessSDLEvent(&sdl.ControllerButtonEvent{Button: uint8(sdl.CONTROLLER_BUTTON_START), State: sdl.RELEASED})
	require.NotNil(t, ev)
	assert.Equal(t, Event{Button: constants.VirtualButtonStart, Pressed: false}, *ev)

	assert.Nil(t, p.ProcessSDLEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.Keycode(sdl.K_F12)}}))
	assert.Nil(t, p.ProcessSDLEvent(&sdl.QuitEvent{}))
}

func TestProcessSDLEvent_StickActsAsDpad(t *testing.T) {
	p := &InputProcessor{
		mapping:  DefaultInputMapping(false),
		axisHeld: make(map[constants.VirtualButton]bool),
	}
	axis := func(value int16) *Event {
		return p.ProcessSDLEvent(&sdl.ControllerAxisEvent{Axis: uint8(sdl.CONTROLLER_AXIS_LEFTY), Value: value})
	}

	ev := axis(30000)
	require.NotNil(t, ev)
	assert.Equal(t, Event{Button: constants.VirtualButtonDown, Pressed: true}, *ev)
	assert.Nil(t, axis(31000))

	ev = axis(0)
	require.NotNil(t, ev)
	assert.Equal(t, Event{Button: constants.VirtualButtonDown, Pressed: false}, *ev)
	assert.Nil(t, axis(0))
}
