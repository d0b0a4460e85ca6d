package internal

import (
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/yiponline/shelf/internal/logging"
	"github.com/yiponline/shelf/internal/ui/constants"
)

// Event is an input event translated to a virtual button.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

// InputMapping maps physical inputs to virtual buttons.
type InputMapping struct {
	Keyboard   map[sdl.Keycode]constants.VirtualButton
	Controller map[uint8]constants.VirtualButton
}

// inputMappingFile is the TOML form of a mapping: SDL key or controller button
// names to virtual button names, e.g. `[keyboard] Return = "Start"`.
type inputMappingFile struct {
	Keyboard   map[string]string `toml:"keyboard"`
	Controller map[string]string `toml:"controller"`
}

// DefaultInputMapping uses the Nintendo-style layout where the bottom face
// button is B. flip uses the positional layout instead.
func DefaultInputMapping(flip bool) InputMapping {
	m := InputMapping{
		Keyboard: map[sdl.Keycode]constants.VirtualButton{
			sdl.Keycode(sdl.K_UP):        constants.VirtualButtonUp,
			sdl.Keycode(sdl.K_DOWN):      constants.VirtualButtonDown,
			sdl.Keycode(sdl.K_LEFT):      constants.VirtualButtonLeft,
			sdl.Keycode(sdl.K_RIGHT):     constants.VirtualButtonRight,
			sdl.Keycode(sdl.K_a):         constants.VirtualButtonA,
			sdl.Keycode(sdl.K_b):         constants.VirtualButtonB,
			sdl.Keycode(sdl.K_BACKSPACE): constants.VirtualButtonB,
			sdl.Keycode(sdl.K_ESCAPE):    constants.VirtualButtonB,
			sdl.Keycode(sdl.K_x):         constants.VirtualButtonX,
			sdl.Keycode(sdl.K_y):         constants.VirtualButtonY,
			sdl.Keycode(sdl.K_l):         constants.VirtualButtonL1,
			sdl.Keycode(sdl.K_r):         constants.VirtualButtonR1,
			sdl.Keycode(sdl.K_RETURN):    constants.VirtualButtonStart,
			sdl.Keycode(sdl.K_SPACE):     constants.VirtualButtonSelect,
			sdl.Keycode(sdl.K_m):         constants.VirtualButtonMenu,
		},
		Controller: map[uint8]constants.VirtualButton{
			uint8(sdl.CONTROLLER_BUTTON_DPAD_UP):       constants.VirtualButtonUp,
			uint8(sdl.CONTROLLER_BUTTON_DPAD_DOWN):     constants.VirtualButtonDown,
			uint8(sdl.CONTROLLER_BUTTON_DPAD_LEFT):     constants.VirtualButtonLeft,
			uint8(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):    constants.VirtualButtonRight,
			uint8(sdl.CONTROLLER_BUTTON_A):             constants.VirtualButtonB,
			uint8(sdl.CONTROLLER_BUTTON_B):             constants.VirtualButtonA,
			uint8(sdl.CONTROLLER_BUTTON_X):             constants.VirtualButtonY,
			uint8(sdl.CONTROLLER_BUTTON_Y):             constants.VirtualButtonX,
			uint8(sdl.CONTROLLER_BUTTON_LEFTSHOULDER):  constants.VirtualButtonL1,
			uint8(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER): constants.VirtualButtonR1,
			uint8(sdl.CONTROLLER_BUTTON_START):         constants.VirtualButtonStart,
			uint8(sdl.CONTROLLER_BUTTON_BACK):          constants.VirtualButtonSelect,
			uint8(sdl.CONTROLLER_BUTTON_GUIDE):         constants.VirtualButtonMenu,
		},
	}

	if flip {
		m.Controller[uint8(sdl.CONTROLLER_BUTTON_A)] = constants.VirtualButtonA
		m.Controller[uint8(sdl.CONTROLLER_BUTTON_B)] = constants.VirtualButtonB
		m.Controller[uint8(sdl.CONTROLLER_BUTTON_X)] = constants.VirtualButtonX
		m.Controller[uint8(sdl.CONTROLLER_BUTTON_Y)] = constants.VirtualButtonY
	}
	return m
}

// ParseInputMapping overlays a TOML mapping on base. Unknown names are errors.
func ParseInputMapping(data []byte, base InputMapping) (InputMapping, error) {
	var file inputMappingFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return base, fmt.Errorf("parse input mapping: %w", err)
	}

	out := InputMapping{
		Keyboard:   make(map[sdl.Keycode]constants.VirtualButton, len(base.Keyboard)),
		Controller: make(map[uint8]constants.VirtualButton, len(base.Controller)),
	}
	for k, v := range base.Keyboard {
		out.Keyboard[k] = v
	}
	for k, v := range base.Controller {
		out.Controller[k] = v
	}

	for name, target := range file.Keyboard {
		button, ok := constants.ButtonByName(target)
		if !ok {
			return base, fmt.Errorf("input mapping: unknown button %q for key %q", target, name)
		}
		key := sdl.GetKeyFromName(name)
		if key == sdl.Keycode(sdl.K_UNKNOWN) {
			return base, fmt.Errorf("input mapping: unknown key %q", name)
		}
		out.Keyboard[key] = button
	}

	for name, target := range file.Controller {
		button, ok := constants.ButtonByName(target)
		if !ok {
			return base, fmt.Errorf("input mapping: unknown button %q for controller button %q", target, name)
		}
		physical := sdl.GameControllerGetButtonFromString(name)
		if physical == sdl.CONTROLLER_BUTTON_INVALID {
			return base, fmt.Errorf("input mapping: unknown controller button %q", name)
		}
		out.Controller[uint8(physical)] = button
	}

	return out, nil
}

const axisThreshold = 16000

// InputProcessor translates SDL events into virtual button events.
type InputProcessor struct {
	mu          sync.RWMutex
	mapping     InputMapping
	controllers map[sdl.JoystickID]*sdl.GameController
	axisHeld    map[constants.VirtualButton]bool
}

var (
	processorOnce sync.Once
	processor     *InputProcessor
)

// GetInputProcessor returns the process-wide input processor.
func GetInputProcessor() *InputProcessor {
	processorOnce.Do(func() {
		processor = &InputProcessor{
			mapping:     DefaultInputMapping(false),
			controllers: make(map[sdl.JoystickID]*sdl.GameController),
			axisHeld:    make(map[constants.VirtualButton]bool),
		}
	})
	return processor
}

// SetMapping replaces the active mapping.
func (p *InputProcessor) SetMapping(m InputMapping) {
	p.mu.Lock()
	p.mapping = m
	p.mu.Unlock()
}

// LoadMappingFile overlays the TOML file at path on the default mapping.
func (p *InputProcessor) LoadMappingFile(path string, flip bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input mapping: %w", err)
	}
	m, err := ParseInputMapping(data, DefaultInputMapping(flip))
	if err != nil {
		return err
	}
	p.SetMapping(m)
	return nil
}

func (p *InputProcessor) openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		p.openController(i)
	}
}

func (p *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	c := sdl.GameControllerOpen(index)
	if c == nil {
		logging.Internal().Warn("Failed to open controller", "index", index, "error", sdl.GetError())
		return
	}
	id := c.Joystick().InstanceID()

	p.mu.Lock()
	p.controllers[id] = c
	p.mu.Unlock()
	logging.Internal().Debug("Controller opened", "name", c.Name(), "id", id)
}

func (p *InputProcessor) closeControllers() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, c := range p.controllers {
		c.Close()
		delete(p.controllers, id)
	}
}

// ProcessSDLEvent returns the virtual event for an SDL event, or nil when the
// event is not input or is not mapped.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	p.mu.RLock()
	mapping := p.mapping
	p.mu.RUnlock()

	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button, ok := mapping.Keyboard[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN, Repeat: e.Repeat != 0}

	case *sdl.ControllerButtonEvent:
		button, ok := mapping.Controller[e.Button]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}

	case *sdl.ControllerAxisEvent:
		return p.processAxis(e.Axis, e.Value)

	case *sdl.ControllerDeviceEvent:
		if e.Type == sdl.CONTROLLERDEVICEADDED {
			p.openController(int(e.Which))
		}
		return nil
	}
	return nil
}

// processAxis turns the left stick into directional presses and releases.
func (p *InputProcessor) processAxis(axis uint8, value int16) *Event {
	var negative, positive constants.VirtualButton
	switch axis {
	case uint8(sdl.CONTROLLER_AXIS_LEFTX):
		negative, positive = constants.VirtualButtonLeft, constants.VirtualButtonRight
	case uint8(sdl.CONTROLLER_AXIS_LEFTY):
		negative, positive = constants.VirtualButtonUp, constants.VirtualButtonDown
	default:
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case value < -axisThreshold && !p.axisHeld[negative]:
		p.axisHeld[negative] = true
		return &Event{Button: negative, Pressed: true}
	case value > axisThreshold && !p.axisHeld[positive]:
		p.axisHeld[positive] = true
		return &Event{Button: positive, Pressed: true}
	case value >= -axisThreshold && value <= axisThreshold:
		for _, b := range []constants.VirtualButton{negative, positive} {
			if p.axisHeld[b] {
				p.axisHeld[b] = false
				return &Event{Button: b, Pressed: false}
			}
		}
	}
	return nil
}
