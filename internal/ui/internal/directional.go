package internal

import (
	"time"

	"github.com/yiponline/shelf/internal/ui/constants"
)

// Direction is a cardinal navigation direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// DirectionalInput tracks held directions and produces repeats while held.
type DirectionalInput struct {
	held           map[Direction]bool
	order          []Direction
	lastRepeat     time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	repeated       bool
	now            func() time.Time
}

// NewDirectionalInput waits 300ms before the first repeat, then repeats every 50ms.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		held:           make(map[Direction]bool, 4),
		repeatDelay:    delay,
		repeatInterval: interval,
		now:            time.Now,
		lastRepeat:     time.Now(),
	}
}

func directionOf(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonUp:
		return DirectionUp
	case constants.VirtualButtonDown:
		return DirectionDown
	case constants.VirtualButtonLeft:
		return DirectionLeft
	case constants.VirtualButtonRight:
		return DirectionRight
	}
	return DirectionNone
}

// SetHeld records a press or release. It reports whether button is directional.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	dir := directionOf(button)
	if dir == DirectionNone {
		return false
	}

	if held && !d.held[dir] {
		d.order = append(d.order, dir)
		d.lastRepeat = d.now()
		d.repeated = false
	}
	if !held {
		for i, o := range d.order {
			if o == dir {
				d.order = append(d.order[:i], d.order[i+1:]...)
				break
			}
		}
		d.repeated = false
	}
	d.held[dir] = held
	return true
}

func (d *DirectionalInput) IsHeld() bool {
	return len(d.order) > 0
}

// HeldDirection returns the most recently pressed direction still held.
func (d *DirectionalInput) HeldDirection() Direction {
	if len(d.order) == 0 {
		return DirectionNone
	}
	return d.order[len(d.order)-1]
}

// Update is called every frame and returns the direction to repeat, if any.
func (d *DirectionalInput) Update() Direction {
	now := d.now()
	if !d.IsHeld() {
		d.lastRepeat = now
		d.repeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.repeated {
		threshold = d.repeatDelay
	}
	if now.Sub(d.lastRepeat) < threshold {
		return DirectionNone
	}

	d.lastRepeat = now
	d.repeated = true
	return d.HeldDirection()
}

func (d *DirectionalInput) Reset() {
	clear(d.held)
	d.order = d.order[:0]
	d.repeated = false
	d.lastRepeat = d.now()
}

func (d Direction) VirtualButton() constants.VirtualButton {
	switch d {
	case DirectionUp:
		return constants.VirtualButtonUp
	case DirectionDown:
		return constants.VirtualButtonDown
	case DirectionLeft:
		return constants.VirtualButtonLeft
	case DirectionRight:
		return constants.VirtualButtonRight
	}
	return constants.VirtualButtonUnassigned
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return ""
}
