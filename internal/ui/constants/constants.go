// Package constants defines the input and layout vocabulary shared by the UI
// toolkit and its internals.
package constants

import "time"

// VirtualButton is an abstract input button, mapped from keyboard keys and
// controller buttons by the input processor.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonPower
)

var buttonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonR1:         "R1",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
	VirtualButtonPower:      "Power",
}

func (vb VirtualButton) GetName() string {
	if name, ok := buttonNames[vb]; ok {
		return name
	}
	return "Unknown"
}

// ButtonByName is the inverse of GetName, case sensitive. Used by input
// mapping files.
func ButtonByName(name string) (VirtualButton, bool) {
	for vb, n := range buttonNames {
		if n == name && vb != VirtualButtonUnassigned {
			return vb, true
		}
	}
	return VirtualButtonUnassigned, false
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

const (
	DefaultInputDelay         = 20 * time.Millisecond // Debounce delay between input events
	DefaultTitleSpacing int32 = 5                     // Vertical spacing below title text
	FrameDelay                = 16                    // Milliseconds to wait for an event per frame
)
