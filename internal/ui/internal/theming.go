package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of every widget.
type Theme struct {
	HighlightColor       sdl.Color // Selected row background, footer button background
	AccentColor          sdl.Color // Tabs, badges, pills
	ButtonLabelColor     sdl.Color // Button label text inside pills
	TextColor            sdl.Color
	HighlightedTextColor sdl.Color // Text on highlighted rows
	HintColor            sdl.Color // Help text, placeholders
	ErrorColor           sdl.Color
	BackgroundColor      sdl.Color
	FontPath             string
	BackgroundImagePath  string
}

var currentTheme = DefaultTheme("", 0x7C5CFF)

// DefaultTheme is a dark theme with the given accent colour.
func DefaultTheme(fontPath string, accent uint32) Theme {
	return Theme{
		HighlightColor:       HexToColor(0xFFFFFF),
		AccentColor:          HexToColor(accent),
		ButtonLabelColor:     HexToColor(0x000000),
		TextColor:            HexToColor(0xFFFFFF),
		HighlightedTextColor: HexToColor(0x000000),
		HintColor:            HexToColor(0x9A9AA8),
		ErrorColor:           HexToColor(0xFF5C5C),
		BackgroundColor:      HexToColor(0x14141C),
		FontPath:             fontPath,
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque colour.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
