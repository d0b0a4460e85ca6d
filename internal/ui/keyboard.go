package ui

import (
	"context"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/yiponline/shelf/internal/ui/constants"
	"github.com/yiponline/shelf/internal/ui/internal"
)

type KeyboardOptions struct {
	Prompt    string
	Initial   string
	Numeric   bool
	MaxLength int // Zero for unlimited
}

type virtualKeyboard struct {
	layout    internal.KeyboardLayout
	numeric   bool
	prompt    string
	buffer    *internal.TextBuffer
	row, col  int
	shift     bool
	entered   bool
	cancelled bool

	cursorVisible   bool
	lastCursorBlink time.Time
}

var keyboardHelp = []FooterHelpItem{
	{"B", "Del"},
	{"X", "Space"},
	{"SEL", "Shift"},
	{"Y", "Exit"},
	{"START", "Enter"},
}

var numericKeyboardHelp = []FooterHelpItem{
	{"B", "Del"},
	{"L/R", "Cursor"},
	{"Y", "Exit"},
	{"START", "Enter"},
}

func newVirtualKeyboard(opts KeyboardOptions) *virtualKeyboard {
	layout := internal.GeneralLayout()
	if opts.Numeric {
		layout = internal.NumericLayout()
	}
	return &virtualKeyboard{
		layout:          layout,
		numeric:         opts.Numeric,
		prompt:          opts.Prompt,
		buffer:          internal.NewTextBuffer(opts.Initial, opts.MaxLength),
		row:             1,
		cursorVisible:   true,
		lastCursorBlink: time.Now(),
	}
}

// Keyboard shows an on-screen keyboard and returns the entered text. Y
// leaves without saving and returns ErrCancelled.
func Keyboard(ctx context.Context, opts KeyboardOptions) (string, error) {
	kb := newVirtualKeyboard(opts)
	if err := runLoop(ctx, kb); err != nil {
		return "", err
	}
	if kb.cancelled {
		return "", ErrCancelled
	}
	return kb.buffer.String(), nil
}

func (kb *virtualKeyboard) move(dir internal.Direction) {
	kb.row, kb.col = kb.layout.Move(kb.row, kb.col, dir)
}

// press applies the selected key and reports whether input is complete.
func (kb *virtualKeyboard) press() bool {
	key := kb.layout.Key(kb.row, kb.col)
	switch key.Kind {
	case internal.KeyShift:
		kb.shift = !kb.shift
	case internal.KeySpace:
		kb.buffer.Insert(" ")
	case internal.KeyBackspace:
		kb.buffer.Backspace()
	case internal.KeyEnter:
		kb.entered = true
		return true
	default:
		kb.buffer.Insert(key.Label(kb.shift))
	}
	return false
}

func (kb *virtualKeyboard) handleButton(button constants.VirtualButton) bool {
	switch button {
	case constants.VirtualButtonUp:
		kb.move(internal.DirectionUp)
	case constants.VirtualButtonDown:
		kb.move(internal.DirectionDown)
	case constants.VirtualButtonLeft:
		kb.move(internal.DirectionLeft)
	case constants.VirtualButtonRight:
		kb.move(internal.DirectionRight)
	case constants.VirtualButtonA:
		return kb.press()
	case constants.VirtualButtonB:
		kb.buffer.Backspace()
	case constants.VirtualButtonX:
		if !kb.numeric {
			kb.buffer.Insert(" ")
		}
	case constants.VirtualButtonL1:
		kb.buffer.MoveCursor(-1)
	case constants.VirtualButtonR1:
		kb.buffer.MoveCursor(1)
	case constants.VirtualButtonSelect:
		if !kb.numeric {
			kb.shift = !kb.shift
		}
	case constants.VirtualButtonY:
		kb.cancelled = true
		return true
	case constants.VirtualButtonStart:
		kb.entered = true
		return true
	}

	kb.cursorVisible = true
	kb.lastCursorBlink = time.Now()
	return false
}

func (kb *virtualKeyboard) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()
	width, height := window.GetWidth(), window.GetHeight()
	m := margin()
	pad := internal.Scaled(10)
	font := internal.Fonts.MediumFont
	keyFont := internal.Fonts.SmallFont

	if time.Since(kb.lastCursorBlink) > 500*time.Millisecond {
		kb.cursorVisible = !kb.cursorVisible
		kb.lastCursorBlink = time.Now()
	}

	y := m
	if kb.prompt != "" {
		internal.RenderText(renderer, internal.Fonts.SmallFont, kb.prompt, m, y, theme.HintColor, width-2*m)
		y += int32(internal.Fonts.SmallFont.Height()) + internal.Scaled(4)
	}

	input := sdl.Rect{X: m, Y: y, W: width - 2*m, H: int32(font.Height()) + 2*pad}
	bg := theme.HintColor
	internal.DrawRoundedRect(renderer, &input, pad, sdl.Color{R: bg.R, G: bg.G, B: bg.B, A: 60})
	internal.RenderText(renderer, font, kb.buffer.String(), input.X+pad, input.Y+pad, theme.TextColor, input.W-2*pad)
	if kb.cursorVisible {
		cx := input.X + pad + internal.TextWidth(font, kb.buffer.BeforeCursor())
		renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, 255)
		renderer.FillRect(&sdl.Rect{X: cx, Y: input.Y + pad, W: internal.Max32(internal.Scaled(2), 2), H: int32(font.Height())})
	}

	area := sdl.Rect{X: m, Y: input.Y + input.H + pad, W: width - 2*m}
	area.H = height - footerHeight() - area.Y
	if kb.numeric {
		area.X = width / 4
		area.W = width / 2
	}

	rects := kb.layout.Rects(area, internal.Scaled(4))
	for r, row := range rects {
		for c, rect := range row {
			key := kb.layout.Key(r, c)
			fill := sdl.Color{R: bg.R, G: bg.G, B: bg.B, A: 50}
			label := theme.TextColor
			if key.Kind != internal.KeyChar {
				fill = sdl.Color{R: bg.R, G: bg.G, B: bg.B, A: 90}
			}
			if key.Kind == internal.KeyShift && kb.shift {
				fill = theme.AccentColor
				label = theme.ButtonLabelColor
			}
			if r == kb.row && c == kb.col {
				fill = theme.HighlightColor
				label = theme.HighlightedTextColor
			}

			rect := rect
			internal.DrawRoundedRect(renderer, &rect, internal.Scaled(6), fill)
			text := key.Label(kb.shift)
			internal.RenderAlignedText(renderer, keyFont, text, rect.X+rect.W/2, rect.Y+(rect.H-int32(keyFont.Height()))/2, label, constants.TextAlignCenter)
		}
	}

	help := keyboardHelp
	if kb.numeric {
		help = numericKeyboardHelp
	}
	renderFooter(renderer, window, help)
}
