package ui

import (
	"context"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/yiponline/shelf/internal/ui/constants"
	"github.com/yiponline/shelf/internal/ui/internal"
)

// SelectionOption is one choice in a message dialog.
type SelectionOption struct {
	DisplayName string
	Value       any
}

type MessageOptions struct {
	Title   string
	Message string
	Options []SelectionOption
	// InitialSelection is the index focused when the dialog opens.
	InitialSelection int
	// DisableBackButton keeps B from dismissing the dialog.
	DisableBackButton bool
}

type messageController struct {
	opts      MessageOptions
	selected  int
	confirmed bool
	cancelled bool
}

func newMessageController(opts MessageOptions) *messageController {
	c := &messageController{opts: opts}
	if opts.InitialSelection >= 0 && opts.InitialSelection < len(opts.Options) {
		c.selected = opts.InitialSelection
	}
	return c
}

// SelectionMessage shows a message with horizontally selectable options and
// returns the chosen option's index. B returns ErrCancelled.
func SelectionMessage(ctx context.Context, opts MessageOptions) (int, error) {
	if len(opts.Options) == 0 {
		return 0, ErrCancelled
	}

	c := newMessageController(opts)
	if err := runLoop(ctx, c); err != nil {
		return 0, err
	}
	if c.cancelled {
		return 0, ErrCancelled
	}
	return c.selected, nil
}

// Notice shows a message with a single dismiss button. B also dismisses it.
func Notice(ctx context.Context, title, message, button string) error {
	_, err := SelectionMessage(ctx, MessageOptions{
		Title:   title,
		Message: message,
		Options: []SelectionOption{{DisplayName: button}},
	})
	if IsCancelled(err) {
		return nil
	}
	return err
}

// Confirm asks a yes/no question with cancel focused first.
func Confirm(ctx context.Context, title, message, confirm, cancel string) (bool, error) {
	index, err := SelectionMessage(ctx, MessageOptions{
		Title:   title,
		Message: message,
		Options: []SelectionOption{
			{DisplayName: cancel, Value: false},
			{DisplayName: confirm, Value: true},
		},
	})
	if err != nil {
		return false, err
	}
	return index == 1, nil
}

func (c *messageController) handleButton(button constants.VirtualButton) bool {
	switch button {
	case constants.VirtualButtonLeft:
		c.selected = wrap(c.selected, -1, len(c.opts.Options))
	case constants.VirtualButtonRight:
		c.selected = wrap(c.selected, 1, len(c.opts.Options))
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		c.confirmed = true
		return true
	case constants.VirtualButtonB:
		if !c.opts.DisableBackButton {
			c.cancelled = true
			return true
		}
	}
	return false
}

func (c *messageController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()
	width, height := window.GetWidth(), window.GetHeight()
	centre := width / 2

	titleFont := internal.Fonts.LargeFont
	messageFont := internal.Fonts.SmallFont
	optionFont := internal.Fonts.MediumFont
	maxWidth := internal.Min32(width*3/4, internal.Scaled(800))
	spacing := internal.Scaled(30)

	lines := internal.WrapText(c.opts.Message, maxWidth, func(s string) int32 { return internal.TextWidth(messageFont, s) })
	messageHeight := internal.MultilineHeight(len(lines), int32(messageFont.Height()))
	titleHeight := int32(0)
	if c.opts.Title != "" {
		titleHeight = int32(titleFont.Height()) + internal.Scaled(12)
	}
	total := titleHeight + messageHeight + spacing + int32(optionFont.Height())
	y := (height - total) / 2

	if c.opts.Title != "" {
		internal.RenderAlignedText(renderer, titleFont, c.opts.Title, centre, y, theme.TextColor, constants.TextAlignCenter)
		y += titleHeight
	}
	internal.RenderMultilineText(renderer, c.opts.Message, messageFont, maxWidth, centre, y, theme.TextColor, constants.TextAlignCenter)
	y += messageHeight + spacing

	c.renderOptions(renderer, centre, y)
}

// renderOptions draws the choices as pills, the selected one highlighted.
func (c *messageController) renderOptions(renderer *sdl.Renderer, centre, y int32) {
	theme := internal.GetTheme()
	font := internal.Fonts.MediumFont
	pad := internal.Scaled(16)
	gap := internal.Scaled(20)
	h := int32(font.Height()) + pad/2

	widths := make([]int32, len(c.opts.Options))
	total := int32(0)
	for i, opt := range c.opts.Options {
		widths[i] = internal.TextWidth(font, opt.DisplayName) + 2*pad
		total += widths[i]
	}
	total += gap * int32(len(c.opts.Options)-1)

	x := centre - total/2
	for i, opt := range c.opts.Options {
		fill := theme.HintColor
		fill.A = 60
		label := theme.TextColor
		if i == c.selected {
			fill = theme.HighlightColor
			label = theme.HighlightedTextColor
		}
		internal.DrawRoundedRect(renderer, &sdl.Rect{X: x, Y: y, W: widths[i], H: h}, h/2, fill)
		internal.RenderAlignedText(renderer, font, opt.DisplayName, x+widths[i]/2, y+pad/4, label, constants.TextAlignCenter)
		x += widths[i] + gap
	}
}
