package ui

import (
	"context"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/yiponline/shelf/internal/ui/constants"
	"github.com/yiponline/shelf/internal/ui/internal"
)

type FormField struct {
	Label       string
	Value       string
	Placeholder string
	ImagePath   string // Shown as a preview next to the value
}

// FormOptions describes a column of fields followed by a submit button.
// Focus indexes the fields, with len(Fields) meaning the submit button.
type FormOptions struct {
	Title           string
	Tabs            []string
	ActiveTab       int
	Fields          []FormField
	SubmitLabel     string
	Warning         string
	Focus           int
	FooterHelpItems []FooterHelpItem
}

type formController struct {
	opts      FormOptions
	focus     int
	result    *FormResult
	cancelled bool
}

func newFormController(opts FormOptions) *formController {
	c := &formController{opts: opts}
	if opts.Focus >= 0 && opts.Focus <= len(opts.Fields) {
		c.focus = opts.Focus
	}
	return c
}

// Form shows the fields and returns when a row is chosen, the form is
// submitted with Start or the tab changes. B returns ErrCancelled.
func Form(ctx context.Context, opts FormOptions) (*FormResult, error) {
	c := newFormController(opts)
	if err := runLoop(ctx, c); err != nil {
		return nil, err
	}
	if c.cancelled {
		return nil, ErrCancelled
	}
	return c.result, nil
}

func (c *formController) finish(action FormAction) bool {
	c.result = &FormResult{Action: action, Index: c.focus}
	return true
}

func (c *formController) handleButton(button constants.VirtualButton) bool {
	rows := len(c.opts.Fields) + 1

	switch button {
	case constants.VirtualButtonUp:
		c.focus = wrap(c.focus, -1, rows)
	case constants.VirtualButtonDown:
		c.focus = wrap(c.focus, 1, rows)
	case constants.VirtualButtonA:
		return c.finish(FormActionSelected)
	case constants.VirtualButtonStart:
		return c.finish(FormActionSubmitted)
	case constants.VirtualButtonR1:
		if len(c.opts.Tabs) > 0 {
			return c.finish(FormActionNextTab)
		}
	case constants.VirtualButtonL1:
		if len(c.opts.Tabs) > 0 {
			return c.finish(FormActionPrevTab)
		}
	case constants.VirtualButtonB:
		c.cancelled = true
		return true
	}
	return false
}

func (c *formController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()
	y := renderHeader(renderer, window, c.opts.Title, "")
	y = renderTabs(renderer, window, c.opts.Tabs, c.opts.ActiveTab, y)
	y = renderWarning(renderer, window, c.opts.Warning, y)

	m := margin()
	pad := internal.Scaled(10)
	width := window.GetWidth() - 2*m
	labelFont := internal.Fonts.SmallFont
	valueFont := internal.Fonts.MediumFont
	boxHeight := int32(valueFont.Height()) + 2*pad

	for i, field := range c.opts.Fields {
		internal.RenderText(renderer, labelFont, field.Label, m, y, theme.HintColor, width)
		y += int32(labelFont.Height()) + internal.Scaled(4)

		box := sdl.Rect{X: m, Y: y, W: width, H: boxHeight}
		textColor := theme.TextColor
		if i == c.focus {
			internal.DrawRoundedRect(renderer, &box, pad, theme.HighlightColor)
			textColor = theme.HighlightedTextColor
		} else {
			bg := theme.HintColor
			internal.DrawRoundedRect(renderer, &box, pad, sdl.Color{R: bg.R, G: bg.G, B: bg.B, A: 40})
		}

		x := m + pad
		if field.ImagePath != "" {
			size := boxHeight - pad
			drawThumbnail(renderer, field.ImagePath, &sdl.Rect{X: x, Y: y + pad/2, W: size, H: size})
			x += size + pad
		}

		value := field.Value
		if value == "" {
			value = field.Placeholder
			textColor = theme.HintColor
		}
		value = internal.TruncateText(value, m+width-pad-x, func(s string) int32 { return internal.TextWidth(valueFont, s) })
		internal.RenderText(renderer, valueFont, value, x, y+pad, textColor, 0)

		y += boxHeight + internal.Scaled(12)
	}

	button := sdl.Rect{X: m, Y: y + internal.Scaled(8), W: width, H: boxHeight}
	label := theme.ButtonLabelColor
	bg := theme.AccentColor
	if c.focus == len(c.opts.Fields) {
		bg = theme.HighlightColor
		label = theme.HighlightedTextColor
	}
	internal.DrawRoundedRect(renderer, &button, pad, bg)

	icon := int32(valueFont.Height())
	textWidth := internal.TextWidth(valueFont, c.opts.SubmitLabel)
	x := (window.GetWidth() - icon - pad - textWidth) / 2
	_ = internal.Icons().Draw(renderer, constants.IconAdd, x, button.Y+pad, icon, label)
	internal.RenderText(renderer, valueFont, c.opts.SubmitLabel, x+icon+pad, button.Y+pad, label, 0)

	renderFooter(renderer, window, c.opts.FooterHelpItems)
}
