package ui

import (
	"context"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/yiponline/shelf/internal/ui/constants"
	"github.com/yiponline/shelf/internal/ui/internal"
)

type KeyValue struct {
	Key   string
	Value string
}

type DetailSection struct {
	Title  string
	Fields []KeyValue
}

// DetailOptions describes a read-only page. A non-empty Message replaces the
// body with a centred message.
type DetailOptions struct {
	Title           string
	ImagePath       string
	Heading         string
	Subheading      string
	Sections        []DetailSection
	Message         string
	EnableAction    bool
	FooterHelpItems []FooterHelpItem
}

type detailController struct {
	opts      DetailOptions
	scroll    int32
	maxScroll int32
	step      int32
	result    DetailResult
	cancelled bool
}

// Detail shows a scrollable page. A confirms, X triggers the action when
// enabled and B returns ErrCancelled.
func Detail(ctx context.Context, opts DetailOptions) (*DetailResult, error) {
	c := &detailController{opts: opts, step: 40}
	if err := runLoop(ctx, c); err != nil {
		return nil, err
	}
	if c.cancelled {
		return nil, ErrCancelled
	}
	return &c.result, nil
}

func (c *detailController) handleButton(button constants.VirtualButton) bool {
	switch button {
	case constants.VirtualButtonUp:
		c.scroll = internal.Max32(c.scroll-c.step, 0)
	case constants.VirtualButtonDown:
		c.scroll = internal.Min32(c.scroll+c.step, c.maxScroll)
	case constants.VirtualButtonA:
		c.result.Action = DetailActionConfirmed
		return true
	case constants.VirtualButtonX:
		if c.opts.EnableAction {
			c.result.Action = DetailActionTriggered
			return true
		}
	case constants.VirtualButtonB:
		c.cancelled = true
		return true
	}
	return false
}

func (c *detailController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()
	top := renderHeader(renderer, window, c.opts.Title, "")
	bottom := window.GetHeight() - footerHeight()
	width := window.GetWidth()
	centre := width / 2
	m := margin()

	if c.opts.Message != "" {
		font := internal.Fonts.MediumFont
		maxWidth := width * 3 / 4
		icon := internal.Scaled(64)
		lines := internal.WrapText(c.opts.Message, maxWidth, func(s string) int32 { return internal.TextWidth(font, s) })
		height := icon + internal.Scaled(16) + internal.MultilineHeight(len(lines), int32(font.Height()))
		y := top + (bottom-top-height)/2

		_ = internal.Icons().Draw(renderer, constants.IconAlert, centre-icon/2, y, icon, theme.HintColor)
		internal.RenderMultilineText(renderer, c.opts.Message, font, maxWidth, centre, y+icon+internal.Scaled(16), theme.TextColor, constants.TextAlignCenter)
		renderFooter(renderer, window, c.opts.FooterHelpItems)
		return
	}

	c.step = internal.Scaled(40)
	_ = renderer.SetClipRect(&sdl.Rect{X: 0, Y: top, W: width, H: bottom - top})
	y := top - c.scroll

	if c.opts.ImagePath != "" {
		size := internal.Scaled(200)
		drawThumbnail(renderer, c.opts.ImagePath, &sdl.Rect{X: centre - size/2, Y: y, W: size, H: size})
		y += size + internal.Scaled(16)
	}

	if c.opts.Heading != "" {
		font := internal.Fonts.LargeFont
		y += internal.RenderMultilineText(renderer, c.opts.Heading, font, width-2*m, centre, y, theme.TextColor, constants.TextAlignCenter)
		y += internal.Scaled(4)
	}
	if c.opts.Subheading != "" {
		font := internal.Fonts.MediumFont
		internal.RenderAlignedText(renderer, font, c.opts.Subheading, centre, y, theme.AccentColor, constants.TextAlignCenter)
		y += int32(font.Height()) + internal.Scaled(16)
	}

	for _, section := range c.opts.Sections {
		y = c.renderSection(renderer, window, section, y)
	}

	_ = renderer.SetClipRect(nil)
	c.maxScroll = internal.Max32(y+c.scroll-bottom, 0)
	renderFooter(renderer, window, c.opts.FooterHelpItems)
}

func (c *detailController) renderSection(renderer *sdl.Renderer, window *internal.Window, section DetailSection, y int32) int32 {
	theme := internal.GetTheme()
	m := margin()
	width := window.GetWidth() - 2*m
	pad := internal.Scaled(12)
	titleFont := internal.Fonts.SmallFont
	font := internal.Fonts.SmallFont
	rowHeight := int32(font.Height()) + internal.Scaled(6)

	internal.RenderText(renderer, titleFont, section.Title, m, y, theme.HintColor, width)
	y += int32(titleFont.Height()) + internal.Scaled(6)

	height := int32(len(section.Fields))*rowHeight + 2*pad
	bg := theme.HintColor
	internal.DrawRoundedRect(renderer, &sdl.Rect{X: m, Y: y, W: width, H: height}, pad, sdl.Color{R: bg.R, G: bg.G, B: bg.B, A: 40})

	rowY := y + pad
	for _, field := range section.Fields {
		internal.RenderText(renderer, font, field.Key, m+pad, rowY, theme.HintColor, width/2)
		internal.RenderAlignedText(renderer, font, field.Value, m+width-pad, rowY, theme.TextColor, constants.TextAlignRight)
		rowY += rowHeight
	}

	return y + height + internal.Scaled(16)
}
