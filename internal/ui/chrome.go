package ui

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/yiponline/shelf/internal/ui/constants"
	"github.com/yiponline/shelf/internal/ui/internal"
)

// FooterHelpItem is one button hint in the footer, e.g. {"A", "Open"}.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

func margin() int32 {
	return internal.Scaled(20)
}

// renderHeader draws the title on the left and an optional badge pill on the
// right. It returns the y coordinate below the header.
func renderHeader(renderer *sdl.Renderer, window *internal.Window, title, badge string) int32 {
	theme := internal.GetTheme()
	font := internal.Fonts.LargeFont
	m := margin()

	if badge != "" {
		small := internal.Fonts.SmallFont
		pad := internal.Scaled(10)
		w := internal.TextWidth(small, badge) + 2*pad
		h := int32(small.Height()) + pad
		x := window.GetWidth() - m - w
		y := m + (int32(font.Height())-h)/2
		internal.DrawRoundedRect(renderer, &sdl.Rect{X: x, Y: y, W: w, H: h}, h/2, theme.AccentColor)
		internal.RenderText(renderer, small, badge, x+pad, y+pad/2, theme.ButtonLabelColor, 0)
	}

	internal.RenderText(renderer, font, title, m, m, theme.TextColor, window.GetWidth()-2*m)
	return m + int32(font.Height()) + internal.Scaled(constants.DefaultTitleSpacing)
}

// renderTabs draws an evenly divided tab strip with the active tab underlined.
func renderTabs(renderer *sdl.Renderer, window *internal.Window, labels []string, active int, y int32) int32 {
	if len(labels) == 0 {
		return y
	}

	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont
	m := margin()
	width := (window.GetWidth() - 2*m) / int32(len(labels))
	height := int32(font.Height()) + internal.Scaled(12)
	line := internal.Max32(internal.Scaled(3), 2)

	for i, label := range labels {
		x := m + int32(i)*width
		color := theme.HintColor
		if i == active {
			color = theme.AccentColor
			renderer.SetDrawColor(color.R, color.G, color.B, color.A)
			renderer.FillRect(&sdl.Rect{X: x, Y: y + height - line, W: width, H: line})
		}
		internal.RenderAlignedText(renderer, font, label, x+width/2, y+internal.Scaled(4), color, constants.TextAlignCenter)
	}

	hint := theme.HintColor
	renderer.SetDrawColor(hint.R, hint.G, hint.B, 80)
	renderer.FillRect(&sdl.Rect{X: m, Y: y + height, W: window.GetWidth() - 2*m, H: 1})

	return y + height + internal.Scaled(8)
}

func footerHeight() int32 {
	return int32(internal.Fonts.SmallFont.Height()) + internal.Scaled(8) + 2*margin()
}

// renderFooter lays hints out left to right along the bottom edge.
func renderFooter(renderer *sdl.Renderer, window *internal.Window, items []FooterHelpItem) {
	if len(items) == 0 {
		return
	}

	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont
	m := margin()
	pad := internal.Scaled(8)
	height := int32(font.Height()) + pad
	y := window.GetHeight() - m - height
	x := m

	for _, item := range items {
		pill := internal.Max32(internal.TextWidth(font, item.ButtonName)+2*pad, height)
		internal.DrawRoundedRect(renderer, &sdl.Rect{X: x, Y: y, W: pill, H: height}, height/2, theme.HighlightColor)
		internal.RenderAlignedText(renderer, font, item.ButtonName, x+pill/2, y+pad/2, theme.ButtonLabelColor, constants.TextAlignCenter)
		x += pill + pad

		w, _ := internal.RenderText(renderer, font, item.HelpText, x, y+pad/2, theme.TextColor, 0)
		x += w + 2*m
	}
}

// renderWarning draws a full-width error banner and returns the y below it.
func renderWarning(renderer *sdl.Renderer, window *internal.Window, text string, y int32) int32 {
	if text == "" {
		return y
	}

	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont
	m := margin()
	pad := internal.Scaled(8)
	icon := int32(font.Height())
	width := window.GetWidth() - 2*m
	height := icon + 2*pad

	c := theme.ErrorColor
	internal.DrawRoundedRect(renderer, &sdl.Rect{X: m, Y: y, W: width, H: height}, pad, sdl.Color{R: c.R, G: c.G, B: c.B, A: 60})
	_ = internal.Icons().Draw(renderer, constants.IconAlert, m+pad, y+pad, icon, theme.ErrorColor)
	internal.RenderText(renderer, font, text, m+2*pad+icon, y+pad, theme.ErrorColor, width-3*pad-icon)
	return y + height + pad
}
