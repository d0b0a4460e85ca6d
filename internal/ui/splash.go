package ui

import (
	"context"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/yiponline/shelf/internal/ui/constants"
	"github.com/yiponline/shelf/internal/ui/internal"
)

type splashController struct {
	title    string
	started  time.Time
	deadline time.Time
}

// Splash shows the title centred on the accent colour until delay elapses.
// Input is ignored.
func Splash(ctx context.Context, title string, delay time.Duration) error {
	now := time.Now()
	return runLoop(ctx, &splashController{title: title, started: now, deadline: now.Add(delay)})
}

func (c *splashController) handleButton(constants.VirtualButton) bool {
	return false
}

func (c *splashController) tick(now time.Time) bool {
	return !now.Before(c.deadline)
}

// fade is the title opacity, ramping up over the first 400ms.
func (c *splashController) fade(now time.Time) uint8 {
	const ramp = 400 * time.Millisecond
	elapsed := now.Sub(c.started)
	if elapsed >= ramp {
		return 255
	}
	if elapsed <= 0 {
		return 0
	}
	return uint8(255 * elapsed / ramp)
}

func (c *splashController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()
	width, height := window.GetWidth(), window.GetHeight()

	accent := theme.AccentColor
	renderer.SetDrawColor(accent.R, accent.G, accent.B, 255)
	renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: width, H: height})

	font := internal.Fonts.ExtraLargeFont
	color := theme.ButtonLabelColor
	color.A = c.fade(time.Now())

	icon := internal.Scaled(96)
	total := icon + internal.Scaled(24) + int32(font.Height())
	y := (height - total) / 2

	_ = internal.Icons().Draw(renderer, constants.IconProducts, width/2-icon/2, y, icon, color)
	internal.RenderAlignedText(renderer, font, c.title, width/2, y+icon+internal.Scaled(24), color, constants.TextAlignCenter)
}
