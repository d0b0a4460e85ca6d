package ui

import (
	"context"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/yiponline/shelf/internal/ui/constants"
	"github.com/yiponline/shelf/internal/ui/internal"
)

type processController struct {
	message string
	done    chan error
	err     error
	started time.Time
}

// ProcessMessage shows message while fn runs in the background and returns
// fn's error. The ctx handed to fn is cancelled when the window closes.
func ProcessMessage(ctx context.Context, message string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c := &processController{message: message, done: make(chan error, 1), started: time.Now()}
	go func() {
		c.done <- fn(ctx)
	}()

	if err := runLoop(ctx, c); err != nil {
		return err
	}
	return c.err
}

func (c *processController) handleButton(constants.VirtualButton) bool {
	return false
}

func (c *processController) tick(time.Time) bool {
	select {
	case c.err = <-c.done:
		return true
	default:
		return false
	}
}

func (c *processController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()
	font := internal.Fonts.MediumFont
	width, height := window.GetWidth(), window.GetHeight()

	dots := int(time.Since(c.started)/(300*time.Millisecond))%3 + 1
	text := c.message + "..."[:dots]
	internal.RenderAlignedText(renderer, font, text, width/2, (height-int32(font.Height()))/2, theme.TextColor, constants.TextAlignCenter)
}
