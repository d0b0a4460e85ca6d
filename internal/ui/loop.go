package ui

import (
	"context"
	"errors"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/yiponline/shelf/internal/ui/constants"
	"github.com/yiponline/shelf/internal/ui/internal"
)

// widget is the per-screen controller driven by runLoop.
type widget interface {
	// handleButton reacts to a debounced press and reports whether the widget
	// is finished.
	handleButton(button constants.VirtualButton) bool
	render(renderer *sdl.Renderer, window *internal.Window)
}

// ticker is implemented by widgets that finish on their own, such as a timed
// splash or a background task.
type ticker interface {
	tick(now time.Time) bool
}

var errNotInitialized = errors.New("ui not initialized")

// runLoop renders w once per frame and feeds it input until it finishes, the
// window closes or ctx ends. Held directions repeat.
func runLoop(ctx context.Context, w widget) error {
	window := internal.GetWindow()
	if window == nil {
		return NewInfrastructureError("run", errNotInitialized)
	}

	processor := internal.GetInputProcessor()
	directional := internal.NewDirectionalInput()
	var lastInput time.Time

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				return ErrQuit
			}

			ev := processor.ProcessSDLEvent(event)
			if ev == nil || ev.Repeat {
				continue
			}
			directional.SetHeld(ev.Button, ev.Pressed)
			if !ev.Pressed {
				continue
			}

			if time.Since(lastInput) < constants.DefaultInputDelay {
				continue
			}
			lastInput = time.Now()

			if w.handleButton(ev.Button) {
				return nil
			}
		}

		if dir := directional.Update(); dir != internal.DirectionNone {
			if w.handleButton(dir.VirtualButton()) {
				return nil
			}
		}

		if t, ok := w.(ticker); ok && t.tick(time.Now()) {
			return nil
		}

		window.Clear()
		w.render(window.Renderer, window)
		window.Present()
	}
}

// wrap moves index by delta within [0, n), wrapping at both ends.
func wrap(index, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((index+delta)%n + n) % n
}
