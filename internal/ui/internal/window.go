package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/yiponline/shelf/internal/logging"
)

// Window wraps the SDL window and renderer with the state widgets share.
type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	hasVSync          bool
	lastPresentTime   uint64
}

var window *Window

func initWindow(title string, width, height int32, displayBackground bool, winOpts WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	if winOpts.Fullscreen {
		x, y = 0, 0
	}

	logging.Internal().Debug("Initializing SDL Window", "width", width, "height", height)

	win, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		logging.Internal().Warn("Accelerated renderer unavailable, using software", "error", err)
		renderer, err = sdl.CreateRenderer(win, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			win.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	w := &Window{
		Window:            win,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
		hasVSync:          vsync,
	}
	w.loadBackground()

	return w, nil
}

func (w *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if !w.DisplayBackground || path == "" {
		return
	}

	texture, err := img.LoadTexture(w.Renderer, path)
	if err != nil {
		logging.Internal().Warn("Failed to load background", "path", path, "error", err)
		return
	}
	w.Background = texture
}

func (w *Window) closeWindow() {
	if w.Background != nil {
		w.Background.Destroy()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
}

// GetWindow returns the window created by Init.
func GetWindow() *Window {
	return window
}

func (w *Window) GetWidth() int32 {
	if lw, _ := w.Renderer.GetLogicalSize(); lw > 0 {
		return lw
	}
	width, _, err := w.Renderer.GetOutputSize()
	if err != nil {
		width, _ = w.Window.GetSize()
	}
	return width
}

func (w *Window) GetHeight() int32 {
	if _, lh := w.Renderer.GetLogicalSize(); lh > 0 {
		return lh
	}
	_, height, err := w.Renderer.GetOutputSize()
	if err != nil {
		_, height = w.Window.GetSize()
	}
	return height
}

// Clear paints the theme background colour and the background image, if any.
func (w *Window) Clear() {
	bg := GetTheme().BackgroundColor
	w.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	w.Renderer.Clear()

	if w.Background != nil {
		w.Renderer.Copy(w.Background, nil, &sdl.Rect{X: 0, Y: 0, W: w.GetWidth(), H: w.GetHeight()})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
