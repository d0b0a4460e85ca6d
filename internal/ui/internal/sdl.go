package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/yiponline/shelf/internal/logging"
)

// Config carries everything the SDL layer needs to come up.
type Config struct {
	Title           string
	Width           int32
	Height          int32
	ShowBackground  bool
	Window          WindowOptions
	Theme           Theme
	FontSizes       FontSizes
	FlipFaceButtons bool
	MappingFile     string
	Power           PowerButtonConfig
}

var (
	power  *PowerButton
	icons  *IconCache
	thumbs *TextureCache
)

// Init brings up SDL, the window, fonts, input and the power button watcher.
func Init(cfg Config) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	if err := img.Init(img.INIT_PNG | img.INIT_JPG | img.INIT_WEBP); err != nil {
		return fmt.Errorf("sdl_image init: %w", err)
	}
	if err := ttf.Init(); err != nil {
		return fmt.Errorf("sdl_ttf init: %w", err)
	}

	SetTheme(cfg.Theme)

	input := GetInputProcessor()
	input.SetMapping(DefaultInputMapping(cfg.FlipFaceButtons))
	if cfg.MappingFile != "" {
		if err := input.LoadMappingFile(cfg.MappingFile, cfg.FlipFaceButtons); err != nil {
			logging.Internal().Warn("Ignoring input mapping file", "path", cfg.MappingFile, "error", err)
		}
	}
	input.openControllers()

	// A zero size means the native display size.
	if cfg.Width == 0 || cfg.Height == 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			return fmt.Errorf("display mode: %w", err)
		}
		cfg.Width, cfg.Height = mode.W, mode.H
	}

	if cfg.Window.IsZero() {
		cfg.Window = WindowOptions{Resizable: true}
	}

	w, err := initWindow(cfg.Title, cfg.Width, cfg.Height, cfg.ShowBackground, cfg.Window)
	if err != nil {
		return err
	}
	window = w
	setScaleFactor(cfg.Height)

	sizes := cfg.FontSizes
	if sizes == (FontSizes{}) {
		sizes = DefaultFontSizes
	}
	if err := initFonts(sizes); err != nil {
		return err
	}

	icons = NewIconCache()
	thumbs = NewTextureCache()

	power = NewPowerButton(cfg.Power)
	if err := power.Start(); err != nil {
		logging.Internal().Warn("Power button unavailable", "device", cfg.Power.DevicePath, "error", err)
	}

	return nil
}

// Icons returns the shared icon texture cache.
func Icons() *IconCache {
	return icons
}

// Thumbnail loads the image at path as a texture, cached by path.
func Thumbnail(path string) (*sdl.Texture, error) {
	if tex, ok := thumbs.Get(path); ok {
		return tex, nil
	}
	tex, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	thumbs.Set(path, tex)
	return tex, nil
}

// Cleanup releases everything Init created, in reverse order.
func Cleanup() {
	if power != nil {
		power.Stop()
	}
	if thumbs != nil {
		thumbs.Purge()
	}
	if icons != nil {
		icons.Destroy()
	}
	closeFonts()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	GetInputProcessor().closeControllers()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}
