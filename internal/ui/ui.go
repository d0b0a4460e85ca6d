// Package ui is the SDL toolkit the app draws with: blocking widgets for
// lists, detail pages, forms, an on-screen keyboard and dialogs, plus View,
// which adapts them to the app's screens.
package ui

import (
	"log/slog"

	"github.com/yiponline/shelf/internal/config"
	"github.com/yiponline/shelf/internal/logging"
	"github.com/yiponline/shelf/internal/ui/internal"
)

// DefaultAccentColor is used when the configuration names none.
const DefaultAccentColor uint32 = 0x7C5CFF

// Options configures Init.
type Options struct {
	WindowTitle     string
	Width, Height   int32 // Zero uses the display size
	ShowBackground  bool
	WindowOptions   internal.WindowOptions
	FontPath        string
	AccentColorHex  uint32
	BackgroundPath  string
	FlipFaceButtons bool
	MappingFile     string
	PowerButton     internal.PowerButtonConfig
}

// OptionsFromConfig maps the loaded configuration onto toolkit options. Dev
// mode runs in a window of the configured size; otherwise the display is
// filled and the power button is watched.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	accent := DefaultAccentColor
	if cfg.Theme.AccentColor != "" {
		var err error
		if accent, err = config.ParseHexColor(cfg.Theme.AccentColor); err != nil {
			return Options{}, err
		}
	}

	opts := Options{
		WindowTitle:     cfg.Window.Title,
		ShowBackground:  cfg.Window.ShowBackground,
		FontPath:        cfg.Theme.FontPath,
		AccentColorHex:  accent,
		BackgroundPath:  cfg.Theme.BackgroundPath,
		FlipFaceButtons: cfg.Input.FlipFaceButtons,
		MappingFile:     cfg.Input.MappingFile,
	}

	if cfg.DevMode {
		opts.Width, opts.Height = cfg.Window.Width, cfg.Window.Height
		opts.WindowOptions = internal.WindowOptions{Borderless: cfg.Window.Borderless, Resizable: true}
		return opts, nil
	}

	opts.WindowOptions = internal.WindowOptions{Borderless: true, Fullscreen: true}
	opts.PowerButton = internal.PowerButtonConfig{
		DevicePath:      cfg.Input.PowerButtonDevice,
		SuspendCommand:  cfg.Input.SuspendCommand,
		ShutdownCommand: cfg.Input.ShutdownCommand,
	}
	return opts, nil
}

// Init brings up SDL and the window. It must be called before any widget and
// from the main goroutine.
func Init(opts Options) error {
	theme := internal.DefaultTheme(opts.FontPath, opts.AccentColorHex)
	theme.BackgroundImagePath = opts.BackgroundPath

	err := internal.Init(internal.Config{
		Title:           opts.WindowTitle,
		Width:           opts.Width,
		Height:          opts.Height,
		ShowBackground:  opts.ShowBackground,
		Window:          opts.WindowOptions,
		Theme:           theme,
		FlipFaceButtons: opts.FlipFaceButtons,
		MappingFile:     opts.MappingFile,
		Power:           opts.PowerButton,
	})
	if err != nil {
		internal.Cleanup()
		return NewInfrastructureError("init", err)
	}

	logging.Internal().Debug("UI initialized",
		slog.String("title", opts.WindowTitle),
		slog.Float64("scale", float64(internal.GetScaleFactor())))
	return nil
}

// Close releases every SDL resource.
func Close() {
	internal.Cleanup()
}
