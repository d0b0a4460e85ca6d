// Package config loads the application configuration from a TOML file with
// environment overrides. Every key has a default, so a missing file is fine.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Environment variables that override file values.
const (
	EnvironmentEnvVar = "ENVIRONMENT"
	LogLevelEnvVar    = "LOG_LEVEL"
	PhotoDirEnvVar    = "SHELF_PHOTO_DIR"
	FlipButtonsEnvVar = "FLIP_FACE_BUTTONS"
	LocaleEnvVar      = "SHELF_LOCALE"
)

// Development is the ENVIRONMENT value that enables windowed dev mode.
const Development = "DEV"

// Duration decodes TOML strings such as "2.5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Config struct {
	Locale string       `toml:"locale"`
	Window WindowConfig `toml:"window"`
	Log    LogConfig    `toml:"log"`
	Photos PhotoConfig  `toml:"photos"`
	Splash SplashConfig `toml:"splash"`
	Theme  ThemeConfig  `toml:"theme"`
	Input  InputConfig  `toml:"input"`

	DevMode bool `toml:"-"`
}

type WindowConfig struct {
	Title          string `toml:"title"`
	Width          int32  `toml:"width"`  // Only used in dev mode
	Height         int32  `toml:"height"` // Only used in dev mode
	Borderless     bool   `toml:"borderless"`
	ShowBackground bool   `toml:"show_background"`
}

type LogConfig struct {
	Path       string `toml:"path"`
	Level      string `toml:"level"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

type PhotoConfig struct {
	Dir        string   `toml:"dir"`
	Extensions []string `toml:"extensions"`
}

type SplashConfig struct {
	Title string   `toml:"title"`
	Delay Duration `toml:"delay"`
}

type ThemeConfig struct {
	FontPath       string `toml:"font_path"`
	AccentColor    string `toml:"accent_color"` // "#RRGGBB"
	BackgroundPath string `toml:"background_path"`
}

type InputConfig struct {
	FlipFaceButtons   bool   `toml:"flip_face_buttons"`
	MappingFile       string `toml:"mapping_file"`
	PowerButtonDevice string `toml:"power_button_device"`
	SuspendCommand    string `toml:"suspend_command"`
	ShutdownCommand   string `toml:"shutdown_command"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Locale: "en",
		Window: WindowConfig{
			Title:  "Yiponline",
			Width:  1024,
			Height: 768,
		},
		Log: LogConfig{
			Path:       "logs/shelf.log",
			Level:      "info",
			MaxSizeMB:  8,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
		Photos: PhotoConfig{
			Dir:        "photos",
			Extensions: []string{".png", ".jpg", ".jpeg", ".webp"},
		},
		Splash: SplashConfig{
			Title: "Yiponline",
			Delay: Duration{2500 * time.Millisecond},
		},
		Theme: ThemeConfig{
			FontPath:    "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
			AccentColor: "#7C5CFF",
		},
	}
}

// Load reads path on top of the defaults and applies environment overrides.
// An empty path loads defaults only. Unknown keys are reported as an error so
// typos do not silently fall back to defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	cfg.applyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if getenv(EnvironmentEnvVar) == Development {
		c.DevMode = true
	}
	if v := getenv(LogLevelEnvVar); v != "" {
		c.Log.Level = v
	}
	if v := getenv(PhotoDirEnvVar); v != "" {
		c.Photos.Dir = v
	}
	if v := getenv(LocaleEnvVar); v != "" {
		c.Locale = v
	}
	if v := getenv(FlipButtonsEnvVar); v != "" {
		if flip, err := strconv.ParseBool(v); err == nil {
			c.Input.FlipFaceButtons = flip
		}
	}
}

// Validate checks values the rest of the program relies on.
func (c *Config) Validate() error {
	var errs []error

	if c.Splash.Delay.Duration < 0 {
		errs = append(errs, fmt.Errorf("splash.delay must not be negative, got %s", c.Splash.Delay.Duration))
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window size must not be negative, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Theme.AccentColor != "" {
		if _, err := ParseHexColor(c.Theme.AccentColor); err != nil {
			errs = append(errs, err)
		}
	}
	if len(c.Photos.Extensions) == 0 {
		errs = append(errs, errors.New("photos.extensions must list at least one extension"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// ParseHexColor parses "#RRGGBB" (the leading # is optional) into 0xRRGGBB.
func ParseHexColor(raw string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid colour %q: want #RRGGBB", raw)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid colour %q: %w", raw, err)
	}
	return uint32(v), nil
}
