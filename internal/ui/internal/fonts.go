package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes at a scale factor of 1.
type FontSizes struct {
	XLarge int
	Large  int
	Medium int
	Small  int
	Tiny   int
}

var DefaultFontSizes = FontSizes{
	XLarge: 48,
	Large:  32,
	Medium: 26,
	Small:  20,
	Tiny:   16,
}

type fontsManager struct {
	ExtraLargeFont *ttf.Font
	LargeFont      *ttf.Font
	MediumFont     *ttf.Font
	SmallFont      *ttf.Font
	TinyFont       *ttf.Font
}

// Fonts holds the theme font at every size once Init has run.
var Fonts fontsManager

var scaleFactor float32 = 1

// GetScaleFactor is the ratio of the window height to the 480 line baseline.
func GetScaleFactor() float32 {
	return scaleFactor
}

func setScaleFactor(height int32) {
	scaleFactor = float32(height) / 480
	if scaleFactor < 1 {
		scaleFactor = 1
	}
}

// Scaled multiplies a baseline length by the scale factor.
func Scaled(v int32) int32 {
	return int32(float32(v) * scaleFactor)
}

func initFonts(sizes FontSizes) error {
	path := GetTheme().FontPath
	open := func(size int) (*ttf.Font, error) {
		font, err := ttf.OpenFont(path, int(float32(size)*scaleFactor))
		if err != nil {
			return nil, fmt.Errorf("open font %s at %d: %w", path, size, err)
		}
		return font, nil
	}

	var err error
	if Fonts.ExtraLargeFont, err = open(sizes.XLarge); err != nil {
		return err
	}
	if Fonts.LargeFont, err = open(sizes.Large); err != nil {
		return err
	}
	if Fonts.MediumFont, err = open(sizes.Medium); err != nil {
		return err
	}
	if Fonts.SmallFont, err = open(sizes.Small); err != nil {
		return err
	}
	if Fonts.TinyFont, err = open(sizes.Tiny); err != nil {
		return err
	}
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.ExtraLargeFont, Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont, Fonts.TinyFont} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = fontsManager{}
}
