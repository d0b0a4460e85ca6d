package internal

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed icons/*.svg
var iconFS embed.FS

// RasterizeIcon renders the named embedded SVG into a size x size image.
func RasterizeIcon(name string, size int) (*image.RGBA, error) {
	data, err := iconFS.ReadFile("icons/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("icon %q: %w", name, err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse icon %q: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}

// IconCache keeps one texture per icon name and size.
type IconCache struct {
	textures map[string]*sdl.Texture
}

func NewIconCache() *IconCache {
	return &IconCache{textures: make(map[string]*sdl.Texture)}
}

// Texture returns the icon tinted with color, rendering it on first use.
func (c *IconCache) Texture(renderer *sdl.Renderer, name string, size int32, color sdl.Color) (*sdl.Texture, error) {
	key := fmt.Sprintf("%s@%d", name, size)
	tex, ok := c.textures[key]
	if !ok {
		img, err := RasterizeIcon(name, int(size))
		if err != nil {
			return nil, err
		}

		surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
			unsafe.Pointer(&img.Pix[0]),
			size, size, 32, int32(img.Stride),
			uint32(sdl.PIXELFORMAT_ABGR8888),
		)
		if err != nil {
			return nil, fmt.Errorf("icon surface %q: %w", name, err)
		}
		tex, err = renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			return nil, fmt.Errorf("icon texture %q: %w", name, err)
		}
		_ = tex.SetBlendMode(sdl.BLENDMODE_BLEND)
		c.textures[key] = tex
	}

	_ = tex.SetColorMod(color.R, color.G, color.B)
	return tex, nil
}

// Draw renders the icon at x, y.
func (c *IconCache) Draw(renderer *sdl.Renderer, name string, x, y, size int32, color sdl.Color) error {
	tex, err := c.Texture(renderer, name, size, color)
	if err != nil {
		return err
	}
	return renderer.Copy(tex, nil, &sdl.Rect{X: x, Y: y, W: size, H: size})
}

func (c *IconCache) Destroy() {
	for key, tex := range c.textures {
		tex.Destroy()
		delete(c.textures, key)
	}
}
