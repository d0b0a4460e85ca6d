package internal

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/yiponline/shelf/internal/ui/constants"
)

// TextWidth measures text in font. Errors measure as zero.
func TextWidth(font *ttf.Font, text string) int32 {
	if text == "" {
		return 0
	}
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

// RenderText draws one line with its top-left corner at x, y and returns the
// drawn size. Long text is clipped to maxWidth when it is positive.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color, maxWidth int32) (int32, int32) {
	if text == "" {
		return 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0
	}
	defer texture.Destroy()

	w := surface.W
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	renderer.Copy(texture, &sdl.Rect{X: 0, Y: 0, W: w, H: surface.H}, &sdl.Rect{X: x, Y: y, W: w, H: surface.H})
	return w, surface.H
}

// RenderAlignedText draws one line aligned against anchorX: the left edge,
// the centre or the right edge depending on align.
func RenderAlignedText(renderer *sdl.Renderer, font *ttf.Font, text string, anchorX, y int32, color sdl.Color, align constants.TextAlign) {
	x := anchorX
	switch align {
	case constants.TextAlignCenter:
		x -= TextWidth(font, text) / 2
	case constants.TextAlignRight:
		x -= TextWidth(font, text)
	}
	RenderText(renderer, font, text, x, y, color, 0)
}

// WrapText splits text into lines no wider than maxWidth according to measure.
// Explicit newlines are kept. A single word wider than maxWidth gets its own
// line.
func WrapText(text string, maxWidth int32, measure func(string) int32) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}

// TruncateText shortens text with an ellipsis until it fits maxWidth.
func TruncateText(text string, maxWidth int32, measure func(string) int32) string {
	if measure(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if measure(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}

// RenderMultilineText wraps and draws text aligned around anchorX and returns
// the total height used.
func RenderMultilineText(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth, anchorX, y int32, color sdl.Color, align constants.TextAlign) int32 {
	lineHeight := int32(font.Height())
	spacing := lineHeight / 5

	lines := WrapText(text, maxWidth, func(s string) int32 { return TextWidth(font, s) })
	for i, line := range lines {
		RenderAlignedText(renderer, font, line, anchorX, y+int32(i)*(lineHeight+spacing), color, align)
	}
	return MultilineHeight(len(lines), lineHeight)
}

// MultilineHeight is the height of n lines at lineHeight, with the spacing
// RenderMultilineText uses.
func MultilineHeight(n int, lineHeight int32) int32 {
	if n == 0 {
		return 0
	}
	return int32(n)*lineHeight + int32(n-1)*(lineHeight/5)
}

// DrawRoundedRect fills rect with rounded corners of the given radius.
func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	radius = Min32(radius, Min32(rect.W, rect.H)/2)
	if radius <= 0 {
		renderer.FillRect(rect)
		return
	}

	renderer.FillRect(&sdl.Rect{X: rect.X + radius, Y: rect.Y, W: rect.W - 2*radius, H: rect.H})
	renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + radius, W: radius, H: rect.H - 2*radius})
	renderer.FillRect(&sdl.Rect{X: rect.X + rect.W - radius, Y: rect.Y + radius, W: radius, H: rect.H - 2*radius})

	for dy := int32(0); dy < radius; dy++ {
		dx := radius - isqrt(radius*radius-(radius-dy)*(radius-dy))
		top := rect.Y + dy
		bottom := rect.Y + rect.H - 1 - dy
		renderer.DrawLine(rect.X+dx, top, rect.X+radius, top)
		renderer.DrawLine(rect.X+rect.W-radius-1, top, rect.X+rect.W-1-dx, top)
		renderer.DrawLine(rect.X+dx, bottom, rect.X+radius, bottom)
		renderer.DrawLine(rect.X+rect.W-radius-1, bottom, rect.X+rect.W-1-dx, bottom)
	}
}

func isqrt(v int32) int32 {
	if v <= 0 {
		return 0
	}
	r := int32(0)
	for (r+1)*(r+1) <= v {
		r++
	}
	return r
}

func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
