package ui

import (
	"context"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/yiponline/shelf/internal/ui/constants"
	"github.com/yiponline/shelf/internal/ui/internal"
)

type ListItem struct {
	Text      string
	Detail    string // Right aligned in the accent colour
	ImagePath string // Optional thumbnail
}

type ListOptions struct {
	Title     string
	Badge     string
	Tabs      []string
	ActiveTab int

	Items         []ListItem
	SelectedIndex int

	EmptyTitle   string
	EmptyMessage string

	EnableAction          bool
	EnableSecondaryAction bool
	FooterHelpItems       []FooterHelpItem
}

type listController struct {
	opts      ListOptions
	selected  int
	offset    int
	visible   int
	result    *ListResult
	cancelled bool
}

func newListController(opts ListOptions) *listController {
	c := &listController{opts: opts, visible: 1}
	if opts.SelectedIndex > 0 && opts.SelectedIndex < len(opts.Items) {
		c.selected = opts.SelectedIndex
	}
	return c
}

// List shows a scrollable list with optional thumbnails and a tab strip.
// B returns ErrCancelled.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	c := newListController(opts)
	if err := runLoop(ctx, c); err != nil {
		return nil, err
	}
	if c.cancelled {
		return nil, ErrCancelled
	}
	return c.result, nil
}

func (c *listController) finish(action ListAction) bool {
	c.result = &ListResult{Action: action, Index: c.selected}
	return true
}

func (c *listController) handleButton(button constants.VirtualButton) bool {
	n := len(c.opts.Items)

	switch button {
	case constants.VirtualButtonUp:
		c.selected = wrap(c.selected, -1, n)
		c.scrollToSelected()
	case constants.VirtualButtonDown:
		c.selected = wrap(c.selected, 1, n)
		c.scrollToSelected()
	case constants.VirtualButtonA:
		if n > 0 {
			return c.finish(ListActionSelected)
		}
	case constants.VirtualButtonX:
		if n > 0 && c.opts.EnableAction {
			return c.finish(ListActionTriggered)
		}
	case constants.VirtualButtonY:
		if c.opts.EnableSecondaryAction {
			return c.finish(ListActionSecondaryTriggered)
		}
	case constants.VirtualButtonR1:
		if len(c.opts.Tabs) > 0 {
			return c.finish(ListActionNextTab)
		}
	case constants.VirtualButtonL1:
		if len(c.opts.Tabs) > 0 {
			return c.finish(ListActionPrevTab)
		}
	case constants.VirtualButtonB:
		c.cancelled = true
		return true
	}
	return false
}

func (c *listController) scrollToSelected() {
	if c.selected < c.offset {
		c.offset = c.selected
	}
	if c.selected >= c.offset+c.visible {
		c.offset = c.selected - c.visible + 1
	}
}

func (c *listController) render(renderer *sdl.Renderer, window *internal.Window) {
	y := renderHeader(renderer, window, c.opts.Title, c.opts.Badge)
	y = renderTabs(renderer, window, c.opts.Tabs, c.opts.ActiveTab, y)
	bottom := window.GetHeight() - footerHeight()

	if len(c.opts.Items) == 0 {
		c.renderEmpty(renderer, window, y, bottom)
	} else {
		c.renderRows(renderer, window, y, bottom)
	}

	renderFooter(renderer, window, c.opts.FooterHelpItems)
}

func (c *listController) renderEmpty(renderer *sdl.Renderer, window *internal.Window, top, bottom int32) {
	theme := internal.GetTheme()
	centre := window.GetWidth() / 2
	icon := internal.Scaled(64)
	titleFont := internal.Fonts.MediumFont
	bodyFont := internal.Fonts.SmallFont
	maxWidth := window.GetWidth() * 3 / 4

	lines := internal.WrapText(c.opts.EmptyMessage, maxWidth, func(s string) int32 { return internal.TextWidth(bodyFont, s) })
	height := icon + internal.Scaled(16) + int32(titleFont.Height()) + internal.Scaled(8) +
		internal.MultilineHeight(len(lines), int32(bodyFont.Height()))

	y := top + (bottom-top-height)/2
	_ = internal.Icons().Draw(renderer, constants.IconProducts, centre-icon/2, y, icon, theme.HintColor)
	y += icon + internal.Scaled(16)

	internal.RenderAlignedText(renderer, titleFont, c.opts.EmptyTitle, centre, y, theme.TextColor, constants.TextAlignCenter)
	y += int32(titleFont.Height()) + internal.Scaled(8)

	internal.RenderMultilineText(renderer, c.opts.EmptyMessage, bodyFont, maxWidth, centre, y, theme.HintColor, constants.TextAlignCenter)
}

func (c *listController) renderRows(renderer *sdl.Renderer, window *internal.Window, top, bottom int32) {
	theme := internal.GetTheme()
	font := internal.Fonts.MediumFont
	m := margin()
	pad := internal.Scaled(8)
	thumb := internal.Scaled(48)
	rowHeight := thumb + 2*pad
	width := window.GetWidth() - 2*m

	c.visible = max(int((bottom-top)/rowHeight), 1)
	c.scrollToSelected()

	end := min(c.offset+c.visible, len(c.opts.Items))
	for i := c.offset; i < end; i++ {
		item := c.opts.Items[i]
		y := top + int32(i-c.offset)*rowHeight
		textColor := theme.TextColor
		detailColor := theme.AccentColor

		if i == c.selected {
			internal.DrawRoundedRect(renderer, &sdl.Rect{X: m, Y: y, W: width, H: rowHeight}, pad, theme.HighlightColor)
			textColor = theme.HighlightedTextColor
			detailColor = theme.HighlightedTextColor
		}

		x := m + pad
		if item.ImagePath != "" {
			drawThumbnail(renderer, item.ImagePath, &sdl.Rect{X: x, Y: y + pad, W: thumb, H: thumb})
			x += thumb + pad
		}

		textY := y + (rowHeight-int32(font.Height()))/2
		detailWidth := internal.TextWidth(font, item.Detail)
		if item.Detail != "" {
			internal.RenderText(renderer, font, item.Detail, m+width-pad-detailWidth, textY, detailColor, 0)
		}

		available := m + width - pad - detailWidth - 2*pad - x
		text := internal.TruncateText(item.Text, available, func(s string) int32 { return internal.TextWidth(font, s) })
		internal.RenderText(renderer, font, text, x, textY, textColor, 0)
	}
}

// drawThumbnail draws the image at path into rect, or a camera placeholder
// when the image cannot be loaded.
func drawThumbnail(renderer *sdl.Renderer, path string, rect *sdl.Rect) {
	tex, err := internal.Thumbnail(path)
	if err != nil {
		theme := internal.GetTheme()
		_ = internal.Icons().Draw(renderer, constants.IconCamera, rect.X, rect.Y, rect.H, theme.HintColor)
		return
	}
	_ = renderer.Copy(tex, nil, rect)
}
