package internal

import "github.com/veandco/go-sdl2/sdl"

type KeyKind int

const (
	KeyChar KeyKind = iota
	KeyShift
	KeySpace
	KeyBackspace
	KeyEnter
)

// Key is one cell of an on-screen keyboard. Span is its width in key units.
type Key struct {
	Lower string
	Upper string
	Kind  KeyKind
	Span  int
}

func (k Key) Label(shift bool) string {
	switch k.Kind {
	case KeyShift:
		return "shift"
	case KeySpace:
		return "space"
	case KeyBackspace:
		return "del"
	case KeyEnter:
		return "enter"
	}
	if shift && k.Upper != "" {
		return k.Upper
	}
	return k.Lower
}

func (k Key) span() int {
	if k.Span < 1 {
		return 1
	}
	return k.Span
}

type KeyboardLayout struct {
	Rows [][]Key
}

func charRow(lower, upper string) []Key {
	l, u := []rune(lower), []rune(upper)
	row := make([]Key, len(l))
	for i := range l {
		row[i] = Key{Lower: string(l[i]), Upper: string(u[i]), Span: 1}
	}
	return row
}

// GeneralLayout is a QWERTY board with a number row.
func GeneralLayout() KeyboardLayout {
	return KeyboardLayout{Rows: [][]Key{
		charRow("1234567890", "!@#$%&*()-"),
		charRow("qwertyuiop", "QWERTYUIOP"),
		charRow("asdfghjkl'", "ASDFGHJKL\""),
		append(charRow("zxcvbnm,.", "ZXCVBNM?:"), Key{Kind: KeyBackspace, Span: 2}),
		{
			{Kind: KeyShift, Span: 2},
			{Lower: " ", Upper: " ", Kind: KeySpace, Span: 6},
			{Kind: KeyEnter, Span: 2},
		},
	}}
}

// NumericLayout is a keypad with a decimal point.
func NumericLayout() KeyboardLayout {
	return KeyboardLayout{Rows: [][]Key{
		charRow("789", "789"),
		charRow("456", "456"),
		charRow("123", "123"),
		append(charRow(".0", ".0"), Key{Kind: KeyBackspace, Span: 1}),
		{{Kind: KeyEnter, Span: 3}},
	}}
}

func (l KeyboardLayout) rowUnits(row int) int {
	n := 0
	for _, k := range l.Rows[row] {
		n += k.span()
	}
	return n
}

func (l KeyboardLayout) Key(row, col int) Key {
	return l.Rows[row][col]
}

// Move returns the key reached from row, col in direction dir. Horizontal
// moves wrap within a row; vertical moves wrap between rows and land on the
// key under the current key's centre.
func (l KeyboardLayout) Move(row, col int, dir Direction) (int, int) {
	switch dir {
	case DirectionLeft:
		n := len(l.Rows[row])
		return row, (col - 1 + n) % n
	case DirectionRight:
		return row, (col + 1) % len(l.Rows[row])
	case DirectionUp, DirectionDown:
	default:
		return row, col
	}

	start := 0
	for i := 0; i < col; i++ {
		start += l.Rows[row][i].span()
	}
	centre := (float64(start) + float64(l.Rows[row][col].span())/2) / float64(l.rowUnits(row))

	next := row + 1
	if dir == DirectionUp {
		next = row - 1
	}
	next = (next + len(l.Rows)) % len(l.Rows)

	total := float64(l.rowUnits(next))
	pos := 0
	for i, k := range l.Rows[next] {
		end := pos + k.span()
		if centre < float64(end)/total {
			return next, i
		}
		pos = end
	}
	return next, len(l.Rows[next]) - 1
}

// Rects lays every key out inside area, one equal-height band per row, each
// row centred horizontally.
func (l KeyboardLayout) Rects(area sdl.Rect, spacing int32) [][]sdl.Rect {
	widest := 0
	for r := range l.Rows {
		if u := l.rowUnits(r); u > widest {
			widest = u
		}
	}
	if widest == 0 {
		return nil
	}

	unit := (area.W - spacing*int32(widest-1)) / int32(widest)
	height := (area.H - spacing*int32(len(l.Rows)-1)) / int32(len(l.Rows))

	out := make([][]sdl.Rect, len(l.Rows))
	for r, row := range l.Rows {
		units := int32(l.rowUnits(r))
		width := units*unit + (units-1)*spacing
		x := area.X + (area.W-width)/2
		y := area.Y + int32(r)*(height+spacing)

		out[r] = make([]sdl.Rect, len(row))
		for c, k := range row {
			w := int32(k.span())*unit + int32(k.span()-1)*spacing
			out[r][c] = sdl.Rect{X: x, Y: y, W: w, H: height}
			x += w + spacing
		}
	}
	return out
}
