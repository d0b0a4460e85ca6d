package internal

// TextBuffer is an editable line of text with a cursor measured in runes.
type TextBuffer struct {
	runes     []rune
	cursor    int
	maxLength int
}

// NewTextBuffer starts with the cursor after initial. maxLength <= 0 means no cap.
func NewTextBuffer(initial string, maxLength int) *TextBuffer {
	r := []rune(initial)
	if maxLength > 0 && len(r) > maxLength {
		r = r[:maxLength]
	}
	return &TextBuffer{runes: r, cursor: len(r), maxLength: maxLength}
}

// Insert adds s at the cursor. It reports false when the cap is reached.
func (b *TextBuffer) Insert(s string) bool {
	add := []rune(s)
	if b.maxLength > 0 && len(b.runes)+len(add) > b.maxLength {
		return false
	}
	b.runes = append(b.runes[:b.cursor], append(add, b.runes[b.cursor:]...)...)
	b.cursor += len(add)
	return true
}

func (b *TextBuffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.runes = append(b.runes[:b.cursor-1], b.runes[b.cursor:]...)
	b.cursor--
}

func (b *TextBuffer) MoveCursor(delta int) {
	b.cursor = min(max(b.cursor+delta, 0), len(b.runes))
}

func (b *TextBuffer) Cursor() int {
	return b.cursor
}

func (b *TextBuffer) String() string {
	return string(b.runes)
}

// BeforeCursor is the text left of the cursor, for caret placement.
func (b *TextBuffer) BeforeCursor() string {
	return string(b.runes[:b.cursor])
}
