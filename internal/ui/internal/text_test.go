package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// tenPerRune measures each rune as 10 pixels.
func tenPerRune(s string) int32 {
	return int32(len([]rune(s))) * 10
}

func TestWrapText(t *testing.T) {
	lines := WrapText("the quick brown fox", 100, tenPerRune)
	assert.Equal(t, []string{"the quick", "brown fox"}, lines)

	lines = WrapText("one\n\ntwo", 100, tenPerRune)
	assert.Equal(t, []string{"one", "", "two"}, lines)

	lines = WrapText("supercalifragilistic ok", 50, tenPerRune)
	assert.Equal(t, []string{"supercalifragilistic", "ok"}, lines)
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 100, tenPerRune))
	assert.Equal(t, "Desk...", TruncateText("Desk Lamp", 70, tenPerRune))
	assert.Equal(t, "", TruncateText("abc", 20, tenPerRune))
}

func TestMultilineHeight(t *testing.T) {
	assert.Equal(t, int32(0), MultilineHeight(0, 20))
	assert.Equal(t, int32(20), MultilineHeight(1, 20))
	assert.Equal(t, int32(68), MultilineHeight(3, 20))
}
