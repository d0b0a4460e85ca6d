package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextBuffer_InsertAndBackspace(t *testing.T) {
	b := NewTextBuffer("caf", 0)
	b.Insert("é")
	assert.Equal(t, "café", b.String())
	assert.Equal(t, 4, b.Cursor())

	b.MoveCursor(-2)
	b.Backspace()
	assert.Equal(t, "cfé", b.String())
	assert.Equal(t, "c", b.BeforeCursor())

	b.MoveCursor(-10)
	b.Backspace()
	assert.Equal(t, "cfé", b.String())

	b.MoveCursor(10)
	assert.Equal(t, 3, b.Cursor())
}

func TestTextBuffer_MaxLength(t *testing.T) {
	b := NewTextBuffer("abcdef", 4)
	assert.Equal(t, "abcd", b.String())
	assert.False(t, b.Insert("e"))

	b.Backspace()
	assert.True(t, b.Insert("x"))
	assert.Equal(t, "abcx", b.String())
}
