package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	var released []int
	c := NewLRU(2, func(v int) { released = append(released, v) })

	c.Set("a", 1)
	c.Set("b", 2)
	_, _ = c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, []int{2}, released)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_ReplaceReleasesOldValue(t *testing.T) {
	var released []int
	c := NewLRU(2, func(v int) { released = append(released, v) })

	c.Set("a", 1)
	c.Set("a", 10)

	v, _ := c.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, []int{1}, released)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_Purge(t *testing.T) {
	var released []int
	c := NewLRU(0, func(v int) { released = append(released, v) })

	c.Set("a", 1)
	c.Set("b", 2)
	assert.Equal(t, 1, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, []int{1, 2}, released)
}
