package internal

import (
	"container/list"

	"github.com/veandco/go-sdl2/sdl"
)

// DefaultThumbnailCacheSize matches the product limit so a full list stays cached.
const DefaultThumbnailCacheSize = 5

// LRU is a least-recently-used cache that releases evicted values.
type LRU[V any] struct {
	maxSize int
	order   *list.List
	items   map[string]*list.Element
	release func(V)
}

type lruEntry[V any] struct {
	key   string
	value V
}

func NewLRU[V any](maxSize int, release func(V)) *LRU[V] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &LRU[V]{
		maxSize: maxSize,
		order:   list.New(),
		items:   make(map[string]*list.Element, maxSize),
		release: release,
	}
}

func (c *LRU[V]) Get(key string) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToBack(el)
	return el.Value.(*lruEntry[V]).value, true
}

func (c *LRU[V]) Set(key string, value V) {
	if el, ok := c.items[key]; ok {
		entry := el.Value.(*lruEntry[V])
		if c.release != nil {
			c.release(entry.value)
		}
		entry.value = value
		c.order.MoveToBack(el)
		return
	}

	if c.order.Len() >= c.maxSize {
		c.evict(c.order.Front())
	}
	c.items[key] = c.order.PushBack(&lruEntry[V]{key: key, value: value})
}

func (c *LRU[V]) Len() int {
	return c.order.Len()
}

func (c *LRU[V]) evict(el *list.Element) {
	entry := c.order.Remove(el).(*lruEntry[V])
	delete(c.items, entry.key)
	if c.release != nil {
		c.release(entry.value)
	}
}

// Purge releases every cached value.
func (c *LRU[V]) Purge() {
	for c.order.Len() > 0 {
		c.evict(c.order.Front())
	}
}

// TextureCache holds photo thumbnails keyed by file path.
type TextureCache = LRU[*sdl.Texture]

func NewTextureCache() *TextureCache {
	return NewLRU(DefaultThumbnailCacheSize, func(t *sdl.Texture) {
		if t != nil {
			t.Destroy()
		}
	})
}
