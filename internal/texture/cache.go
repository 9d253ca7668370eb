// Package texture loads the images wrapped around textured shapes.
// A texture that cannot be found or decoded resolves to nil, which the
// shape routines treat as "draw nothing".
package texture

import (
	"image"
	"log/slog"
	"sync"
)

// Resolver resolves a texture name to a decoded image, or nil.
type Resolver interface {
	Resolve(texName string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache. Failed loads are cached too,
// so each missing texture is reported once.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA
	index *Index
	log   *slog.Logger
}

// NewCache creates a texture cache backed by the given index.
// A nil logger uses slog.Default().
func NewCache(index *Index, log *slog.Logger) *Cache {
	if log == nil {
		log = slog.Default()
	}
	if index == nil {
		index = &Index{entries: map[string]string{}}
	}
	return &Cache{
		items: make(map[string]*image.NRGBA),
		index: index,
		log:   log,
	}
}

// Resolve loads and caches a texture by name. Returns nil if not found.
func (c *Cache) Resolve(texName string) *image.NRGBA {
	c.mu.RLock()
	if img, exists := c.items[texName]; exists {
		c.mu.RUnlock()
		return img
	}
	c.mu.RUnlock()

	img := c.load(texName)

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, exists := c.items[texName]; exists {
		return prev
	}
	c.items[texName] = img
	return img
}

func (c *Cache) load(texName string) *image.NRGBA {
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		c.log.Warn("texture not found", "name", texName)
		return nil
	}
	img, err := LoadTexture(path)
	if err != nil {
		c.log.Warn("texture unavailable", "name", texName, "path", path, "err", err)
		return nil
	}
	c.log.Debug("texture loaded", "name", texName, "path", path,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img
}

// Preload resolves every name up front and returns how many loaded.
func (c *Cache) Preload(names []string) int {
	n := 0
	for _, name := range names {
		if c.Resolve(name) != nil {
			n++
		}
	}
	return n
}
