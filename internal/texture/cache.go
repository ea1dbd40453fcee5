// Package texture memoizes texture loads keyed by image path.
//
// A path is assumed to resolve to the same bytes for the whole session, so
// entries are never evicted or invalidated. The cache exists to avoid
// redundant decode work, not as a correctness requirement.
package texture

import (
	"context"
	"fmt"
	"image"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Loader resolves an image path to a decoded texture.
type Loader interface {
	Load(ctx context.Context, path string) (image.Image, error)
}

// Cache memoizes Loader results keyed by path. Concurrent misses for the
// same path collapse into a single underlying load. A failed load is never
// cached, so a later call retries.
type Cache struct {
	loader Loader

	mu      sync.RWMutex
	entries map[string]image.Image
	group   singleflight.Group
}

// NewCache creates a texture cache over the given loader.
func NewCache(loader Loader) *Cache {
	return &Cache{
		loader:  loader,
		entries: make(map[string]image.Image),
	}
}

// Texture returns the texture for path, loading and memoizing it on first
// use. An empty path returns nil without any I/O.
func (c *Cache) Texture(ctx context.Context, path string) (image.Image, error) {
	if c == nil || c.loader == nil {
		return nil, fmt.Errorf("texture cache is not configured")
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}

	c.mu.RLock()
	img, ok := c.entries[path]
	c.mu.RUnlock()
	if ok {
		return img, nil
	}

	loaded, err, _ := c.group.Do(path, func() (any, error) {
		img, err := c.loader.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[path] = img
		c.mu.Unlock()
		return img, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", path, err)
	}
	return loaded.(image.Image), nil
}

// Size returns the number of memoized entries.
func (c *Cache) Size() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
