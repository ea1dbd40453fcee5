// Package imagefs loads textures from an asset directory on disk.
package imagefs

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Loader decodes image files under a root asset directory. Paths are
// host-relative; anything resolving outside the root is rejected.
type Loader struct {
	root string
}

// New creates a loader rooted at the given asset directory.
func New(root string) (*Loader, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("asset root is required")
	}
	return &Loader{root: filepath.Clean(root)}, nil
}

// Load opens and decodes the image at path.
func (l *Loader) Load(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("loader is not configured")
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("image path is required")
	}

	full := filepath.Join(l.root, filepath.FromSlash(path))
	rel, err := filepath.Rel(l.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("image path %s escapes asset root", path)
	}

	file, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}
