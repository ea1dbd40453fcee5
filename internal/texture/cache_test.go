package texture

import (
	"context"
	"errors"
	"testing"

	"github.com/louisbranch/masquerade/internal/testkit/hostfakes"
)

func TestTextureMemoizesLoads(t *testing.T) {
	loader := hostfakes.NewLoader()
	loader.Images["img/a.png"] = hostfakes.Image()
	cache := NewCache(loader)
	ctx := context.Background()

	first, err := cache.Texture(ctx, "img/a.png")
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := cache.Texture(ctx, "img/a.png")
	if err != nil {
		t.Fatalf("second load: %v", err)
	}

	if loader.Loads != 1 {
		t.Fatalf("expected exactly one underlying load, got %d", loader.Loads)
	}
	if first == nil || first != second {
		t.Fatalf("expected both calls to return the memoized handle")
	}
	if cache.Size() != 1 {
		t.Fatalf("expected one cached entry, got %d", cache.Size())
	}
}

func TestTextureEmptyPathSkipsIO(t *testing.T) {
	loader := hostfakes.NewLoader()
	cache := NewCache(loader)
	ctx := context.Background()

	for _, path := range []string{"", "   "} {
		img, err := cache.Texture(ctx, path)
		if err != nil {
			t.Fatalf("empty path %q: %v", path, err)
		}
		if img != nil {
			t.Fatalf("expected nil texture for empty path %q", path)
		}
	}
	if loader.Loads != 0 {
		t.Fatalf("expected zero loads for empty paths, got %d", loader.Loads)
	}
}

func TestTextureFailureIsNotCached(t *testing.T) {
	loader := hostfakes.NewLoader()
	loader.Err = errors.New("decode failed")
	cache := NewCache(loader)
	ctx := context.Background()

	if _, err := cache.Texture(ctx, "img/a.png"); err == nil {
		t.Fatalf("expected load failure to propagate")
	}
	if cache.Size() != 0 {
		t.Fatalf("expected no poisoned entry, got %d entries", cache.Size())
	}

	// The collaborator recovers; the next call must retry the load.
	loader.Err = nil
	loader.Images["img/a.png"] = hostfakes.Image()
	img, err := cache.Texture(ctx, "img/a.png")
	if err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if img == nil {
		t.Fatalf("expected texture after retry")
	}
	if loader.Loads != 2 {
		t.Fatalf("expected retry to issue a second load, got %d", loader.Loads)
	}
}
