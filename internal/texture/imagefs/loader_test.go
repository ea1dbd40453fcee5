package imagefs

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, dir, name string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
}

func TestLoadDecodesPNG(t *testing.T) {
	root := t.TempDir()
	writeTestPNG(t, root, filepath.Join("img", "a.png"))

	loader, err := New(root)
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}

	img, err := loader.Load(context.Background(), "img/a.png")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 3 {
		t.Fatalf("expected 2x3 image, got %v", bounds)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	loader, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}
	if _, err := loader.Load(context.Background(), "img/missing.png"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadRejectsPathEscape(t *testing.T) {
	loader, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}
	if _, err := loader.Load(context.Background(), "../outside.png"); err == nil {
		t.Fatalf("expected error for path escaping asset root")
	}
}

func TestLoadRejectsEmptyPath(t *testing.T) {
	loader, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}
	if _, err := loader.Load(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestNewRequiresRoot(t *testing.T) {
	if _, err := New("  "); err == nil {
		t.Fatalf("expected error for empty root")
	}
}
