package internal

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestSavePNGReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	if err := savePNG(img, path); err != nil {
		t.Fatalf("savePNG failed: %v", err)
	}

	b := openTestImage(t, path).Bounds()
	if b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("expected 3x2 png, got %v", b)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the saved file, got %d entries", len(entries))
	}
}

func TestSavePNGMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "icon.png")
	if err := savePNG(image.NewNRGBA(image.Rect(0, 0, 1, 1)), path); err == nil {
		t.Fatalf("expected error for a missing directory")
	}
}

func TestOpenImageCorruptData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := openImage(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFlattenDropsAlphaKeepingColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 10})

	out := flatten(img)
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Fatalf("expected color kept with opaque alpha, got %v", got)
	}
	if img.NRGBAAt(0, 0).A != 10 {
		t.Fatalf("expected source to stay untouched")
	}
}
