package internal

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/disintegration/imaging"
)

func TestCenterCropRectWideSource(t *testing.T) {
	rect := CenterCropRect(2000, 1000, 1080.0/1920.0)
	want := image.Rect(719, 0, 1281, 1000)
	if rect != want {
		t.Fatalf("expected %v, got %v", want, rect)
	}
}

func TestCenterCropRectTallSource(t *testing.T) {
	rect := CenterCropRect(1000, 3000, 1080.0/1920.0)
	// 1000 / 0.5625 = 1777.78 -> 1778
	want := image.Rect(0, 611, 1000, 2389)
	if rect != want {
		t.Fatalf("expected %v, got %v", want, rect)
	}
}

func TestCenterCropRectSameRatioKeepsFullImage(t *testing.T) {
	for _, size := range [][2]int{{1080, 1920}, {540, 960}, {512, 512}} {
		ratio := float64(size[0]) / float64(size[1])
		rect := CenterCropRect(size[0], size[1], ratio)
		if rect != image.Rect(0, 0, size[0], size[1]) {
			t.Fatalf("expected full %dx%d image, got %v", size[0], size[1], rect)
		}
	}
}

func TestCenterCropRectStaysInBoundsAndKeepsRatio(t *testing.T) {
	ratios := []float64{1080.0 / 1920.0, 1, 1024.0 / 500.0, 3, 0.1}
	for w := 1; w <= 301; w += 25 {
		for h := 1; h <= 301; h += 30 {
			for _, r := range ratios {
				rect := CenterCropRect(w, h, r)
				if rect.Empty() {
					t.Fatalf("%dx%d r=%v: empty crop", w, h, r)
				}
				if !rect.In(image.Rect(0, 0, w, h)) {
					t.Fatalf("%dx%d r=%v: %v outside source", w, h, r, rect)
				}
				if rect.Dx() != w && rect.Dy() != h {
					t.Fatalf("%dx%d r=%v: %v keeps neither side", w, h, r, rect)
				}
				// one side is exact, the other is off by at most one rounding unit
				if rect.Dy() == h && rect.Dx() > 1 && rect.Dx() < w {
					if math.Abs(float64(rect.Dx())-float64(h)*r) > 0.5 {
						t.Fatalf("%dx%d r=%v: width %d too far from %v", w, h, r, rect.Dx(), float64(h)*r)
					}
				}
				if rect.Dx() == w && rect.Dy() > 1 && rect.Dy() < h {
					if math.Abs(float64(rect.Dy())-float64(w)/r) > 0.5 {
						t.Fatalf("%dx%d r=%v: height %d too far from %v", w, h, r, rect.Dy(), float64(w)/r)
					}
				}
			}
		}
	}
}

func TestCenterCropUsesSourceBoundsOffset(t *testing.T) {
	src := imaging.New(400, 100, color.NRGBA{A: 255})
	sub := src.SubImage(image.Rect(100, 0, 400, 100))

	out := CenterCrop(sub, 1)
	if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 100 {
		t.Fatalf("expected 100x100 crop, got %v", out.Bounds())
	}
}
