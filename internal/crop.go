package internal

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// CenterCropRect returns the largest rectangle of the given width/height ratio centered
// in a width x height source. One side is always kept whole; the other is rounded half to
// even, so the result may be a pixel off the exact ratio.
func CenterCropRect(width, height int, ratio float64) image.Rectangle {
	if float64(width)/float64(height) > ratio {
		newWidth := clampSide(math.RoundToEven(float64(height)*ratio), width)
		left := (width - newWidth) / 2
		return image.Rect(left, 0, left+newWidth, height)
	}

	newHeight := clampSide(math.RoundToEven(float64(width)/ratio), height)
	top := (height - newHeight) / 2
	return image.Rect(0, top, width, top+newHeight)
}

func clampSide(v float64, limit int) int {
	side := int(v)
	if side < 1 {
		return 1
	}
	if side > limit {
		return limit
	}
	return side
}

// CenterCrop crops img to ratio around its center.
func CenterCrop(img image.Image, ratio float64) *image.NRGBA {
	b := img.Bounds()
	rect := CenterCropRect(b.Dx(), b.Dy(), ratio).Add(b.Min)
	return imaging.Crop(img, rect)
}
