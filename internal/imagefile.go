package internal

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

func openImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s error: %w", path, err)
	}
	return img, nil
}

// savePNG writes through a scratch file in the destination directory and renames it into
// place, so the destination is either the previous file or the complete new one.
func savePNG(img image.Image, path string) error {
	scratch := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.png", uuid.New()))
	file, err := os.Create(scratch)
	if err != nil {
		return fmt.Errorf("failed to create file %q, %w", scratch, err)
	}
	if err := imaging.Encode(file, img, imaging.PNG); err != nil {
		file.Close()
		os.Remove(scratch)
		return fmt.Errorf("encode png %s error: %w", path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(scratch)
		return fmt.Errorf("close file %q error: %w", scratch, err)
	}
	if err := os.Rename(scratch, path); err != nil {
		os.Remove(scratch)
		return fmt.Errorf("save png %s error: %w", path, err)
	}
	return nil
}

// flatten drops the alpha channel, keeping color values as stored, which is what the
// encoder needs to write a PNG without alpha.
func flatten(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}

// alphaNRGBA reports itself as non-opaque so the PNG encoder always writes an alpha
// channel (colour type 6), even when every pixel happens to be opaque.
type alphaNRGBA struct {
	*image.NRGBA
}

func (alphaNRGBA) Opaque() bool { return false }

func withAlpha(img *image.NRGBA) image.Image {
	return alphaNRGBA{img}
}
