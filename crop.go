package crunch

import (
	"image"

	"github.com/disintegration/imaging"
)

// SourceImage is a decoded input image and the name it was loaded from.
type SourceImage struct {
	Name  string
	Image image.Image
}

// TrimmedSprite is the opaque part of a SourceImage.
// Image always has its origin at (0, 0).
type TrimmedSprite struct {
	Name       string
	Image      *image.NRGBA
	Trim       image.Rectangle // box within the source image bounds
	SourceSize image.Point
}

// Size returns the trimmed width and height.
func (s *TrimmedSprite) Size() image.Point {
	return s.Image.Bounds().Size()
}

func alphaAt(img image.Image) func(x, y int) uint8 {
	switch m := img.(type) {
	case *image.NRGBA:
		return func(x, y int) uint8 { return m.Pix[m.PixOffset(x, y)+3] }
	case *image.RGBA:
		return func(x, y int) uint8 { return m.Pix[m.PixOffset(x, y)+3] }
	case *image.Alpha:
		return func(x, y int) uint8 { return m.Pix[m.PixOffset(x, y)] }
	}
	return func(x, y int) uint8 {
		_, _, _, a := img.At(x, y).RGBA()
		return uint8(a >> 8)
	}
}

// Trim returns the smallest rectangle holding every pixel whose alpha is
// above threshold. The rectangle is in the coordinate space of img.
// It fails with ErrImageEmpty when no such pixel exists.
func Trim(img image.Image, threshold uint8) (image.Rectangle, error) {
	b := img.Bounds()
	alpha := alphaAt(img)

	rowOpaque := func(y, x0, x1 int) bool {
		for x := x0; x < x1; x++ {
			if alpha(x, y) > threshold {
				return true
			}
		}
		return false
	}
	colOpaque := func(x, y0, y1 int) bool {
		for y := y0; y < y1; y++ {
			if alpha(x, y) > threshold {
				return true
			}
		}
		return false
	}

	top := b.Min.Y
	for top < b.Max.Y && !rowOpaque(top, b.Min.X, b.Max.X) {
		top++
	}
	if top == b.Max.Y {
		return image.Rectangle{}, ErrImageEmpty
	}

	// a row with an opaque pixel exists, so the remaining scans stop inside the bounds
	bottom := b.Max.Y
	for !rowOpaque(bottom-1, b.Min.X, b.Max.X) {
		bottom--
	}

	left := b.Min.X
	for !colOpaque(left, top, bottom) {
		left++
	}

	right := b.Max.X
	for !colOpaque(right-1, top, bottom) {
		right--
	}

	return image.Rect(left, top, right, bottom), nil
}

// TrimSprite crops src down to its opaque bounding box.
func TrimSprite(src SourceImage, threshold uint8) (*TrimmedSprite, error) {
	box, err := Trim(src.Image, threshold)
	if err != nil {
		return nil, &SpriteError{Name: src.Name, Err: err}
	}
	return &TrimmedSprite{
		Name:       src.Name,
		Image:      imaging.Crop(src.Image, box),
		Trim:       box,
		SourceSize: src.Image.Bounds().Size(),
	}, nil
}
