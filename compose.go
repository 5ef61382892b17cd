package crunch

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Compose builds a fully transparent canvas of the given size and copies
// every placed sprite into it unchanged. When emit is not nil it is called
// once per placement; its failures are logged and returned, they never stop
// the composition.
func Compose(size image.Point, placements []Placement, emit func(Placement) error) (*image.NRGBA, []error) {
	canvas := imaging.New(size.X, size.Y, color.NRGBA{})

	var failed []error
	for _, p := range placements {
		if emit != nil {
			if err := emit(p); err != nil {
				Logger().Warn("failed to write descriptor", "sprite", spriteName(p.Sprite), "err", err)
				failed = append(failed, &SpriteError{Name: spriteName(p.Sprite), Err: err})
			}
		}
		if p.Sprite != nil {
			blit(canvas, p.Sprite.Image, p.Rect.Min)
		}
	}
	return canvas, failed
}

// blit copies src row by row to dst at pos, clipped to dst.
func blit(dst, src *image.NRGBA, pos image.Point) {
	sb := src.Bounds()
	r := image.Rectangle{Min: pos, Max: pos.Add(sb.Size())}.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	rowSize := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := src.PixOffset(sb.Min.X+r.Min.X-pos.X, sb.Min.Y+y-pos.Y)
		di := dst.PixOffset(r.Min.X, y)
		copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
	}
}
