package crunch

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func opaqueAt(w, h int, pts ...image.Point) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for _, p := range pts {
		img.SetNRGBA(p.X, p.Y, color.NRGBA{R: 255, A: 255})
	}
	return img
}

func TestTrimTransparent(t *testing.T) {
	for _, size := range []image.Point{{1, 1}, {3, 7}, {16, 16}} {
		_, err := Trim(image.NewNRGBA(image.Rectangle{Max: size}), 0)
		require.ErrorIs(t, err, ErrImageEmpty)
	}
}

func TestTrimSinglePixel(t *testing.T) {
	for _, p := range []image.Point{{0, 0}, {4, 0}, {0, 4}, {4, 4}, {2, 3}} {
		box, err := Trim(opaqueAt(5, 5, p), 0)
		require.NoError(t, err)
		require.Equal(t, image.Rect(p.X, p.Y, p.X+1, p.Y+1), box, "pixel %v", p)
	}
}

func TestTrimOneByOne(t *testing.T) {
	box, err := Trim(opaqueAt(1, 1, image.Pt(0, 0)), 0)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 1, 1), box)
}

func TestTrimBoundingBox(t *testing.T) {
	img := opaqueAt(10, 8, image.Pt(2, 6), image.Pt(7, 1), image.Pt(4, 4))
	box, err := Trim(img, 0)
	require.NoError(t, err)
	require.Equal(t, image.Rect(2, 1, 8, 7), box)

	full := opaqueAt(3, 2, image.Pt(0, 0), image.Pt(2, 1))
	box, err = Trim(full, 0)
	require.NoError(t, err)
	require.Equal(t, full.Bounds(), box)
}

func TestTrimThreshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(0, 0, color.NRGBA{A: 1})
	img.SetNRGBA(2, 2, color.NRGBA{A: 200})

	box, err := Trim(img, 0)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 3, 3), box)

	box, err = Trim(img, 10)
	require.NoError(t, err)
	require.Equal(t, image.Rect(2, 2, 3, 3), box)

	_, err = Trim(img, 200)
	require.ErrorIs(t, err, ErrImageEmpty)
}

func TestTrimOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 15, 25))
	img.SetRGBA(12, 23, color.RGBA{G: 255, A: 255})
	box, err := Trim(img, 0)
	require.NoError(t, err)
	require.Equal(t, image.Rect(12, 23, 13, 24), box)
}

func TestTrimGenericImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 3))
	box, err := Trim(img, 0)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), box)
}

func TestTrimSprite(t *testing.T) {
	img := opaqueAt(6, 6, image.Pt(1, 2), image.Pt(3, 4))
	img.SetNRGBA(3, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	sprite, err := TrimSprite(SourceImage{Name: "hero.png", Image: img}, 0)
	require.NoError(t, err)
	require.Equal(t, "hero.png", sprite.Name)
	require.Equal(t, image.Rect(1, 2, 4, 5), sprite.Trim)
	require.Equal(t, image.Pt(6, 6), sprite.SourceSize)
	require.Equal(t, image.Pt(3, 3), sprite.Size())
	require.Equal(t, image.Point{}, sprite.Image.Bounds().Min)
	require.Equal(t, color.NRGBA{R: 255, A: 255}, sprite.Image.NRGBAAt(0, 0))
	require.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 40}, sprite.Image.NRGBAAt(2, 2))

	_, err = TrimSprite(SourceImage{Name: "empty.png", Image: image.NewNRGBA(image.Rect(0, 0, 2, 2))}, 0)
	require.ErrorIs(t, err, ErrImageEmpty)
	var spriteErr *SpriteError
	require.ErrorAs(t, err, &spriteErr)
	require.Equal(t, "empty.png", spriteErr.Name)
}
