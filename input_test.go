package crunch

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func TestIsImageFile(t *testing.T) {
	for path, want := range map[string]bool{
		"hero.png":          true,
		"dir/hero.PNG":      true,
		"a.jpeg":            true,
		"a.webp":            true,
		"a.tiff":            true,
		"hero.tres":         false,
		"notes.txt":         false,
		".atlas.png-12.tmp": false,
		".hidden.png":       false,
		"noext":             false,
	} {
		require.Equal(t, want, IsImageFile(path), path)
	}
}

func TestSamePath(t *testing.T) {
	require.True(t, SamePath("out/atlas.png", "./out/../out/atlas.png"))
	require.False(t, SamePath("out/atlas.png", "out/other.png"))
}

func TestDecodeImage(t *testing.T) {
	var buf bytes.Buffer
	src := framed(3, 2, image.Rect(1, 0, 2, 1), color.NRGBA{R: 9, A: 255})
	require.NoError(t, imaging.Encode(&buf, src, imaging.PNG))

	img, err := DecodeImage("mem.png", &buf)
	require.NoError(t, err)
	require.Equal(t, "mem.png", img.Name)
	require.Equal(t, image.Rect(0, 0, 3, 2), img.Image.Bounds())

	_, err = DecodeImage("junk.png", bytes.NewReader([]byte("not an image")))
	require.ErrorIs(t, err, ErrImage)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, imaging.Save(framed(2, 2, image.Rect(0, 0, 1, 1), color.NRGBA{A: 255}), filepath.Join(dir, "z.png")))
	require.NoError(t, imaging.Save(framed(2, 2, image.Rect(0, 0, 1, 1), color.NRGBA{A: 255}), filepath.Join(dir, "m.png")))
	require.NoError(t, imaging.Save(framed(2, 2, image.Rect(0, 0, 1, 1), color.NRGBA{A: 255}), filepath.Join(dir, "atlas.png")))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	images, err := LoadDir(dir, filepath.Join(dir, "atlas.png"))
	require.NoError(t, err)
	require.Len(t, images, 2)
	require.Equal(t, filepath.Join(dir, "m.png"), images[0].Name)
	require.Equal(t, filepath.Join(dir, "z.png"), images[1].Name)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("nope"), 0o644))
	_, err = LoadDir(dir, "")
	require.ErrorIs(t, err, ErrImage)

	_, err = LoadDir(filepath.Join(dir, "missing"), "")
	require.ErrorIs(t, err, ErrIO)
}
