package crunch

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// IsImageFile reports whether path names a raster file the loader accepts.
// Hidden files are ignored.
func IsImageFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return imageExts[strings.ToLower(filepath.Ext(base))]
}

// SamePath reports whether a and b name the same location once made absolute.
func SamePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// ListImages returns the image files of dir in lexical order, leaving out
// outputPath so a previous atlas is never packed into the next one.
func ListImages(dir, outputPath string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ioError("read input directory", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsImageFile(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if outputPath != "" && SamePath(path, outputPath) {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// LoadImage decodes the image file at path.
func LoadImage(path string) (SourceImage, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return SourceImage{}, &SpriteError{Name: path, Err: imageError("decode", err)}
	}
	return SourceImage{Name: path, Image: img}, nil
}

// DecodeImage decodes an image from r and names it name.
func DecodeImage(name string, r io.Reader) (SourceImage, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return SourceImage{}, &SpriteError{Name: name, Err: imageError("decode", err)}
	}
	return SourceImage{Name: name, Image: img}, nil
}

// LoadDir decodes every image of dir except outputPath.
func LoadDir(dir, outputPath string) ([]SourceImage, error) {
	files, err := ListImages(dir, outputPath)
	if err != nil {
		return nil, err
	}
	images := make([]SourceImage, 0, len(files))
	for _, f := range files {
		img, err := LoadImage(f)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}
