package crunch

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/jordi-star/crunch-gd/descriptor"
	"github.com/jordi-star/crunch-gd/projroot"
)

// Result describes a successful run.
type Result struct {
	OutputPath       string
	CanvasSize       image.Point
	Retries          int
	Placements       []Placement
	Skipped          []string // images without opaque pixels
	DescriptorErrors []error
}

// Run packs sources into one atlas at cfg.OutputPath and writes a descriptor
// next to it for every packed sprite.
//
// Images without opaque pixels are skipped with a warning. Any other trim,
// packing, encoding or filesystem failure aborts the run, leaving a previous
// atlas at OutputPath and its descriptors untouched. Descriptors are written
// only after the new atlas is in place; a descriptor that cannot be written,
// or whose file name is already taken by an earlier sprite, is logged and
// reported in Result.DescriptorErrors.
func Run(cfg *Config, sources []SourceImage) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := Logger()

	sprites, err := trimAll(sources, cfg.AlphaThreshold, cfg.Workers)
	if err != nil {
		return nil, err
	}

	res := &Result{OutputPath: cfg.OutputPath}
	session := NewSession(cfg.CanvasWidth, cfg.CanvasHeight, cfg.Padding,
		WithMaxRetries(cfg.MaxRetries), WithSortOrder(cfg.SortOrder))
	for i, sprite := range sprites {
		if sprite == nil {
			log.Warn("skipping image without opaque pixels", "image", sources[i].Name)
			res.Skipped = append(res.Skipped, sources[i].Name)
			continue
		}
		if err := session.AddSprite(sprite); err != nil {
			return nil, err
		}
	}

	placements, err := session.Pack(cfg.algorithm())
	if err != nil {
		return nil, err
	}
	res.Placements = placements
	res.CanvasSize = session.CanvasSize()
	res.Retries = session.Retries()

	dir := filepath.Dir(cfg.OutputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, ioError("create output directory", err)
	}
	resPath, err := projroot.Resolve(cfg.OutputPath, cfg.ProjectMarker)
	if err != nil {
		return nil, ioError("resolve project path", err)
	}
	emitter, err := descriptor.New(cfg.DescriptorFormat, cfg.OutputPath, resPath)
	if err != nil {
		return nil, err
	}

	// sprites sharing a file stem share a descriptor path; the first one keeps it
	owners := make(map[string]string, len(placements))
	var pending []Placement
	canvas, failed := Compose(res.CanvasSize, placements, func(p Placement) error {
		path := descriptor.PathFor(dir, p.Sprite.Name)
		if owner, ok := owners[path]; ok {
			return fmt.Errorf("%w: %s already describes %s", ErrDuplicateDescriptor, filepath.Base(path), owner)
		}
		owners[path] = p.Sprite.Name
		pending = append(pending, p)
		return nil
	})
	res.DescriptorErrors = failed

	if err := writeAtlas(cfg.OutputPath, canvas); err != nil {
		return nil, err
	}

	for _, p := range pending {
		if err := emitter.Emit(p.Sprite.Name, p.Rect); err != nil {
			log.Warn("failed to write descriptor", "sprite", p.Sprite.Name, "err", err)
			res.DescriptorErrors = append(res.DescriptorErrors, &SpriteError{Name: p.Sprite.Name, Err: err})
		}
	}

	log.Info("atlas written",
		"path", cfg.OutputPath,
		"sprites", len(placements),
		"skipped", len(res.Skipped),
		"width", res.CanvasSize.X,
		"height", res.CanvasSize.Y,
		"retries", res.Retries)
	return res, nil
}

// RunDir loads every image of inputDir and runs the pipeline on them.
func RunDir(cfg *Config, inputDir string) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	sources, err := LoadDir(inputDir, cfg.OutputPath)
	if err != nil {
		return nil, err
	}
	return Run(cfg, sources)
}

// trimAll trims sources in parallel. The result keeps the order of sources;
// an empty image leaves a nil entry.
func trimAll(sources []SourceImage, threshold uint8, workers int) ([]*TrimmedSprite, error) {
	sprites := make([]*TrimmedSprite, len(sources))

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, src := range sources {
		g.Go(func() error {
			sprite, err := TrimSprite(src, threshold)
			if errors.Is(err, ErrImageEmpty) {
				return nil
			}
			if err != nil {
				return err
			}
			Logger().Debug("trimmed sprite", "name", src.Name, "box", sprite.Trim)
			sprites[i] = sprite
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sprites, nil
}

// writeAtlas encodes img next to path and renames it into place.
func writeAtlas(path string, img image.Image) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return imageError("encode atlas", err)
	}
	// created like os.Create so the umask decides the final mode
	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s-%d.tmp", filepath.Base(path), os.Getpid()))
	os.Remove(tmp)
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return ioError("create atlas", err)
	}
	if err := imaging.Encode(f, img, format); err != nil {
		f.Close()
		os.Remove(tmp)
		return imageError("encode atlas", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return ioError("write atlas", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return ioError("write atlas", err)
	}
	return nil
}
