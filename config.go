package crunch

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/disintegration/imaging"
	"github.com/jordi-star/crunch-gd/descriptor"
)

// Config is the packer configuration
type Config struct {
	CanvasWidth      int
	CanvasHeight     int
	Padding          int
	OutputPath       string
	DescriptorFormat descriptor.Format
	Heuristic        Heuristic
	Algorithm        AlgorithmKind
	SortOrder        SortOrder
	MaxRetries       int
	AlphaThreshold   uint8
	Workers          int
	ProjectMarker    string
}

// DefaultConfig returns the default config for the packer
func DefaultConfig() *Config {
	return &Config{
		CanvasWidth:      512,
		CanvasHeight:     512,
		Padding:          0,
		OutputPath:       "atlas.png",
		DescriptorFormat: descriptor.Godot4,
		Heuristic:        HBssf,
		Algorithm:        AlgoMaxRects,
		SortOrder:        OrderByMax,
		MaxRetries:       3,
		AlphaThreshold:   0,
		Workers:          runtime.GOMAXPROCS(0),
		ProjectMarker:    "project.godot",
	}
}

// Validate checks that the configuration describes a packable run.
func (c *Config) Validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", c.CanvasWidth, c.CanvasHeight)
	}
	if c.Padding < 0 {
		return fmt.Errorf("invalid padding %d", c.Padding)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("invalid retry count %d", c.MaxRetries)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path is empty")
	}
	if filepath.Ext(c.OutputPath) == "" {
		return fmt.Errorf("output path %q must be a file path, e.g. \"project/atlas.png\"", c.OutputPath)
	}
	if _, err := imaging.FormatFromFilename(c.OutputPath); err != nil {
		return fmt.Errorf("output path %q: %w", c.OutputPath, err)
	}
	if c.ProjectMarker == "" {
		return fmt.Errorf("project marker is empty")
	}
	if !descriptor.Supported(c.DescriptorFormat) {
		return fmt.Errorf("unknown descriptor format %q", c.DescriptorFormat)
	}
	return nil
}

func (c *Config) algorithm() Algorithm {
	switch c.Algorithm {
	case AlgoShelf:
		return &Shelf{}
	default:
		return &MaxRects{Heur: c.Heuristic}
	}
}
