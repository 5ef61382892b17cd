// Command crunch packs the sprites of a directory into one atlas image and
// writes a Godot AtlasTexture resource for every sprite.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	crunch "github.com/jordi-star/crunch-gd"
	"github.com/jordi-star/crunch-gd/descriptor"
	"github.com/jordi-star/crunch-gd/internal/watch"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := crunch.DefaultConfig()

	fs := flag.NewFlagSet("crunch", flag.ContinueOnError)
	var (
		input     string
		format    string
		heuristic string
		algorithm string
		sortOrder string
		watchMode bool
		verbose   bool
	)
	fs.StringVar(&input, "i", "./", "directory holding the sprites to pack")
	fs.StringVar(&input, "input", "./", "directory holding the sprites to pack")
	fs.StringVar(&cfg.OutputPath, "o", cfg.OutputPath, "atlas file path; descriptors point to it relative to the project root")
	fs.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "atlas file path; descriptors point to it relative to the project root")
	fs.IntVar(&cfg.CanvasWidth, "w", cfg.CanvasWidth, "initial atlas width")
	fs.IntVar(&cfg.CanvasWidth, "width", cfg.CanvasWidth, "initial atlas width")
	fs.IntVar(&cfg.CanvasHeight, "h", cfg.CanvasHeight, "initial atlas height")
	fs.IntVar(&cfg.CanvasHeight, "height", cfg.CanvasHeight, "initial atlas height")
	fs.IntVar(&cfg.Padding, "p", cfg.Padding, "empty space to put between sprites")
	fs.IntVar(&cfg.Padding, "padding", cfg.Padding, "empty space to put between sprites")
	fs.StringVar(&format, "format", string(cfg.DescriptorFormat), "descriptor dialect: "+joinFormats())
	fs.StringVar(&heuristic, "heuristic", cfg.Heuristic.String(), "maxrects heuristic: bssf, blsf, baf or bl")
	fs.StringVar(&algorithm, "algorithm", "maxrects", "placement algorithm: maxrects or shelf")
	fs.StringVar(&sortOrder, "sort", "max", "item order: none, width, height, area or max")
	fs.StringVar(&cfg.ProjectMarker, "marker", cfg.ProjectMarker, "file marking the project root")
	fs.BoolVar(&watchMode, "watch", false, "repack whenever the input directory changes")
	fs.BoolVar(&verbose, "v", false, "log every trimmed and placed sprite")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	crunch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var err error
	if cfg.DescriptorFormat, err = descriptor.ParseFormat(format); err != nil {
		return err
	}
	if cfg.Heuristic, err = crunch.ParseHeuristic(heuristic); err != nil {
		return err
	}
	if cfg.Algorithm, err = crunch.ParseAlgorithm(algorithm); err != nil {
		return err
	}
	if cfg.SortOrder, err = crunch.ParseSortOrder(sortOrder); err != nil {
		return err
	}
	if info, err := os.Stat(input); err != nil || !info.IsDir() {
		return fmt.Errorf("invalid input folder %q, it must be a directory, e.g. \"sprites_to_pack/\"", input)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	pack := func() error {
		res, err := crunch.RunDir(cfg, input)
		if err != nil {
			return err
		}
		fmt.Printf("Sprites successfully packed. Saved atlas at: %s\n", filepath.ToSlash(res.OutputPath))
		return nil
	}

	if !watchMode {
		return pack()
	}

	if err := pack(); err != nil {
		crunch.Logger().Error("packing failed", "err", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return watch.New(input, cfg.OutputPath, pack).Watch(ctx)
}

func joinFormats() string {
	var names []string
	for _, f := range descriptor.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
