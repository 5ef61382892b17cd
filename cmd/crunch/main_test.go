package main

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "project.godot"), nil, 0o644))
	input := filepath.Join(root, "raw")
	require.NoError(t, os.MkdirAll(input, 0o755))
	sprite := imaging.New(8, 8, color.NRGBA{})
	sprite.SetNRGBA(3, 3, color.NRGBA{R: 255, A: 255})
	require.NoError(t, imaging.Save(sprite, filepath.Join(input, "dot.png")))

	out := filepath.Join(root, "gfx", "atlas.png")
	err := run([]string{"-i", input, "-o", out, "-w", "4", "-h", "4", "-p", "1", "-format", "godot3", "-sort", "max"})
	require.NoError(t, err)

	atlas, err := imaging.Open(out)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 4), atlas.Bounds())

	data, err := os.ReadFile(filepath.Join(root, "gfx", "dot.tres"))
	require.NoError(t, err)
	require.Contains(t, string(data), `path="res://gfx/atlas.png"`)
	require.Contains(t, string(data), "region = Rect2( 0, 0, 1, 1 )")
}

func TestRunRejectsBadFlags(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, run([]string{"-i", filepath.Join(dir, "missing")}))
	require.Error(t, run([]string{"-i", dir, "-format", "unity"}))
	require.Error(t, run([]string{"-i", dir, "-heuristic", "best"}))
	require.Error(t, run([]string{"-i", dir, "-o", filepath.Join(dir, "atlas")}))
}

func TestRunHelp(t *testing.T) {
	require.NoError(t, run([]string{"-help"}))
	require.NoError(t, run([]string{"--help"}))
}
