// Package descriptor writes the per-sprite resource files that point into
// a packed atlas.
package descriptor

import (
	"fmt"
	"image"
	"sort"
	"sync"
)

// Format names a descriptor dialect.
type Format string

const (
	Godot4 Format = "godot4"
	Godot3 Format = "godot3"
)

// Emitter writes the descriptor of one sprite.
type Emitter interface {
	Emit(name string, region image.Rectangle) error
}

// Factory creates an Emitter writing next to atlasPath. resourcePath is the
// atlas path as it should be referenced from the descriptors.
type Factory func(atlasPath, resourcePath string) Emitter

var (
	mu       sync.RWMutex
	registry = map[Format]Factory{
		Godot4: templateFactory(godot4Template),
		Godot3: templateFactory(godot3Template),
	}
)

// Register makes a dialect available to New, replacing any previous one.
func Register(f Format, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	registry[f] = factory
}

// Supported reports whether f has been registered.
func Supported(f Format) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registry[f]
	return ok
}

// Formats lists the registered dialects in sorted order.
func Formats() []Format {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Format, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseFormat returns the registered dialect named s.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !Supported(f) {
		return "", fmt.Errorf("unknown descriptor format %q", s)
	}
	return f, nil
}

// New returns the Emitter of dialect f.
func New(f Format, atlasPath, resourcePath string) (Emitter, error) {
	mu.RLock()
	factory, ok := registry[f]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown descriptor format %q", f)
	}
	return factory(atlasPath, resourcePath), nil
}
