package crunch

import (
	"image"
	"math"
)

// MaxRects keeps the list of maximal free rectangles of the container and
// puts every item into the free rectangle chosen by Heur.
type MaxRects struct {
	Heur Heuristic

	free []image.Rectangle
}

// Place implements Algorithm.
func (mr *MaxRects) Place(container image.Point, sizes []image.Point) ([]image.Point, bool) {
	mr.free = append(mr.free[:0], image.Rectangle{Max: container})

	out := make([]image.Point, len(sizes))
	for i, size := range sizes {
		if size.X <= 0 || size.Y <= 0 {
			continue
		}
		pos, ok := mr.insertNode(size)
		if !ok {
			return nil, false
		}
		out[i] = pos
	}
	return out, true
}

func (mr *MaxRects) score(f image.Rectangle, size image.Point) (int, int) {
	dw, dh := f.Dx()-size.X, f.Dy()-size.Y
	switch mr.Heur {
	case HBlsf:
		return max(dw, dh), min(dw, dh)
	case HBaf:
		return f.Dx()*f.Dy() - size.X*size.Y, min(dw, dh)
	case HBl:
		return f.Min.Y + size.Y, f.Min.X
	default:
		return min(dw, dh), max(dw, dh)
	}
}

func (mr *MaxRects) insertNode(size image.Point) (image.Point, bool) {
	best := -1
	bestPrimary, bestSecondary := math.MaxInt, math.MaxInt

	for i, f := range mr.free {
		if f.Dx() < size.X || f.Dy() < size.Y {
			continue
		}
		p, s := mr.score(f, size)
		if p < bestPrimary || (p == bestPrimary && s < bestSecondary) {
			best, bestPrimary, bestSecondary = i, p, s
		}
	}
	if best < 0 {
		return image.Point{}, false
	}

	at := mr.free[best].Min
	used := image.Rectangle{Min: at, Max: at.Add(size)}

	var next []image.Rectangle
	for _, f := range mr.free {
		if !f.Overlaps(used) {
			next = append(next, f)
			continue
		}
		next = append(next, splitFree(f, used)...)
	}
	mr.free = pruneFree(next)

	return used.Min, true
}

// splitFree returns the maximal rectangles of f that do not intersect used.
func splitFree(f, used image.Rectangle) []image.Rectangle {
	var out []image.Rectangle
	if used.Min.X > f.Min.X {
		out = append(out, image.Rect(f.Min.X, f.Min.Y, used.Min.X, f.Max.Y))
	}
	if used.Max.X < f.Max.X {
		out = append(out, image.Rect(used.Max.X, f.Min.Y, f.Max.X, f.Max.Y))
	}
	if used.Min.Y > f.Min.Y {
		out = append(out, image.Rect(f.Min.X, f.Min.Y, f.Max.X, used.Min.Y))
	}
	if used.Max.Y < f.Max.Y {
		out = append(out, image.Rect(f.Min.X, used.Max.Y, f.Max.X, f.Max.Y))
	}
	return out
}

// pruneFree drops every rectangle contained in another one.
func pruneFree(free []image.Rectangle) []image.Rectangle {
	for i := 0; i < len(free); i++ {
		for j := i + 1; j < len(free); j++ {
			if free[i].In(free[j]) {
				free = append(free[:i], free[i+1:]...)
				i--
				break
			}
			if free[j].In(free[i]) {
				free = append(free[:j], free[j+1:]...)
				j--
			}
		}
	}
	return free
}
