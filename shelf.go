package crunch

import "image"

// Shelf implements shelf-based rectangle packing.
//
// Items are placed left-to-right on horizontal shelves. A shelf is as tall
// as the tallest item placed on it so far; the last shelf may still grow
// while there is room below it. When no shelf fits, a new one is opened
// underneath the last.
type Shelf struct {
	shelves []shelf
}

type shelf struct {
	y      int // top of the shelf
	height int // tallest item so far
	x      int // next free column
}

// Place implements Algorithm.
func (a *Shelf) Place(container image.Point, sizes []image.Point) ([]image.Point, bool) {
	a.shelves = a.shelves[:0]

	out := make([]image.Point, len(sizes))
	for i, size := range sizes {
		if size.X <= 0 || size.Y <= 0 {
			continue
		}
		pos, ok := a.allocate(container, size)
		if !ok {
			return nil, false
		}
		out[i] = pos
	}
	return out, true
}

func (a *Shelf) allocate(container, size image.Point) (image.Point, bool) {
	if size.X > container.X {
		return image.Point{}, false
	}

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+size.X > container.X {
			continue
		}
		if size.Y > s.height {
			if i != len(a.shelves)-1 || s.y+size.Y > container.Y {
				continue
			}
			s.height = size.Y
		}
		pos := image.Pt(s.x, s.y)
		s.x += size.X
		return pos, true
	}

	y := 0
	if n := len(a.shelves); n > 0 {
		y = a.shelves[n-1].y + a.shelves[n-1].height
	}
	if y+size.Y > container.Y {
		return image.Point{}, false
	}
	a.shelves = append(a.shelves, shelf{y: y, height: size.Y, x: size.X})
	return image.Pt(0, y), true
}
