package crunch

import (
	"image"
	"sort"
)

// Algorithm places a set of sized items into a container.
// Place returns the top-left corner of every item, in the order of sizes,
// or false when at least one item could not be placed. Implementations
// must be deterministic for a given input order.
type Algorithm interface {
	Place(container image.Point, sizes []image.Point) ([]image.Point, bool)
}

// placeOrdered runs algo over sizes visited in the given order and maps the
// positions back to the original indices.
func placeOrdered(algo Algorithm, container image.Point, sizes []image.Point, order []int) ([]image.Point, bool) {
	ordered := make([]image.Point, len(order))
	for i, idx := range order {
		ordered[i] = sizes[idx]
	}
	pos, ok := algo.Place(container, ordered)
	if !ok {
		return nil, false
	}
	out := make([]image.Point, len(sizes))
	for i, idx := range order {
		out[idx] = pos[i]
	}
	return out, true
}

// sortedOrder returns the indices of sizes in the order they should be
// offered to the algorithm. The sort is stable, so equal items keep their
// insertion order.
func sortedOrder(sizes []image.Point, order SortOrder) []int {
	idx := make([]int, len(sizes))
	for i := range idx {
		idx[i] = i
	}
	var less func(a, b image.Point) bool
	switch order {
	case OrderByWidth:
		less = compareByWidth
	case OrderByHeight:
		less = compareByHeight
	case OrderByArea:
		less = compareByArea
	case OrderByMax:
		less = compareByMax
	default:
		return idx
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return less(sizes[idx[i]], sizes[idx[j]])
	})
	return idx
}

func compareByHeight(i, j image.Point) bool {
	if i.Y != j.Y {
		return i.Y > j.Y
	}
	return i.X > j.X
}

func compareByWidth(i, j image.Point) bool {
	if i.X != j.X {
		return i.X > j.X
	}
	return i.Y > j.Y
}

func compareByArea(i, j image.Point) bool {
	return i.X*i.Y > j.X*j.Y
}

func compareByMax(i, j image.Point) bool {
	first, second := max(i.X, i.Y), max(j.X, j.Y)
	if first == second {
		return compareByArea(i, j)
	}
	return first > second
}
