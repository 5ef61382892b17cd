package crunch

import "fmt"

// SortOrder is the enum that defines the order items are offered to the placement algorithm
type SortOrder int

const (
	OrderNone SortOrder = iota
	OrderByWidth
	OrderByHeight
	OrderByArea
	OrderByMax
)

// Heuristic defines the enum for the free rectangle choice of MaxRects
type Heuristic int

const (
	HBssf Heuristic = iota // best short side fit
	HBlsf                  // best long side fit
	HBaf                   // best area fit
	HBl                    // bottom left
)

// AlgorithmKind selects the placement algorithm
type AlgorithmKind int

const (
	AlgoMaxRects AlgorithmKind = iota
	AlgoShelf
)

var heuristicNames = map[string]Heuristic{
	"bssf": HBssf,
	"blsf": HBlsf,
	"baf":  HBaf,
	"bl":   HBl,
}

// ParseHeuristic maps a short heuristic name (bssf, blsf, baf, bl) to its value.
func ParseHeuristic(s string) (Heuristic, error) {
	if h, ok := heuristicNames[s]; ok {
		return h, nil
	}
	return 0, fmt.Errorf("unknown heuristic %q", s)
}

func (h Heuristic) String() string {
	for name, v := range heuristicNames {
		if v == h {
			return name
		}
	}
	return fmt.Sprintf("Heuristic(%d)", int(h))
}

// ParseAlgorithm maps "maxrects" or "shelf" to its value.
func ParseAlgorithm(s string) (AlgorithmKind, error) {
	switch s {
	case "maxrects":
		return AlgoMaxRects, nil
	case "shelf":
		return AlgoShelf, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q", s)
}

// ParseSortOrder maps none, width, height, area or max to its value.
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "none":
		return OrderNone, nil
	case "width":
		return OrderByWidth, nil
	case "height":
		return OrderByHeight, nil
	case "area":
		return OrderByArea, nil
	case "max":
		return OrderByMax, nil
	}
	return 0, fmt.Errorf("unknown sort order %q", s)
}
